package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studentperksph/perks-api/internal/container"
	handlers "github.com/studentperksph/perks-api/internal/interface/http"
	"github.com/studentperksph/perks-api/internal/interface/middleware"
	"github.com/studentperksph/perks-api/pkg/helpers"
)

// BenefitModule wires the catalog routes. All are public; OptionalAuth
// lets a valid cookie contribute favorites and verification status
// without requiring one.
// GET /api/benefits, GET /api/benefits/popular, GET /api/categories,
// POST /api/benefits/:id/unlock

type BenefitModule struct {
	Handler *handlers.BenefitHandler
	JWT     *helpers.JWTManager
}

func NewBenefitModule(h *handlers.BenefitHandler, jwt *helpers.JWTManager) *BenefitModule {
	return &BenefitModule{Handler: h, JWT: jwt}
}

func (m *BenefitModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/categories", rl, m.Handler.Categories)

	benefits := rg.Group("/benefits")
	benefits.Use(rl, middleware.OptionalAuth(m.JWT))
	{
		benefits.GET("", m.Handler.List)
		benefits.GET("/popular", m.Handler.Popular)
		benefits.POST("/:id/unlock", m.Handler.Unlock)
	}
}
