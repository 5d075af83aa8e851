package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studentperksph/perks-api/internal/container"
	"github.com/studentperksph/perks-api/internal/infrastructure/redisrecord"
	handlers "github.com/studentperksph/perks-api/internal/interface/http"
	"github.com/studentperksph/perks-api/internal/interface/middleware"
	"github.com/studentperksph/perks-api/pkg/helpers"
)

// SessionModule wires auth and session routes.
// Public: POST /api/auth/login, POST /api/auth/refresh,
//         POST /api/auth/magiclink, GET|POST /api/auth/magiclink/confirm
// Protected: POST /api/auth/logout, GET /api/profile, POST /api/profile/verify,
//            POST /api/favorites/:id/toggle

type SessionModule struct {
	Handler *handlers.SessionHandler
	Magic   *handlers.MagicLinkHandler
	Records *redisrecord.Store
	JWT     *helpers.JWTManager
}

func NewSessionModule(h *handlers.SessionHandler, magic *handlers.MagicLinkHandler, records *redisrecord.Store, jwt *helpers.JWTManager) *SessionModule {
	return &SessionModule{Handler: h, Magic: magic, Records: records, JWT: jwt}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	// Public with rate limiting. Magic-link request is the tightest since
	// each hit sends an email.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	magicLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	confirmLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	auth := rg.Group("/auth")
	auth.POST("/login", loginLimiter, m.Handler.Login)
	auth.POST("/refresh", refreshLimiter, m.Handler.Refresh)
	auth.POST("/magiclink", magicLimiter, m.Magic.Request)
	auth.GET("/magiclink/confirm", confirmLimiter, m.Magic.Confirm)
	auth.POST("/magiclink/confirm", confirmLimiter, m.Magic.Confirm)

	// Protected
	protected := rg.Group("/")
	protected.Use(middleware.Auth(m.Records, m.JWT))
	protected.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		protected.POST("/auth/logout", m.Handler.Logout)
		protected.GET("/profile", m.Handler.Profile)
		protected.POST("/profile/verify", m.Handler.Verify)
		protected.POST("/favorites/:id/toggle", m.Handler.ToggleFavorite)
	}
}
