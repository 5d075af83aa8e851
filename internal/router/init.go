package router

import (
	"github.com/studentperksph/perks-api/internal/container"
	repo "github.com/studentperksph/perks-api/internal/domain/repository"
	pginfra "github.com/studentperksph/perks-api/internal/infrastructure/postgres"
	"github.com/studentperksph/perks-api/internal/infrastructure/redisrecord"
	handlers "github.com/studentperksph/perks-api/internal/interface/http"
	"github.com/studentperksph/perks-api/internal/router/modules"
)

type Deps struct {
	Records  *redisrecord.Store
	Gateway  repo.ProfileGateway // nil in local-only mode
	Session  *handlers.SessionHandler
	Magic    *handlers.MagicLinkHandler
	Benefits *handlers.BenefitHandler
}

func buildDeps() Deps {
	cfg := container.GetConfig()
	records := redisrecord.New(container.GetRedis())

	var gateway repo.ProfileGateway
	if cfg.ProfileBackendEnabled {
		gateway = pginfra.NewProfileGateway(container.GetPGPool())
	}

	session := handlers.NewSessionHandler(
		records,
		gateway,
		container.GetJWT(),
		container.GetLogger(),
		cfg.CookieDomain,
		cfg.CookieSecure,
		!cfg.ProfileBackendEnabled,
	)
	magic := handlers.NewMagicLinkHandler(
		container.GetRedis(),
		records,
		gateway,
		container.GetJWT(),
		container.GetRabbitPub(),
		container.GetLogger(),
		cfg,
	)
	benefits := handlers.NewBenefitHandler(
		container.GetCatalog(),
		records,
		gateway,
		container.GetLogger(),
	)

	return Deps{Records: records, Gateway: gateway, Session: session, Magic: magic, Benefits: benefits}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	r.Add(modules.NewSessionModule(deps.Session, deps.Magic, deps.Records, container.GetJWT()))
	r.Add(modules.NewBenefitModule(deps.Benefits, container.GetJWT()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
