package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/studentperksph/perks-api/config"
	"github.com/studentperksph/perks-api/internal/application"
	repo "github.com/studentperksph/perks-api/internal/domain/repository"
	"github.com/studentperksph/perks-api/pkg/helpers"
	"github.com/studentperksph/perks-api/pkg/mailer"
	"github.com/studentperksph/perks-api/pkg/mailer/templates"
	"github.com/studentperksph/perks-api/pkg/response"
	"github.com/studentperksph/perks-api/pkg/validation"
)

// MagicLinkHandler implements passwordless login: a short-lived single-use
// token is parked in Redis and mailed to the user; confirming the token
// creates the session and sets the cookie pair.
type MagicLinkHandler struct {
	RDB     *redis.Client
	Records application.RecordStore
	Gateway repo.ProfileGateway
	JWT     *helpers.JWTManager
	Cookies *helpers.Manager
	Pub     *helpers.RabbitPublisher // nil when no broker is configured
	Logger  *logrus.Logger
	Cfg     *config.Config
}

func NewMagicLinkHandler(rdb *redis.Client, records application.RecordStore, gateway repo.ProfileGateway, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, cfg *config.Config) *MagicLinkHandler {
	return &MagicLinkHandler{
		RDB:     rdb,
		Records: records,
		Gateway: gateway,
		JWT:     jwt,
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		Pub:     pub,
		Logger:  logger,
		Cfg:     cfg,
	}
}

type magicLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type confirmRequest struct {
	Token string `json:"token" binding:"required"`
}

// pendingLogin is what the token redeems into.
type pendingLogin struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Request parks a login token and queues the email. The response never
// reveals whether the address is known; in development without a mail
// pipeline the link is echoed back for manual testing.
func (h *MagicLinkHandler) Request(c *gin.Context) {
	var req magicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, err := helpers.GenToken(32)
	if err != nil {
		h.Logger.WithError(err).Error("magic-link token generation failed")
		response.Error[any](c, http.StatusInternalServerError, "could not create login link", nil)
		return
	}

	ctx := c.Request.Context()
	pending := pendingLogin{Email: req.Email, Name: req.Name}
	if err := helpers.RedisSetJSON(ctx, h.RDB, helpers.KeyMagicLink(token), pending, h.Cfg.MagicLinkTTL); err != nil {
		h.Logger.WithError(err).Error("magic-link token store failed")
		response.Error[any](c, http.StatusInternalServerError, "could not create login link", nil)
		return
	}

	link := h.Cfg.MagicLinkBaseURL + "?token=" + url.QueryEscape(token)
	expires := int(h.Cfg.MagicLinkTTL.Minutes())

	if h.Pub != nil && h.Cfg.MailSendEnabled {
		job := mailer.EmailJob{
			To:       req.Email,
			Template: templates.MagicLink,
			Data: map[string]any{
				"Name":           req.Name,
				"Link":           link,
				"ExpiresMinutes": expires,
			},
		}
		if err := h.Pub.PublishJSON(ctx, job); err != nil {
			h.Logger.WithError(err).Error("magic-link email enqueue failed")
			response.Error[any](c, http.StatusInternalServerError, "could not send login link", nil)
			return
		}
		response.Success[any](c, http.StatusAccepted, gin.H{"sent": true},
			"login link sent if the address is valid", nil)
		return
	}

	h.Logger.WithField("email", req.Email).Warn("mail pipeline not configured, magic link not sent")
	var meta any
	if h.Cfg.Env == "development" {
		meta = gin.H{"debug_link": link}
	}
	response.Success[any](c, http.StatusAccepted, gin.H{"sent": false},
		"mail delivery disabled", meta)
}

// Confirm redeems a token, creating the session. Tokens are single use;
// redemption deletes them even if session creation later fails.
func (h *MagicLinkHandler) Confirm(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		var req confirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error[any](c, http.StatusBadRequest, "missing token", validation.ToDetails(err))
			return
		}
		token = req.Token
	}

	ctx := c.Request.Context()
	var pending pendingLogin
	found, err := helpers.RedisGetJSON(ctx, h.RDB, helpers.KeyMagicLink(token), &pending)
	if err != nil {
		h.Logger.WithError(err).Error("magic-link token lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "could not confirm login link", nil)
		return
	}
	if !found {
		response.Error[any](c, http.StatusUnauthorized, "login link is invalid or expired", nil)
		return
	}
	if err := helpers.RedisDel(ctx, h.RDB, helpers.KeyMagicLink(token)); err != nil {
		h.Logger.WithError(err).Warn("magic-link token delete failed")
	}

	s := application.NewSessionStore(h.Records, h.Gateway, h.Logger, "")
	u, err := s.Login(ctx, pending.Email, pending.Name)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	access, aexp, err := h.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("generate access token failed")
		response.Error[any](c, http.StatusInternalServerError, "could not start session", nil)
		return
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("generate refresh token failed")
		response.Error[any](c, http.StatusInternalServerError, "could not start session", nil)
		return
	}
	h.Cookies.SetPair(c, access, aexp, refresh, rexp)

	response.Success(c, http.StatusOK, userPayload(s), "login successful", nil)
}
