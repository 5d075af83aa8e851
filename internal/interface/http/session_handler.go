package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/studentperksph/perks-api/internal/application"
	repo "github.com/studentperksph/perks-api/internal/domain/repository"
	"github.com/studentperksph/perks-api/internal/interface/middleware"
	"github.com/studentperksph/perks-api/pkg/helpers"
	"github.com/studentperksph/perks-api/pkg/response"
	"github.com/studentperksph/perks-api/pkg/validation"
)

// SessionHandler translates HTTP requests into session store intents.
// Every request gets its own store instance keyed by the authenticated
// user id, so nothing here is shared across goroutines.
type SessionHandler struct {
	Records application.RecordStore
	Gateway repo.ProfileGateway // nil in local-only mode
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.Manager

	// DirectLogin permits POST /auth/login without the magic-link round
	// trip; enabled only when no profile backend is configured.
	DirectLogin bool
}

func NewSessionHandler(records application.RecordStore, gateway repo.ProfileGateway, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool, directLogin bool) *SessionHandler {
	return &SessionHandler{
		Records:     records,
		Gateway:     gateway,
		JWT:         jwt,
		Logger:      logger,
		Cookies:     helpers.NewCookie(cookieDomain, cookieSecure),
		DirectLogin: directLogin,
	}
}

// session builds and initializes a per-request store for the current
// user (anonymous when no auth middleware ran or the token was absent).
func (h *SessionHandler) session(c *gin.Context) *application.SessionStore {
	uid := c.GetString(middleware.CtxUserIDKey)
	s := application.NewSessionStore(h.Records, h.Gateway, h.Logger, uid)
	s.Initialize(c.Request.Context())
	return s
}

type loginRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

type verifyRequest struct {
	Email string `json:"email" binding:"required"`
}

func userPayload(s *application.SessionStore) gin.H {
	u := s.User()
	if u == nil {
		return nil
	}
	return gin.H{
		"id":          u.ID,
		"email":       u.Email,
		"name":        u.Name,
		"is_verified": u.IsVerified,
		"university":  u.University,
		"favorites":   u.Favorites,
	}
}

// Login creates a session directly from an email. Demo-mode only; with a
// profile backend configured the magic-link flow is the sole way in.
func (h *SessionHandler) Login(c *gin.Context) {
	if !h.DirectLogin {
		response.Error[any](c, http.StatusForbidden, "direct login disabled, request a magic link", nil)
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	s := application.NewSessionStore(h.Records, h.Gateway, h.Logger, "")
	u, err := s.Login(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !h.issueTokens(c, u.ID) {
		return
	}
	response.Success(c, http.StatusOK, userPayload(s), "login successful", nil)
}

// Refresh rotates the cookie pair from a valid refresh token.
func (h *SessionHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	claims, err := h.JWT.ParseRefreshToken(refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	if !h.issueTokens(c, claims.UserID) {
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed", nil)
}

// Logout clears the session, its record, and the cookie pair. Safe to
// call repeatedly.
func (h *SessionHandler) Logout(c *gin.Context) {
	s := h.session(c)
	s.Logout(c.Request.Context())
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

// Profile returns the current session's user.
func (h *SessionHandler) Profile(c *gin.Context) {
	s := h.session(c)
	if s.User() == nil {
		response.Error[any](c, http.StatusNotFound, "session not found", nil)
		return
	}
	response.Success(c, http.StatusOK, userPayload(s), "profile", nil)
}

// Verify runs the .edu.ph verification gate for the current session.
func (h *SessionHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	s := h.session(c)
	if err := s.Verify(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, application.ErrNoSession):
			response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
		case errors.Is(err, application.ErrInvalidSchoolEmail):
			response.Error[any](c, http.StatusUnprocessableEntity, err.Error(),
				map[string]string{"email": "must end in .edu.ph"})
		default:
			response.Error[any](c, http.StatusInternalServerError, "verification failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, userPayload(s), "student status verified", nil)
}

// ToggleFavorite flips one benefit in the favorites set.
func (h *SessionHandler) ToggleFavorite(c *gin.Context) {
	benefitID := c.Param("id")

	s := h.session(c)
	favorited, err := s.ToggleFavorite(c.Request.Context(), benefitID)
	if err != nil {
		// Auth middleware should prevent this; surface it as the login
		// prompt signal regardless.
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"benefit_id": benefitID,
		"favorited":  favorited,
		"favorites":  s.User().Favorites,
	}, "favorites updated", nil)
}

func (h *SessionHandler) issueTokens(c *gin.Context, userID string) bool {
	access, aexp, err := h.JWT.GenerateAccessToken(userID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("generate access token failed")
		response.Error[any](c, http.StatusInternalServerError, "could not start session", nil)
		return false
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(userID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("generate refresh token failed")
		response.Error[any](c, http.StatusInternalServerError, "could not start session", nil)
		return false
	}
	h.Cookies.SetPair(c, access, aexp, refresh, rexp)
	return true
}
