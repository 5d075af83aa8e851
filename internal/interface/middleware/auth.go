package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentperksph/perks-api/internal/infrastructure/redisrecord"
	"github.com/studentperksph/perks-api/pkg/helpers"
	"github.com/studentperksph/perks-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the access token cookie and ensures a session record
// still exists (logout elsewhere invalidates the token). It sets userID
// in the Gin context on success.
func Auth(records *redisrecord.Store, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}

		ok, err := records.Exists(c.Request.Context(), claims.UserID)
		if err != nil || !ok {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth resolves the user id when a valid access token is present
// and continues anonymously otherwise. Catalog endpoints use it so the
// favorites filter works for a logged-in viewer without walling off the
// directory.
func OptionalAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err == nil && token != "" {
			if claims, perr := jwt.ParseAccessToken(token); perr == nil {
				c.Set(CtxUserIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}
