package middleware

import (
	"academic_dashboard/internal/config"
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/logger"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware resolves the bearer token to a live session. The token
// alone is not enough: the session must still exist in the store, so a
// logout revokes it.
func AuthMiddleware(cfg *config.JWTConfig, sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// EventSource cannot set headers
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.Secret)
		if err != nil {
			logger.Log.Debug("JWT parse error", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		session, err := sessions.Resume(c.Request.Context(), claims)
		if err != nil {
			if !errors.Is(err, util.ErrNotAuthenticated) {
				util.LogInternalError(c, err)
				c.Abort()
				return
			}
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextClaims, claims)
		c.Set(util.ContextSession, session)
		c.Set(util.ContextIdentity, session.MustIdentity())
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := util.GetIdentityFromContext(c)
		if id == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if id.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
