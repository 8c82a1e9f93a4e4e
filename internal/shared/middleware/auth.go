package middleware

import (
	"strings"

	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const ContextSubject = "subject"

// RequireWriter guards mutating routes: a valid access token with the
// writer role is required.
func RequireWriter(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(ContextRequestID)).Msg("token rejected")
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleWriter {
			response.ErrorResponse(c, 403, "FORBIDDEN", "writer role required")
			c.Abort()
			return
		}

		c.Set(ContextSubject, claims.Subject)
		c.Next()
	}
}
