package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fangate-io/fangate/internal/infrastructure/auth"
	"github.com/fangate-io/fangate/internal/shared/logger"
	"github.com/fangate-io/fangate/internal/shared/utils"
)

// ContextKeyServiceName is the gin context key holding the authenticated
// caller's service name.
const ContextKeyServiceName = "service_name"

// AuthMiddleware authenticates collaborator services by their bearer
// service token.
type AuthMiddleware struct {
	tokens *auth.ServiceTokenManager
	logger logger.Interface
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *auth.ServiceTokenManager, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: log,
	}
}

// RequireServiceToken rejects requests without a valid service token.
func (m *AuthMiddleware) RequireServiceToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "bearer token required")
			c.Abort()
			return
		}

		serviceName, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warnw("service token rejected",
				"path", c.Request.URL.Path,
				"error", err,
			)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid service token")
			c.Abort()
			return
		}

		c.Set(ContextKeyServiceName, serviceName)
		c.Next()
	}
}
