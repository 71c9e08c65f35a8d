package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// extractBearer extracts the token from the Authorization header.
func extractBearer(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireTenantScope validates the bearer token and records the tenant the
// caller is scoped to. Handlers compare that scope against the tenant named
// in each request. When auth is disabled the middleware is a pass-through.
func RequireTenantScope(cfg *config.AuthConfig, log logger.Logger) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	authLog := log.WithComponent("jwt_auth")
	return func(c *gin.Context) {
		tokenStr := extractBearer(c.GetHeader("Authorization"))
		if tokenStr == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		opts := []jwt.ParserOption{
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		}
		if cfg.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(cfg.Issuer))
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return []byte(cfg.SigningSecret), nil
		}, opts...)
		if err != nil || !token.Valid {
			authLog.Warn(c.Request.Context(), "token verification failed", logger.Fields{"error": fmt.Sprint(err)})
			abortUnauthorized(c, "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid token claims")
			return
		}
		tenantID, ok := claims["tenant_id"].(string)
		if !ok || tenantID == "" {
			abortUnauthorized(c, "token is missing the tenant_id claim")
			return
		}

		c.Set(string(constants.ContextKeyTenantID), tenantID)
		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyTenantID, tenantID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	err := errors.ErrUnauthorized(message)
	requestID := c.GetString(string(constants.ContextKeyRequestID))
	c.AbortWithStatusJSON(errors.HTTPStatusOf(err), dto.NewErrorEnvelope(err, requestID))
}
