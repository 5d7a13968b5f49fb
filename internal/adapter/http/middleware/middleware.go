package middleware

import (
	"net/http"
	"strings"
	"time"

	"taxhub/internal/core/domain"
	"taxhub/internal/core/ports"
	"taxhub/pkg/apperror"
	"taxhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CtxPrincipal is the gin context key holding the authenticated principal.
const CtxPrincipal = "principal"

// Authenticate resolves the bearer token into a principal. It never aborts:
// a missing, malformed or expired token simply leaves the request
// anonymous, and the authorization decision happens downstream in
// RequireAuth / RequireRole. Public endpoints stay public this way without
// a separate unauthenticated chain.
func Authenticate(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		principal, err := tokenSvc.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Debug().Err(err).Msg("token rejected, continuing as anonymous")
			c.Next()
			return
		}

		c.Set(CtxPrincipal, *principal)
		c.Next()
	}
}

// RequireAuth aborts anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFrom(c); !ok {
			response.Error(c, apperror.ErrAuthenticationRequired())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole aborts requests whose principal lacks the given role.
// Anonymous requests get 401, authenticated ones without the role get 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			response.Error(c, apperror.ErrAuthenticationRequired())
			c.Abort()
			return
		}
		if !principal.HasRole(role) {
			response.Error(c, apperror.ErrForbidden())
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFrom extracts the authenticated principal, if any.
func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, exists := c.Get(CtxPrincipal)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := v.(domain.Principal)
	return principal, ok
}

// MaxBodySize rejects request bodies larger than limit bytes.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
					Timestamp: time.Now().UTC().Format(time.RFC3339),
					Status:    http.StatusInternalServerError,
					Error:     http.StatusText(http.StatusInternalServerError),
					Message:   "Internal server error",
					Path:      c.Request.URL.Path,
				})
			}
		}()
		c.Next()
	}
}
