package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/Afzalshaikh78/ImageGenerator/pkg/auth"
)

// TokenHeader is the custom header the web client sends the bearer token
// in. The standard Authorization header is accepted as well.
const TokenHeader = "token"

const authFailedMessage = "Not authorized. Login again"

// Auth returns a middleware that authenticates requests using the given
// authenticator. On success the verified claims, subject, and raw token
// are injected into the request context; on failure the request is
// aborted with 401 and the uniform failure envelope.
func Auth(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Success: false,
				Message: authFailedMessage,
			})
			return
		}

		claims, err := authenticator.Verify(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warnw("token verification failed",
				"path", c.Request.URL.Path,
				"remote_addr", c.ClientIP(),
				"error", err,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Success: false,
				Message: authFailedMessage,
			})
			return
		}

		ctx := auth.InjectAuth(c.Request.Context(), claims, tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// extractToken pulls the bearer token from the custom token header or the
// Authorization header.
func extractToken(c *gin.Context) string {
	if token := c.GetHeader(TokenHeader); token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return ""
}
