// Package middleware provides the gin middleware used by the API server:
// the CORS origin gate, token authentication, request logging, request ID
// propagation, and panic recovery.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	mwopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/middleware"
)

// corsRejectedMessage is the fixed message for rejected origins. It never
// names the configured origins.
const corsRejectedMessage = "CORS: Origin not allowed"

// CORS returns an origin gate middleware with default options.
func CORS() gin.HandlerFunc {
	return CORSWithOptions(*mwopts.NewCORSOptions())
}

// CORSWithOptions returns an origin gate middleware with custom options.
//
// The gate runs before any route handler. Requests without an Origin
// header pass through untouched (non-browser callers). Requests whose
// Origin exactly matches an allow-list entry receive CORS response
// headers echoing that specific origin; preflight OPTIONS requests
// short-circuit with 204 after the same decision. Any other origin is
// rejected with 403 and the uniform failure envelope.
func CORSWithOptions(opts mwopts.CORSOptions) gin.HandlerFunc {
	if errs := opts.Validate(); len(errs) > 0 {
		// Configuration errors should fail at startup, not at request time.
		panic(errs[0])
	}

	allowMethods := strings.Join(opts.AllowMethods, ", ")
	allowHeaders := strings.Join(opts.AllowHeaders, ", ")
	exposeHeaders := strings.Join(opts.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(opts.MaxAge)

	// The allow-list is immutable once the middleware is built.
	allowed := make(map[string]struct{}, len(opts.AllowOrigins))
	for _, o := range opts.AllowOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// No declared origin: curl, mobile apps, health probes.
		if origin == "" {
			c.Next()
			return
		}

		// Exact string equality only, no wildcard or pattern matching.
		if _, ok := allowed[origin]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, envelope{
				Success: false,
				Message: corsRejectedMessage,
			})
			return
		}

		// Echo the specific origin, never a wildcard: credentialed
		// requests are permitted.
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")

		if opts.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if exposeHeaders != "" {
			c.Header("Access-Control-Expose-Headers", exposeHeaders)
		}

		// Preflight requests stop here and never reach a route handler.
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", allowMethods)
			c.Header("Access-Control-Allow-Headers", allowHeaders)
			c.Header("Access-Control-Max-Age", maxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// envelope is the uniform failure envelope written by middleware.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
