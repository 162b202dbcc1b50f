// Package cors lets browser front ends served from other origins call the
// interview API.
package cors

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

// Middleware answers preflight requests and sets the CORS response headers
// for requests coming from one of the allowed origins. "*" allows any
// origin. With no allowed origins the handler is returned unchanged.
func Middleware(allowedOrigins []string, maxAge time.Duration, next http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return next
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
		MaxAge:         int(maxAge.Seconds()),
	}).Handler(next)
}
