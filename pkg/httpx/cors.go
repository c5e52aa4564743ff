package httpx

import (
	"net/http"
	"strings"
)

// CORSConfig describes the single origin allowed to call the API from a
// browser.
type CORSConfig struct {
	// AllowedOrigin is compared exactly against the Origin header. Empty
	// disables CORS headers entirely.
	AllowedOrigin string

	AllowedMethods []string
	AllowedHeaders []string
}

// DefaultCORSMethods are the methods the records API serves.
var DefaultCORSMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}

// CORS answers preflight requests and decorates responses for the configured
// origin. Requests from other origins pass through without CORS headers, so
// browsers refuse to expose the response. Non-browser callers are unaffected;
// this is an allow-list, not access control.
func CORS(cfg CORSConfig) Middleware {
	origin := strings.TrimSuffix(cfg.AllowedOrigin, "/")

	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = DefaultCORSMethods
	}
	headers := cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"Content-Type", "X-Request-ID"}
	}
	allowMethods := strings.Join(methods, ", ")
	allowHeaders := strings.Join(headers, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqOrigin := r.Header.Get("Origin")
			allowed := origin != "" && reqOrigin == origin

			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			// Preflight
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					w.Header().Set("Access-Control-Allow-Methods", allowMethods)
					w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
					w.Header().Set("Access-Control-Max-Age", "600")
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
