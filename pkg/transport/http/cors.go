package http

import (
	"net/http"
	"strings"
)

// allowedMethods is advertised on preflight responses. The API itself
// only uses GET and POST, but the allow-list keeps browser clients from
// tripping over preflights for anything else.
const allowedMethods = "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS"

// CORSConfig holds the browser cross-origin policy.
type CORSConfig struct {
	// AllowedOrigins is an exact-match origin allow-list. There is no
	// wildcard support; credentialed requests require a concrete origin.
	AllowedOrigins []string
}

// CORS enforces the origin allow-list. Allowed origins get the standard
// credentialed CORS headers and preflights are answered directly.
// Requests from other origins pass through with no CORS headers at all,
// which makes the browser refuse the response.
func CORS(cfg CORSConfig) Middleware {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[strings.TrimSuffix(origin, "/")] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && allowed[origin] {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")

				if r.Method == http.MethodOptions {
					h.Set("Access-Control-Allow-Methods", allowedMethods)
					if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
						h.Set("Access-Control-Allow-Headers", reqHeaders)
					}
					h.Set("Access-Control-Max-Age", "600")
					w.WriteHeader(http.StatusNoContent)
					return
				}
			} else if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				// Preflight from a disallowed origin: answer without any
				// CORS headers so the browser blocks the actual request.
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
