package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// LoginPath is where unauthenticated browser requests are sent.
const LoginPath = "/admin/login"

// RequireAdmin gates every route it wraps. The session cookie must be
// present and carry a token with a valid signature and expiry before any
// admin handler runs. API clients get a 401; browsers get a redirect to the
// login page.
func RequireAdmin(tokens *TokenManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				deny(w, r)
				return
			}

			if err := tokens.Verify(cookie.Value); err != nil {
				logger.Warn("rejected admin token", zap.Error(err))
				deny(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"authentication required"}`))
		return
	}
	http.Redirect(w, r, LoginPath, http.StatusFound)
}

// wantsJSON distinguishes API clients from browsers: API paths and requests
// that explicitly accept JSON get status codes, everything else a redirect.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/orders") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
