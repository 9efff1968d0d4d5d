package middlewarex

import (
	"net/http"

	"github.com/google/uuid"

	"airstats/pkg/contextx"
)

// Canvas keeps one chart canvas per browser session. The id lives in a
// session cookie; a missing or malformed cookie is replaced by a fresh id.
func Canvas(cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var canvasID string

			if cookie, err := r.Cookie(cookieName); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					canvasID = id.String()
				}
			}

			if canvasID == "" {
				canvasID = uuid.NewString()

				http.SetCookie(w, &http.Cookie{ //nolint:exhaustruct
					Name:     cookieName,
					Value:    canvasID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := contextx.WithCanvasID(r.Context(), contextx.CanvasID(canvasID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
