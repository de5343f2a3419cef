package middleware

import (
	"net/http"

	"github.com/denmor86/lucky-triple/internal/helpers"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/go-chi/render"
)

// AdminOnly - пропускает только запросы с токеном администратора.
// Должен стоять после jwtauth.Authenticator.
func AdminOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !helpers.IsAdmin(r.Context()) {
			userID, _ := helpers.GetUserID(r.Context())
			logger.Warnw("Admin access denied", "user_id", userID, "uri", r.RequestURI)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, map[string]string{"error": "administrator rights required"})
			return
		}
		h.ServeHTTP(w, r)
	})
}
