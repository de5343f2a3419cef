package handlers

import (
	"net/http"

	"github.com/denmor86/lucky-triple/internal/helpers"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/go-chi/render"
)

type settingsResponse struct {
	Settings models.GameSettings `json:"settings"`
}

type historyResponse struct {
	History []models.WagerResponse `json:"history"`
}

// GetSettingsHandler — текущий снимок настроек игры
func GetSettingsHandler(g services.GameService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := g.GetSettings(r.Context())
		if err != nil {
			responseServiceError(w, r, "get settings", err)
			return
		}
		responseJSON(w, r, http.StatusOK, settingsResponse{Settings: *settings})
	})
}

// UpdateSettingsHandler — замена снимка настроек администратором
func UpdateSettingsHandler(g services.GameService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.GameSettings
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			responseError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
		settings, err := g.UpdateSettings(r.Context(), req)
		if err != nil {
			responseServiceError(w, r, "update settings", err)
			return
		}
		responseJSON(w, r, http.StatusOK, settingsResponse{Settings: *settings})
	})
}

// PlayHandler — ставка. Ключ раунда приходит в заголовке Idempotency-Key,
// повтор с тем же ключом возвращает уже записанный результат.
func PlayHandler(g services.GameService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			responseError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		roundKey := r.Header.Get(HeaderIdempotencyKey)
		if roundKey == "" {
			responseError(w, r, http.StatusBadRequest, "Idempotency-Key header is required")
			return
		}
		var req models.PlayRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		result, err := g.Play(r.Context(), userID, roundKey, req)
		if err != nil {
			responseServiceError(w, r, "play", err)
			return
		}
		responseJSON(w, r, http.StatusOK, result)
	})
}

// HistoryHandler — последние ставки пользователя
func HistoryHandler(g services.GameService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			responseError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		history, err := g.GetHistory(r.Context(), userID)
		if err != nil {
			responseServiceError(w, r, "history", err)
			return
		}
		if history == nil {
			history = []models.WagerResponse{}
		}
		responseJSON(w, r, http.StatusOK, historyResponse{History: history})
	})
}
