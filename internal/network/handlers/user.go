package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/lucky-triple/internal/helpers"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/denmor86/lucky-triple/internal/storage"
	"go.uber.org/zap"
)

type userResponse struct {
	User models.User `json:"user"`
}

// SignupHandler — регистрация нового пользователя
func SignupHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, err := i.RegisterUser(r.Context(), req)
		if err != nil {
			responseServiceError(w, r, "signup", err)
			return
		}
		// пользователь зарегистрирован и сразу авторизован
		authenticated(w, r, i, *user, http.StatusCreated)
	})
}

// LoginHandler — аутентификация пользователя
func LoginHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, err := i.AuthenticateUser(r.Context(), req)
		if err != nil {
			responseServiceError(w, r, "login", err)
			return
		}
		authenticated(w, r, i, *user, http.StatusOK)
	})
}

func authenticated(w http.ResponseWriter, r *http.Request, i services.IdentityService, user models.UserData, status int) {
	token, err := i.GenerateJWT(user)
	if err != nil {
		logger.Error("Failed to generate token", zap.Error(err))
		responseError(w, r, http.StatusInternalServerError, "Server error")
		return
	}
	logger.Infow("User authenticated", "user_id", user.UserID, "admin", user.IsAdmin)
	w.Header().Set("Authorization", "Bearer "+token)
	responseJSON(w, r, status, models.AuthResponse{Token: token, User: user.Public()})
}

// MeHandler — текущий пользователь с авторитетным балансом
func MeHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			responseError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		user, err := i.GetUser(r.Context(), userID)
		if errors.Is(err, storage.ErrNotFound) {
			// учётная запись удалена, токен больше не действителен
			responseError(w, r, http.StatusUnauthorized, "User no longer exists")
			return
		}
		if err != nil {
			responseServiceError(w, r, "me", err)
			return
		}
		responseJSON(w, r, http.StatusOK, userResponse{User: user.Public()})
	})
}
