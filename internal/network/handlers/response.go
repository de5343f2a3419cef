package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// HeaderIdempotencyKey - заголовок с ключом раунда
const HeaderIdempotencyKey = "Idempotency-Key"

// пауза, которую клиент выдерживает после 429
const retryAfterSeconds = "5"

var validate = validator.New()

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// responseJSON - ответ с кодом статуса и телом JSON
func responseJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func responseError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	responseJSON(w, r, status, ErrorResponse{Error: msg})
}

// decodeRequest - разбор тела запроса и проверка тегов validate
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		logger.Warnw("Failed to decode request", zap.Error(err))
		responseError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := validate.Struct(v); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			responseError(w, r, http.StatusBadRequest, validationMessage(validateErrs))
		} else {
			responseError(w, r, http.StatusBadRequest, "Invalid request")
		}
		return false
	}
	return true
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "e164":
			msgs = append(msgs, fmt.Sprintf("field %s must be a phone number in E.164 format", err.Field()))
		case "min", "max", "len":
			msgs = append(msgs, fmt.Sprintf("field %s must satisfy %s=%s", err.Field(), err.ActualTag(), err.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

// StatusFor - код ответа для ошибки сервиса
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, storage.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, storage.ErrAlreadyExists),
		errors.Is(err, storage.ErrConflict),
		errors.Is(err, services.ErrStaleSettings):
		return http.StatusConflict
	case errors.Is(err, services.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrInvalidRoundKey),
		errors.Is(err, services.ErrInvalidGuesses),
		errors.Is(err, services.ErrBetOutOfRange),
		errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrNoRecipients),
		errors.Is(err, services.ErrInvalidWithdrawalAmount),
		errors.Is(err, services.ErrInvalidCreditAmount),
		errors.Is(err, services.ErrDeleteSelf),
		errors.Is(err, models.ErrInvalidBetBounds),
		errors.Is(err, models.ErrInvalidHouseFee),
		errors.Is(err, models.ErrInvalidMultiplier):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// responseServiceError - ответ по ошибке сервиса; внутренние ошибки не раскрываются
func responseServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Errorw("Request failed", "op", op, zap.Error(err))
		responseError(w, r, status, "Server error")
		return
	}
	if status == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	logger.Infow("Request rejected", "op", op, "status", status, "reason", err.Error())
	responseError(w, r, status, err.Error())
}
