package handlers

import (
	"net/http"

	"github.com/denmor86/lucky-triple/internal/helpers"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/go-chi/chi/v5"
)

type withdrawalResponse struct {
	Withdrawal models.Withdrawal `json:"withdrawal"`
}

type withdrawalsResponse struct {
	Withdrawals []models.Withdrawal `json:"withdrawals"`
}

// RequestWithdrawalHandler — запрос на вывод. Баланс не списывается до одобрения.
func RequestWithdrawalHandler(s services.WithdrawalService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			responseError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		var req models.WithdrawalRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		withdrawal, err := s.Request(r.Context(), userID, req.Amount)
		if err != nil {
			responseServiceError(w, r, "request withdrawal", err)
			return
		}
		responseJSON(w, r, http.StatusCreated, withdrawalResponse{Withdrawal: *withdrawal})
	})
}

// MyWithdrawalsHandler — запросы пользователя и сумма ожидающих решения
func MyWithdrawalsHandler(s services.WithdrawalService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			responseError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		mine, err := s.Mine(r.Context(), userID)
		if err != nil {
			responseServiceError(w, r, "my withdrawals", err)
			return
		}
		if mine.Withdrawals == nil {
			mine.Withdrawals = []models.Withdrawal{}
		}
		responseJSON(w, r, http.StatusOK, mine)
	})
}

// ListWithdrawalsHandler — все запросы для администратора
func ListWithdrawalsHandler(s services.WithdrawalService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		list, err := s.List(r.Context())
		if err != nil {
			responseServiceError(w, r, "list withdrawals", err)
			return
		}
		if list == nil {
			list = []models.Withdrawal{}
		}
		responseJSON(w, r, http.StatusOK, withdrawalsResponse{Withdrawals: list})
	})
}

// ApproveWithdrawalHandler — одобрение; повторное решение отвечает 409
func ApproveWithdrawalHandler(s services.WithdrawalService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withdrawal, err := s.Approve(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responseServiceError(w, r, "approve withdrawal", err)
			return
		}
		responseJSON(w, r, http.StatusOK, withdrawalResponse{Withdrawal: *withdrawal})
	})
}

// RejectWithdrawalHandler — отклонение с необязательной причиной
func RejectWithdrawalHandler(s services.WithdrawalService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.RejectRequest
		// тело необязательно
		if r.ContentLength != 0 {
			if !decodeRequest(w, r, &req) {
				return
			}
		}
		withdrawal, err := s.Reject(r.Context(), chi.URLParam(r, "id"), req.Reason)
		if err != nil {
			responseServiceError(w, r, "reject withdrawal", err)
			return
		}
		responseJSON(w, r, http.StatusOK, withdrawalResponse{Withdrawal: *withdrawal})
	})
}
