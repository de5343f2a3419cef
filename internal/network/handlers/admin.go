package handlers

import (
	"net/http"

	"github.com/denmor86/lucky-triple/internal/helpers"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/go-chi/chi/v5"
)

type usersResponse struct {
	Users []models.User `json:"users"`
}

type dispatchResponse struct {
	Dispatch models.SMSDispatch `json:"dispatch"`
}

type logsResponse struct {
	Logs []models.SMSDispatch `json:"logs"`
}

type statsResponse struct {
	Stats models.DashboardStats `json:"stats"`
}

// ListUsersHandler — список пользователей
func ListUsersHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := a.ListUsers(r.Context())
		if err != nil {
			responseServiceError(w, r, "list users", err)
			return
		}
		if users == nil {
			users = []models.User{}
		}
		responseJSON(w, r, http.StatusOK, usersResponse{Users: users})
	})
}

// DeleteUserHandler — удаление пользователя; себя удалить нельзя
func DeleteUserHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, err := helpers.GetUserID(r.Context())
		if err != nil {
			responseError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}
		if err := a.DeleteUser(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
			responseServiceError(w, r, "delete user", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// CreditUserHandler — начисление средств пользователю
func CreditUserHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.CreditRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		user, err := a.CreditUser(r.Context(), chi.URLParam(r, "id"), req.Amount, req.Reason)
		if err != nil {
			responseServiceError(w, r, "credit user", err)
			return
		}
		responseJSON(w, r, http.StatusOK, userResponse{User: *user})
	})
}

// StatsHandler — сводка для консоли
func StatsHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := a.GetStats(r.Context())
		if err != nil {
			responseServiceError(w, r, "stats", err)
			return
		}
		responseJSON(w, r, http.StatusOK, statsResponse{Stats: *stats})
	})
}

// SendSMSHandler — одна рассылка выбранным пользователям
func SendSMSHandler(n services.NotificationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.SMSRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		dispatch, err := n.SendToUsers(r.Context(), req.UserIDs, req.Message)
		if err != nil {
			responseServiceError(w, r, "send sms", err)
			return
		}
		responseJSON(w, r, http.StatusAccepted, dispatchResponse{Dispatch: *dispatch})
	})
}

// SendSMSToAllHandler — одна рассылка всем пользователям, без перечисления получателей
func SendSMSToAllHandler(n services.NotificationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.SMSAllRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		dispatch, err := n.SendToAll(r.Context(), req.Message)
		if err != nil {
			responseServiceError(w, r, "send sms to all", err)
			return
		}
		responseJSON(w, r, http.StatusAccepted, dispatchResponse{Dispatch: *dispatch})
	})
}

// SMSLogsHandler — журнал рассылок
func SMSLogsHandler(n services.NotificationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logs, err := n.GetLogs(r.Context())
		if err != nil {
			responseServiceError(w, r, "sms logs", err)
			return
		}
		if logs == nil {
			logs = []models.SMSDispatch{}
		}
		responseJSON(w, r, http.StatusOK, logsResponse{Logs: logs})
	})
}
