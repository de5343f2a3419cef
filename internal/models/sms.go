package models

import "time"

// Статусы рассылок SMS
const (
	SMSQueued = "queued"
	SMSSent   = "sent"
	SMSFailed = "failed"
)

// SMSRequest - рассылка выбранным пользователям
type SMSRequest struct {
	UserIDs []string `json:"userIds" validate:"required,min=1,dive,required"`
	Message string   `json:"message" validate:"required,max=480"`
}

// SMSAllRequest - рассылка всем пользователям
type SMSAllRequest struct {
	Message string `json:"message" validate:"required,max=480"`
}

// SMSDispatch - одна запись на одно действие администратора, не на получателя
type SMSDispatch struct {
	ID        string    `json:"id"`
	Phones    []string  `json:"phones"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UniquePhones - убирает повторы и пустые номера с сохранением порядка
func UniquePhones(phones []string) []string {
	seen := make(map[string]struct{}, len(phones))
	result := make([]string, 0, len(phones))
	for _, p := range phones {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}
