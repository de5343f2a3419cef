package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы запросов на вывод
const (
	WithdrawalPending  = "pending"
	WithdrawalApproved = "approved"
	WithdrawalRejected = "rejected"
)

// WithdrawalRequest - модель запроса вывода средств
type WithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// RejectRequest - причина отклонения вывода
type RejectRequest struct {
	Reason string `json:"reason" validate:"max=255"`
}

// Withdrawal - запрос на вывод средств
type Withdrawal struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	ResolvedAt *time.Time      `json:"resolvedAt,omitempty"`
}

// IsPending - запрос ещё ожидает решения администратора
func (w Withdrawal) IsPending() bool {
	return w.Status == WithdrawalPending
}

// MyWithdrawals - список запросов пользователя и сумма ожидающих
type MyWithdrawals struct {
	Withdrawals  []Withdrawal    `json:"withdrawals"`
	PendingTotal decimal.Decimal `json:"pendingTotal"`
}
