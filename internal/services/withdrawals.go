package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/denmor86/lucky-triple/internal/validators"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=withdrawals.go -destination=mocks/mock_withdrawals.go -package=mocks

var (
	ErrInvalidWithdrawalAmount = errors.New("invalid withdrawal amount")
)

type WithdrawalService interface {
	Request(ctx context.Context, userID string, amount decimal.Decimal) (*models.Withdrawal, error)
	Mine(ctx context.Context, userID string) (*models.MyWithdrawals, error)
	List(ctx context.Context) ([]models.Withdrawal, error)
	Approve(ctx context.Context, id string) (*models.Withdrawal, error)
	Reject(ctx context.Context, id string, reason string) (*models.Withdrawal, error)
}

type Withdrawals struct {
	Storage storage.WithdrawalsStorage
}

// Создание сервиса
func NewWithdrawals(storage storage.WithdrawalsStorage) WithdrawalService {
	return &Withdrawals{Storage: storage}
}

// NotifyMessage - текст SMS о решении по выводу
func NotifyMessage(w models.Withdrawal) string {
	switch w.Status {
	case models.WithdrawalApproved:
		return fmt.Sprintf("Lucky Triple: your withdrawal of %s has been approved.", w.Amount.StringFixed(2))
	case models.WithdrawalRejected:
		if w.Reason != "" {
			return fmt.Sprintf("Lucky Triple: your withdrawal of %s has been rejected: %s", w.Amount.StringFixed(2), w.Reason)
		}
		return fmt.Sprintf("Lucky Triple: your withdrawal of %s has been rejected.", w.Amount.StringFixed(2))
	default:
		return fmt.Sprintf("Lucky Triple: your withdrawal of %s is %s.", w.Amount.StringFixed(2), w.Status)
	}
}

// Request - создаёт запрос в статусе pending; баланс списывается только при одобрении
func (s *Withdrawals) Request(ctx context.Context, userID string, amount decimal.Decimal) (*models.Withdrawal, error) {
	if !validators.CheckAmount(amount) {
		return nil, ErrInvalidWithdrawalAmount
	}
	w, err := s.Storage.AddWithdrawal(ctx, userID, amount)
	if err != nil {
		if !errors.Is(err, storage.ErrInsufficientFunds) {
			logger.Error("Failed to add withdrawal", zap.Error(err))
		}
		return nil, err
	}
	logger.Infow("Withdrawal requested", "id", w.ID, "user", userID, "amount", amount.String())
	return w, nil
}

// Mine - запросы пользователя и сумма ожидающих решения
func (s *Withdrawals) Mine(ctx context.Context, userID string) (*models.MyWithdrawals, error) {
	withdrawals, err := s.Storage.GetWithdrawals(ctx, userID)
	if err != nil {
		logger.Error("Failed to get withdrawals:", zap.Error(err))
		return nil, err
	}
	pending := decimal.Zero
	for _, w := range withdrawals {
		if w.IsPending() {
			pending = pending.Add(w.Amount)
		}
	}
	return &models.MyWithdrawals{Withdrawals: withdrawals, PendingTotal: pending}, nil
}

func (s *Withdrawals) List(ctx context.Context) ([]models.Withdrawal, error) {
	withdrawals, err := s.Storage.ListWithdrawals(ctx)
	if err != nil {
		logger.Error("Failed to list withdrawals:", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// Approve - одобрение только из pending; повторное решение даёт storage.ErrConflict
func (s *Withdrawals) Approve(ctx context.Context, id string) (*models.Withdrawal, error) {
	return s.resolve(ctx, id, models.WithdrawalApproved, "")
}

func (s *Withdrawals) Reject(ctx context.Context, id string, reason string) (*models.Withdrawal, error) {
	return s.resolve(ctx, id, models.WithdrawalRejected, reason)
}

func (s *Withdrawals) resolve(ctx context.Context, id string, status string, reason string) (*models.Withdrawal, error) {
	w, err := s.Storage.ResolveWithdrawal(ctx, id, status, reason, NotifyMessage)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			logger.Warn("Withdrawal already resolved", id)
		case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrInsufficientFunds):
			logger.Warn("Withdrawal not resolved", id, err)
		default:
			logger.Error("Failed to resolve withdrawal", zap.Error(err))
		}
		return nil, err
	}
	logger.Infow("Withdrawal resolved", "id", id, "status", status)
	return w, nil
}
