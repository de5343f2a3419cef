package storage

import (
	"context"
	"errors"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

type UsersStorage interface {
	AddUser(ctx context.Context, user models.UserData) (*models.UserData, error)
	GetUser(ctx context.Context, userID string) (*models.UserData, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserData, error)
	ListUsers(ctx context.Context) ([]models.UserData, error)
	DeleteUser(ctx context.Context, userID string) error
	CreditUser(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*models.UserData, error)
	GetPhones(ctx context.Context, userIDs []string) ([]string, error)
}

type SettingsStorage interface {
	GetSettings(ctx context.Context) (*models.GameSettings, error)
	UpdateSettings(ctx context.Context, settings models.GameSettings) (*models.GameSettings, error)
}

// SettleFunc - вычисляет исход ставки по заблокированному балансу пользователя
type SettleFunc func(balance decimal.Decimal) (models.WagerData, error)

type WagersStorage interface {
	PlaceWager(ctx context.Context, userID string, roundKey string, settle SettleFunc) (*models.WagerData, bool, error)
	GetWagers(ctx context.Context, userID string, limit int) ([]models.WagerData, error)
}

// NotifyFunc - текст уведомления пользователю о решении по выводу
type NotifyFunc func(w models.Withdrawal) string

type WithdrawalsStorage interface {
	AddWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) (*models.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID string) ([]models.Withdrawal, error)
	ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ResolveWithdrawal(ctx context.Context, id string, status string, reason string, notify NotifyFunc) (*models.Withdrawal, error)
}

type SMSStorage interface {
	AddDispatch(ctx context.Context, phones []string, message string) (*models.SMSDispatch, error)
	GetDispatches(ctx context.Context, limit int) ([]models.SMSDispatch, error)
	ClaimDispatches(ctx context.Context, count int, maxAttempts int) ([]models.SMSDispatch, error)
	UpdateDispatch(ctx context.Context, id string, status string, lastError string) error
	ReleaseDispatch(ctx context.Context, id string, lastError string) error
}

type StatsStorage interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type Storage struct {
	Users       UsersStorage
	Settings    SettingsStorage
	Wagers      WagersStorage
	Withdrawals WithdrawalsStorage
	SMS         SMSStorage
	Stats       StatsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:       NewUsersStorage(db),
		Settings:    NewSettingsStorage(db),
		Wagers:      NewWagersStorage(db),
		Withdrawals: NewWithdrawalsStorage(db),
		SMS:         NewSMSStorage(db),
		Stats:       NewStatsStorage(db),
	}
}

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrConflict          = errors.New("already resolved")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// код нарушения уникальности в PostgreSQL
const uniqueViolation = "23505"
