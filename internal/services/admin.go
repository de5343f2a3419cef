package services

import (
	"context"
	"errors"

	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/denmor86/lucky-triple/internal/validators"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=admin.go -destination=mocks/mock_admin.go -package=mocks

var (
	ErrInvalidCreditAmount = errors.New("invalid credit amount")
	ErrDeleteSelf          = errors.New("administrator cannot delete own account")
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, actorID string, userID string) error
	CreditUser(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*models.User, error)
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type Admin struct {
	Users storage.UsersStorage
	Stats storage.StatsStorage
}

// Создание сервиса
func NewAdmin(users storage.UsersStorage, stats storage.StatsStorage) AdminService {
	return &Admin{Users: users, Stats: stats}
}

func (a *Admin) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.Users.ListUsers(ctx)
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	result := make([]models.User, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}
	return result, nil
}

// DeleteUser - мягкое удаление; пользователь пропадает из списков и рассылок
func (a *Admin) DeleteUser(ctx context.Context, actorID string, userID string) error {
	if actorID == userID {
		return ErrDeleteSelf
	}
	if err := a.Users.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Error("Failed to delete user", zap.Error(err))
		}
		return err
	}
	logger.Infow("User deleted", "user", userID, "by", actorID)
	return nil
}

func (a *Admin) CreditUser(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*models.User, error) {
	if !validators.CheckAmount(amount) {
		return nil, ErrInvalidCreditAmount
	}
	user, err := a.Users.CreditUser(ctx, userID, amount, reason)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Error("Failed to credit user", zap.Error(err))
		}
		return nil, err
	}
	logger.Infow("User credited", "user", userID, "amount", amount.String())
	public := user.Public()
	return &public, nil
}

func (a *Admin) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := a.Stats.GetStats(ctx)
	if err != nil {
		logger.Error("Failed to get stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
