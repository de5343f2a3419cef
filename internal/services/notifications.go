package services

import (
	"context"
	"errors"

	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notifications.go -destination=mocks/mock_notifications.go -package=mocks

var (
	ErrNoRecipients = errors.New("no active recipients")
	ErrEmptyMessage = errors.New("message must not be empty")
)

const SMSLogLimit = 100

type NotificationService interface {
	SendToUsers(ctx context.Context, userIDs []string, message string) (*models.SMSDispatch, error)
	SendToAll(ctx context.Context, message string) (*models.SMSDispatch, error)
	GetLogs(ctx context.Context) ([]models.SMSDispatch, error)
}

type Notifications struct {
	Users storage.UsersStorage
	SMS   storage.SMSStorage
}

// Создание сервиса
func NewNotifications(users storage.UsersStorage, sms storage.SMSStorage) NotificationService {
	return &Notifications{Users: users, SMS: sms}
}

// SendToUsers - одна рассылка на выбранных активных пользователей
func (n *Notifications) SendToUsers(ctx context.Context, userIDs []string, message string) (*models.SMSDispatch, error) {
	if len(userIDs) == 0 {
		return nil, ErrNoRecipients
	}
	return n.dispatch(ctx, userIDs, message)
}

// SendToAll - одна рассылка на всех активных пользователей
func (n *Notifications) SendToAll(ctx context.Context, message string) (*models.SMSDispatch, error) {
	return n.dispatch(ctx, nil, message)
}

func (n *Notifications) dispatch(ctx context.Context, userIDs []string, message string) (*models.SMSDispatch, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	phones, err := n.Users.GetPhones(ctx, userIDs)
	if err != nil {
		logger.Error("Failed to get phones", zap.Error(err))
		return nil, err
	}
	phones = models.UniquePhones(phones)
	if len(phones) == 0 {
		return nil, ErrNoRecipients
	}

	d, err := n.SMS.AddDispatch(ctx, phones, message)
	if err != nil {
		logger.Error("Failed to add dispatch", zap.Error(err))
		return nil, err
	}
	logger.Infow("SMS dispatch queued", "id", d.ID, "recipients", len(phones))
	return d, nil
}

func (n *Notifications) GetLogs(ctx context.Context) ([]models.SMSDispatch, error) {
	logs, err := n.SMS.GetDispatches(ctx, SMSLogLimit)
	if err != nil {
		logger.Error("Failed to get dispatches", zap.Error(err))
		return nil, err
	}
	return logs, nil
}
