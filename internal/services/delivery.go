package services

import (
	"context"
	"errors"
	"strings"

	"github.com/denmor86/lucky-triple/internal/client"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage"
	"go.uber.org/zap"
)

//go:generate mockgen -source=delivery.go -destination=mocks/mock_delivery.go -package=mocks

// Sender - транспорт SMS; одна отправка на всю рассылку
type Sender interface {
	Send(ctx context.Context, phones []string, message string) error
}

type DeliveryService interface {
	GetQueued(ctx context.Context, count int) ([]models.SMSDispatch, error)
	Deliver(ctx context.Context, dispatch models.SMSDispatch) error
}

type Delivery struct {
	SMS         storage.SMSStorage
	Sender      Sender
	Limiter     *client.RateLimiter
	MaxAttempts int
}

// ErrGatewayPaused - шлюз попросил подождать (Retry-After)
var ErrGatewayPaused = errors.New("sms gateway paused")

// Создание сервиса
func NewDelivery(sms storage.SMSStorage, sender Sender, maxAttempts int) DeliveryService {
	return &Delivery{SMS: sms, Sender: sender, Limiter: client.NewRateLimiter(), MaxAttempts: maxAttempts}
}

// GetQueued - захват пачки рассылок; попытка засчитывается при захвате
func (d *Delivery) GetQueued(ctx context.Context, count int) ([]models.SMSDispatch, error) {
	return d.SMS.ClaimDispatches(ctx, count, d.MaxAttempts)
}

// Deliver - отправка одной рассылки и запись результата.
// Ошибка транспорта возвращается, чтобы её учёл circuit breaker.
func (d *Delivery) Deliver(ctx context.Context, dispatch models.SMSDispatch) error {
	if err := d.Limiter.Wait(ctx); err != nil {
		logger.Debug("SMS gateway paused, dispatch requeued: ", dispatch.ID)
		d.release(ctx, dispatch.ID, ErrGatewayPaused.Error())
		return nil
	}

	err := d.Sender.Send(ctx, dispatch.Phones, dispatch.Message)
	if err == nil {
		logger.Infow("SMS dispatch sent", "id", dispatch.ID, "recipients", len(dispatch.Phones))
		return d.SMS.UpdateDispatch(ctx, dispatch.ID, models.SMSSent, "")
	}

	// проверка большого количества запросов
	var rateLimitErr *client.RateLimitError
	if errors.As(err, &rateLimitErr) {
		logger.Warn("Too many requests to SMS gateway:", dispatch.ID)
		d.Limiter.BlockFor(rateLimitErr.RetryAfter)
		d.release(ctx, dispatch.ID, err.Error())
		return nil
	}

	status := models.SMSQueued
	if dispatch.Attempts >= d.MaxAttempts {
		status = models.SMSFailed
	}
	logger.Warnw("SMS dispatch failed", "id", dispatch.ID, "attempt", dispatch.Attempts, "status", status, "error", err)
	if updErr := d.SMS.UpdateDispatch(ctx, dispatch.ID, status, err.Error()); updErr != nil {
		logger.Error("Failed to update dispatch", zap.Error(updErr))
	}
	return err
}

// release - отказ шлюза по лимиту не считается попыткой доставки
func (d *Delivery) release(ctx context.Context, id string, reason string) {
	if err := d.SMS.ReleaseDispatch(ctx, id, reason); err != nil {
		logger.Error("Failed to requeue dispatch", zap.Error(err))
	}
}

// LogSender - отправка в журнал, когда шлюз не настроен
type LogSender struct{}

func (LogSender) Send(_ context.Context, phones []string, message string) error {
	logger.Infow("SMS", "to", strings.Join(phones, ","), "message", message)
	return nil
}
