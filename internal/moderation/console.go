// Package moderation - панель администратора: пользователи, рассылки, настройки игры.
package moderation

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/settings"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks

// Mode - кому отправляется рассылка; режимы взаимоисключающие
type Mode int

const (
	ModeSelected Mode = iota
	ModeAll
)

func (m Mode) String() string {
	switch m {
	case ModeSelected:
		return "selected"
	case ModeAll:
		return "all"
	default:
		return "unknown"
	}
}

// MaxMessageLength - ограничение длины текста рассылки
const MaxMessageLength = 480

var (
	ErrEmptyMessage     = apperr.New(apperr.ErrValidation, "message must not be empty")
	ErrMessageTooLong   = apperr.New(apperr.ErrValidation, "message is longer than %d characters", MaxMessageLength)
	ErrEmptySelection   = apperr.New(apperr.ErrValidation, "no users selected")
	ErrSelectionRemoved = apperr.New(apperr.ErrValidation, "all selected users have been removed")
	ErrUnknownMode      = apperr.New(apperr.ErrValidation, "unknown dispatch mode")
)

type API interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID string) error
	CreditUser(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*models.User, error)
	UpdateSettings(ctx context.Context, settings models.GameSettings) (*models.GameSettings, error)
	SendSMS(ctx context.Context, userIDs []string, message string) (*models.SMSDispatch, error)
	SendSMSToAll(ctx context.Context, message string) (*models.SMSDispatch, error)
	GetSMSLogs(ctx context.Context) ([]models.SMSDispatch, error)
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

// Console - состояние панели администратора
type Console struct {
	api      API
	settings *settings.Cache

	Selection *Selection

	mu    sync.RWMutex
	users []models.User
	logs  []models.SMSDispatch
}

func NewConsole(api API, cache *settings.Cache) *Console {
	return &Console{
		api:       api,
		settings:  cache,
		Selection: NewSelection(),
	}
}

// Load - параллельно загружает пользователей и журнал рассылок
func (c *Console) Load(ctx context.Context) error {
	var users []models.User
	var logs []models.SMSDispatch

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = c.api.ListUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = c.api.GetSMSLogs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	c.users = users
	c.logs = logs
	c.mu.Unlock()
	c.Selection.Retain(users)
	return nil
}

func (c *Console) Users() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.users)
}

func (c *Console) Logs() []models.SMSDispatch {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.logs)
}

// Send - одна рассылка на одно действие, независимо от числа получателей.
// Для ModeSelected отметки сначала сверяются со свежим списком пользователей.
func (c *Console) Send(ctx context.Context, mode Mode, message string) (*models.SMSDispatch, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if len([]rune(message)) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	var dispatch *models.SMSDispatch
	var err error
	switch mode {
	case ModeAll:
		dispatch, err = c.api.SendSMSToAll(ctx, message)
	case ModeSelected:
		if c.Selection.Len() == 0 {
			return nil, ErrEmptySelection
		}
		users, listErr := c.api.ListUsers(ctx)
		if listErr != nil {
			return nil, listErr
		}
		c.mu.Lock()
		c.users = users
		c.mu.Unlock()

		ids, dropped := c.Selection.Retain(users)
		if len(dropped) > 0 {
			logger.Warnw("Removed users dropped from selection", "dropped", dropped)
		}
		if len(ids) == 0 {
			return nil, ErrSelectionRemoved
		}
		dispatch, err = c.api.SendSMS(ctx, ids, message)
	default:
		return nil, ErrUnknownMode
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.logs = append([]models.SMSDispatch{*dispatch}, c.logs...)
	c.mu.Unlock()
	logger.Infow("SMS dispatch created", "id", dispatch.ID, "mode", mode.String(), "recipients", len(dispatch.Phones))
	return dispatch, nil
}

// UpdateSettings - отправляет настройки целиком и подменяет снимок принятой версией
func (c *Console) UpdateSettings(ctx context.Context, next models.GameSettings) (*models.GameSettings, error) {
	if err := next.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.ErrValidation, "update settings", err)
	}
	accepted, err := c.api.UpdateSettings(ctx, next)
	if err != nil {
		return nil, err
	}
	if c.settings != nil {
		c.settings.Replace(*accepted)
	}
	return accepted, nil
}

// Credit - ручное начисление средств пользователю
func (c *Console) Credit(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*models.User, error) {
	if !amount.IsPositive() {
		return nil, apperr.New(apperr.ErrValidation, "credit amount must be positive, got %s", amount)
	}
	user, err := c.api.CreditUser(ctx, userID, amount, reason)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	for i := range c.users {
		if c.users[i].ID == user.ID {
			c.users[i] = *user
		}
	}
	c.mu.Unlock()
	return user, nil
}

// Delete - удаление пользователя; отметка снимается сразу
func (c *Console) Delete(ctx context.Context, userID string) error {
	if err := c.api.DeleteUser(ctx, userID); err != nil {
		return err
	}
	c.Selection.Deselect(userID)
	c.mu.Lock()
	c.users = slices.DeleteFunc(c.users, func(u models.User) bool { return u.ID == userID })
	c.mu.Unlock()
	return nil
}

func (c *Console) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return c.api.GetStats(ctx)
}
