// Package session - контекст вошедшего пользователя: создаётся при входе,
// уничтожается при выходе или при ошибке аутентификации.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/ledger"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/moderation"
	"github.com/denmor86/lucky-triple/internal/settings"
	"github.com/denmor86/lucky-triple/internal/wager"
	"github.com/denmor86/lucky-triple/internal/withdrawal"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

// Kind - вариант представления, выбирается один раз на сессию
type Kind int

const (
	KindAuth Kind = iota
	KindPlayer
	KindAdmin
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindPlayer:
		return "player"
	case KindAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

var (
	ErrNoSession    = apperr.New(apperr.ErrAuth, "not logged in")
	ErrNotAdmin     = apperr.New(apperr.ErrValidation, "admin session required")
	ErrNotPlayer    = apperr.New(apperr.ErrValidation, "player session required")
	ErrMissingLogin = apperr.New(apperr.ErrValidation, "email and password are required")
)

type API interface {
	wager.API
	withdrawal.API
	moderation.API
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email string, password string) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	GetSettings(ctx context.Context) (*models.GameSettings, error)
	GetHistory(ctx context.Context) ([]models.WagerResponse, error)
	SetToken(token string)
}

// Session - всё состояние одного входа. Player-сессия несёт Wager, admin-сессия - Console.
type Session struct {
	Kind        Kind
	User        models.User
	Ledger      *ledger.View
	Settings    *settings.Cache
	Withdrawals *withdrawal.Workflow
	Wager       *wager.Session
	Console     *moderation.Console
}

// Manager - создаёт и уничтожает сессии, хранит токен
type Manager struct {
	api     API
	store   TokenStore
	timeout time.Duration

	mu      sync.Mutex
	current *Session
}

func NewManager(api API, store TokenStore, timeout time.Duration) *Manager {
	return &Manager{api: api, store: store, timeout: timeout}
}

// Signup - регистрация и сразу вход
func (m *Manager) Signup(ctx context.Context, req models.SignupRequest) (*Session, error) {
	resp, err := m.api.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	return m.start(ctx, resp.Token, resp.User)
}

func (m *Manager) Login(ctx context.Context, email string, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingLogin
	}
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.start(ctx, resp.Token, resp.User)
}

// Restore - сессия из сохранённого токена; неподходящий токен удаляется
func (m *Manager) Restore(ctx context.Context) (*Session, error) {
	token, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	m.api.SetToken(token)
	ledgerView := ledger.New()
	seq := ledgerView.Begin()
	user, err := m.api.Me(ctx)
	if err != nil {
		return nil, m.Check(err)
	}
	return m.build(ctx, ledgerView, seq, token, *user, false)
}

func (m *Manager) start(ctx context.Context, token string, user models.User) (*Session, error) {
	m.api.SetToken(token)
	ledgerView := ledger.New()
	return m.build(ctx, ledgerView, ledgerView.Begin(), token, user, true)
}

func (m *Manager) build(ctx context.Context, ledgerView *ledger.View, seq ledger.Seq, token string, user models.User, save bool) (*Session, error) {
	if _, err := ledgerView.Reconcile(seq, user.Balance); err != nil {
		return nil, err
	}
	if save {
		if err := m.store.Save(token); err != nil {
			logger.Warnw("Failed to persist credential", "error", err)
		}
	}

	s := &Session{
		Kind:        KindPlayer,
		User:        user,
		Ledger:      ledgerView,
		Settings:    settings.NewCache(m.api),
		Withdrawals: withdrawal.NewWorkflow(m.api, ledgerView),
	}
	if user.IsAdmin {
		s.Kind = KindAdmin
		s.Console = moderation.NewConsole(m.api, s.Settings)
	} else {
		s.Wager = wager.NewSession(m.api, ledgerView, m.timeout)
	}

	// без настроек игра недоступна, но сессия создаётся
	if _, err := s.Settings.Refresh(ctx); err != nil {
		if apperr.KindOf(err) == apperr.KindAuth {
			return nil, m.Check(err)
		}
		logger.Warnw("Game settings unavailable", "error", err)
	}

	m.mu.Lock()
	previous := m.current
	m.current = s
	m.mu.Unlock()
	if previous != nil {
		previous.teardown()
	}
	logger.Infow("Session started", "user", user.Email, "kind", s.Kind.String())
	return s, nil
}

// Current - активная сессия
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNoSession
	}
	return m.current, nil
}

// Kind - вариант текущего представления; без сессии KindAuth
func (m *Manager) Kind() Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return KindAuth
	}
	return m.current.Kind
}

// Logout - уничтожает сессию и удаляет токен
func (m *Manager) Logout() error {
	m.mu.Lock()
	current := m.current
	m.current = nil
	m.mu.Unlock()

	m.api.SetToken("")
	if current != nil {
		current.teardown()
	}
	return m.store.Clear()
}

// Check - при ошибке аутентификации сессия завершается; ошибка возвращается без изменений
func (m *Manager) Check(err error) error {
	if apperr.KindOf(err) != apperr.KindAuth {
		return err
	}
	logger.Warnw("Authentication failed, session closed", "error", err)
	if logoutErr := m.Logout(); logoutErr != nil {
		return errors.Join(err, logoutErr)
	}
	return err
}

// Refresh - сверка баланса и суммы ожидающих выводов с сервером
func (m *Manager) Refresh(ctx context.Context) error {
	s, err := m.Current()
	if err != nil {
		return err
	}
	seq := s.Ledger.Begin()
	user, err := m.api.Me(ctx)
	if err != nil {
		return m.Check(err)
	}
	if _, err := s.Ledger.Reconcile(seq, user.Balance); err != nil {
		return err
	}
	if s.Kind == KindPlayer {
		if _, err := s.Withdrawals.Mine(ctx); err != nil {
			return m.Check(err)
		}
	}
	return nil
}

// Admin - текущая admin-сессия
func (m *Manager) Admin() (*Session, error) {
	s, err := m.Current()
	if err != nil {
		return nil, err
	}
	if s.Kind != KindAdmin {
		return nil, ErrNotAdmin
	}
	return s, nil
}

// Player - текущая player-сессия
func (m *Manager) Player() (*Session, error) {
	s, err := m.Current()
	if err != nil {
		return nil, err
	}
	if s.Kind != KindPlayer {
		return nil, ErrNotPlayer
	}
	return s, nil
}

// Play - раунд против текущего снимка настроек
func (m *Manager) Play(ctx context.Context, guesses wager.Guesses, bet decimal.Decimal) (*models.SettlementResult, error) {
	s, err := m.Player()
	if err != nil {
		return nil, err
	}
	snapshot, err := s.Settings.Snapshot()
	if err != nil {
		if snapshot, err = s.Settings.Refresh(ctx); err != nil {
			return nil, m.Check(err)
		}
	}
	result, err := s.Wager.Submit(ctx, guesses, bet, snapshot)
	if err != nil {
		// устаревшие настройки: подтянуть новый снимок для следующей попытки
		if apperr.KindOf(err) == apperr.KindConflict {
			if _, refreshErr := s.Settings.Refresh(ctx); refreshErr != nil {
				logger.Warnw("Failed to refresh settings after conflict", "error", refreshErr)
			}
		}
		return nil, m.Check(err)
	}
	return result, nil
}

// Recover - повтор последнего неудавшегося раунда с тем же ключом
func (m *Manager) Recover(ctx context.Context) (*models.SettlementResult, error) {
	s, err := m.Player()
	if err != nil {
		return nil, err
	}
	result, err := s.Wager.Recover(ctx)
	if err != nil {
		return nil, m.Check(err)
	}
	if result.Replayed {
		if err := m.Refresh(ctx); err != nil {
			return result, err
		}
	}
	return result, nil
}

// History - последние раунды игрока
func (m *Manager) History(ctx context.Context) ([]models.WagerResponse, error) {
	if _, err := m.Player(); err != nil {
		return nil, err
	}
	history, err := m.api.GetHistory(ctx)
	if err != nil {
		return nil, m.Check(err)
	}
	return history, nil
}

func (s *Session) teardown() {
	if s.Wager != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := s.Wager.Abandon(ctx); err != nil {
			logger.Warnw("In-flight round did not finish on logout", "error", err)
		}
	}
	s.Ledger.Reset()
	s.Settings.Clear()
}
