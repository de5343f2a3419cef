// Package wager - жизненный цикл раунда: ввод, проверка, отправка, сверка баланса.
package wager

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/ledger"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

var (
	ErrRoundInFlight    = apperr.New(apperr.ErrValidation, "a wager round is already in flight")
	ErrNothingToRecover = apperr.New(apperr.ErrValidation, "no failed round to recover")
	ErrPlayDisabled     = apperr.New(apperr.ErrValidation, "play is disabled until the balance is reconciled")
)

type API interface {
	PlayGame(ctx context.Context, roundKey string, req models.PlayRequest) (*models.SettlementResult, error)
}

// Session - раунды одного пользователя; в полёте не более одного
type Session struct {
	api     API
	ledger  *ledger.View
	timeout time.Duration

	// OnCelebrate вызывается при двух и более совпадениях
	OnCelebrate func(models.SettlementResult)

	mu     sync.Mutex
	round  *Round
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSession(api API, view *ledger.View, timeout time.Duration) *Session {
	return &Session{
		api:     api,
		ledger:  view,
		timeout: timeout,
	}
}

// Submit - проверяет и отправляет новый раунд против снимка настроек,
// который видел пользователь. При нарушении условий запрос не отправляется.
func (s *Session) Submit(ctx context.Context, guesses Guesses, bet decimal.Decimal, settings models.GameSettings) (*models.SettlementResult, error) {
	s.mu.Lock()
	if s.inFlight() {
		s.mu.Unlock()
		return nil, ErrRoundInFlight
	}
	balance, err := s.ledger.Balance()
	if err != nil {
		s.mu.Unlock()
		return nil, ErrPlayDisabled
	}
	if err := Validate(guesses, bet, settings, balance); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	round := &Round{
		Key:      uuid.New().String(),
		Guesses:  guesses,
		Bet:      bet,
		Settings: settings,
		Status:   StatusComposing,
	}
	s.round = round
	return s.send(ctx, round)
}

// Recover - повторно отправляет неудавшийся раунд с тем же ключом,
// чтобы узнать его исход; сервер вернёт сохранённый результат, если ставка прошла.
// Баланс из повтора не применяется, его нужно перечитать.
func (s *Session) Recover(ctx context.Context) (*models.SettlementResult, error) {
	s.mu.Lock()
	if s.inFlight() {
		s.mu.Unlock()
		return nil, ErrRoundInFlight
	}
	if s.round == nil || s.round.Status != StatusFailed {
		s.mu.Unlock()
		return nil, ErrNothingToRecover
	}
	return s.send(ctx, s.round)
}

// send - вызывается под s.mu, снимает блокировку на время запроса
func (s *Session) send(ctx context.Context, round *Round) (*models.SettlementResult, error) {
	digits, err := round.Guesses.Digits()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	req := models.PlayRequest{
		Bet:             round.Bet,
		Guesses:         digits,
		SettingsVersion: round.Settings.Version,
	}

	if s.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, s.timeout)
		defer cancelTimeout()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	round.Status = StatusSubmitted
	round.Err = nil
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	seq := s.ledger.Begin()
	s.mu.Unlock()

	logger.Infow("Wager submitted", "round", round.Key, "bet", round.Bet.String())
	result, err := s.api.PlayGame(ctx, round.Key, req)

	// колбэк вызывается уже без блокировки
	var celebrate *models.SettlementResult
	defer func() {
		if celebrate != nil && s.OnCelebrate != nil {
			s.OnCelebrate(*celebrate)
		}
	}()

	s.mu.Lock()
	defer func() {
		s.cancel = nil
		close(done)
		s.mu.Unlock()
	}()

	if err != nil {
		if apperr.KindOf(err) == apperr.KindUnknown {
			err = apperr.Wrap(apperr.ErrTransient, "play", err)
		}
		round.Status = StatusFailed
		round.Err = err
		logger.Warnw("Wager failed", "round", round.Key, "error", err)
		return nil, err
	}

	// баланс повтора относится к моменту ставки и не сверяется по новому номеру
	if result.Replayed {
		logger.Infow("Wager replayed, balance left for refresh", "round", round.Key)
	} else if _, err := s.ledger.Reconcile(seq, result.NewBalance); err != nil {
		round.Status = StatusFailed
		round.Err = err
		logger.Errorw("Wager settlement rejected", "round", round.Key, "error", err)
		return nil, err
	}
	round.Status = StatusSettled
	round.Result = result
	logger.Infow("Wager settled",
		"round", round.Key,
		"matches", result.Matches,
		"profit", result.Profit.String(),
		"balance", result.NewBalance.String(),
	)

	if Celebrate(*result) {
		celebrate = result
	}
	return result, nil
}

func (s *Session) inFlight() bool {
	return s.round != nil && s.round.Status == StatusSubmitted
}

// Current - копия последнего раунда
func (s *Session) Current() (Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round == nil {
		return Round{}, false
	}
	return *s.round, true
}

// Reset - начать новый ввод после завершённого раунда
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight() {
		return ErrRoundInFlight
	}
	s.round = nil
	return nil
}

// Abandon - уход из представления: отменяет запрос в полёте и ждёт его завершения.
// Раунд заканчивается в Failed, а не остаётся в Submitted.
func (s *Session) Abandon(ctx context.Context) error {
	s.mu.Lock()
	if !s.inFlight() {
		s.mu.Unlock()
		return nil
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Join(apperr.ErrTransient, ctx.Err())
	}
}
