package services

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/denmor86/lucky-triple/internal/cache"
	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=game.go -destination=mocks/mock_game.go -package=mocks

var (
	ErrInvalidRoundKey = errors.New("invalid round key")
	ErrStaleSettings   = errors.New("game settings changed, refresh and retry")
	ErrBetOutOfRange   = errors.New("bet is outside of allowed range")
	ErrInvalidGuesses  = errors.New("guesses must be three digits 0-9")
	ErrRateLimited     = errors.New("too many bets, slow down")
)

const (
	ActionPlay   = "play"
	HistoryLimit = 50
)

// DrawFunc - источник выигрышных цифр
type DrawFunc func() ([]int, error)

type GameService interface {
	GetSettings(ctx context.Context) (*models.GameSettings, error)
	UpdateSettings(ctx context.Context, settings models.GameSettings) (*models.GameSettings, error)
	Play(ctx context.Context, userID string, roundKey string, req models.PlayRequest) (*models.SettlementResult, error)
	GetHistory(ctx context.Context, userID string) ([]models.WagerResponse, error)
}

type Game struct {
	Settings      storage.SettingsStorage
	Wagers        storage.WagersStorage
	Cache         cache.Cache
	SettingsTTL   time.Duration
	BetRateLimit  int
	BetRateWindow time.Duration
	Draw          DrawFunc
}

// Создание сервиса
func NewGame(cfg config.Config, settings storage.SettingsStorage, wagers storage.WagersStorage, cache cache.Cache) GameService {
	return &Game{
		Settings:      settings,
		Wagers:        wagers,
		Cache:         cache,
		SettingsTTL:   cfg.Cache.SettingsTTL,
		BetRateLimit:  cfg.Cache.BetRateLimit,
		BetRateWindow: cfg.Cache.BetRateWindow,
		Draw:          DrawNumbers,
	}
}

// DrawNumbers - три независимые цифры из криптографического источника
func DrawNumbers() ([]int, error) {
	numbers := make([]int, 0, models.GuessCount)
	for i := 0; i < models.GuessCount; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, int(n.Int64()))
	}
	return numbers, nil
}

// CountMatches - совпадения по позициям
func CountMatches(guesses []int, winning []int) int {
	matches := 0
	for i := range guesses {
		if i < len(winning) && guesses[i] == winning[i] {
			matches++
		}
	}
	return matches
}

// Settle - расчёт раунда: выплата bet×multiplier, комиссия с выплаты, прибыль относительно ставки
func Settle(settings models.GameSettings, bet decimal.Decimal, guesses []int, winning []int, balance decimal.Decimal) models.WagerData {
	matches := CountMatches(guesses, winning)
	payout := bet.Mul(settings.PayoutMultipliers.ForTier(matches))
	fee := payout.Mul(settings.HouseFee).Div(decimal.NewFromInt(100)).Round(2)
	profit := payout.Sub(fee).Sub(bet)
	return models.WagerData{
		Bet:            bet,
		Guesses:        guesses,
		WinningNumbers: winning,
		Matches:        matches,
		Payout:         payout,
		Fee:            fee,
		Profit:         profit,
		BalanceAfter:   balance.Add(profit),
	}
}

// GetSettings - снимок из кэша, при промахе из базы
func (g *Game) GetSettings(ctx context.Context) (*models.GameSettings, error) {
	settings, err := g.Cache.GetSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Warnw("Settings cache unavailable", zap.Error(err))
	}

	settings, err = g.Settings.GetSettings(ctx)
	if err != nil {
		logger.Error("Failed to get game settings", zap.Error(err))
		return nil, err
	}
	if err := g.Cache.SetSettings(ctx, *settings, g.SettingsTTL); err != nil {
		logger.Warnw("Failed to cache settings", zap.Error(err))
	}
	return settings, nil
}

// UpdateSettings - сохраняет настройки целиком с новой версией и сбрасывает кэш
func (g *Game) UpdateSettings(ctx context.Context, settings models.GameSettings) (*models.GameSettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	updated, err := g.Settings.UpdateSettings(ctx, settings)
	if err != nil {
		logger.Error("Failed to update game settings", zap.Error(err))
		return nil, err
	}
	if err := g.Cache.InvalidateSettings(ctx); err != nil {
		logger.Warnw("Failed to invalidate settings cache", zap.Error(err))
	}
	logger.Infow("Game settings updated", "version", updated.Version)
	return updated, nil
}

// Play - ставка с ключом раунда. Повтор ключа возвращает записанный результат
// без повторного расчёта и без проверки версии настроек.
func (g *Game) Play(ctx context.Context, userID string, roundKey string, req models.PlayRequest) (*models.SettlementResult, error) {
	if _, err := uuid.Parse(roundKey); err != nil {
		return nil, ErrInvalidRoundKey
	}
	if len(req.Guesses) != models.GuessCount {
		return nil, ErrInvalidGuesses
	}
	for _, d := range req.Guesses {
		if d < 0 || d > 9 {
			return nil, ErrInvalidGuesses
		}
	}

	if g.BetRateLimit > 0 {
		allowed, err := g.Cache.Allow(ctx, userID, ActionPlay, g.BetRateLimit, g.BetRateWindow)
		if err != nil {
			logger.Warnw("Rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			return nil, ErrRateLimited
		}
	}

	settings, err := g.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settle := func(balance decimal.Decimal) (models.WagerData, error) {
		if req.SettingsVersion != settings.Version {
			return models.WagerData{}, ErrStaleSettings
		}
		if req.Bet.LessThan(settings.MinBet) || req.Bet.GreaterThan(settings.MaxBet) {
			return models.WagerData{}, ErrBetOutOfRange
		}
		if req.Bet.GreaterThan(balance) {
			return models.WagerData{}, storage.ErrInsufficientFunds
		}
		winning, err := g.Draw()
		if err != nil {
			return models.WagerData{}, err
		}
		return Settle(*settings, req.Bet, req.Guesses, winning, balance), nil
	}

	wager, replayed, err := g.Wagers.PlaceWager(ctx, userID, roundKey, settle)
	if err != nil {
		if !errors.Is(err, ErrStaleSettings) && !errors.Is(err, ErrBetOutOfRange) && !errors.Is(err, storage.ErrInsufficientFunds) {
			logger.Error("Failed to place wager", zap.Error(err))
		}
		return nil, err
	}

	result := wager.Settlement()
	result.Replayed = replayed
	logger.Infow("Wager settled",
		"user", userID,
		"round", roundKey,
		"matches", result.Matches,
		"replayed", replayed,
	)
	return &result, nil
}

func (g *Game) GetHistory(ctx context.Context, userID string) ([]models.WagerResponse, error) {
	wagers, err := g.Wagers.GetWagers(ctx, userID, HistoryLimit)
	if err != nil {
		logger.Error("Failed to get wagers", zap.Error(err))
		return nil, err
	}
	history := make([]models.WagerResponse, 0, len(wagers))
	for _, w := range wagers {
		history = append(history, models.WagerResponse{
			ID:             w.ID,
			Bet:            w.Bet,
			Guesses:        w.Guesses,
			WinningNumbers: w.WinningNumbers,
			Matches:        w.Matches,
			Profit:         w.Profit,
			CreatedAt:      w.CreatedAt,
		})
	}
	return history, nil
}
