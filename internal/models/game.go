package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Количество угадываемых цифр в раунде
const GuessCount = 3

var (
	ErrInvalidBetBounds  = errors.New("minBet must be positive and not greater than maxBet")
	ErrInvalidMultiplier = errors.New("payout multipliers must be non-negative")
	ErrInvalidHouseFee   = errors.New("houseFee must be within [0, 100]")
)

// PayoutMultipliers - множители выплат по количеству совпадений
type PayoutMultipliers struct {
	ThreeMatches decimal.Decimal `json:"threeMatches"`
	TwoMatches   decimal.Decimal `json:"twoMatches"`
	OneMatch     decimal.Decimal `json:"oneMatch"`
	NoMatch      decimal.Decimal `json:"noMatch"`
}

// ForTier - множитель для количества совпадений
func (p PayoutMultipliers) ForTier(matches int) decimal.Decimal {
	switch matches {
	case 3:
		return p.ThreeMatches
	case 2:
		return p.TwoMatches
	case 1:
		return p.OneMatch
	default:
		return p.NoMatch
	}
}

// GameSettings - снимок настроек игры. Заменяется целиком, по полям не изменяется.
type GameSettings struct {
	Version           int64             `json:"version"`
	MinBet            decimal.Decimal   `json:"minBet"`
	MaxBet            decimal.Decimal   `json:"maxBet"`
	HouseFee          decimal.Decimal   `json:"houseFee"`
	PayoutMultipliers PayoutMultipliers `json:"payoutMultipliers"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// Validate - проверка согласованности настроек
func (s GameSettings) Validate() error {
	if !s.MinBet.IsPositive() || s.MinBet.GreaterThan(s.MaxBet) {
		return ErrInvalidBetBounds
	}
	if s.HouseFee.IsNegative() || s.HouseFee.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidHouseFee
	}
	for tier := 0; tier <= GuessCount; tier++ {
		if s.PayoutMultipliers.ForTier(tier).IsNegative() {
			return ErrInvalidMultiplier
		}
	}
	return nil
}

// MaxAllowedBet - верхняя граница ставки с учётом баланса
func (s GameSettings) MaxAllowedBet(balance decimal.Decimal) decimal.Decimal {
	return decimal.Min(s.MaxBet, balance)
}

// PlayRequest - запрос на ставку
type PlayRequest struct {
	Bet             decimal.Decimal `json:"bet"`
	Guesses         []int           `json:"guesses" validate:"len=3,dive,min=0,max=9"`
	SettingsVersion int64           `json:"settingsVersion"`
}

// SettlementResult - результат раунда, вычисленный авторитетной стороной
type SettlementResult struct {
	RoundKey       string          `json:"roundKey"`
	WinningNumbers []int           `json:"winningNumbers"`
	Matches        int             `json:"matches"`
	Profit         decimal.Decimal `json:"profit"`
	NewBalance     decimal.Decimal `json:"newBalance"`
	Replayed       bool            `json:"replayed,omitempty"`
}

// WagerData - модель хранения ставки
type WagerData struct {
	ID             string
	UserID         string
	RoundKey       string
	Bet            decimal.Decimal
	Guesses        []int
	WinningNumbers []int
	Matches        int
	Payout         decimal.Decimal
	Fee            decimal.Decimal
	Profit         decimal.Decimal
	BalanceAfter   decimal.Decimal
	CreatedAt      time.Time
}

// Settlement - результат для клиента из сохранённой ставки
func (w WagerData) Settlement() SettlementResult {
	return SettlementResult{
		RoundKey:       w.RoundKey,
		WinningNumbers: w.WinningNumbers,
		Matches:        w.Matches,
		Profit:         w.Profit,
		NewBalance:     w.BalanceAfter,
	}
}

// WagerResponse - элемент истории ставок
type WagerResponse struct {
	ID             string          `json:"id"`
	Bet            decimal.Decimal `json:"bet"`
	Guesses        []int           `json:"guesses"`
	WinningNumbers []int           `json:"winningNumbers"`
	Matches        int             `json:"matches"`
	Profit         decimal.Decimal `json:"profit"`
	CreatedAt      time.Time       `json:"createdAt"`
}
