package wager

import (
	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/shopspring/decimal"
)

type Status int

const (
	StatusComposing Status = iota
	StatusSubmitted
	StatusSettled
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusComposing:
		return "composing"
	case StatusSubmitted:
		return "submitted"
	case StatusSettled:
		return "settled"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Guess - одна цифра; незаполненная цифра недопустима
type Guess struct {
	value int
	set   bool
}

// Digit - заполненная цифра (диапазон проверяется при отправке)
func Digit(n int) Guess {
	return Guess{value: n, set: true}
}

// Unset - пустое поле ввода
var Unset = Guess{}

func (g Guess) Value() (int, bool) {
	return g.value, g.set
}

type Guesses [models.GuessCount]Guess

// Digits - цифры для запроса; ошибка, если хотя бы одна не заполнена или вне 0..9
func (g Guesses) Digits() ([]int, error) {
	digits := make([]int, 0, len(g))
	for i, guess := range g {
		if !guess.set {
			return nil, apperr.New(apperr.ErrValidation, "guess #%d is not set", i+1)
		}
		if guess.value < 0 || guess.value > 9 {
			return nil, apperr.New(apperr.ErrValidation, "guess #%d must be a digit 0-9, got %d", i+1, guess.value)
		}
		digits = append(digits, guess.value)
	}
	return digits, nil
}

// Round - один раунд игры
type Round struct {
	Key      string
	Guesses  Guesses
	Bet      decimal.Decimal
	Settings models.GameSettings
	Status   Status
	Result   *models.SettlementResult
	Err      error
}

// Validate - локальные проверки до сетевого вызова:
// все цифры заполнены и minBet ≤ bet ≤ min(maxBet, balance)
func Validate(guesses Guesses, bet decimal.Decimal, settings models.GameSettings, balance decimal.Decimal) error {
	if _, err := guesses.Digits(); err != nil {
		return err
	}
	if bet.LessThan(settings.MinBet) {
		return apperr.New(apperr.ErrValidation, "bet %s is below minimum %s", bet, settings.MinBet)
	}
	if bet.GreaterThan(settings.MaxBet) {
		return apperr.New(apperr.ErrValidation, "bet %s is above maximum %s", bet, settings.MaxBet)
	}
	if bet.GreaterThan(balance) {
		return apperr.New(apperr.ErrInsufficientFunds, "bet %s exceeds balance %s", bet, balance)
	}
	return nil
}

// TierPayout - отображаемая выплата для количества совпадений
type TierPayout struct {
	Matches    int
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
}

// Payouts - bet × multiplier по каждому уровню, от трёх совпадений к нулю.
// Только для отображения, баланс по этим значениям не меняется.
func Payouts(bet decimal.Decimal, settings models.GameSettings) []TierPayout {
	payouts := make([]TierPayout, 0, models.GuessCount+1)
	for matches := models.GuessCount; matches >= 0; matches-- {
		m := settings.PayoutMultipliers.ForTier(matches)
		payouts = append(payouts, TierPayout{
			Matches:    matches,
			Multiplier: m,
			Payout:     bet.Mul(m),
		})
	}
	return payouts
}

// Celebrate - визуальный эффект при двух и более совпадениях
func Celebrate(result models.SettlementResult) bool {
	return result.Matches >= 2
}
