package validators

import (
	"github.com/shopspring/decimal"
)

// Точность денежных сумм: центы
const AmountPlaces = 2

// CheckAmount проверяет денежную сумму: положительная и без долей цента
func CheckAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}
	return amount.Equal(amount.Truncate(AmountPlaces))
}
