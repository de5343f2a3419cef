package validators

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCheckAmount(t *testing.T) {
	testCases := []struct {
		Amount   string
		Expected bool
	}{
		{Amount: "10", Expected: true},
		{Amount: "0.01", Expected: true},
		{Amount: "100.50", Expected: true},
		{Amount: "0", Expected: false},
		{Amount: "-5", Expected: false},
		{Amount: "0.001", Expected: false},
		{Amount: "12.345", Expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Amount, func(t *testing.T) {
			if got := CheckAmount(decimal.RequireFromString(tc.Amount)); got != tc.Expected {
				t.Errorf("CheckAmount(%s): expected %v, got %v", tc.Amount, tc.Expected, got)
			}
		})
	}
}
