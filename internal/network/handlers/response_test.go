package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/denmor86/lucky-triple/internal/storage"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		Name     string
		Err      error
		Expected int
	}{
		{Name: "Invalid credentials #1", Err: services.ErrInvalidCredentials, Expected: http.StatusUnauthorized},
		{Name: "Insufficient funds #2", Err: storage.ErrInsufficientFunds, Expected: http.StatusPaymentRequired},
		{Name: "Wrapped not found #3", Err: fmt.Errorf("get user: %w", storage.ErrNotFound), Expected: http.StatusNotFound},
		{Name: "Already resolved #4", Err: storage.ErrConflict, Expected: http.StatusConflict},
		{Name: "Stale settings #5", Err: services.ErrStaleSettings, Expected: http.StatusConflict},
		{Name: "Rate limited #6", Err: services.ErrRateLimited, Expected: http.StatusTooManyRequests},
		{Name: "Bet out of range #7", Err: services.ErrBetOutOfRange, Expected: http.StatusBadRequest},
		{Name: "Invalid settings #8", Err: models.ErrInvalidHouseFee, Expected: http.StatusBadRequest},
		{Name: "Delete self #9", Err: services.ErrDeleteSelf, Expected: http.StatusBadRequest},
		{Name: "Unknown #10", Err: errors.New("connection refused"), Expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := StatusFor(tc.Err); got != tc.Expected {
				t.Errorf("Expected status %d, got %d", tc.Expected, got)
			}
		})
	}
}
