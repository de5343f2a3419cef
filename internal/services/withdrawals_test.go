package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/denmor86/lucky-triple/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestWithdrawals_Request(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockWithdrawalsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockStorage)
	pending := &models.Withdrawal{ID: "w1", UserID: "u1", Amount: decimal.NewFromInt(50), Status: models.WithdrawalPending}

	testCases := []struct {
		Name          string
		Amount        decimal.Decimal
		SetupMocks    func()
		ExpectedError error
		Expected      *models.Withdrawal
	}{
		{
			Name:   "Success #1",
			Amount: decimal.NewFromInt(50),
			SetupMocks: func() {
				mockStorage.EXPECT().AddWithdrawal(gomock.Any(), "u1", decimal.NewFromInt(50)).Return(pending, nil)
			},
			Expected: pending,
		},
		{
			Name:          "Error. Zero amount #2",
			Amount:        decimal.Zero,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidWithdrawalAmount,
		},
		{
			Name:   "Error. Insufficient funds #3",
			Amount: decimal.NewFromInt(500),
			SetupMocks: func() {
				mockStorage.EXPECT().AddWithdrawal(gomock.Any(), "u1", gomock.Any()).Return(nil, storage.ErrInsufficientFunds)
			},
			ExpectedError: storage.ErrInsufficientFunds,
		},
		{
			Name:          "Error. Fraction of a cent #4",
			Amount:        decimal.RequireFromString("10.005"),
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidWithdrawalAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			w, err := withdrawals.Request(ctx, "u1", tc.Amount)
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if diff := cmp.Diff(tc.Expected, w); diff != "" {
				t.Errorf("expected withdrawal mismatch:\n %s", diff)
			}
		})
	}
}

func TestWithdrawals_Mine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockWithdrawalsStorage(ctrl)

	records := []models.Withdrawal{
		{ID: "w3", Amount: decimal.NewFromInt(30), Status: models.WithdrawalPending},
		{ID: "w2", Amount: decimal.NewFromInt(20), Status: models.WithdrawalPending},
		{ID: "w1", Amount: decimal.NewFromInt(99), Status: models.WithdrawalRejected},
	}
	mockStorage.EXPECT().GetWithdrawals(gomock.Any(), "u1").Return(records, nil)

	mine, err := NewWithdrawals(mockStorage).Mine(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !mine.PendingTotal.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected pending total 50, got %s", mine.PendingTotal)
	}
}

func TestWithdrawals_ApproveTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockWithdrawalsStorage(ctrl)

	approved := &models.Withdrawal{ID: "w1", UserID: "u1", Phone: "+15550000001", Amount: decimal.NewFromInt(50), Status: models.WithdrawalApproved}
	notifications := 0

	gomock.InOrder(
		mockStorage.EXPECT().ResolveWithdrawal(gomock.Any(), "w1", models.WithdrawalApproved, "", gomock.Any()).
			DoAndReturn(func(ctx context.Context, id, status, reason string, notify storage.NotifyFunc) (*models.Withdrawal, error) {
				// хранилище ставит ровно одно уведомление в той же транзакции
				if msg := notify(*approved); msg != "" {
					notifications++
				}
				return approved, nil
			}),
		mockStorage.EXPECT().ResolveWithdrawal(gomock.Any(), "w1", models.WithdrawalApproved, "", gomock.Any()).
			Return(nil, storage.ErrConflict),
	)

	withdrawals := NewWithdrawals(mockStorage)
	w, err := withdrawals.Approve(context.Background(), "w1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if w.Status != models.WithdrawalApproved {
		t.Errorf("Expected approved, got %q", w.Status)
	}

	if _, err := withdrawals.Approve(context.Background(), "w1"); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("Expected ErrConflict, got %v", err)
	}
	if notifications != 1 {
		t.Errorf("Expected exactly one notification, got %d", notifications)
	}
}

func TestNotifyMessage(t *testing.T) {
	testCases := []struct {
		Name       string
		Withdrawal models.Withdrawal
		Expected   string
	}{
		{
			Name:       "Approved #1",
			Withdrawal: models.Withdrawal{Amount: decimal.NewFromInt(50), Status: models.WithdrawalApproved},
			Expected:   "Lucky Triple: your withdrawal of 50.00 has been approved.",
		},
		{
			Name:       "Rejected with reason #2",
			Withdrawal: models.Withdrawal{Amount: decimal.NewFromInt(50), Status: models.WithdrawalRejected, Reason: "KYC pending"},
			Expected:   "Lucky Triple: your withdrawal of 50.00 has been rejected: KYC pending",
		},
		{
			Name:       "Rejected without reason #3",
			Withdrawal: models.Withdrawal{Amount: decimal.RequireFromString("12.5"), Status: models.WithdrawalRejected},
			Expected:   "Lucky Triple: your withdrawal of 12.50 has been rejected.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := NotifyMessage(tc.Withdrawal); got != tc.Expected {
				t.Errorf("Expected %q, got %q", tc.Expected, got)
			}
		})
	}
}
