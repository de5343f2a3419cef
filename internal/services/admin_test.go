package services

import (
	"context"
	"errors"
	"testing"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/denmor86/lucky-triple/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAdmin_ListUsersHidesSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	mockUsers.EXPECT().ListUsers(gomock.Any()).Return([]models.UserData{
		{UserID: "u1", Email: "a@example.com", PasswordHash: "hash", Balance: decimal.NewFromInt(5)},
	}, nil)

	users, err := NewAdmin(mockUsers, mocks.NewMockStatsStorage(ctrl)).ListUsers(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []models.User{{ID: "u1", Email: "a@example.com", Balance: decimal.NewFromInt(5)}}
	if diff := cmp.Diff(expected, users); diff != "" {
		t.Errorf("Users mismatch (-want +got):\n%s", diff)
	}
}

func TestAdmin_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	admin := NewAdmin(mockUsers, mocks.NewMockStatsStorage(ctrl))

	testCases := []struct {
		Name          string
		ActorID       string
		UserID        string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:    "Success #1",
			ActorID: "admin",
			UserID:  "u1",
			SetupMocks: func() {
				mockUsers.EXPECT().DeleteUser(gomock.Any(), "u1").Return(nil)
			},
		},
		{
			Name:          "Error. Self delete #2",
			ActorID:       "admin",
			UserID:        "admin",
			SetupMocks:    func() {},
			ExpectedError: ErrDeleteSelf,
		},
		{
			Name:    "Error. Unknown user #3",
			ActorID: "admin",
			UserID:  "u9",
			SetupMocks: func() {
				mockUsers.EXPECT().DeleteUser(gomock.Any(), "u9").Return(storage.ErrNotFound)
			},
			ExpectedError: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			if err := admin.DeleteUser(context.Background(), tc.ActorID, tc.UserID); !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestAdmin_CreditUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	admin := NewAdmin(mockUsers, mocks.NewMockStatsStorage(ctrl))

	if _, err := admin.CreditUser(context.Background(), "u1", decimal.NewFromInt(-1), ""); !errors.Is(err, ErrInvalidCreditAmount) {
		t.Errorf("Expected ErrInvalidCreditAmount, got %v", err)
	}

	mockUsers.EXPECT().CreditUser(gomock.Any(), "u1", decimal.NewFromInt(25), "bonus").
		Return(&models.UserData{UserID: "u1", Balance: decimal.NewFromInt(125), PasswordHash: "hash"}, nil)
	user, err := admin.CreditUser(context.Background(), "u1", decimal.NewFromInt(25), "bonus")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !user.Balance.Equal(decimal.NewFromInt(125)) {
		t.Errorf("Expected balance 125, got %s", user.Balance)
	}
}

func TestAdmin_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStats := mocks.NewMockStatsStorage(ctrl)

	stats := &models.DashboardStats{TotalUsers: 37, TotalBets: 120}
	mockStats.EXPECT().GetStats(gomock.Any()).Return(stats, nil)

	got, err := NewAdmin(mocks.NewMockUsersStorage(ctrl), mockStats).GetStats(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(stats, got); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}
