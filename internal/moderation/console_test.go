package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/moderation/mocks"
	"github.com/denmor86/lucky-triple/internal/settings"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testUsers(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, models.User{
			ID:    fmt.Sprintf("u%02d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
			Phone: fmt.Sprintf("+1555000%04d", i),
		})
	}
	return users
}

func TestConsole_SendToAllCreatesOneDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)

	users := testUsers(37)
	phones := make([]string, 0, len(users))
	for _, u := range users {
		phones = append(phones, u.Phone)
	}

	mockAPI.EXPECT().SendSMSToAll(gomock.Any(), "Maintenance tonight").
		Return(&models.SMSDispatch{ID: "d1", Phones: phones, Message: "Maintenance tonight", Status: models.SMSQueued}, nil).
		Times(1)

	console := NewConsole(mockAPI, nil)
	dispatch, err := console.Send(context.Background(), ModeAll, "Maintenance tonight")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(dispatch.Phones) != 37 {
		t.Errorf("Expected 37 phones in one dispatch, got %d", len(dispatch.Phones))
	}
	if logs := console.Logs(); len(logs) != 1 {
		t.Errorf("Expected one dispatch record, got %d", len(logs))
	}
}

func TestConsole_SendSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)

	testCases := []struct {
		Name          string
		Selected      []string
		Message       string
		SetupMocks    func()
		ExpectedKind  apperr.Kind
		ExpectedError error
		ExpectedLeft  []string
	}{
		{
			Name:     "Success #1",
			Selected: []string{"u01", "u03"},
			Message:  "Hello",
			SetupMocks: func() {
				mockAPI.EXPECT().ListUsers(gomock.Any()).Return(testUsers(3), nil)
				mockAPI.EXPECT().SendSMS(gomock.Any(), []string{"u01", "u03"}, "Hello").
					Return(&models.SMSDispatch{ID: "d1", Phones: []string{"+15550000001", "+15550000003"}}, nil)
			},
			ExpectedLeft: []string{"u01", "u03"},
		},
		{
			Name:     "Success. Removed users are dropped #2",
			Selected: []string{"u01", "u09"},
			Message:  "  Hello  ",
			SetupMocks: func() {
				mockAPI.EXPECT().ListUsers(gomock.Any()).Return(testUsers(3), nil)
				mockAPI.EXPECT().SendSMS(gomock.Any(), []string{"u01"}, "Hello").
					Return(&models.SMSDispatch{ID: "d2", Phones: []string{"+15550000001"}}, nil)
			},
			ExpectedLeft: []string{"u01"},
		},
		{
			Name:     "Error. Every selected user removed #3",
			Selected: []string{"u09"},
			Message:  "Hello",
			SetupMocks: func() {
				mockAPI.EXPECT().ListUsers(gomock.Any()).Return(testUsers(3), nil)
			},
			ExpectedError: ErrSelectionRemoved,
			ExpectedLeft:  []string{},
		},
		{
			Name:          "Error. Empty selection #4",
			Message:       "Hello",
			SetupMocks:    func() {},
			ExpectedError: ErrEmptySelection,
			ExpectedLeft:  []string{},
		},
		{
			Name:          "Error. Blank message #5",
			Selected:      []string{"u01"},
			Message:       "   ",
			SetupMocks:    func() {},
			ExpectedError: ErrEmptyMessage,
			ExpectedLeft:  []string{"u01"},
		},
		{
			Name:          "Error. Message too long #6",
			Selected:      []string{"u01"},
			Message:       strings.Repeat("x", MaxMessageLength+1),
			SetupMocks:    func() {},
			ExpectedError: ErrMessageTooLong,
			ExpectedLeft:  []string{"u01"},
		},
		{
			Name:     "Error. Listing unavailable #7",
			Selected: []string{"u01"},
			Message:  "Hello",
			SetupMocks: func() {
				mockAPI.EXPECT().ListUsers(gomock.Any()).Return(nil, apperr.New(apperr.ErrTransient, "timeout"))
			},
			ExpectedKind: apperr.KindTransient,
			ExpectedLeft: []string{"u01"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			console := NewConsole(mockAPI, nil)
			console.Selection.Select(tc.Selected...)

			_, err := console.Send(context.Background(), ModeSelected, tc.Message)
			switch {
			case tc.ExpectedError != nil:
				if !errors.Is(err, tc.ExpectedError) {
					t.Fatalf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
				}
			case tc.ExpectedKind != apperr.KindUnknown:
				if got := apperr.KindOf(err); got != tc.ExpectedKind {
					t.Fatalf("Expected error kind '%v', got: '%v' (%v)", tc.ExpectedKind, got, err)
				}
			default:
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
			}

			if diff := cmp.Diff(tc.ExpectedLeft, console.Selection.IDs()); diff != "" {
				t.Errorf("Selection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConsole_UnknownMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	console := NewConsole(mocks.NewMockAPI(ctrl), nil)
	if _, err := console.Send(context.Background(), Mode(7), "Hello"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("Expected ErrUnknownMode, got %v", err)
	}
}

func TestConsole_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)

	logs := []models.SMSDispatch{{ID: "d1", Phones: []string{"+15550000001"}, Status: models.SMSSent}}
	mockAPI.EXPECT().ListUsers(gomock.Any()).Return(testUsers(2), nil)
	mockAPI.EXPECT().GetSMSLogs(gomock.Any()).Return(logs, nil)

	console := NewConsole(mockAPI, nil)
	console.Selection.Select("u02", "u05")
	if err := console.Load(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if diff := cmp.Diff(testUsers(2), console.Users()); diff != "" {
		t.Errorf("Users mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(logs, console.Logs()); diff != "" {
		t.Errorf("Logs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"u02"}, console.Selection.IDs()); diff != "" {
		t.Errorf("Selection mismatch (-want +got):\n%s", diff)
	}
}

func TestConsole_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)

	mockAPI.EXPECT().ListUsers(gomock.Any()).Return(nil, apperr.New(apperr.ErrAuth, "expired"))
	mockAPI.EXPECT().GetSMSLogs(gomock.Any()).Return(nil, nil).AnyTimes()

	console := NewConsole(mockAPI, nil)
	if got := apperr.KindOf(console.Load(context.Background())); got != apperr.KindAuth {
		t.Fatalf("Expected error kind '%v', got '%v'", apperr.KindAuth, got)
	}
}

type staticFetcher struct {
	settings models.GameSettings
}

func (f staticFetcher) GetSettings(context.Context) (*models.GameSettings, error) {
	s := f.settings
	return &s, nil
}

func TestConsole_UpdateSettingsReplacesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)

	current := models.GameSettings{
		Version: 1,
		MinBet:  decimal.NewFromInt(10),
		MaxBet:  decimal.NewFromInt(100),
	}
	cache := settings.NewCache(staticFetcher{settings: current})
	if _, err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	next := current
	next.MaxBet = decimal.NewFromInt(500)
	accepted := next
	accepted.Version = 2
	mockAPI.EXPECT().UpdateSettings(gomock.Any(), next).Return(&accepted, nil)

	console := NewConsole(mockAPI, cache)
	if _, err := console.UpdateSettings(context.Background(), next); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	snapshot, err := cache.Snapshot()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(accepted, snapshot); diff != "" {
		t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
	}

	invalid := next
	invalid.MinBet = decimal.NewFromInt(1000)
	if got := apperr.KindOf(func() error { _, err := console.UpdateSettings(context.Background(), invalid); return err }()); got != apperr.KindValidation {
		t.Errorf("Expected error kind '%v', got '%v'", apperr.KindValidation, got)
	}
}

func TestConsole_CreditAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)

	mockAPI.EXPECT().ListUsers(gomock.Any()).Return(testUsers(2), nil)
	mockAPI.EXPECT().GetSMSLogs(gomock.Any()).Return(nil, nil)
	credited := testUsers(1)[0]
	credited.Balance = decimal.NewFromInt(25)
	mockAPI.EXPECT().CreditUser(gomock.Any(), "u01", decimal.NewFromInt(25), "bonus").Return(&credited, nil)
	mockAPI.EXPECT().DeleteUser(gomock.Any(), "u02").Return(nil)

	console := NewConsole(mockAPI, nil)
	if err := console.Load(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	console.Selection.Select("u02")

	if _, err := console.Credit(context.Background(), "u01", decimal.Zero, ""); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Expected validation error for zero credit, got %v", err)
	}
	if _, err := console.Credit(context.Background(), "u01", decimal.NewFromInt(25), "bonus"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := console.Delete(context.Background(), "u02"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if diff := cmp.Diff([]models.User{credited}, console.Users()); diff != "" {
		t.Errorf("Users mismatch (-want +got):\n%s", diff)
	}
	if console.Selection.Contains("u02") {
		t.Error("Deleted user must leave the selection")
	}
}
