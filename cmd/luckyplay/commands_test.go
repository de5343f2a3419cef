package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/session"
	"github.com/denmor86/lucky-triple/internal/session/mocks"
	"github.com/denmor86/lucky-triple/internal/wager"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestParseGuesses(t *testing.T) {
	testCases := []struct {
		Name          string
		Args          []string
		Expected      wager.Guesses
		ExpectedError bool
	}{
		{
			Name:     "Separate digits #1",
			Args:     []string{"1", "2", "3"},
			Expected: wager.Guesses{wager.Digit(1), wager.Digit(2), wager.Digit(3)},
		},
		{
			Name:     "Joined digits #2",
			Args:     []string{"907"},
			Expected: wager.Guesses{wager.Digit(9), wager.Digit(0), wager.Digit(7)},
		},
		{
			Name:     "Missing digit stays unset #3",
			Args:     []string{"4", "5"},
			Expected: wager.Guesses{wager.Digit(4), wager.Digit(5), wager.Unset},
		},
		{
			Name:          "Too many digits #4",
			Args:          []string{"1234"},
			ExpectedError: true,
		},
		{
			Name:          "Not a digit #5",
			Args:          []string{"1", "x", "3"},
			ExpectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			guesses, err := ParseGuesses(tc.Args)
			if tc.ExpectedError {
				if apperr.KindOf(err) != apperr.KindValidation {
					t.Fatalf("Expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for i := range guesses {
				gotValue, gotSet := guesses[i].Value()
				wantValue, wantSet := tc.Expected[i].Value()
				if gotValue != wantValue || gotSet != wantSet {
					t.Errorf("Guess #%d: expected (%d, %v), got (%d, %v)", i+1, wantValue, wantSet, gotValue, gotSet)
				}
			}
		})
	}
}

func newCLI(t *testing.T, api session.API) (*CLI, *bytes.Buffer) {
	t.Helper()
	store := session.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	if err := store.Save("token-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := &bytes.Buffer{}
	return &CLI{Manager: session.NewManager(api, store, time.Second), Out: out}, out
}

func expectRestore(mockAPI *mocks.MockAPI, user models.User) {
	mockAPI.EXPECT().SetToken("token-1")
	mockAPI.EXPECT().Me(gomock.Any()).Return(&user, nil).Times(2)
	mockAPI.EXPECT().GetSettings(gomock.Any()).Return(&models.GameSettings{
		Version: 3,
		MinBet:  decimal.NewFromInt(1),
		MaxBet:  decimal.NewFromInt(100),
		PayoutMultipliers: models.PayoutMultipliers{
			ThreeMatches: decimal.NewFromInt(50),
			TwoMatches:   decimal.NewFromInt(5),
			OneMatch:     decimal.NewFromInt(1),
		},
	}, nil)
	if !user.IsAdmin {
		mockAPI.EXPECT().GetMyWithdrawals(gomock.Any()).Return(&models.MyWithdrawals{}, nil)
	}
}

func TestRunPlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)

	expectRestore(mockAPI, models.User{ID: "u1", Email: "player@example.com", Balance: decimal.NewFromInt(100)})
	mockAPI.EXPECT().PlayGame(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, roundKey string, req models.PlayRequest) (*models.SettlementResult, error) {
			if diff := cmp.Diff([]int{1, 2, 3}, req.Guesses); diff != "" {
				t.Errorf("Guesses mismatch (-want +got):\n%s", diff)
			}
			if req.SettingsVersion != 3 || !req.Bet.Equal(decimal.NewFromInt(10)) {
				t.Errorf("Unexpected request: %+v", req)
			}
			return &models.SettlementResult{
				RoundKey:       roundKey,
				WinningNumbers: []int{1, 2, 9},
				Matches:        2,
				Profit:         decimal.NewFromInt(40),
				NewBalance:     decimal.NewFromInt(140),
			}, nil
		})

	cli, out := newCLI(t, mockAPI)
	if err := runPlay(context.Background(), cli, []string{"--bet", "10", "1", "2", "3"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"winning numbers: 1 2 9", "balance: 140.00", "*** WINNER! ***"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRunPlay_InvalidBet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(t, mocks.NewMockAPI(ctrl))
	err := runPlay(context.Background(), cli, []string{"--bet", "ten", "123"})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if exitCode(err) != 3 {
		t.Errorf("Expected exit code 3, got %d", exitCode(err))
	}
}

func TestRunStats_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)

	expectRestore(mockAPI, models.User{ID: "u1", Email: "player@example.com", Balance: decimal.NewFromInt(100)})

	cli, _ := newCLI(t, mockAPI)
	err := runStats(context.Background(), cli, nil)
	if err != session.ErrNotAdmin {
		t.Fatalf("Expected ErrNotAdmin, got %v", err)
	}
	// токен действителен, это не ошибка входа
	if exitCode(err) != 3 {
		t.Errorf("Expected exit code 3, got %d", exitCode(err))
	}
	if _, err := cli.Manager.Current(); err != nil {
		t.Errorf("Expected session to stay open, got %v", err)
	}
}
