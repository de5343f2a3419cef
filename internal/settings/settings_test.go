package settings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/settings/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testSettings(version int64) models.GameSettings {
	return models.GameSettings{
		Version: version,
		MinBet:  decimal.NewFromInt(10),
		MaxBet:  decimal.NewFromInt(100),
		PayoutMultipliers: models.PayoutMultipliers{
			ThreeMatches: decimal.NewFromInt(50),
			TwoMatches:   decimal.NewFromInt(5),
			OneMatch:     decimal.NewFromInt(1),
		},
	}
}

func TestCache_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockFetcher := mocks.NewMockFetcher(ctrl)

	invalid := testSettings(2)
	invalid.MinBet = decimal.NewFromInt(200)

	testCases := []struct {
		Name             string
		SetupMocks       func()
		ExpectedKind     apperr.Kind
		ExpectedSnapshot *models.GameSettings
	}{
		{
			Name: "Success #1",
			SetupMocks: func() {
				s := testSettings(1)
				mockFetcher.EXPECT().GetSettings(gomock.Any()).Return(&s, nil)
			},
			ExpectedSnapshot: func() *models.GameSettings { s := testSettings(1); return &s }(),
		},
		{
			Name: "Error. Transport failure keeps cache empty #2",
			SetupMocks: func() {
				mockFetcher.EXPECT().GetSettings(gomock.Any()).Return(nil, apperr.New(apperr.ErrTransient, "timeout"))
			},
			ExpectedKind: apperr.KindTransient,
		},
		{
			Name: "Error. Inconsistent bounds rejected #3",
			SetupMocks: func() {
				mockFetcher.EXPECT().GetSettings(gomock.Any()).Return(&invalid, nil)
			},
			ExpectedKind: apperr.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			cache := NewCache(mockFetcher)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := cache.Refresh(ctx)
			if tc.ExpectedKind != apperr.KindUnknown {
				if got := apperr.KindOf(err); got != tc.ExpectedKind {
					t.Fatalf("Expected error kind '%v', got: '%v' (%v)", tc.ExpectedKind, got, err)
				}
				if _, err := cache.Snapshot(); !errors.Is(err, ErrNotLoaded) {
					t.Errorf("Expected ErrNotLoaded, got: '%v'", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			snapshot, err := cache.Snapshot()
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(*tc.ExpectedSnapshot, snapshot); diff != "" {
				t.Errorf("snapshot mismatch:\n %s", diff)
			}
		})
	}
}

func TestCache_RefreshSharesInFlightRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockFetcher := mocks.NewMockFetcher(ctrl)

	release := make(chan struct{})
	s := testSettings(1)
	mockFetcher.EXPECT().GetSettings(gomock.Any()).DoAndReturn(func(ctx context.Context) (*models.GameSettings, error) {
		<-release
		return &s, nil
	}).Times(1)

	cache := NewCache(mockFetcher)
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Refresh(context.Background()); err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
}

func TestCache_ReplaceIgnoresOlderVersion(t *testing.T) {
	cache := NewCache(nil)
	if !cache.Replace(testSettings(3)) {
		t.Fatalf("Expected first snapshot to be stored")
	}
	if cache.Replace(testSettings(2)) {
		t.Errorf("Expected older version to be ignored")
	}
	snapshot, _ := cache.Snapshot()
	if snapshot.Version != 3 {
		t.Errorf("Expected version 3, got: %d", snapshot.Version)
	}

	// снимок - копия: изменения у вызывающего не влияют на кэш
	snapshot.MinBet = decimal.NewFromInt(1)
	again, _ := cache.Snapshot()
	if !again.MinBet.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected cached snapshot to be immutable, got minBet %s", again.MinBet)
	}
}
