package ledger

import (
	"errors"
	"sync"
	"testing"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/shopspring/decimal"
)

func TestView_UnknownUntilReconciled(t *testing.T) {
	v := New()
	if v.Known() {
		t.Fatalf("Expected fresh view to be unknown")
	}
	if _, err := v.Balance(); !errors.Is(err, ErrUnknownBalance) {
		t.Errorf("Expected ErrUnknownBalance, got: '%v'", err)
	}
	if _, err := v.Available(); !errors.Is(err, ErrUnknownBalance) {
		t.Errorf("Expected ErrUnknownBalance, got: '%v'", err)
	}
	if got := apperr.KindOf(ErrUnknownBalance); got != apperr.KindValidation {
		t.Errorf("Expected kind %v, got %v", apperr.KindValidation, got)
	}
}

func TestView_Reconcile(t *testing.T) {
	testCases := []struct {
		Name     string
		Steps    func(v *View)
		Expected decimal.Decimal
	}{
		{
			Name: "Overwrite verbatim #1",
			Steps: func(v *View) {
				v.Reconcile(v.Begin(), decimal.NewFromInt(100))
				v.Reconcile(v.Begin(), decimal.RequireFromString("140.00"))
			},
			Expected: decimal.RequireFromString("140.00"),
		},
		{
			Name: "Out-of-order completion keeps fresher value #2",
			Steps: func(v *View) {
				older := v.Begin() // 1
				newer := v.Begin() // 2
				v.Reconcile(newer, decimal.NewFromInt(80))
				v.Reconcile(older, decimal.NewFromInt(100))
			},
			Expected: decimal.NewFromInt(80),
		},
		{
			Name: "Zero is a valid balance #3",
			Steps: func(v *View) {
				v.Reconcile(v.Begin(), decimal.NewFromInt(10))
				v.Reconcile(v.Begin(), decimal.Zero)
			},
			Expected: decimal.Zero,
		},
		{
			Name: "Negative balance is rejected #4",
			Steps: func(v *View) {
				v.Reconcile(v.Begin(), decimal.NewFromInt(10))
				if _, err := v.Reconcile(v.Begin(), decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeBalance) {
					t.Errorf("Expected ErrNegativeBalance, got: '%v'", err)
				}
			},
			Expected: decimal.NewFromInt(10),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			v := New()
			tc.Steps(v)
			got, err := v.Balance()
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if !got.Equal(tc.Expected) {
				t.Errorf("Expected balance %s, got: %s", tc.Expected, got)
			}
		})
	}
}

func TestView_StaleResponseReported(t *testing.T) {
	v := New()
	older, newer := v.Begin(), v.Begin()
	if applied, _ := v.Reconcile(newer, decimal.NewFromInt(5)); !applied {
		t.Fatalf("Expected newer response to apply")
	}
	if applied, _ := v.Reconcile(older, decimal.NewFromInt(7)); applied {
		t.Errorf("Expected older response to be ignored")
	}
}

func TestView_PendingAndAvailable(t *testing.T) {
	v := New()
	v.Reconcile(v.Begin(), decimal.NewFromInt(100))
	v.ReconcilePending(v.Begin(), decimal.NewFromInt(30))

	available, err := v.Available()
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if !available.Equal(decimal.NewFromInt(70)) {
		t.Errorf("Expected available 70, got: %s", available)
	}
	// ожидающий вывод не меняет сам баланс
	balance, _ := v.Balance()
	if !balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected balance 100, got: %s", balance)
	}
}

func TestView_ResetDropsInFlightResponses(t *testing.T) {
	v := New()
	inFlight := v.Begin()
	v.Reset()
	v.Reconcile(inFlight, decimal.NewFromInt(50))
	if v.Known() {
		t.Errorf("Expected response issued before reset to be ignored")
	}
}

func TestView_ConcurrentReconcileKeepsLatest(t *testing.T) {
	v := New()
	seqs := make([]Seq, 100)
	for i := range seqs {
		seqs[i] = v.Begin()
	}

	var wg sync.WaitGroup
	for i := len(seqs) - 1; i >= 0; i-- {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v.Reconcile(seqs[i], decimal.NewFromInt(int64(i)))
		}(i)
	}
	wg.Wait()

	got, _ := v.Balance()
	if !got.Equal(decimal.NewFromInt(99)) {
		t.Errorf("Expected balance of the last issued request (99), got: %s", got)
	}
}
