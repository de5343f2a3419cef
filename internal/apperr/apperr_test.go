package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		Name      string
		Err       error
		Kind      Kind
		Retryable bool
	}{
		{Name: "nil #1", Err: nil, Kind: KindUnknown},
		{Name: "plain #2", Err: errors.New("boom"), Kind: KindUnknown},
		{Name: "validation #3", Err: New(ErrValidation, "bet %s below minimum", "5"), Kind: KindValidation, Retryable: true},
		{Name: "funds #4", Err: New(ErrInsufficientFunds, "bet exceeds balance"), Kind: KindInsufficientFunds, Retryable: true},
		{Name: "conflict wrapped twice #5", Err: fmt.Errorf("approve: %w", New(ErrConflict, "already approved")), Kind: KindConflict},
		{Name: "transient with cause #6", Err: Wrap(ErrTransient, "play", context.DeadlineExceeded), Kind: KindTransient},
		{Name: "auth #7", Err: Wrap(ErrAuth, "me", errors.New("401")), Kind: KindAuth},
		{Name: "not found #8", Err: New(ErrNotFound, "withdrawal"), Kind: KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := KindOf(tc.Err); got != tc.Kind {
				t.Errorf("Expected kind '%v', got: '%v'", tc.Kind, got)
			}
			if got := Retryable(tc.Err); got != tc.Retryable {
				t.Errorf("Expected retryable %v, got: %v", tc.Retryable, got)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrTransient, "play", context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected cause to be preserved, got: '%v'", err)
	}
}
