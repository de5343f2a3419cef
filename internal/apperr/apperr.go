// Package apperr - классификация ошибок клиентского ядра.
// Каждая ошибка, возвращаемая наружу, оборачивает ровно один из видов ниже.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation - неверные цифры, ставка или сумма; запрос не отправлялся
	ErrValidation = errors.New("validation error")
	// ErrAuth - учётные данные недействительны, сессия завершается
	ErrAuth = errors.New("authentication error")
	// ErrConflict - запись уже изменена другим участником
	ErrConflict = errors.New("conflict")
	// ErrTransient - сеть или таймаут, исход неизвестен
	ErrTransient = errors.New("transient error, outcome unknown")
	// ErrInsufficientFunds - ставка или вывод превышает баланс
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotFound - запись не существует
	ErrNotFound = errors.New("not found")
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuth
	KindConflict
	KindTransient
	KindInsufficientFunds
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindConflict:
		return "conflict"
	case KindTransient:
		return "transient"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrValidation, KindValidation},
	{ErrAuth, KindAuth},
	{ErrConflict, KindConflict},
	{ErrTransient, KindTransient},
	{ErrInsufficientFunds, KindInsufficientFunds},
	{ErrNotFound, KindNotFound},
}

// KindOf - вид ошибки по цепочке обёрток
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// Retryable - повтор без побочных эффектов гарантирован только для локальных проверок
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindInsufficientFunds:
		return true
	default:
		return false
	}
}

// New - ошибка вида kind с пояснением
func New(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Wrap - ошибка вида kind, сохраняющая исходную причину
func Wrap(kind error, op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
