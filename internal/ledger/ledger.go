// Package ledger - клиентское зеркало баланса пользователя.
//
// Баланс меняется только значениями, пришедшими от авторитетной стороны.
// Каждый запрос, способный вернуть баланс, получает номер при отправке;
// ответ применяется, только если его номер больше последнего применённого,
// поэтому поздний ответ на старый запрос не затирает более свежий баланс.
package ledger

import (
	"sync"
	"sync/atomic"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownBalance - с начала сессии не было ни одной сверки
	ErrUnknownBalance = apperr.New(apperr.ErrValidation, "balance unknown: not reconciled since session start")
	// ErrNegativeBalance - авторитетная сторона прислала отрицательный баланс
	ErrNegativeBalance = apperr.New(apperr.ErrValidation, "authoritative balance is negative")
)

// Seq - номер запроса, выданный при его отправке
type Seq uint64

// View - зеркало баланса и суммы ожидающих выводов
type View struct {
	next atomic.Uint64

	mu             sync.RWMutex
	known          bool
	balance        decimal.Decimal
	applied        Seq
	pending        decimal.Decimal
	pendingApplied Seq
}

func New() *View {
	return &View{}
}

// Begin - выдаёт номер очередному запросу; вызывать до отправки запроса
func (v *View) Begin() Seq {
	return Seq(v.next.Add(1))
}

// Reconcile - заменяет баланс авторитетным значением, если ответ не устарел.
// Возвращает true, если значение применено.
func (v *View) Reconcile(seq Seq, balance decimal.Decimal) (bool, error) {
	if balance.IsNegative() {
		return false, ErrNegativeBalance
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq <= v.applied {
		logger.Debug("Ledger: stale balance ignored, seq", seq, "applied", v.applied)
		return false, nil
	}
	v.balance = balance
	v.applied = seq
	v.known = true
	return true, nil
}

// ReconcilePending - заменяет сумму ожидающих выводов по тем же правилам
func (v *View) ReconcilePending(seq Seq, total decimal.Decimal) bool {
	if total.IsNegative() {
		total = decimal.Zero
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq <= v.pendingApplied {
		return false
	}
	v.pending = total
	v.pendingApplied = seq
	return true
}

// Balance - последний сверенный баланс
func (v *View) Balance() (decimal.Decimal, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.known {
		return decimal.Zero, ErrUnknownBalance
	}
	return v.balance, nil
}

// Known - была ли хотя бы одна сверка; без неё игра недоступна
func (v *View) Known() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.known
}

// Pending - сумма выводов, ожидающих решения
func (v *View) Pending() decimal.Decimal {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.pending
}

// Available - баланс за вычетом ожидающих выводов, только для отображения
func (v *View) Available() (decimal.Decimal, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.known {
		return decimal.Zero, ErrUnknownBalance
	}
	return decimal.Max(decimal.Zero, v.balance.Sub(v.pending)), nil
}

// Reset - сброс при выходе из сессии; номера продолжают расти
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.known = false
	v.balance = decimal.Zero
	v.pending = decimal.Zero
	v.applied = Seq(v.next.Load())
	v.pendingApplied = v.applied
}
