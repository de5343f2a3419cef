// Package withdrawal - запросы на вывод средств и их разбор администратором.
package withdrawal

import (
	"context"
	"sync"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/ledger"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=workflow.go -destination=mocks/mock_workflow.go -package=mocks

type API interface {
	RequestWithdrawal(ctx context.Context, amount decimal.Decimal) (*models.Withdrawal, error)
	GetMyWithdrawals(ctx context.Context) (*models.MyWithdrawals, error)
	ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, id string) (*models.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, id string, reason string) (*models.Withdrawal, error)
}

// Workflow - клиентская сторона вывода: проверки до запроса и локальный список для администратора
type Workflow struct {
	api    API
	ledger *ledger.View

	mu      sync.RWMutex
	records []models.Withdrawal
}

func NewWorkflow(api API, view *ledger.View) *Workflow {
	return &Workflow{api: api, ledger: view}
}

// Validate - 0 < amount ≤ balance
func Validate(amount decimal.Decimal, balance decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperr.New(apperr.ErrValidation, "withdrawal amount must be positive, got %s", amount)
	}
	if amount.GreaterThan(balance) {
		return apperr.New(apperr.ErrInsufficientFunds, "withdrawal amount %s exceeds balance %s", amount, balance)
	}
	return nil
}

// Request - создаёт запрос в статусе pending. Баланс не меняется:
// списание делает сервер при одобрении, клиент узнает о нём при следующей сверке.
func (w *Workflow) Request(ctx context.Context, amount decimal.Decimal) (*models.Withdrawal, error) {
	balance, err := w.ledger.Balance()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrValidation, "withdrawal", err)
	}
	if err := Validate(amount, balance); err != nil {
		return nil, err
	}
	record, err := w.api.RequestWithdrawal(ctx, amount)
	if err != nil {
		return nil, err
	}
	logger.Infow("Withdrawal requested", "id", record.ID, "amount", record.Amount.String())
	return record, nil
}

// Mine - запросы текущего пользователя; сумма ожидающих сверяется по номеру запроса
func (w *Workflow) Mine(ctx context.Context) ([]models.Withdrawal, error) {
	seq := w.ledger.Begin()
	mine, err := w.api.GetMyWithdrawals(ctx)
	if err != nil {
		return nil, err
	}
	w.ledger.ReconcilePending(seq, mine.PendingTotal)
	return mine.Withdrawals, nil
}

// List - все запросы (только для администратора)
func (w *Workflow) List(ctx context.Context) ([]models.Withdrawal, error) {
	records, err := w.api.ListWithdrawals(ctx)
	if err != nil {
		return nil, err
	}
	w.mu.Lock()
	w.records = records
	w.mu.Unlock()
	return records, nil
}

// Records - последний загруженный список
func (w *Workflow) Records() []models.Withdrawal {
	w.mu.RLock()
	defer w.mu.RUnlock()
	records := make([]models.Withdrawal, len(w.records))
	copy(records, w.records)
	return records
}

// Approve - одобрение. Если запрос уже разобран, ошибка вида Conflict возвращается как есть.
func (w *Workflow) Approve(ctx context.Context, id string) (*models.Withdrawal, error) {
	record, err := w.api.ApproveWithdrawal(ctx, id)
	if err != nil {
		logger.Warnw("Withdrawal approve failed", "id", id, "kind", apperr.KindOf(err).String(), "error", err)
		return nil, err
	}
	w.replace(*record)
	logger.Infow("Withdrawal approved", "id", id)
	return record, nil
}

// Reject - отклонение; причина необязательна
func (w *Workflow) Reject(ctx context.Context, id string, reason string) (*models.Withdrawal, error) {
	record, err := w.api.RejectWithdrawal(ctx, id, reason)
	if err != nil {
		logger.Warnw("Withdrawal reject failed", "id", id, "kind", apperr.KindOf(err).String(), "error", err)
		return nil, err
	}
	w.replace(*record)
	logger.Infow("Withdrawal rejected", "id", id)
	return record, nil
}

func (w *Workflow) replace(record models.Withdrawal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.records {
		if w.records[i].ID == record.ID {
			w.records[i] = record
			return
		}
	}
}
