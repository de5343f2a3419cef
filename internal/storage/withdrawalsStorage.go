package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	withdrawalColumns = `w.id, w.user_id, u.email, u.phone, w.amount, w.status, w.reason, w.created_at, w.resolved_at`
	InsertWithdrawal  = `INSERT INTO WITHDRAWALS (id, user_id, amount) 
							SELECT $1, id, $3 FROM USERS 
							WHERE id = $2 AND deleted_at IS NULL AND balance >= $3
							RETURNING id;`
	GetWithdrawal   = `SELECT ` + withdrawalColumns + ` FROM WITHDRAWALS w JOIN USERS u ON u.id = w.user_id WHERE w.id = $1;`
	GetWithdrawals  = `SELECT ` + withdrawalColumns + ` FROM WITHDRAWALS w JOIN USERS u ON u.id = w.user_id WHERE w.user_id = $1 ORDER BY w.created_at DESC;`
	ListWithdrawals = `SELECT ` + withdrawalColumns + ` FROM WITHDRAWALS w JOIN USERS u ON u.id = w.user_id ORDER BY w.created_at DESC;`
	// переход разрешён только из pending: кто первый, тот и решил
	ResolveWithdrawal = `UPDATE WITHDRAWALS 
							SET status = $2, reason = $3, resolved_at = NOW()
							WHERE id = $1 AND status = 'pending'
							RETURNING id;`
	DebitUser = `UPDATE USERS SET balance = balance - $1 WHERE id = $2 AND balance >= $1;`
)

type WithdrawalDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db}
}

func scanWithdrawal(row pgx.Row) (*models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Email,
		&w.Phone,
		&w.Amount,
		&w.Status,
		&w.Reason,
		&w.CreatedAt,
		&w.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// AddWithdrawal - создаёт запрос в статусе pending. Баланс не списывается,
// сумма лишь сверяется с балансом на момент запроса.
func (s *WithdrawalDatabase) AddWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) (*models.Withdrawal, error) {
	var id string
	err := s.DB.Pool.QueryRow(ctx, InsertWithdrawal, uuid.New().String(), userID, amount).Scan(&id)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("insert withdrawal: %w", err)
		}
		// строка не вставлена: либо нет пользователя, либо не хватает средств
		var exists bool
		if err := s.DB.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM USERS WHERE id = $1 AND deleted_at IS NULL)`, userID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check user: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, ErrInsufficientFunds
	}
	w, err := scanWithdrawal(s.DB.Pool.QueryRow(ctx, GetWithdrawal, id))
	if err != nil {
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return w, nil
}

func (s *WithdrawalDatabase) GetWithdrawals(ctx context.Context, userID string) ([]models.Withdrawal, error) {
	return s.query(ctx, GetWithdrawals, userID)
}

func (s *WithdrawalDatabase) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return s.query(ctx, ListWithdrawals)
}

func (s *WithdrawalDatabase) query(ctx context.Context, sql string, args ...any) ([]models.Withdrawal, error) {
	rows, err := s.DB.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

// ResolveWithdrawal - переводит запрос из pending в конечный статус.
// При одобрении списывает средства с повторной проверкой баланса.
// Уведомление пользователю ставится в очередь в той же транзакции.
func (s *WithdrawalDatabase) ResolveWithdrawal(ctx context.Context, id string, status string, reason string, notify NotifyFunc) (*models.Withdrawal, error) {
	var resolved *models.Withdrawal
	err := s.DB.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var updatedID string
		err := tx.QueryRow(ctx, ResolveWithdrawal, id, status, reason).Scan(&updatedID)
		if errors.Is(err, pgx.ErrNoRows) {
			// либо записи нет, либо её уже решил другой администратор
			if _, getErr := scanWithdrawal(tx.QueryRow(ctx, GetWithdrawal, id)); getErr != nil {
				if errors.Is(getErr, ErrNotFound) {
					return ErrNotFound
				}
				return fmt.Errorf("get withdrawal: %w", getErr)
			}
			return ErrConflict
		}
		if err != nil {
			return fmt.Errorf("resolve withdrawal: %w", err)
		}

		resolved, err = scanWithdrawal(tx.QueryRow(ctx, GetWithdrawal, id))
		if err != nil {
			return fmt.Errorf("get withdrawal: %w", err)
		}

		if status == models.WithdrawalApproved {
			tag, err := tx.Exec(ctx, DebitUser, resolved.Amount, resolved.UserID)
			if err != nil {
				return fmt.Errorf("debit user: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return ErrInsufficientFunds
			}
		}

		if notify != nil && resolved.Phone != "" {
			if _, err := tx.Exec(ctx, InsertDispatch, uuid.New().String(), []string{resolved.Phone}, notify(*resolved)); err != nil {
				return fmt.Errorf("queue notification: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}
