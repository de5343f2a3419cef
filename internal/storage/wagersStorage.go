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
	wagerColumns = `id, user_id, round_key, bet, guesses, winning_numbers, matches, payout, fee, profit, balance_after, created_at`
	LockBalance  = `SELECT balance FROM USERS WHERE id = $1 AND deleted_at IS NULL FOR UPDATE;`
	GetWager     = `SELECT ` + wagerColumns + ` FROM WAGERS WHERE user_id = $1 AND round_key = $2;`
	InsertWager  = `INSERT INTO WAGERS (` + wagerColumns + `) 
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()) 
						RETURNING created_at;`
	SetBalance = `UPDATE USERS SET balance = $1 WHERE id = $2;`
	GetWagers  = `SELECT ` + wagerColumns + ` FROM WAGERS WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`
)

type WagerDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWagersStorage(db *Database) WagersStorage {
	return &WagerDatabase{DB: db}
}

func scanWager(row pgx.Row) (*models.WagerData, error) {
	var w models.WagerData
	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.RoundKey,
		&w.Bet,
		&w.Guesses,
		&w.WinningNumbers,
		&w.Matches,
		&w.Payout,
		&w.Fee,
		&w.Profit,
		&w.BalanceAfter,
		&w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// PlaceWager - рассчитывает и сохраняет ставку под блокировкой строки пользователя.
// Повтор ключа раунда возвращает сохранённый результат и признак повтора.
func (s *WagerDatabase) PlaceWager(ctx context.Context, userID string, roundKey string, settle SettleFunc) (*models.WagerData, bool, error) {
	var (
		result   *models.WagerData
		replayed bool
	)
	err := s.DB.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var balance decimal.Decimal
		if err := tx.QueryRow(ctx, LockBalance, userID).Scan(&balance); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("lock balance: %w", err)
		}

		// блокировка пользователя сериализует ставки с одним ключом
		existing, err := scanWager(tx.QueryRow(ctx, GetWager, userID, roundKey))
		if err == nil {
			// баланс после ставки мог измениться: в ответе на повтор - текущий
			existing.BalanceAfter = balance
			result, replayed = existing, true
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("get wager: %w", err)
		}

		wager, err := settle(balance)
		if err != nil {
			return err
		}
		if wager.BalanceAfter.IsNegative() {
			return ErrInsufficientFunds
		}
		wager.ID = uuid.New().String()
		wager.UserID = userID
		wager.RoundKey = roundKey

		err = tx.QueryRow(ctx, InsertWager,
			wager.ID,
			wager.UserID,
			wager.RoundKey,
			wager.Bet,
			wager.Guesses,
			wager.WinningNumbers,
			wager.Matches,
			wager.Payout,
			wager.Fee,
			wager.Profit,
			wager.BalanceAfter,
		).Scan(&wager.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert wager: %w", err)
		}
		if _, err = tx.Exec(ctx, SetBalance, wager.BalanceAfter, userID); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		result = &wager
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, replayed, nil
}

func (s *WagerDatabase) GetWagers(ctx context.Context, userID string, limit int) ([]models.WagerData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetWagers, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get wagers: %w", err)
	}
	defer rows.Close()

	var wagers []models.WagerData
	for rows.Next() {
		w, err := scanWager(rows)
		if err != nil {
			return wagers, fmt.Errorf("failed scan wager data: %w", err)
		}
		wagers = append(wagers, *w)
	}
	return wagers, rows.Err()
}
