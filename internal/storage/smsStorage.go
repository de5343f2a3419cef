package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	dispatchColumns = `id, phones, message, status, attempts, last_error, created_at`
	InsertDispatch  = `INSERT INTO SMS_DISPATCHES (id, phones, message) VALUES ($1, $2, $3);`
	GetDispatch     = `SELECT ` + dispatchColumns + ` FROM SMS_DISPATCHES WHERE id = $1;`
	GetDispatches   = `SELECT ` + dispatchColumns + ` FROM SMS_DISPATCHES ORDER BY created_at DESC LIMIT $1;`
	// захваченная, но не завершённая рассылка возвращается в работу через минуту
	ClaimDispatches = `UPDATE SMS_DISPATCHES 
						SET attempts = attempts + 1,
						    claimed_at = NOW(),
						    updated_at = NOW()
						WHERE id IN (
						    SELECT id FROM SMS_DISPATCHES 
						    WHERE status = 'queued' AND attempts < $2
						      AND (claimed_at IS NULL OR claimed_at < NOW() - INTERVAL '1 minute')
						    ORDER BY created_at 
						    LIMIT $1
						    FOR UPDATE SKIP LOCKED
						)
						RETURNING ` + dispatchColumns + `;`
	// захват, завершившийся аварийно на последней попытке, закрывается как failed
	FailExhaustedDispatches = `UPDATE SMS_DISPATCHES 
						SET status = 'failed',
						    last_error = 'delivery attempts exhausted',
						    claimed_at = NULL,
						    updated_at = NOW()
						WHERE status = 'queued' AND attempts >= $1
						  AND claimed_at IS NOT NULL AND claimed_at < NOW() - INTERVAL '1 minute';`
	UpdateDispatch = `UPDATE SMS_DISPATCHES 
						SET status = $2, last_error = $3, claimed_at = NULL, updated_at = NOW()
						WHERE id = $1;`
	// возврат в очередь без расхода попытки
	ReleaseDispatch = `UPDATE SMS_DISPATCHES 
						SET status = 'queued',
						    attempts = GREATEST(attempts - 1, 0),
						    last_error = $2,
						    claimed_at = NULL,
						    updated_at = NOW()
						WHERE id = $1;`
)

type SMSDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSMSStorage(db *Database) SMSStorage {
	return &SMSDatabase{DB: db}
}

func scanDispatch(row pgx.Row) (*models.SMSDispatch, error) {
	var d models.SMSDispatch
	err := row.Scan(
		&d.ID,
		&d.Phones,
		&d.Message,
		&d.Status,
		&d.Attempts,
		&d.LastError,
		&d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// AddDispatch - одна запись на всю рассылку
func (s *SMSDatabase) AddDispatch(ctx context.Context, phones []string, message string) (*models.SMSDispatch, error) {
	id := uuid.New().String()
	if _, err := s.DB.Pool.Exec(ctx, InsertDispatch, id, phones, message); err != nil {
		return nil, fmt.Errorf("insert dispatch: %w", err)
	}
	d, err := scanDispatch(s.DB.Pool.QueryRow(ctx, GetDispatch, id))
	if err != nil {
		return nil, fmt.Errorf("get dispatch: %w", err)
	}
	return d, nil
}

func (s *SMSDatabase) GetDispatches(ctx context.Context, limit int) ([]models.SMSDispatch, error) {
	rows, err := s.DB.Pool.Query(ctx, GetDispatches, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatches: %w", err)
	}
	return collectDispatches(rows)
}

// ClaimDispatches - забирает пачку рассылок в работу, конкурентные воркеры не пересекаются
func (s *SMSDatabase) ClaimDispatches(ctx context.Context, count int, maxAttempts int) ([]models.SMSDispatch, error) {
	if _, err := s.DB.Pool.Exec(ctx, FailExhaustedDispatches, maxAttempts); err != nil {
		return nil, fmt.Errorf("failed to close exhausted dispatches: %w", err)
	}
	rows, err := s.DB.Pool.Query(ctx, ClaimDispatches, count, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to claim dispatches: %w", err)
	}
	return collectDispatches(rows)
}

func (s *SMSDatabase) UpdateDispatch(ctx context.Context, id string, status string, lastError string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateDispatch, id, status, lastError)
	if err != nil {
		return fmt.Errorf("failed to update dispatch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ReleaseDispatch - рассылка не отправлялась (шлюз на паузе), попытка не засчитывается
func (s *SMSDatabase) ReleaseDispatch(ctx context.Context, id string, lastError string) error {
	tag, err := s.DB.Pool.Exec(ctx, ReleaseDispatch, id, lastError)
	if err != nil {
		return fmt.Errorf("failed to release dispatch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectDispatches(rows pgx.Rows) ([]models.SMSDispatch, error) {
	defer rows.Close()
	var dispatches []models.SMSDispatch
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return dispatches, fmt.Errorf("failed scan dispatch data: %w", err)
		}
		dispatches = append(dispatches, *d)
	}
	return dispatches, rows.Err()
}
