package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	InsertUser = `INSERT INTO USERS (id, email, phone, password, is_admin) 
						VALUES ($1, $2, $3, $4, $5) 
						RETURNING created_at;`
	userColumns    = `id, email, phone, password, balance, is_admin, created_at`
	GetUser        = `SELECT ` + userColumns + ` FROM USERS WHERE id=$1 AND deleted_at IS NULL;`
	GetUserByEmail = `SELECT ` + userColumns + ` FROM USERS WHERE email=$1 AND deleted_at IS NULL;`
	ListUsers      = `SELECT ` + userColumns + ` FROM USERS WHERE deleted_at IS NULL ORDER BY created_at;`
	DeleteUser     = `UPDATE USERS SET deleted_at = NOW() WHERE id=$1 AND deleted_at IS NULL;`
	CreditUser     = `UPDATE USERS SET balance = balance + $1 
						WHERE id = $2 AND deleted_at IS NULL 
						RETURNING ` + userColumns + `;`
	InsertCredit = `INSERT INTO CREDITS (id, user_id, amount, reason) VALUES ($1, $2, $3, $4);`
	GetAllPhones = `SELECT phone FROM USERS WHERE deleted_at IS NULL AND phone <> '' ORDER BY created_at;`
	GetPhones    = `SELECT phone FROM USERS 
						WHERE id::text = ANY($1) AND deleted_at IS NULL AND phone <> '' 
						ORDER BY created_at;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func scanUser(row pgx.Row) (*models.UserData, error) {
	var user models.UserData
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Balance,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserDatabase) AddUser(ctx context.Context, user models.UserData) (*models.UserData, error) {
	user.UserID = uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertUser,
		user.UserID,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.IsAdmin,
	).Scan(&user.CreatedAt)
	if err == nil {
		return &user, nil
	}

	// Проверяем именно нарушение уникальности
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrAlreadyExists
	}
	return nil, fmt.Errorf("failed to add user: %w", err)
}

func (s *UserDatabase) GetUser(ctx context.Context, userID string) (*models.UserData, error) {
	user, err := scanUser(s.DB.Pool.QueryRow(ctx, GetUser, userID))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, err
}

func (s *UserDatabase) GetUserByEmail(ctx context.Context, email string) (*models.UserData, error) {
	user, err := scanUser(s.DB.Pool.QueryRow(ctx, GetUserByEmail, email))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, err
}

func (s *UserDatabase) ListUsers(ctx context.Context) ([]models.UserData, error) {
	rows, err := s.DB.Pool.Query(ctx, ListUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.UserData
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return users, fmt.Errorf("failed scan user data: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// DeleteUser - мягкое удаление: пользователь пропадает из списков и рассылок
func (s *UserDatabase) DeleteUser(ctx context.Context, userID string) error {
	tag, err := s.DB.Pool.Exec(ctx, DeleteUser, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreditUser - начисление средств и запись об этом в одной транзакции
func (s *UserDatabase) CreditUser(ctx context.Context, userID string, amount decimal.Decimal, reason string) (*models.UserData, error) {
	var user *models.UserData
	err := s.DB.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var err error
		user, err = scanUser(tx.QueryRow(ctx, CreditUser, amount, userID))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return err
			}
			return fmt.Errorf("update balance: %w", err)
		}
		if _, err = tx.Exec(ctx, InsertCredit, uuid.New().String(), userID, amount, reason); err != nil {
			return fmt.Errorf("insert credit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetPhones - телефоны активных пользователей из списка, либо всех при пустом списке
func (s *UserDatabase) GetPhones(ctx context.Context, userIDs []string) ([]string, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if len(userIDs) == 0 {
		rows, err = s.DB.Pool.Query(ctx, GetAllPhones)
	} else {
		rows, err = s.DB.Pool.Query(ctx, GetPhones, userIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get phones: %w", err)
	}
	phones, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed scan phones: %w", err)
	}
	return phones, nil
}
