package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	settingsColumns = `version, min_bet, max_bet, house_fee, mult_three, mult_two, mult_one, mult_none, updated_at`
	GetSettings     = `SELECT ` + settingsColumns + ` FROM GAME_SETTINGS WHERE id = 1;`
	UpdateSettings  = `UPDATE GAME_SETTINGS 
						SET version = version + 1,
						    min_bet = $1,
						    max_bet = $2,
						    house_fee = $3,
						    mult_three = $4,
						    mult_two = $5,
						    mult_one = $6,
						    mult_none = $7,
						    updated_at = NOW()
						WHERE id = 1
						RETURNING ` + settingsColumns + `;`
)

type SettingsDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSettingsStorage(db *Database) SettingsStorage {
	return &SettingsDatabase{DB: db}
}

func scanSettings(row pgx.Row) (*models.GameSettings, error) {
	var s models.GameSettings
	err := row.Scan(
		&s.Version,
		&s.MinBet,
		&s.MaxBet,
		&s.HouseFee,
		&s.PayoutMultipliers.ThreeMatches,
		&s.PayoutMultipliers.TwoMatches,
		&s.PayoutMultipliers.OneMatch,
		&s.PayoutMultipliers.NoMatch,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (s *SettingsDatabase) GetSettings(ctx context.Context) (*models.GameSettings, error) {
	settings, err := scanSettings(s.DB.Pool.QueryRow(ctx, GetSettings))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, err
}

// UpdateSettings - заменяет настройки целиком, версия увеличивается на единицу
func (s *SettingsDatabase) UpdateSettings(ctx context.Context, settings models.GameSettings) (*models.GameSettings, error) {
	m := settings.PayoutMultipliers
	updated, err := scanSettings(s.DB.Pool.QueryRow(ctx, UpdateSettings,
		settings.MinBet,
		settings.MaxBet,
		settings.HouseFee,
		m.ThreeMatches,
		m.TwoMatches,
		m.OneMatch,
		m.NoMatch,
	))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return updated, err
}
