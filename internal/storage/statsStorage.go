package storage

import (
	"context"
	"fmt"

	"github.com/denmor86/lucky-triple/internal/models"
)

const GetStats = `SELECT
	(SELECT COUNT(*) FROM USERS WHERE deleted_at IS NULL),
	(SELECT COALESCE(SUM(balance), 0) FROM USERS WHERE deleted_at IS NULL),
	(SELECT COUNT(*) FROM WAGERS),
	(SELECT COUNT(*) FROM WAGERS WHERE profit > 0),
	(SELECT COALESCE(SUM(bet), 0) FROM WAGERS),
	(SELECT COALESCE(SUM(amount), 0) FROM WITHDRAWALS WHERE status = 'approved'),
	(SELECT COUNT(*) FROM WITHDRAWALS WHERE status = 'pending'),
	(SELECT COALESCE(-SUM(profit), 0) FROM WAGERS);`

type StatsDatabase struct {
	DB *Database
}

// Создание хранилища
func NewStatsStorage(db *Database) StatsStorage {
	return &StatsDatabase{DB: db}
}

func (s *StatsDatabase) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := s.DB.Pool.QueryRow(ctx, GetStats).Scan(
		&stats.TotalUsers,
		&stats.TotalBalance,
		&stats.TotalBets,
		&stats.TotalWins,
		&stats.TotalWagered,
		&stats.TotalWithdrawals,
		&stats.PendingWithdrawals,
		&stats.HouseProfit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}
