package models

import "github.com/shopspring/decimal"

// DashboardStats - сводка для консоли администратора
type DashboardStats struct {
	TotalUsers         int64           `json:"totalUsers"`
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	TotalBets          int64           `json:"totalBets"`
	TotalWins          int64           `json:"totalWins"`
	TotalWagered       decimal.Decimal `json:"totalWagered"`
	TotalWithdrawals   decimal.Decimal `json:"totalWithdrawals"`
	PendingWithdrawals int64           `json:"pendingWithdrawals"`
	HouseProfit        decimal.Decimal `json:"houseProfit"`
}
