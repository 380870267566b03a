package dto

import "github.com/shopspring/decimal"

type StatsResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

type MonthlyStatsResponse struct {
	Month   string          `json:"month"` // JAN..DEC
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type CategoryStatsResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
