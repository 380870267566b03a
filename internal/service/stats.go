package service

import (
	"sort"

	"spendsense/internal/dto"
	"spendsense/internal/models"

	"github.com/shopspring/decimal"
)

var monthLabels = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// RangeTotals folds a set of transactions into income/expense totals and
// their balance. Empty input yields a zero-valued summary, never an error.
func RangeTotals(transactions []models.Transaction) dto.StatsResponse {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, tx := range transactions {
		if tx.Type.IsIncome() {
			totalIncome = totalIncome.Add(tx.Amount)
		} else if tx.Type.IsExpense() {
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}

	return dto.StatsResponse{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
}

// MonthlyBreakdown buckets transactions into twelve calendar-month slots.
// All twelve months are present in order, zero-valued when empty, so a
// chart never has missing months. Order of the input does not matter.
func MonthlyBreakdown(transactions []models.Transaction) []dto.MonthlyStatsResponse {
	stats := make([]dto.MonthlyStatsResponse, 12)
	for i, label := range monthLabels {
		stats[i] = dto.MonthlyStatsResponse{
			Month:   label,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, tx := range transactions {
		slot := &stats[int(tx.Date.Month())-1]
		if tx.Type.IsIncome() {
			slot.Income = slot.Income.Add(tx.Amount)
		} else {
			slot.Expense = slot.Expense.Add(tx.Amount)
		}
	}

	return stats
}

// CategoryTotals sums expense transactions per category name. Grouping by
// name relies on the store's uniqueness constraint on category names.
// Results are sorted by name for a stable response.
func CategoryTotals(transactions []models.Transaction) []dto.CategoryStatsResponse {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.Type.IsExpense() {
			continue
		}
		totals[tx.CategoryName] = totals[tx.CategoryName].Add(tx.Amount)
	}

	stats := make([]dto.CategoryStatsResponse, 0, len(totals))
	for name, total := range totals {
		stats = append(stats, dto.CategoryStatsResponse{Category: name, Total: total})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })

	return stats
}
