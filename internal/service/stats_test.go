package service

import (
	"math/rand"
	"testing"
	"time"

	"spendsense/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(amount string, typ models.FlowType, date time.Time, categoryName string) models.Transaction {
	return models.Transaction{
		Amount:       dec(amount),
		Type:         typ,
		Date:         date,
		CategoryName: categoryName,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRangeTotals_Empty(t *testing.T) {
	summary := RangeTotals(nil)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func TestRangeTotals_BalanceIdentity(t *testing.T) {
	transactions := []models.Transaction{
		tx("1000", models.FlowIncome, date(2025, time.January, 5), "Salary"),
		tx("50", models.FlowExpense, date(2025, time.January, 6), "Groceries"),
		tx("30", models.FlowExpense, date(2025, time.February, 1), "Groceries"),
	}

	summary := RangeTotals(transactions)

	assert.True(t, summary.TotalIncome.Equal(dec("1000")))
	assert.True(t, summary.TotalExpense.Equal(dec("80")))
	assert.True(t, summary.Balance.Equal(dec("920")))
	assert.True(t, summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
}

func TestRangeTotals_DecimalPrecision(t *testing.T) {
	transactions := []models.Transaction{
		tx("0.1", models.FlowExpense, date(2025, time.March, 1), "Fees"),
		tx("0.2", models.FlowExpense, date(2025, time.March, 2), "Fees"),
	}

	summary := RangeTotals(transactions)
	assert.True(t, summary.TotalExpense.Equal(dec("0.3")), "0.1 + 0.2 must equal 0.3 exactly, got %s", summary.TotalExpense)
}

func TestRangeTotals_CaseInsensitiveType(t *testing.T) {
	transactions := []models.Transaction{
		tx("10", models.FlowType("Income"), date(2025, time.April, 1), "Salary"),
		tx("4", models.FlowType("expense"), date(2025, time.April, 2), "Fees"),
	}

	summary := RangeTotals(transactions)
	assert.True(t, summary.TotalIncome.Equal(dec("10")))
	assert.True(t, summary.TotalExpense.Equal(dec("4")))
}

func TestMonthlyBreakdown_EmptyHasTwelveZeroSlots(t *testing.T) {
	stats := MonthlyBreakdown(nil)

	require.Len(t, stats, 12)
	labels := []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
	for i, s := range stats {
		assert.Equal(t, labels[i], s.Month)
		assert.True(t, s.Income.IsZero())
		assert.True(t, s.Expense.IsZero())
	}
}

func TestMonthlyBreakdown_BucketsByCalendarMonth(t *testing.T) {
	transactions := []models.Transaction{
		tx("1000", models.FlowIncome, date(2025, time.January, 5), "Salary"),
		tx("50", models.FlowExpense, date(2025, time.January, 6), "Groceries"),
		tx("30", models.FlowExpense, date(2025, time.February, 1), "Groceries"),
	}

	stats := MonthlyBreakdown(transactions)
	require.Len(t, stats, 12)

	assert.True(t, stats[0].Income.Equal(dec("1000")))
	assert.True(t, stats[0].Expense.Equal(dec("50")))
	assert.True(t, stats[1].Income.IsZero())
	assert.True(t, stats[1].Expense.Equal(dec("30")))

	for i := 2; i < 12; i++ {
		assert.True(t, stats[i].Income.IsZero(), "month %s", stats[i].Month)
		assert.True(t, stats[i].Expense.IsZero(), "month %s", stats[i].Month)
	}
}

func TestMonthlyBreakdown_OrderIndependent(t *testing.T) {
	transactions := []models.Transaction{
		tx("1000", models.FlowIncome, date(2025, time.January, 5), "Salary"),
		tx("50", models.FlowExpense, date(2025, time.January, 6), "Groceries"),
		tx("30", models.FlowExpense, date(2025, time.February, 1), "Groceries"),
		tx("12.34", models.FlowExpense, date(2025, time.December, 24), "Gifts Given"),
	}

	expected := MonthlyBreakdown(transactions)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Transaction, len(transactions))
		copy(shuffled, transactions)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := MonthlyBreakdown(shuffled)
		require.Len(t, got, 12)
		for m := range expected {
			assert.True(t, got[m].Income.Equal(expected[m].Income))
			assert.True(t, got[m].Expense.Equal(expected[m].Expense))
		}
	}
}

func TestCategoryTotals_GroupsExpensesByName(t *testing.T) {
	transactions := []models.Transaction{
		tx("50", models.FlowExpense, date(2025, time.January, 6), "Groceries"),
		tx("30", models.FlowExpense, date(2025, time.February, 1), "Groceries"),
		tx("20", models.FlowExpense, date(2025, time.February, 2), "Fuel"),
		tx("1000", models.FlowIncome, date(2025, time.January, 5), "Salary"),
	}

	stats := CategoryTotals(transactions)
	require.Len(t, stats, 2)

	// Sorted by name for a stable response
	assert.Equal(t, "Fuel", stats[0].Category)
	assert.True(t, stats[0].Total.Equal(dec("20")))
	assert.Equal(t, "Groceries", stats[1].Category)
	assert.True(t, stats[1].Total.Equal(dec("80")))
}

func TestCategoryTotals_Empty(t *testing.T) {
	stats := CategoryTotals(nil)
	assert.Empty(t, stats)
}

func TestCategoryTotals_CaseInsensitiveType(t *testing.T) {
	transactions := []models.Transaction{
		tx("5", models.FlowType("Expense"), date(2025, time.May, 1), "Fees"),
		tx("5", models.FlowType("EXPENSE"), date(2025, time.May, 2), "Fees"),
	}

	stats := CategoryTotals(transactions)
	require.Len(t, stats, 1)
	assert.True(t, stats[0].Total.Equal(dec("10")))
}
