package service

import (
	"strings"
	"testing"
	"time"

	"spendsense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	assert.Equal(t, "Date,Category,Description,Type,Amount\n", sb.String())
}

func TestWriteCSV_Rows(t *testing.T) {
	transactions := []models.Transaction{
		tx("1000", models.FlowIncome, date(2025, time.January, 5), "Salary"),
		tx("50.25", models.FlowExpense, date(2025, time.January, 6), "Groceries"),
	}
	transactions[0].Description = "ACME payroll"
	transactions[1].Description = "store"

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, transactions))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `2025-01-05,Salary,"ACME payroll",INCOME,1000`, lines[1])
	assert.Equal(t, `2025-01-06,Groceries,"store",EXPENSE,50.25`, lines[2])
}

func TestWriteCSV_QuotesInDescriptionEscaped(t *testing.T) {
	transaction := tx("5", models.FlowExpense, date(2025, time.March, 1), "Fees")
	transaction.Description = `the "special" fee`

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, []models.Transaction{transaction}))

	assert.Contains(t, sb.String(), `"the ""special"" fee"`)
}

func TestWriteCSV_MissingCategoryName(t *testing.T) {
	transaction := tx("5", models.FlowExpense, date(2025, time.March, 1), "")

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, []models.Transaction{transaction}))

	assert.Contains(t, sb.String(), "Uncategorized")
}
