package service

import (
	"fmt"
	"io"
	"strings"

	"spendsense/internal/models"
)

// exportHeader is the first line of every exported CSV file.
const exportHeader = "Date,Category,Description,Type,Amount"

// WriteCSV serializes transactions as CSV, one line per transaction,
// description quoted. The column layout matches what the import endpoint
// of typical banking exports expects back: Date,Category,Description,Type,Amount.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	if _, err := fmt.Fprintln(w, exportHeader); err != nil {
		return err
	}

	for _, tx := range transactions {
		category := tx.CategoryName
		if category == "" {
			category = "Uncategorized"
		}
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
			tx.Date.Format(dateFormat),
			category,
			quoteField(tx.Description),
			tx.Type,
			tx.Amount.String(),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
