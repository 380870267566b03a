package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"spendsense/internal/dto"
	"spendsense/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateFormat = "2006-01-02"

// fallbackCategoryName is assigned when no keyword rule matches a row.
const fallbackCategoryName = "General"

// transactionStore is the slice of TransactionRepository the importer needs.
type transactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
}

// categoryStore must get-or-create atomically; see CategoryRepository.
type categoryStore interface {
	GetOrCreate(ctx context.Context, name string, flowType models.FlowType) (*models.Category, error)
}

type ruleStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CategoryRule, error)
}

type ImportService struct {
	transactions transactionStore
	categories   categoryStore
	rules        ruleStore
	logger       *zap.Logger
}

func NewImportService(transactions transactionStore, categories categoryStore, rules ruleStore, logger *zap.Logger) *ImportService {
	return &ImportService{
		transactions: transactions,
		categories:   categories,
		rules:        rules,
		logger:       logger,
	}
}

// ImportCSV reads transactions from an uploaded CSV file and persists
// them for the owner. The first row is a header and always skipped. A row
// that fails to parse is skipped and recorded with its 1-based index; the
// batch continues. Rows are persisted independently, so a failure midway
// leaves prior rows committed.
//
// Expected columns: date (ISO-8601), description, amount. Extra fields
// are ignored.
func (s *ImportService) ImportCSV(ctx context.Context, userID uuid.UUID, file io.Reader) (*dto.ImportResponse, error) {
	rules, err := s.rules.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load category rules: %w", err)
	}

	fallback, err := s.categories.GetOrCreate(ctx, fallbackCategoryName, models.FlowExpense)
	if err != nil {
		return nil, fmt.Errorf("resolve fallback category: %w", err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrValidation, err)
	}

	result := &dto.ImportResponse{Skipped: []dto.SkippedRow{}}

	for i := 1; i < len(rows); i++ {
		tx, err := parseRow(rows[i])
		if err != nil {
			result.Skipped = append(result.Skipped, dto.SkippedRow{Index: i, Reason: err.Error()})
			continue
		}

		category, flowType := Assign(tx.Description, rules, *fallback)
		tx.ID = uuid.New()
		tx.UserID = userID
		tx.CategoryID = category.ID
		tx.CategoryName = category.Name
		tx.Type = flowType
		tx.CreatedAt = time.Now()

		if err := s.transactions.Create(ctx, tx); err != nil {
			s.logger.Warn("Failed to persist imported row",
				zap.Int("row", i),
				zap.Error(err),
			)
			result.Skipped = append(result.Skipped, dto.SkippedRow{Index: i, Reason: "persist failed"})
			continue
		}

		result.Imported++
	}

	return result, nil
}

func parseRow(row []string) (*models.Transaction, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(row))
	}

	date, err := time.Parse(dateFormat, strings.TrimSpace(row[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", row[0])
	}

	rawAmount := strings.TrimSpace(row[2])
	if rawAmount == "" {
		return nil, fmt.Errorf("empty amount")
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", row[2])
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount must be non-negative")
	}

	return &models.Transaction{
		Date:        date,
		Description: strings.TrimSpace(row[1]),
		Amount:      amount,
	}, nil
}
