package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"spendsense/internal/dto"
	"spendsense/internal/models"
	"spendsense/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionService struct {
	txRepo       *repository.TransactionRepository
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, categoryRepo *repository.CategoryRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List returns a page of the user's transactions within [start, end],
// newest first.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, start, end time.Time, page, size int) (*dto.TransactionPageResponse, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	total, err := s.txRepo.CountByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	transactions, err := s.txRepo.ListPageByUserAndDateRange(ctx, userID, start, end, size, page*size)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, toTransactionResponse(tx))
	}

	return &dto.TransactionPageResponse{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	flowType, ok := models.ParseFlowType(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: type must be INCOME or EXPENSE", ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative", ErrValidation)
	}

	date, err := time.Parse(dateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, req.Date)
	}

	category, err := s.categoryRepo.GetByName(ctx, req.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	tx := &models.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Amount:       req.Amount,
		Type:         flowType,
		Description:  req.Description,
		Date:         date,
		CreatedAt:    time.Now(),
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	resp := toTransactionResponse(*tx)
	return &resp, nil
}

// Delete removes a transaction after verifying the caller owns it.
func (s *TransactionService) Delete(ctx context.Context, userID, txID uuid.UUID) error {
	tx, err := s.txRepo.GetByID(ctx, txID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if tx.UserID != userID {
		return ErrForbidden
	}

	return s.txRepo.Delete(ctx, txID)
}

// Export writes the user's transactions within [start, end] as CSV.
func (s *TransactionService) Export(ctx context.Context, userID uuid.UUID, start, end time.Time, w io.Writer) error {
	transactions, err := s.txRepo.ListByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		return err
	}

	return WriteCSV(w, transactions)
}

func toTransactionResponse(tx models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Category:    tx.CategoryName,
		Description: tx.Description,
		Date:        tx.Date.Format(dateFormat),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
