package service

import (
	"context"
	"time"

	"spendsense/internal/dto"
	"spendsense/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatsService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewStatsService(txRepo *repository.TransactionRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		txRepo: txRepo,
		logger: logger,
	}
}

// Totals computes income/expense/balance over [start, end].
func (s *StatsService) Totals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*dto.StatsResponse, error) {
	transactions, err := s.txRepo.ListByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := RangeTotals(transactions)
	return &summary, nil
}

// Monthly computes the twelve-slot breakdown for a calendar year.
func (s *StatsService) Monthly(ctx context.Context, userID uuid.UUID, year int) ([]dto.MonthlyStatsResponse, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	transactions, err := s.txRepo.ListByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return MonthlyBreakdown(transactions), nil
}

// CategoryChart computes per-category expense totals over the user's
// whole history.
func (s *StatsService) CategoryChart(ctx context.Context, userID uuid.UUID) ([]dto.CategoryStatsResponse, error) {
	transactions, err := s.txRepo.ListExpensesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return CategoryTotals(transactions), nil
}
