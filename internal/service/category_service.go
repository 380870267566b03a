package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spendsense/internal/dto"
	"spendsense/internal/models"
	"spendsense/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	ruleRepo     *repository.RuleRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, ruleRepo *repository.RuleRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		ruleRepo:     ruleRepo,
		logger:       logger,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.CategoryResponse{
			ID:   c.ID.String(),
			Name: c.Name,
			Type: string(c.Type),
		})
	}

	return resp, nil
}

// CreateRule learns a keyword-to-category mapping for the user. The
// referenced category must already exist.
func (s *CategoryService) CreateRule(ctx context.Context, userID uuid.UUID, req *dto.CreateRuleRequest) (*dto.RuleResponse, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword must not be empty", ErrValidation)
	}

	category, err := s.categoryRepo.GetByName(ctx, req.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	rule := &models.CategoryRule{
		ID:         uuid.New(),
		Keyword:    keyword,
		CategoryID: category.ID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}

	return &dto.RuleResponse{
		ID:       rule.ID.String(),
		Keyword:  rule.Keyword,
		Category: category.Name,
	}, nil
}

func (s *CategoryService) ListRules(ctx context.Context, userID uuid.UUID) ([]dto.RuleResponse, error) {
	rules, err := s.ruleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		resp = append(resp, dto.RuleResponse{
			ID:       rule.ID.String(),
			Keyword:  rule.Keyword,
			Category: rule.Category.Name,
		})
	}

	return resp, nil
}

func (s *CategoryService) DeleteRule(ctx context.Context, userID, ruleID uuid.UUID) error {
	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if rule.UserID != userID {
		return ErrForbidden
	}

	return s.ruleRepo.Delete(ctx, ruleID)
}
