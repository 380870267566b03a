package repository

import (
	"context"

	"spendsense/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RuleRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRuleRepository(db *pgxpool.Pool, logger *zap.Logger) *RuleRepository {
	return &RuleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RuleRepository) Create(ctx context.Context, rule *models.CategoryRule) error {
	query := squirrel.Insert("category_rules").
		Columns("id", "keyword", "category_id", "user_id", "created_at").
		Values(rule.ID, rule.Keyword, rule.CategoryID, rule.UserID, rule.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns the user's rules joined with their categories.
// Ordering is insertion order (created_at, id) and is what makes the
// categorizer's first-match-wins policy deterministic.
func (r *RuleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CategoryRule, error) {
	query := squirrel.Select(
		"r.id", "r.keyword", "r.category_id", "r.user_id", "r.created_at",
		"c.id", "c.name", "c.type",
	).
		From("category_rules r").
		Join("categories c ON c.id = r.category_id").
		Where(squirrel.Eq{"r.user_id": userID}).
		OrderBy("r.created_at", "r.id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []models.CategoryRule
	for rows.Next() {
		var rule models.CategoryRule
		if err := rows.Scan(
			&rule.ID, &rule.Keyword, &rule.CategoryID, &rule.UserID, &rule.CreatedAt,
			&rule.Category.ID, &rule.Category.Name, &rule.Category.Type,
		); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *RuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CategoryRule, error) {
	query := squirrel.Select("id", "keyword", "category_id", "user_id", "created_at").
		From("category_rules").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rule models.CategoryRule
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rule.ID, &rule.Keyword, &rule.CategoryID, &rule.UserID, &rule.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rule, nil
}

func (r *RuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("category_rules").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
