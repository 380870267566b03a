package repository

import (
	"context"
	"time"

	"spendsense/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

var transactionColumns = []string{
	"t.id", "t.user_id", "t.category_id", "t.amount", "t.type", "t.description", "t.date", "t.created_at",
	"c.name",
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "category_id", "amount", "type", "description", "date", "created_at").
		Values(tx.ID, tx.UserID, tx.CategoryID, tx.Amount, tx.Type, tx.Description, tx.Date, tx.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Amount, &tx.Type, &tx.Description, &tx.Date, &tx.CreatedAt,
		&tx.CategoryName,
	)
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUserAndDateRange returns the user's transactions within
// [start, end], newest first.
func (r *TransactionRepository) ListByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.user_id": userID}).
		Where(squirrel.GtOrEq{"t.date": start}).
		Where(squirrel.LtOrEq{"t.date": end}).
		OrderBy("t.date DESC", "t.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

// ListPageByUserAndDateRange is ListByUserAndDateRange with LIMIT/OFFSET
// pagination.
func (r *TransactionRepository) ListPageByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time, limit, offset int) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.user_id": userID}).
		Where(squirrel.GtOrEq{"t.date": start}).
		Where(squirrel.LtOrEq{"t.date": end}).
		OrderBy("t.date DESC", "t.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) CountByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ListExpensesByUser returns every expense transaction of the user.
// Type matching is case-insensitive to catch legacy rows stored as
// "Expense" rather than "EXPENSE".
func (r *TransactionRepository) ListExpensesByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions t").
		Join("categories c ON c.id = t.category_id").
		Where(squirrel.Eq{"t.user_id": userID}).
		Where(squirrel.Expr("UPPER(t.type) = ?", string(models.FlowExpense))).
		OrderBy("t.date DESC", "t.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query squirrel.SelectBuilder) ([]models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Amount, &tx.Type, &tx.Description, &tx.Date, &tx.CreatedAt,
			&tx.CategoryName,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
