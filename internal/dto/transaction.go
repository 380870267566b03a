package dto

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" validate:"required"` // ISO-8601 calendar date
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   string          `json:"created_at"`
}

type TransactionPageResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
	Total int64                 `json:"total"`
}

type SkippedRow struct {
	Index  int    `json:"index"` // 1-based row index in the uploaded file
	Reason string `json:"reason"`
}

type ImportResponse struct {
	Imported int          `json:"imported"`
	Skipped  []SkippedRow `json:"skipped"`
}
