package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	Amount      decimal.Decimal `db:"amount"`
	Type        FlowType        `db:"type"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`

	// CategoryName is populated by the transaction queries' join.
	CategoryName string `db:"-"`
}
