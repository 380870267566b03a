package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryRule is a learned keyword-to-category mapping used to
// auto-classify imported transactions. Rules are scoped per user.
type CategoryRule struct {
	ID         uuid.UUID `db:"id"`
	Keyword    string    `db:"keyword"`
	CategoryID uuid.UUID `db:"category_id"`
	UserID     uuid.UUID `db:"user_id"`
	CreatedAt  time.Time `db:"created_at"`

	// Category is populated by the rule queries' join.
	Category Category `db:"-"`
}
