package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleBasic   = "BASIC"
	RolePremium = "PREMIUM"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
