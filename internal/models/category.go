package models

import (
	"strings"

	"github.com/google/uuid"
)

// FlowType says whether a transaction increases (income) or decreases
// (expense) the user's balance.
type FlowType string

const (
	FlowIncome  FlowType = "INCOME"
	FlowExpense FlowType = "EXPENSE"
)

// ParseFlowType normalizes a stored or user-supplied type string.
// Comparison is case-insensitive to tolerate inconsistent stored casing.
func ParseFlowType(s string) (FlowType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(FlowIncome):
		return FlowIncome, true
	case string(FlowExpense):
		return FlowExpense, true
	}
	return "", false
}

// IsIncome reports whether f names the income flow, case-insensitively.
func (f FlowType) IsIncome() bool {
	return strings.EqualFold(string(f), string(FlowIncome))
}

// IsExpense reports whether f names the expense flow, case-insensitively.
func (f FlowType) IsExpense() bool {
	return strings.EqualFold(string(f), string(FlowExpense))
}

type Category struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Type FlowType  `db:"type"`
}
