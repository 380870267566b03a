package service

import (
	"testing"

	"spendsense/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func category(name string, typ models.FlowType) models.Category {
	return models.Category{ID: uuid.New(), Name: name, Type: typ}
}

func rule(keyword string, cat models.Category) models.CategoryRule {
	return models.CategoryRule{
		ID:         uuid.New(),
		Keyword:    keyword,
		CategoryID: cat.ID,
		Category:   cat,
	}
}

func TestAssign_FirstMatchWins(t *testing.T) {
	food := category("Dining Out", models.FlowExpense)
	coffee := category("Coffee & Snacks", models.FlowExpense)
	fallback := category("General", models.FlowExpense)

	rules := []models.CategoryRule{
		rule("starbucks", food),
		rule("coffee", coffee),
	}

	got, flowType := Assign("STARBUCKS COFFEE #4521", rules, fallback)
	assert.Equal(t, food.Name, got.Name, "first matching rule must win even when a later rule also matches")
	assert.Equal(t, models.FlowExpense, flowType)
}

func TestAssign_OrderSensitivity(t *testing.T) {
	a := category("A", models.FlowExpense)
	b := category("B", models.FlowExpense)
	fallback := category("General", models.FlowExpense)

	forward := []models.CategoryRule{rule("market", a), rule("super", b)}
	reversed := []models.CategoryRule{rule("super", b), rule("market", a)}

	gotForward, _ := Assign("supermarket", forward, fallback)
	gotReversed, _ := Assign("supermarket", reversed, fallback)

	assert.Equal(t, "A", gotForward.Name)
	assert.Equal(t, "B", gotReversed.Name)
}

func TestAssign_CaseInsensitive(t *testing.T) {
	netflix := category("Subscriptions", models.FlowExpense)
	fallback := category("General", models.FlowExpense)

	got, _ := Assign("NETFLIX.COM monthly", []models.CategoryRule{rule("NetFlix", netflix)}, fallback)
	assert.Equal(t, netflix.Name, got.Name)
}

func TestAssign_FallbackWhenNoMatch(t *testing.T) {
	salary := category("Salary", models.FlowIncome)
	fallback := category("General", models.FlowExpense)

	rules := []models.CategoryRule{rule("payroll", salary)}

	got, flowType := Assign("grocery store", rules, fallback)
	assert.Equal(t, fallback.Name, got.Name)
	assert.Equal(t, models.FlowExpense, flowType)
}

func TestAssign_EmptyDescriptionAndRules(t *testing.T) {
	fallback := category("General", models.FlowExpense)

	got, flowType := Assign("", nil, fallback)
	assert.Equal(t, fallback.Name, got.Name)
	assert.Equal(t, fallback.Type, flowType)
}

func TestAssign_RuleFlowTypeFollowsCategory(t *testing.T) {
	salary := category("Salary", models.FlowIncome)
	fallback := category("General", models.FlowExpense)

	got, flowType := Assign("ACME CORP PAYROLL", []models.CategoryRule{rule("payroll", salary)}, fallback)
	assert.Equal(t, salary.Name, got.Name)
	assert.Equal(t, models.FlowIncome, flowType)
}
