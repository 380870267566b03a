package service

import (
	"strings"

	"spendsense/internal/models"
)

// Assign picks a category and flow type for a transaction description.
//
// The description is matched case-insensitively against the user's
// keyword rules in the order the rule repository returns them
// (created_at, id): the first rule whose keyword is a substring of the
// description wins, so rule order is significant. When nothing matches,
// the fallback category applies. Pure function, never fails.
func Assign(description string, rules []models.CategoryRule, fallback models.Category) (models.Category, models.FlowType) {
	lowerDesc := strings.ToLower(description)

	for _, rule := range rules {
		if strings.Contains(lowerDesc, strings.ToLower(rule.Keyword)) {
			return rule.Category, rule.Category.Type
		}
	}

	return fallback, fallback.Type
}
