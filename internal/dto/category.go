package dto

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateRuleRequest struct {
	Keyword  string `json:"keyword" validate:"required"`
	Category string `json:"category" validate:"required"`
}

type RuleResponse struct {
	ID       string `json:"id"`
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}
