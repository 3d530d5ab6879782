package models

// SubBudget is a dated allocation inside a budget
type SubBudget struct {
	ID        *int64  `json:"id,omitempty"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	CreatedAt *string `json:"created_at,omitempty"`
	BudgetID  *int64  `json:"budget_id,omitempty"`
}

// Budget represents a user budget with its remaining balance
type Budget struct {
	ID          *int64      `json:"id,omitempty"`
	Title       string      `json:"title"`
	TotalAmount float64     `json:"total_amount"`
	Remaining   float64     `json:"remaining"`
	Type        string      `json:"type"` // "Monthly", "Annually", ...
	StartDate   string      `json:"start_date"`
	EndDate     *string     `json:"end_date,omitempty"`
	CreatedAt   *string     `json:"created_at,omitempty"`
	UpdatedAt   *string     `json:"updated_at,omitempty"`
	UserID      *int64      `json:"user_id,omitempty"`
	SubEvents   []SubBudget `json:"subEvents"`
}

// Budget types
const (
	BudgetTypeMonthly  = "Monthly"
	BudgetTypeAnnually = "Annually"
)

// Suggestion priorities
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
)

// BudgetSuggestion is a prioritized budgeting recommendation
type BudgetSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"created_at"`
}
