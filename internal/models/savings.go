package models

// GoalStatusInProgress is the only status the savings analyzer acts on
const GoalStatusInProgress = "In Progress"

// GoalEntry is a dated contribution towards a savings goal
type GoalEntry struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	CurrentAmount float64 `json:"current_amount"`
	EntryDate     string  `json:"entry_date"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	GoalID        int64   `json:"goal_id"`
}

// SavingsGoal represents a savings target and its progress
type SavingsGoal struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	TargetAmount  float64     `json:"target_amount"`
	CurrentAmount float64     `json:"current_amount"`
	StartDate     string      `json:"start_date"`
	EndDate       *string     `json:"end_date"`
	Status        string      `json:"status"`
	GoalEntries   []GoalEntry `json:"goal_entries"`
}

// InProgress reports whether the goal is still being saved for
func (g SavingsGoal) InProgress() bool {
	return g.Status == GoalStatusInProgress
}

// EntriesTotal sums the contributions recorded for the goal
func (g SavingsGoal) EntriesTotal() float64 {
	var total float64
	for _, e := range g.GoalEntries {
		total += e.Amount
	}
	return total
}
