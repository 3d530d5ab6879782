package models

// Expense represents a single recorded expense
type Expense struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      string  `json:"date"` // Format: YYYY-MM-DD HH:MM:SS
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	UserID    int64   `json:"user_id"`
}
