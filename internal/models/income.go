package models

// Income represents a single income entry
type Income struct {
	Amount   float64 `json:"amount"`
	Source   string  `json:"source"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	UserID   int64   `json:"user_id"`
	Notes    *string `json:"notes,omitempty"`
}
