package models

import (
	"encoding/json"
	"fmt"
)

// PaymentFrequency is the repayment cadence of a loan
type PaymentFrequency string

const (
	FrequencyWeekly   PaymentFrequency = "Weekly"
	FrequencyBiWeekly PaymentFrequency = "BiWeekly"
	FrequencyMonthly  PaymentFrequency = "Monthly"
)

// PaymentsPerYear returns how many installments the cadence implies
func (f PaymentFrequency) PaymentsPerYear() float64 {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyBiWeekly:
		return 26
	default:
		return 12
	}
}

// UnmarshalJSON rejects unknown frequencies
func (f *PaymentFrequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("payment_frequency: %w", err)
	}
	switch v := PaymentFrequency(s); v {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly:
		*f = v
		return nil
	}
	return fmt.Errorf("payment_frequency: unknown value %q", s)
}

// LoanStatus is the lifecycle state of a loan
type LoanStatus string

const (
	LoanStatusActive  LoanStatus = "Active"
	LoanStatusPaidOff LoanStatus = "PaidOff"
	LoanStatusDefault LoanStatus = "Default"
)

// UnmarshalJSON rejects unknown statuses
func (s *LoanStatus) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	switch st := LoanStatus(v); st {
	case LoanStatusActive, LoanStatusPaidOff, LoanStatusDefault:
		*s = st
		return nil
	}
	return fmt.Errorf("status: unknown value %q", v)
}

// LoanPayment is a single installment made against a loan
type LoanPayment struct {
	ID               int64   `json:"id"`
	PaymentDate      string  `json:"payment_date"` // ISO 8601, e.g. 2025-01-15T14:00:00Z
	AmountPaid       float64 `json:"amount_paid"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        *string `json:"created_at,omitempty"`
	LoanID           *int64  `json:"loan_id,omitempty"`
}

// Loan represents a loan and its repayment history
type Loan struct {
	ID                int64            `json:"id"`
	LoanType          string           `json:"loan_type"`
	LenderName        string           `json:"lender_name"`
	PrincipalAmount   float64          `json:"principal_amount"`
	TotalPayable      float64          `json:"total_payable"`
	TotalPaid         float64          `json:"total_paid"`
	Due               float64          `json:"due"`
	InterestRate      float64          `json:"interest_rate"` // percent
	NumberOfPayments  int              `json:"number_of_payments"`
	RemainingPayments int              `json:"remaining_payments"`
	StartDate         string           `json:"start_date"`
	EndDate           *string          `json:"end_date,omitempty"`
	NextPaymentDate   *string          `json:"next_payment_date,omitempty"`
	PaymentFrequency  PaymentFrequency `json:"payment_frequency"`
	Status            LoanStatus       `json:"status"`
	Notes             *string          `json:"notes,omitempty"`
	CreatedAt         *string          `json:"created_at,omitempty"`
	UpdatedAt         *string          `json:"updated_at,omitempty"`
	UserID            *int64           `json:"user_id,omitempty"`
	Payments          []LoanPayment    `json:"payments,omitempty"`
}

// Loan suggestion types
const (
	SuggestionIncrease  = "increase"
	SuggestionFrequency = "frequency"
	SuggestionEarly     = "early"
)

// Suggestion is a typed loan recommendation
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// LoanSuggestion groups the recommendations produced for one loan
type LoanSuggestion struct {
	LoanID      int64        `json:"loan_id"`
	LenderName  string       `json:"lender_name"`
	LoanType    string       `json:"loan_type"`
	StartDate   string       `json:"start_date"`
	EndDate     *string      `json:"end_date,omitempty"`
	Suggestions []Suggestion `json:"suggestions"`
}
