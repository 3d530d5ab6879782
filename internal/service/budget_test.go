package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
)

func TestBudgetSuggestions_Empty(t *testing.T) {
	got := newTestService().BudgetSuggestions(nil)
	assert.Empty(t, got)
}

func TestBudgetSuggestions_AllRulesInOrder(t *testing.T) {
	budgets := []models.Budget{
		{Title: "Groceries", Type: models.BudgetTypeMonthly, TotalAmount: 1000, Remaining: 200},
		{Title: "Emergency Savings", Type: "Weekly", TotalAmount: 1000, Remaining: 900},
		{Title: "Insurance", Type: models.BudgetTypeAnnually, TotalAmount: 5000, Remaining: 5000, EndDate: strPtr("1970-01-01 06:00:00")},
	}
	got := newTestService().BudgetSuggestions(budgets)
	require.Len(t, got, 3)

	assert.Equal(t, "Adjust Annual Budget End Dates", got[0].Title)
	assert.Equal(t, models.PriorityHigh, got[0].Priority)
	assert.Equal(t, "Increase Monthly Savings", got[1].Title)
	assert.Equal(t, models.PriorityMedium, got[1].Priority)
	assert.Equal(t, "Create Monthly Expense Reserve", got[2].Title)
	assert.Equal(t, models.PriorityMedium, got[2].Priority)
	assert.Equal(t, "2025-07-13T14:36:00Z", got[0].CreatedAt)
}

func TestBudgetSuggestions_NoMatches(t *testing.T) {
	budgets := []models.Budget{
		{Title: "Insurance", Type: models.BudgetTypeAnnually, TotalAmount: 5000, Remaining: 100, EndDate: strPtr("2025-12-31 00:00:00")},
		{Title: "Holiday", Type: models.BudgetTypeAnnually, TotalAmount: 5000, Remaining: 100},
		{Title: "Savings Pot", Type: models.BudgetTypeMonthly, TotalAmount: 1000, Remaining: 500},
	}
	assert.Empty(t, newTestService().BudgetSuggestions(budgets))
}

func TestBudgetSuggestions_ZeroTotalIsSkipped(t *testing.T) {
	budgets := []models.Budget{
		{Title: "Fuel", Type: models.BudgetTypeMonthly, TotalAmount: 0, Remaining: 0},
	}
	assert.NotPanics(t, func() {
		assert.Empty(t, newTestService().BudgetSuggestions(budgets))
	})
}

func TestBudgetSuggestions_SingleRule(t *testing.T) {
	budgets := []models.Budget{
		{Title: "Rent", Type: models.BudgetTypeMonthly, TotalAmount: 1000, Remaining: 100},
		{Title: "Food", Type: models.BudgetTypeMonthly, TotalAmount: 1000, Remaining: 300},
	}
	got := newTestService().BudgetSuggestions(budgets)
	require.Len(t, got, 1)
	assert.Equal(t, "Create Monthly Expense Reserve", got[0].Title)
}
