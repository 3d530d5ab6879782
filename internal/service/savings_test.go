package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
)

// fixedCut is produced from the built-in sample table for every request
const fixedCut = "Cut Household by 600.05 BDT"

func vacationGoal() models.SavingsGoal {
	return models.SavingsGoal{
		ID:            1,
		Title:         "Vacation",
		TargetAmount:  10000,
		CurrentAmount: 5000,
		StartDate:     "2025-01-01",
		EndDate:       strPtr("2025-12-31"),
		Status:        models.GoalStatusInProgress,
		GoalEntries: []models.GoalEntry{
			{ID: 1, Amount: 250, CurrentAmount: 4850, EntryDate: "2025-05-01"},
			{ID: 2, Amount: 150, CurrentAmount: 5000, EntryDate: "2025-06-01"},
		},
	}
}

func TestSavingsSuggestions_AllRules(t *testing.T) {
	got, err := newTestService().SavingsSuggestions([]models.SavingsGoal{vacationGoal()})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Increase monthly savings for Vacation by 166.67 BDT",
		fixedCut,
		"Automate 600.00 BDT monthly savings/side income for Vacation",
	}, got)
}

func TestSavingsSuggestions_CutsAreNotDataDriven(t *testing.T) {
	got, err := newTestService().SavingsSuggestions(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{fixedCut}, got)
}

func TestSavingsSuggestions_IgnoresGoalsNotInProgress(t *testing.T) {
	goal := vacationGoal()
	goal.Status = "Completed"
	got, err := newTestService().SavingsSuggestions([]models.SavingsGoal{goal})
	require.NoError(t, err)
	assert.Equal(t, []string{fixedCut}, got)
}

func TestSavingsSuggestions_PaceNeedsFutureEndDate(t *testing.T) {
	noEnd := vacationGoal()
	noEnd.EndDate = nil

	past := vacationGoal()
	past.EndDate = strPtr("2025-07-01")

	invalid := vacationGoal()
	invalid.EndDate = strPtr("someday")

	for _, goal := range []models.SavingsGoal{noEnd, past, invalid} {
		got, err := newTestService().SavingsSuggestions([]models.SavingsGoal{goal})
		require.NoError(t, err)
		assert.Equal(t, []string{
			fixedCut,
			"Automate 600.00 BDT monthly savings/side income for Vacation",
		}, got)
	}
}

func TestSavingsSuggestions_NoPaceWhenTargetReached(t *testing.T) {
	goal := vacationGoal()
	goal.TargetAmount = 5000
	goal.GoalEntries = []models.GoalEntry{{Amount: 1500}}

	got, err := newTestService().SavingsSuggestions([]models.SavingsGoal{goal})
	require.NoError(t, err)
	// forecast 3500 + 1000 stays below the current 5000
	assert.Equal(t, []string{fixedCut}, got)
}

func TestSavingsSuggestions_Idempotent(t *testing.T) {
	svc := newTestService()
	in := []models.SavingsGoal{vacationGoal()}
	first, err := svc.SavingsSuggestions(in)
	require.NoError(t, err)
	second, err := svc.SavingsSuggestions(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
