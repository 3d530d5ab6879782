package service

import (
	"strings"
	"time"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
)

const (
	// unsetEndDate is what the budgeting app stores when no end date was picked
	unsetEndDate = "1970-01-01 06:00:00"

	maxBudgetSuggestions = 3
)

// BudgetSuggestions flags budgeting anti-patterns. Rules are evaluated in a
// fixed order and at most three suggestions are returned.
func (s *Service) BudgetSuggestions(budgets []models.Budget) []models.BudgetSuggestion {
	createdAt := s.now().Format(time.RFC3339)
	suggestions := make([]models.BudgetSuggestion, 0, maxBudgetSuggestions)

	if anyBudget(budgets, unsetAnnualEndDate) {
		suggestions = append(suggestions, models.BudgetSuggestion{
			Title:       "Adjust Annual Budget End Dates",
			Description: "Set realistic end dates for annual budgets to better track progress.",
			Priority:    models.PriorityHigh,
			CreatedAt:   createdAt,
		})
	}
	if anyBudget(budgets, underusedSavings) {
		suggestions = append(suggestions, models.BudgetSuggestion{
			Title:       "Increase Monthly Savings",
			Description: "Boost monthly savings contributions to meet targets like the emergency fund more effectively.",
			Priority:    models.PriorityMedium,
			CreatedAt:   createdAt,
		})
	}
	if anyBudget(budgets, strainedMonthly) {
		suggestions = append(suggestions, models.BudgetSuggestion{
			Title:       "Create Monthly Expense Reserve",
			Description: "Establish a reserve for recurring expenses to avoid overspending.",
			Priority:    models.PriorityMedium,
			CreatedAt:   createdAt,
		})
	}

	if len(suggestions) > maxBudgetSuggestions {
		suggestions = suggestions[:maxBudgetSuggestions]
	}
	s.logResult("budget", len(budgets), len(suggestions))
	return suggestions
}

func anyBudget(budgets []models.Budget, match func(models.Budget) bool) bool {
	for _, b := range budgets {
		if match(b) {
			return true
		}
	}
	return false
}

func unsetAnnualEndDate(b models.Budget) bool {
	return b.Type == models.BudgetTypeAnnually && b.EndDate != nil && *b.EndDate == unsetEndDate
}

func underusedSavings(b models.Budget) bool {
	return strings.Contains(b.Title, "Savings") && b.Remaining > b.TotalAmount*0.5
}

func strainedMonthly(b models.Budget) bool {
	if b.Type != models.BudgetTypeMonthly || b.TotalAmount == 0 {
		return false
	}
	return b.Remaining/b.TotalAmount < 0.5
}
