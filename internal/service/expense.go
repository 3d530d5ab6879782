package service

import (
	"fmt"
	"time"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/utils"
)

const (
	highExpenseThreshold     = 500.0
	highExpenseSavingsRate   = 0.2
	dominantCategoryShare    = 0.3
	utilitiesCategory        = "Utilities"
	utilitiesTotalThreshold  = 4000.0
	utilitiesMinRecordCount  = 10
	utilitiesSavingsRate     = 0.15
	noExpenseDataSuggestion  = "No expense data provided for analysis."
	zeroExpensesSuggestion   = "Total expenses are zero. No analysis possible."
	stableExpensesSuggestion = "Your expense patterns are stable. Continue monitoring to maintain financial health."
)

// recentExpenseCutoff bounds the "highest recent expense" rule
var recentExpenseCutoff = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// ExpenseSuggestions reviews spending for large purchases, dominant
// categories and utility savings
func (s *Service) ExpenseSuggestions(expenses []models.Expense) (list models.SuggestionList, err error) {
	defer s.recoverFault("expense", &err)

	if len(expenses) == 0 {
		return models.NewSuggestionList(noExpenseDataSuggestion), nil
	}
	amounts := make([]float64, 0, len(expenses))
	for _, e := range expenses {
		amounts = append(amounts, e.Amount)
	}
	total := utils.Sum(amounts...)
	if total.IsZero() {
		return models.NewSuggestionList(zeroExpensesSuggestion), nil
	}

	var texts []string

	high, found, err := highestRecentExpense(expenses)
	if err != nil {
		return models.SuggestionList{}, &AnalysisError{Analyzer: "expense", Err: err}
	}
	if found && high.Amount > highExpenseThreshold {
		texts = append(texts, fmt.Sprintf(
			"Your highest recent expense was %s on %s in the %s category. "+
				"Consider reducing discretionary spending in this area to save approximately %s monthly.",
			utils.Dollars(high.Amount), high.Title, high.Category, utils.Dollars(high.Amount*highExpenseSavingsRate)))
	}

	byCategory := utils.NewTotals()
	for _, e := range expenses {
		byCategory.Add(e.Category, e.Amount)
	}
	grand := total.InexactFloat64()
	if category, amount, ok := byCategory.Max(); ok && amount/grand > dominantCategoryShare {
		texts = append(texts, fmt.Sprintf(
			"Your spending is heavily weighted toward %s (%s%%). "+
				"Review and adjust your budget to balance spending across categories.",
			category, utils.Fixed(amount/grand*100, 1)))
	}

	utilities := byCategory.Get(utilitiesCategory)
	if utilities > utilitiesTotalThreshold && len(expenses) > utilitiesMinRecordCount {
		texts = append(texts, fmt.Sprintf(
			"Your utility expenses total %s. Consider energy-saving measures "+
				"to save up to %s by optimizing electricity and water usage.",
			utils.Dollars(utilities), utils.Dollars(utilities*utilitiesSavingsRate)))
	}

	if len(texts) == 0 {
		texts = append(texts, stableExpensesSuggestion)
	}
	s.logResult("expense", len(expenses), len(texts))
	return models.NewSuggestionList(texts...), nil
}

// highestRecentExpense returns the largest expense dated on or after the
// cutoff. The first one wins on ties.
func highestRecentExpense(expenses []models.Expense) (models.Expense, bool, error) {
	var (
		best  models.Expense
		found bool
	)
	for _, e := range expenses {
		date, err := utils.ParseDateTimeStrict(e.Date)
		if err != nil {
			return models.Expense{}, false, fmt.Errorf("expense %d: %w", e.ID, err)
		}
		if date.Before(recentExpenseCutoff) {
			continue
		}
		if !found || e.Amount > best.Amount {
			best, found = e, true
		}
	}
	return best, found, nil
}
