package service

import (
	"fmt"
	"strings"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/utils"
)

const (
	dominantSourceShare   = 0.7
	baseSavingsRate       = 0.20
	highIncomeSavingsRate = 0.30
	highIncomeThreshold   = 5000.0
	lowMonthShareOfMean   = 0.5

	noIncomeDataSuggestion = "No income data provided for analysis."
	zeroIncomeSuggestion   = "Total income is zero. No analysis possible."
)

// alternativeIncomeSources are proposed when one source dominates
var alternativeIncomeSources = []string{"Freelance", "Side Business", "Investments", "Real Estate"}

// IncomeSuggestions returns the diversification, savings allocation and
// income boost suggestions, in that order
func (s *Service) IncomeSuggestions(incomes []models.Income) (list models.SuggestionList, err error) {
	defer s.recoverFault("income", &err)

	if len(incomes) == 0 {
		return models.NewSuggestionList(noIncomeDataSuggestion), nil
	}
	amounts := make([]float64, 0, len(incomes))
	for _, in := range incomes {
		amounts = append(amounts, in.Amount)
	}
	total := utils.Sum(amounts...)
	if total.IsZero() {
		return models.NewSuggestionList(zeroIncomeSuggestion), nil
	}
	grand := total.InexactFloat64()

	texts := []string{
		diversification(incomes, grand),
		savingsAllocation(grand),
		incomeBoost(incomes),
	}
	s.logResult("income", len(incomes), len(texts))
	return models.NewSuggestionList(texts...), nil
}

// diversification checks sources in first-seen order and reports the first
// one above the dominance threshold
func diversification(incomes []models.Income, total float64) string {
	bySource := utils.NewTotals()
	for _, in := range incomes {
		bySource.Add(in.Source, in.Amount)
	}
	for _, source := range bySource.Keys() {
		share := bySource.Get(source) / total
		if share <= dominantSourceShare {
			continue
		}
		alternatives := make([]string, 0, len(alternativeIncomeSources))
		for _, alt := range alternativeIncomeSources {
			if alt != source {
				alternatives = append(alternatives, alt)
			}
		}
		return fmt.Sprintf("Your income is heavily reliant (%s%%) on %s. Consider diversifying by exploring %s.",
			utils.Fixed(share*100, 1), source, strings.Join(alternatives, ", "))
	}
	return "Your income is well-diversified. Maintain current strategy!"
}

func savingsAllocation(total float64) string {
	rate := baseSavingsRate
	if total > highIncomeThreshold {
		rate = highIncomeSavingsRate
	}
	save := total * rate
	return fmt.Sprintf(
		"Based on your total income of %s, we recommend saving %s (%s%%). "+
			"Consider allocating this to a high-yield savings account or low-risk investment. "+
			"You can use the remaining %s for expenses and discretionary spending.",
		utils.Dollars(total), utils.Dollars(save), utils.Fixed(rate*100, 0), utils.Dollars(total-save))
}

// incomeBoost compares the weakest month against the monthly mean
func incomeBoost(incomes []models.Income) string {
	byMonth := utils.NewTotals()
	for _, in := range incomes {
		byMonth.Add(utils.MonthKey(in.Date), in.Amount)
	}
	month, low, ok := byMonth.Min()
	if !ok {
		return "No valid monthly income data available."
	}
	mean := byMonth.Total().InexactFloat64() / float64(byMonth.Len())
	if low >= mean*lowMonthShareOfMean {
		return "Your income is stable across months. No immediate boost needed!"
	}

	categories := make(map[string]bool)
	for _, in := range incomes {
		categories[in.Category] = true
	}
	var actions []string
	if categories["Employment"] {
		actions = append(actions, "negotiating a raise with your employer")
	}
	if categories["Self-Employment"] {
		actions = append(actions, "taking on additional freelance projects or upskilling in a high-demand area like AI/ML")
	}
	actions = append(actions, "exploring side gigs such as tutoring or online content creation")

	return fmt.Sprintf("Your income in %s was low at %s. Consider %s to boost earnings.",
		month, utils.Dollars(low), joinAlternatives(actions))
}

// joinAlternatives renders "a, b or c"
func joinAlternatives(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
