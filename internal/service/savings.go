package service

import (
	"fmt"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/stats"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/utils"
)

const (
	paceHorizonDays     = 30.0
	expenseCutRate      = 0.2
	expenseCutClusters  = 2
	expenseCutLabel     = 1
	automationOffset    = 1000.0
	growthForecastSteps = 1
)

// expenseCutTable is a fixed sample of spending, not derived from the
// request. The cut suggestions are therefore the same for every caller.
var expenseCutTable = []struct {
	Category string
	Amount   float64
}{
	{Category: "Leisure", Amount: 700.0},
	{Category: "Household", Amount: 3000.25},
}

// SavingsSuggestions concatenates pace, expense-cut and growth suggestions
func (s *Service) SavingsSuggestions(goals []models.SavingsGoal) (out []string, err error) {
	defer s.recoverFault("savings", &err)

	out = append(out, s.savingsPace(goals)...)
	out = append(out, s.expenseCuts()...)
	out = append(out, s.savingsGrowth(goals)...)
	s.logResult("savings", len(goals), len(out))
	return out, nil
}

// savingsPace spreads the amount still missing for each open goal over the
// next thirty days
func (s *Service) savingsPace(goals []models.SavingsGoal) []string {
	now := utils.WallClock(s.now())
	var out []string
	for _, g := range goals {
		if g.EndDate == nil || *g.EndDate == "" || !g.InProgress() {
			continue
		}
		end, err := utils.ParseDateTime(*g.EndDate)
		if err != nil {
			s.log.WithField("goal_id", g.ID).Debugf("Skipping goal with invalid end date: %v", err)
			continue
		}
		daysLeft := int(end.Sub(now).Hours() / 24)
		if daysLeft <= 0 {
			continue
		}
		model, err := stats.FitLinear([]float64{float64(daysLeft)}, []float64{g.TargetAmount - g.CurrentAmount})
		if err != nil {
			s.log.WithField("goal_id", g.ID).Debugf("Skipping goal, pace model failed: %v", err)
			continue
		}
		monthly := model.Predict(paceHorizonDays) / paceHorizonDays
		if monthly > 0 {
			out = append(out, fmt.Sprintf("Increase monthly savings for %s by %s", g.Title, utils.Taka(monthly)))
		}
	}
	return out
}

// expenseCuts clusters the sample spending table by amount and proposes a
// cut for every item in the second cluster
func (s *Service) expenseCuts() []string {
	amounts := make([]float64, 0, len(expenseCutTable))
	for _, item := range expenseCutTable {
		amounts = append(amounts, item.Amount)
	}
	clusters, err := stats.KMeans1D(amounts, expenseCutClusters)
	if err != nil {
		s.log.Debugf("Skipping expense cuts: %v", err)
		return nil
	}
	var out []string
	for i, label := range clusters.Labels {
		if label != expenseCutLabel {
			continue
		}
		item := expenseCutTable[i]
		out = append(out, fmt.Sprintf("Cut %s by %s", item.Category, utils.Taka(item.Amount*expenseCutRate)))
	}
	return out
}

// savingsGrowth forecasts the next balance of each open goal from its
// balance before any recorded entries
func (s *Service) savingsGrowth(goals []models.SavingsGoal) []string {
	var out []string
	for _, g := range goals {
		if !g.InProgress() {
			continue
		}
		history := []float64{g.CurrentAmount - g.EntriesTotal()}
		model, err := stats.FitARIMA111(history)
		if err != nil {
			s.log.WithField("goal_id", g.ID).Debugf("Skipping goal, forecast failed: %v", err)
			continue
		}
		automated := model.Forecast(growthForecastSteps)[0] + automationOffset
		if automated > g.CurrentAmount {
			out = append(out, fmt.Sprintf("Automate %s monthly savings/side income for %s",
				utils.Taka(automated-g.CurrentAmount), g.Title))
		}
	}
	return out
}
