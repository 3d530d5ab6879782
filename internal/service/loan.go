package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/utils"
)

const (
	loanLookbackMonths      = 6
	highInterestThreshold   = 10.0
	paymentIncreaseFactor   = 1.2
	earlyPayoffMaxRemaining = 3
	monthsPerYear           = 12.0
)

// OptimizeLoanPayments suggests payment changes for loans opened within the
// last six months. Loans without any applicable suggestion are omitted and
// input order is preserved.
func (s *Service) OptimizeLoanPayments(loans []models.Loan) (out []models.LoanSuggestion, err error) {
	defer s.recoverFault("loan", &err)

	cutoff := utils.AddMonths(utils.TruncateDay(s.now()), -loanLookbackMonths)
	out = make([]models.LoanSuggestion, 0, len(loans))
	for _, loan := range loans {
		start, perr := utils.ParseDateTime(loan.StartDate)
		if perr != nil {
			return nil, &AnalysisError{Analyzer: "loan", Err: fmt.Errorf("loan %d start_date: %w", loan.ID, perr)}
		}
		if utils.TruncateDay(start).Before(cutoff) {
			continue
		}

		principal, perr := remainingPrincipal(loan)
		if perr != nil {
			return nil, &AnalysisError{Analyzer: "loan", Err: perr}
		}
		suggestions := loanSuggestions(loan, principal)
		if len(suggestions) == 0 {
			continue
		}
		out = append(out, models.LoanSuggestion{
			LoanID:      loan.ID,
			LenderName:  loan.LenderName,
			LoanType:    loan.LoanType,
			StartDate:   loan.StartDate,
			EndDate:     loan.EndDate,
			Suggestions: suggestions,
		})
	}
	s.logResult("loan", len(loans), len(out))
	return out, nil
}

// remainingPrincipal prefers the balance after the latest payment, then the
// recorded due amount, then principal minus what was paid
func remainingPrincipal(loan models.Loan) (float64, error) {
	if len(loan.Payments) > 0 {
		var (
			latest     *models.LoanPayment
			latestDate time.Time
		)
		for i := range loan.Payments {
			p := &loan.Payments[i]
			date, err := utils.ParseDateTime(p.PaymentDate)
			if err != nil {
				return 0, fmt.Errorf("loan %d payment %d payment_date: %w", loan.ID, p.ID, err)
			}
			if latest == nil || date.After(latestDate) {
				latest, latestDate = p, date
			}
		}
		return latest.RemainingBalance, nil
	}
	if loan.Due != 0 {
		return loan.Due, nil
	}
	return loan.PrincipalAmount - loan.TotalPaid, nil
}

func loanSuggestions(loan models.Loan, principal float64) []models.Suggestion {
	if loan.RemainingPayments <= 0 {
		return nil
	}
	var (
		remaining       = float64(loan.RemainingPayments)
		perYear         = loan.PaymentFrequency.PaymentsPerYear()
		perMonth        = perYear / monthsPerYear
		currentPayment  = principal / remaining
		monthlyInterest = loan.InterestRate / 100 * principal / monthsPerYear
		cadence         = strings.ToLower(string(loan.PaymentFrequency))
		suggestions     []models.Suggestion
	)

	if loan.InterestRate > highInterestThreshold && principal != 0 {
		increased := currentPayment * paymentIncreaseFactor
		newTerm := principal / increased * (monthsPerYear / perYear)
		saved := (remaining - newTerm) * (monthlyInterest / perMonth)
		suggestions = append(suggestions, models.Suggestion{
			Text: fmt.Sprintf("Increase %s payment for %s loan by 20%% to %s. "+
				"This could save approximately %s in interest and reduce the term by %d %s periods.",
				cadence, loan.LenderName, utils.Taka(increased), utils.Taka(saved), int(math.Trunc(remaining-newTerm)), cadence),
			Type: models.SuggestionIncrease,
		})
	}

	if (loan.PaymentFrequency == models.FrequencyWeekly || loan.PaymentFrequency == models.FrequencyBiWeekly) && principal > 0 {
		monthlyPayment := principal / (remaining * perMonth)
		newTerm := principal / monthlyPayment
		saved := (remaining - newTerm) * (monthlyInterest / perMonth)
		if saved > 0 {
			suggestions = append(suggestions, models.Suggestion{
				Text: fmt.Sprintf("Switch %s loan to monthly payments of %s. "+
					"This could save %s in interest and reduce the term by %d months.",
					loan.LenderName, utils.Taka(monthlyPayment), utils.Taka(saved), int(math.Trunc(remaining-newTerm))),
				Type: models.SuggestionFrequency,
			})
		}
	}

	if loan.RemainingPayments <= earlyPayoffMaxRemaining && principal > 0 {
		payoff := principal + monthlyInterest*remaining/perMonth
		suggestions = append(suggestions, models.Suggestion{
			Text: fmt.Sprintf("Pay off %s loan early with %s to clear the remaining %d %s payments.",
				loan.LenderName, utils.Taka(payoff), loan.RemainingPayments, cadence),
			Type: models.SuggestionEarly,
		})
	}
	return suggestions
}
