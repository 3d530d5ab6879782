package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/config"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/service"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/utils"
)

func newAnalyzeCommand() *cobra.Command {
	var kind, file, now string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print suggestions for records read from a JSON file",
		Long: "Runs one analyzer over a JSON array of records and prints the same " +
			"payload the HTTP endpoint would return. Kinds: budget, expense, income, loan, savings.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if now != "" {
				cfg.Now = now
			}
			clock, err := clockFor(cfg)
			if err != nil {
				return err
			}
			svc := service.NewService(newLogger(cfg.LogLevel, cmd.ErrOrStderr()), clock)

			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			out, err := analyze(svc, kind, data)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "record kind (budget, expense, income, loan, savings)")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file to read, - for stdin")
	cmd.Flags().StringVar(&now, "now", "", "reference time in "+utils.DateTimeLayout+" layout (overrides ADVISOR_NOW)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return data, nil
}

func analyze(svc *service.Service, kind string, data []byte) (interface{}, error) {
	switch kind {
	case "budget":
		var budgets []models.Budget
		if err := decodeRecords(data, &budgets); err != nil {
			return nil, err
		}
		return svc.BudgetSuggestions(budgets), nil
	case "expense":
		var expenses []models.Expense
		if err := decodeRecords(data, &expenses); err != nil {
			return nil, err
		}
		return svc.ExpenseSuggestions(expenses)
	case "income":
		var incomes []models.Income
		if err := decodeRecords(data, &incomes); err != nil {
			return nil, err
		}
		return svc.IncomeSuggestions(incomes)
	case "loan":
		var loans []models.Loan
		if err := decodeRecords(data, &loans); err != nil {
			return nil, err
		}
		return svc.OptimizeLoanPayments(loans)
	case "savings":
		var goals []models.SavingsGoal
		if err := decodeRecords(data, &goals); err != nil {
			return nil, err
		}
		out, err := svc.SavingsSuggestions(goals)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("no savings suggestions found")
		}
		return models.SavingsSuggestions{Suggestions: out}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

func decodeRecords(data []byte, dst interface{}) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing records: %w", err)
	}
	return nil
}
