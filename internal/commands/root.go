package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/buildinfo"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/config"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/service"
)

// NewRootCommand creates the root CLI command. Without a subcommand it
// serves the HTTP API.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "advisor",
		Short:   "Personal finance suggestions backend",
		Version: fmt.Sprintf("%s (commit: %s)", buildinfo.Version, buildinfo.Commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newAnalyzeCommand())

	return rootCmd
}

// newLogger builds the JSON logger used by every command
func newLogger(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

// clockFor returns the pinned clock when ADVISOR_NOW is set
func clockFor(cfg *config.Config) (service.Clock, error) {
	fixed, err := cfg.FixedNow()
	if err != nil {
		return nil, err
	}
	if fixed == nil {
		return time.Now, nil
	}
	return service.FixedClock(*fixed), nil
}
