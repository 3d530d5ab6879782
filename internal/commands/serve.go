package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/config"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/handler"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/integrations/keyrate"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/middleware"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/scheduler"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/service"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the suggestions HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg.LogLevel, cmd.ErrOrStderr())

	clock, err := clockFor(cfg)
	if err != nil {
		return err
	}
	svc := service.NewService(logger, clock)

	sched := scheduler.New(logger)
	var keyRate handler.KeyRateProvider
	if cfg.KeyRateEnabled() {
		refresher := scheduler.NewKeyRateRefresher(keyrate.NewClient(cfg.KeyRate, logger), cfg.KeyRate.Timeout, logger)
		if err := sched.Add(cfg.KeyRate.Schedule, refresher.Job()); err != nil {
			return err
		}
		go refresher.Job()()
		keyRate = refresher
	}

	// Setup router
	r := mux.NewRouter()
	handler.NewHandler(svc, keyRate, logger, nil).Register(r)
	h := middleware.CORS(cfg.AllowedOrigins)(middleware.RequestID(middleware.Logging(logger)(r)))

	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Start()
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	sched.Stop(shutdownCtx)
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
