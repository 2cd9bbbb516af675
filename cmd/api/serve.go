package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/mood-journal/internal/api"
	"github.com/blaisecz/mood-journal/internal/api/handler"
	"github.com/blaisecz/mood-journal/internal/seed"
	"github.com/blaisecz/mood-journal/internal/telemetry"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var flagPort string

func init() {
	serveCmd.Flags().StringVarP(&flagPort, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialise tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}

	if cfg.Seed {
		log.Info("seeding database with sample data", "env", "SEED=true")
		if err := seed.Run(ctx, db, time.Now().UTC(), log); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	svc := buildServices(cfg, db, log)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := svc.tracer.Close(flushCtx); err != nil {
			log.Warn("langfuse flush failed", "error", err)
		}
	}()

	router := api.NewRouter(api.Handlers{
		Users:      handler.NewUserHandler(svc.users),
		Tracking:   handler.NewTrackingHandler(svc.moods, svc.bmi),
		Journal:    handler.NewJournalHandler(svc.journal),
		Insights:   handler.NewInsightsHandler(svc.insights, svc.reports),
		Companion:  handler.NewCompanionHandler(svc.companion),
		Counseling: handler.NewCounselingHandler(svc.counseling),
		Dashboard:  handler.NewDashboardHandler(svc.dashboard),
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
