package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaskrrish/Go-QLab/internal/circuit"
	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/jaskrrish/Go-QLab/internal/config"
	"github.com/jaskrrish/Go-QLab/internal/handlers"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the circuit lab HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	sessionManager, err := newSessionManager(cfg, logger)
	if err != nil {
		return err
	}
	circuitHandler := handlers.NewCircuitHandler(sessionManager, logger)

	mux := http.NewServeMux()
	handlers.RegisterBase(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	circuitHandler.Register(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.LoggingMiddleware(logger, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.CleanupInterval.Duration > 0 {
		go cleanupLoop(ctx, sessionManager, cfg.CleanupInterval.Duration)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("random_source", cfg.RandomSource),
			zap.Int("initial_qubits", cfg.InitialQubits),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server shutdown")
	}
	return nil
}

func newSessionManager(cfg *config.Config, logger *zap.Logger) (*circuit.SessionManager, error) {
	var source quantum.RandomSource
	switch cfg.RandomSource {
	case config.RandomCrypto:
		source = quantum.NewCryptoSource()
	default:
		source = quantum.NewMathSource()
	}

	opts := circuit.ManagerOptions{
		InitialQubits: cfg.InitialQubits,
		MaxQubits:     cfg.MaxQubits,
		MaxSessions:   cfg.MaxSessions,
		SessionTTL:    cfg.SessionTTL.Duration,
	}

	return circuit.NewSessionManager(circuit.NewSimulatorBackend(source), opts, logger)
}

func cleanupLoop(ctx context.Context, sm *circuit.SessionManager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sm.CleanupExpiredSessions()
		}
	}
}
