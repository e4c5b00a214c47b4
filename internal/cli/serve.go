package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vytor/jeeprep/internal/api"
	"github.com/vytor/jeeprep/internal/metrics"
	"github.com/vytor/jeeprep/internal/services"
)

const shutdownTimeout = 30 * time.Second

// NewServeCmd builds the CLI subcommand that runs the HTTP API.
func NewServeCmd(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *addr)
		},
	}
}

func runServer(ctx context.Context, addrFlag string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if addrFlag != "" {
		cfg.Addr = addrFlag
	}

	log.Info("jeeprep server starting")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("storage_driver=%s", cfg.StorageDriver)
	log.Debug("stats_timezone=%s", cfg.StatsTimezone)
	log.Debug("log_level=%s", cfg.LogLevel)

	store, err := openStore(cfg, log)
	if err != nil {
		log.Error("failed to open store: %v", err)
		return err
	}
	defer func() {
		log.Debug("closing store")
		if err := store.Close(); err != nil {
			log.Warn("failed to close store: %v", err)
		}
	}()

	if cfg.SeedFile != "" {
		added, err := seed(ctx, store, cfg.SeedFile, cfg.DefaultUserID)
		if err != nil {
			log.Error("failed to seed problems from %s: %v", cfg.SeedFile, err)
			return err
		}
		log.Info("seeded %d new problems from %s", added, cfg.SeedFile)
	} else if _, err := services.NewUserService(store.Users).EnsureUser(ctx, cfg.DefaultUserID); err != nil {
		log.Error("failed to ensure default user: %v", err)
		return err
	}

	leaderboard, closeCache := openLeaderboardCache(ctx, cfg, log)
	defer func() { _ = closeCache() }()

	m := metrics.New()
	srv := &api.Server{
		ProblemService: services.NewProblemService(store.Problems),
		SubmissionService: services.NewSubmissionService(store, leaderboard,
			services.WithSubmissionObserver(m),
		),
		StatsService: services.NewStatsService(store, leaderboard,
			services.WithLocation(cfg.Location()),
			services.WithStatsObserver(m),
		),
		UserService:   services.NewUserService(store.Users),
		ReviewService: services.NewReviewService(store),
		Health:        store.Health,
		Metrics:       m,
		DefaultUserID: cfg.DefaultUserID,
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case sig := <-stop:
		log.Info("received signal %v, initiating graceful shutdown", sig)
	case <-ctx.Done():
		log.Info("context canceled, initiating graceful shutdown")
	case err, ok := <-serveErr:
		if ok {
			log.Error("HTTP server error: %v", err)
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
		return err
	}

	log.Info("jeeprep server stopped")
	return nil
}
