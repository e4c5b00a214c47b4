package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vytor/jeeprep/internal/cache"
	"github.com/vytor/jeeprep/internal/config"
	"github.com/vytor/jeeprep/internal/db"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/repository"
	"github.com/vytor/jeeprep/internal/repository/jsonfile"
	"github.com/vytor/jeeprep/internal/repository/sqlite"
	"github.com/vytor/jeeprep/internal/services"
	"gopkg.in/yaml.v3"
)

const redisDialTimeout = 3 * time.Second

// loadConfig reads and validates the environment configuration and installs
// the default logger it describes.
func loadConfig() (config.Config, *logger.Logger, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
		logger.WithColors(logger.ParseFormat(cfg.LogFormat) == logger.FormatText),
	)
	logger.SetDefault(log)
	return cfg, log, nil
}

// openStore opens the storage driver selected by STORAGE_DRIVER.
func openStore(cfg config.Config, log *logger.Logger) (*repository.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverFile:
		log.Info("using file storage: dir=%s", cfg.DataDir)
		return jsonfile.NewStore(cfg.DataDir)
	default:
		log.Info("using sqlite storage: path=%s", cfg.DBPath)
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(database), nil
	}
}

// openLeaderboardCache connects to Redis when REDIS_ADDR is set. An unreachable
// server is logged and replaced by the no-op cache.
func openLeaderboardCache(ctx context.Context, cfg config.Config, log *logger.Logger) (cache.LeaderboardCache, func() error) {
	if cfg.RedisAddr == "" {
		log.Debug("REDIS_ADDR not set, leaderboard cache disabled")
		return cache.Nop{}, func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	lc := cache.NewRedis(client, cfg.LeaderboardTTL)

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := lc.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable at %s, leaderboard cache disabled: %v", cfg.RedisAddr, err)
		_ = client.Close()
		return cache.Nop{}, func() error { return nil }
	}

	log.Info("leaderboard cache enabled: redis=%s, ttl=%s", cfg.RedisAddr, cfg.LeaderboardTTL)
	return lc, client.Close
}

// readProblemsFile decodes a problem bank from JSON or YAML, chosen by extension.
// Both formats accept a bare list or a {"problems": [...]} document.
func readProblemsFile(path string) ([]models.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var wrapped struct {
			Problems []models.Problem `yaml:"problems"`
		}
		if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Problems != nil {
			return wrapped.Problems, nil
		}
		var problems []models.Problem
		if err := yaml.Unmarshal(data, &problems); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if problems == nil {
			problems = []models.Problem{}
		}
		return problems, nil
	default:
		problems, err := models.DecodeProblems(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return problems, nil
	}
}

// seed imports the problems in path and makes sure defaultUser exists.
func seed(ctx context.Context, store *repository.Store, path, defaultUser string) (int, error) {
	problems, err := readProblemsFile(path)
	if err != nil {
		return 0, err
	}

	added, err := services.NewProblemService(store.Problems).ImportProblems(ctx, problems)
	if err != nil {
		return 0, err
	}
	if defaultUser != "" {
		if _, err := services.NewUserService(store.Users).EnsureUser(ctx, defaultUser); err != nil {
			return added, err
		}
	}
	return added, nil
}
