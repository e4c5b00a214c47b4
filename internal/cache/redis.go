package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
)

const (
	versionKey  = "leaderboard:version"
	entryPrefix = "leaderboard:v"
)

// Redis is a LeaderboardCache backed by a Redis generation counter and versioned entries.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps client; cached boards expire after ttl.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) key(version int64) string {
	return entryPrefix + strconv.FormatInt(version, 10)
}

func (c *Redis) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, versionKey).Int64()
	if stderrors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *Redis) Get(ctx context.Context, version int64) ([]models.LeaderboardEntry, bool, error) {
	data, err := c.client.Get(ctx, c.key(version)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.FromContext(ctx).WithPrefix("leaderboard_cache").Warn("dropping unreadable entry %s: %v", c.key(version), err)
		return nil, false, nil
	}
	return entries, true, nil
}

func (c *Redis) Set(ctx context.Context, version int64, entries []models.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(version), data, c.ttl).Err()
}

func (c *Redis) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}

// Ping reports whether Redis is reachable.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
