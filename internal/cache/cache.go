// Package cache holds the derived leaderboard between submissions.
//
// Entries are stored under a key that embeds a version counter. Every new
// submission bumps the counter, so a reader never sees a board computed
// before the latest append; stale versions simply expire.
package cache

import (
	"context"

	"github.com/vytor/jeeprep/internal/models"
)

// LeaderboardCache stores the full, unlimited leaderboard.
type LeaderboardCache interface {
	// Version returns the current generation.
	Version(ctx context.Context) (int64, error)
	// Get returns the board cached for version, ok is false on a miss.
	Get(ctx context.Context, version int64) ([]models.LeaderboardEntry, bool, error)
	Set(ctx context.Context, version int64, entries []models.LeaderboardEntry) error
	// Invalidate starts a new generation.
	Invalidate(ctx context.Context) error
}

// Nop never caches. Used when no Redis address is configured.
type Nop struct{}

func (Nop) Version(context.Context) (int64, error) { return 0, nil }

func (Nop) Get(context.Context, int64) ([]models.LeaderboardEntry, bool, error) {
	return nil, false, nil
}

func (Nop) Set(context.Context, int64, []models.LeaderboardEntry) error { return nil }

func (Nop) Invalidate(context.Context) error { return nil }
