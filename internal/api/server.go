package api

import (
	"github.com/vytor/jeeprep/internal/metrics"
	"github.com/vytor/jeeprep/internal/repository"
	"github.com/vytor/jeeprep/internal/services"
)

// Server exposes the practice services over HTTP.
type Server struct {
	ProblemService    services.ProblemService
	SubmissionService services.SubmissionService
	StatsService      services.StatsService
	UserService       services.UserService
	ReviewService     services.ReviewService

	// Health is pinged by /readyz. A nil Health always reports ready.
	Health repository.Pinger
	// Metrics is optional; without it /metrics is not mounted.
	Metrics *metrics.Metrics

	// DefaultUserID is credited with POST /submit bodies that carry no userId.
	DefaultUserID string
}
