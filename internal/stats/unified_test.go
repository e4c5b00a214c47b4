package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/stats"
)

func TestUnified(t *testing.T) {
	problems := map[models.ProblemID]models.Problem{
		"1": {ID: "1", Title: "Kinematics", Difficulty: models.DifficultyEasy},
		"2": {ID: "2", Title: "Equilibrium", Difficulty: models.DifficultyMedium},
		"3": {ID: "3", Title: "Integrals", Difficulty: models.DifficultyHard},
	}
	var all []models.Submission
	for i := 0; i < 6; i++ {
		all = append(all, sub("u1", "3", false, now.Add(-time.Duration(10-i)*time.Minute)))
	}
	all = append(all,
		sub("u1", "1", true, now.Add(-time.Hour)),
		sub("u1", "1", true, now.Add(-50*time.Minute)),
		sub("u1", "2", true, now),
		sub("u2", "1", true, now),
	)

	u := stats.Unified(models.User{ID: "u1", Name: "Asha"}, all, problems, now, time.UTC)

	assert.Equal(t, "Asha", u.User.Name)
	assert.Equal(t, 9, u.Submissions.Total)
	assert.Equal(t, 3, u.Submissions.Correct)
	assert.Equal(t, 33.33, u.Submissions.AcceptanceRate)
	assert.Equal(t, models.DifficultyBreakdown{Easy: 1, Medium: 1}, u.ProblemsByDifficulty)
	assert.Equal(t, 1, u.StudyStreak)
	assert.Equal(t, 1, u.Rank)

	require.Len(t, u.RecentActivity, stats.RecentActivityLimit)
	assert.Equal(t, models.ProblemID("2"), u.RecentActivity[0].ProblemID)
	assert.Equal(t, "Equilibrium", u.RecentActivity[0].ProblemTitle)
	assert.Equal(t, models.DifficultyMedium, u.RecentActivity[0].Difficulty)
}

func TestUnified_NewUser(t *testing.T) {
	u := stats.Unified(models.User{ID: "fresh"}, nil, nil, now, time.UTC)

	assert.Equal(t, 0, u.Submissions.Total)
	assert.Equal(t, 0.0, u.Submissions.AcceptanceRate)
	assert.NotNil(t, u.RecentActivity)
	assert.Empty(t, u.RecentActivity)
	assert.Equal(t, 1, u.Rank)
	assert.Equal(t, "0h0m", u.TimeSpent)
}

func TestLeaderboard(t *testing.T) {
	all := []models.Submission{
		sub("alice", "1", true, now),
		sub("alice", "2", true, daysAgo(10)),
		sub("bob", "1", true, now),
		sub("carol", "1", false, now),
	}
	names := map[string]string{"alice": "Alice"}

	board := stats.Leaderboard(all, names, now, 0)
	require.Len(t, board, 3)
	assert.Equal(t, models.LeaderboardEntry{Rank: 1, UserID: "alice", Name: "Alice", ProblemsSolved: 2, Accuracy: 100, RecentSubmissions: 1}, board[0])
	assert.Equal(t, "bob", board[1].Name)
	assert.Equal(t, 3, board[2].Rank)

	top := stats.Leaderboard(all, names, now, 2)
	assert.Len(t, top, 2)
}
