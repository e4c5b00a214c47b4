package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/jeeprep/internal/models"
	"github.com/vytor/jeeprep/internal/stats"
)

var now = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func sub(user string, problem models.ProblemID, correct bool, at time.Time) models.Submission {
	return models.Submission{UserID: user, ProblemID: problem, Answer: "A", IsCorrect: correct, Timestamp: at}
}

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestCount_SolvedIsDistinctCorrectProblems(t *testing.T) {
	c := stats.Count([]models.Submission{
		sub("u", "1", false, now),
		sub("u", "1", true, now),
		sub("u", "1", true, now),
		sub("u", "2", false, now),
	})
	assert.Equal(t, stats.Counts{Total: 4, Correct: 2, Solved: 1}, c)
}

func TestAccuracyRate(t *testing.T) {
	assert.Equal(t, 0, stats.AccuracyRate(0, 0))
	assert.Equal(t, 67, stats.AccuracyRate(2, 3))
	assert.Equal(t, 100, stats.AccuracyRate(4, 4))
	assert.Equal(t, 50, stats.AccuracyRate(1, 2))
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want int
	}{
		{"no submissions", nil, 0},
		{"today only", []int{0}, 1},
		{"yesterday only still counts", []int{1}, 1},
		{"three consecutive ending today", []int{0, 1, 2}, 3},
		{"run ending yesterday", []int{1, 2, 3}, 3},
		{"missed day breaks the run", []int{0, 1, 3, 4}, 2},
		{"last activity two days ago resets", []int{2, 3, 4}, 0},
		{"several submissions same day", []int{0, 0, 0, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subs []models.Submission
			for _, d := range tt.days {
				subs = append(subs, sub("u", "1", true, daysAgo(d)))
			}
			assert.Equal(t, tt.want, stats.Streak(subs, now, time.UTC))
		})
	}
}

func TestStreak_UsesConfiguredTimezone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC on May 9 is already May 10 in Kolkata.
	late := time.Date(2024, 5, 9, 20, 0, 0, 0, time.UTC)
	early := time.Date(2024, 5, 9, 8, 0, 0, 0, time.UTC)
	subs := []models.Submission{sub("u", "1", true, early), sub("u", "1", true, late)}

	assert.Equal(t, 2, stats.Streak(subs, now, kolkata))
	assert.Equal(t, 1, stats.Streak(subs, now, time.UTC))
}

func TestTimeSpent(t *testing.T) {
	assert.Equal(t, time.Duration(0), stats.TimeSpent(nil))

	base := now
	subs := []models.Submission{
		sub("u", "1", true, base.Add(10*time.Minute)),
		sub("u", "1", true, base),
		sub("u", "1", true, base.Add(3*time.Hour)),
	}
	// 2m baseline + 10m gap + 2m for the new session after three hours.
	assert.Equal(t, 14*time.Minute, stats.TimeSpent(subs))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m", stats.FormatDuration(0))
	assert.Equal(t, "1h5m", stats.FormatDuration(65*time.Minute))
	assert.Equal(t, "0h0m", stats.FormatDuration(-time.Minute))
}

func TestStandings_TieBreaks(t *testing.T) {
	all := []models.Submission{
		sub("carol", "1", true, now),
		sub("carol", "2", true, now),
		sub("bob", "1", true, now),
		sub("bob", "2", false, now),
		sub("alice", "1", true, now),
		sub("alice", "2", false, now),
		sub("dave", "1", true, now),
	}
	standings := stats.Standings(stats.GroupByUser(all))
	require.Len(t, standings, 4)

	order := []string{standings[0].UserID, standings[1].UserID, standings[2].UserID, standings[3].UserID}
	assert.Equal(t, []string{"carol", "dave", "alice", "bob"}, order)

	assert.Equal(t, 1, stats.RankOf(standings, "carol"))
	assert.Equal(t, 3, stats.RankOf(standings, "alice"))
	assert.Equal(t, 5, stats.RankOf(standings, "newcomer"))
}

func TestComputeUser(t *testing.T) {
	all := []models.Submission{
		sub("u1", "1", false, daysAgo(1)),
		sub("u1", "1", true, daysAgo(1).Add(5*time.Minute)),
		sub("u1", "2", true, now),
		sub("u2", "1", true, now),
	}
	s := stats.ComputeUser("u1", all, now, time.UTC)

	assert.Equal(t, 2, s.ProblemsSolved)
	assert.Equal(t, 67, s.AccuracyRate)
	assert.Equal(t, 2, s.StudyStreak)
	assert.Equal(t, 2, s.CorrectSolved)
	assert.Equal(t, 3, s.TotalSubmissions)
	assert.Equal(t, 20, s.TotalPoints)
	assert.Equal(t, 1, s.Rank)
	assert.Equal(t, "0h9m", s.TimeSpent)
	assert.Equal(t, int64(540), s.TimeSpentSeconds)
}

func TestComputeUser_NoSubmissions(t *testing.T) {
	s := stats.ComputeUser("ghost", []models.Submission{sub("u1", "1", true, now)}, now, time.UTC)

	assert.Equal(t, 0, s.ProblemsSolved)
	assert.Equal(t, 0, s.AccuracyRate)
	assert.Equal(t, 0, s.StudyStreak)
	assert.Equal(t, "0h0m", s.TimeSpent)
	assert.Equal(t, 2, s.Rank)
}

func TestAchievements(t *testing.T) {
	assert.Empty(t, stats.Achievements(models.UserStats{}))

	got := stats.Achievements(models.UserStats{ProblemsSolved: 5, AccuracyRate: 80, StudyStreak: 3})
	require.Len(t, got, 3)
	assert.Equal(t, "Problem Solver", got[0].Name)
	assert.Equal(t, "Accuracy Master", got[1].Name)
	assert.Equal(t, "Consistent Learner", got[2].Name)

	accurateButFew := stats.Achievements(models.UserStats{ProblemsSolved: 2, AccuracyRate: 100})
	assert.Empty(t, accurateButFew)
}
