// Package stats derives user, problem and leaderboard statistics from the
// submission log. Everything here is a pure function of its inputs.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vytor/jeeprep/internal/models"
)

const (
	// SessionGap is the longest pause that still counts as one study session.
	SessionGap = 30 * time.Minute
	// SessionBaseline is credited for the first submission of every session.
	SessionBaseline = 2 * time.Minute
	// PointsPerProblem is awarded once per solved problem.
	PointsPerProblem = 10
	// RecentWindow bounds the leaderboard's recent submission count.
	RecentWindow = 7 * 24 * time.Hour
)

// Counts summarises a set of submissions.
type Counts struct {
	Total   int
	Correct int
	Solved  int
}

// Count tallies attempts and the distinct problems solved among them.
func Count(subs []models.Submission) Counts {
	var c Counts
	solved := make(map[models.ProblemID]bool)
	for _, s := range subs {
		c.Total++
		if s.IsCorrect {
			c.Correct++
			solved[s.ProblemID] = true
		}
	}
	c.Solved = len(solved)
	return c
}

// AccuracyRate is the rounded percentage of correct submissions, 0 without submissions.
func AccuracyRate(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// civilDay maps t to midnight UTC of its calendar date in loc, so days can be
// stepped with AddDate without DST surprises.
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Streak counts consecutive active days ending today or yesterday in loc.
// A full calendar day without submissions resets it to zero.
func Streak(subs []models.Submission, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	active := make(map[time.Time]bool, len(subs))
	for _, s := range subs {
		active[civilDay(s.Timestamp, loc)] = true
	}

	day := civilDay(now, loc)
	if !active[day] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for active[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// TimeSpent estimates study time from submission timestamps. Submissions
// within SessionGap of the previous one add the gap; any other submission
// opens a new session worth SessionBaseline.
func TimeSpent(subs []models.Submission) time.Duration {
	if len(subs) == 0 {
		return 0
	}
	times := make([]time.Time, len(subs))
	for i, s := range subs {
		times[i] = s.Timestamp
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	total := SessionBaseline
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		if gap <= SessionGap {
			total += gap
		} else {
			total += SessionBaseline
		}
	}
	return total
}

// FormatDuration renders d as "XhYm".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%dh%dm", int(d/time.Hour), int((d%time.Hour)/time.Minute))
}

// Standing is one user's position input for ranking.
type Standing struct {
	UserID   string
	Solved   int
	Accuracy int
	Total    int
}

// GroupByUser buckets submissions by user id, keeping log order.
func GroupByUser(all []models.Submission) map[string][]models.Submission {
	byUser := make(map[string][]models.Submission)
	for _, s := range all {
		byUser[s.UserID] = append(byUser[s.UserID], s)
	}
	return byUser
}

// Standings ranks every user with at least one submission: problems solved
// descending, then accuracy descending, then user id ascending.
func Standings(byUser map[string][]models.Submission) []Standing {
	standings := make([]Standing, 0, len(byUser))
	for id, subs := range byUser {
		if len(subs) == 0 {
			continue
		}
		c := Count(subs)
		standings = append(standings, Standing{
			UserID:   id,
			Solved:   c.Solved,
			Accuracy: AccuracyRate(c.Correct, c.Total),
			Total:    c.Total,
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Solved != b.Solved {
			return a.Solved > b.Solved
		}
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		return a.UserID < b.UserID
	})
	return standings
}

// RankOf returns the 1-based rank of userID. Users without submissions rank
// after everyone in standings.
func RankOf(standings []Standing, userID string) int {
	for i, s := range standings {
		if s.UserID == userID {
			return i + 1
		}
	}
	return len(standings) + 1
}

// ComputeUser derives a user's stats from the full submission log.
func ComputeUser(userID string, all []models.Submission, now time.Time, loc *time.Location) models.UserStats {
	byUser := GroupByUser(all)
	return computeUser(userID, byUser[userID], Standings(byUser), now, loc)
}

func computeUser(userID string, subs []models.Submission, standings []Standing, now time.Time, loc *time.Location) models.UserStats {
	c := Count(subs)
	spent := TimeSpent(subs)
	return models.UserStats{
		ProblemsSolved:   c.Solved,
		AccuracyRate:     AccuracyRate(c.Correct, c.Total),
		StudyStreak:      Streak(subs, now, loc),
		TimeSpent:        FormatDuration(spent),
		TimeSpentSeconds: int64(spent / time.Second),
		CorrectSolved:    c.Correct,
		TotalSubmissions: c.Total,
		TotalPoints:      c.Solved * PointsPerProblem,
		Rank:             RankOf(standings, userID),
		LastUpdated:      now.UTC().Format(time.RFC3339),
	}
}
