package stats

import (
	"sort"
	"time"

	"github.com/vytor/jeeprep/internal/models"
)

// RecentActivityLimit caps the recent activity list of the unified view.
const RecentActivityLimit = 5

// Unified builds the dashboard view for user from the full submission log.
// problems maps ids to problems so activity rows can carry titles; missing
// problems leave title and difficulty empty.
func Unified(user models.User, all []models.Submission, problems map[models.ProblemID]models.Problem, now time.Time, loc *time.Location) models.UnifiedStats {
	byUser := GroupByUser(all)
	subs := byUser[user.ID]
	c := Count(subs)

	u := models.UnifiedStats{
		User: user,
		Submissions: models.SubmissionSummary{
			Total:          c.Total,
			Correct:        c.Correct,
			AcceptanceRate: Percent(c.Correct, c.Total),
		},
		RecentActivity: []models.RecentActivity{},
		StudyStreak:    Streak(subs, now, loc),
		TimeSpent:      FormatDuration(TimeSpent(subs)),
		Rank:           RankOf(Standings(byUser), user.ID),
	}

	solved := make(map[models.ProblemID]bool)
	for _, s := range subs {
		if !s.IsCorrect || solved[s.ProblemID] {
			continue
		}
		solved[s.ProblemID] = true
		switch problems[s.ProblemID].Difficulty {
		case models.DifficultyEasy:
			u.ProblemsByDifficulty.Easy++
		case models.DifficultyMedium:
			u.ProblemsByDifficulty.Medium++
		case models.DifficultyHard:
			u.ProblemsByDifficulty.Hard++
		}
	}

	recent := make([]models.Submission, len(subs))
	copy(recent, subs)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Timestamp.After(recent[j].Timestamp) })
	if len(recent) > RecentActivityLimit {
		recent = recent[:RecentActivityLimit]
	}
	for _, s := range recent {
		p := problems[s.ProblemID]
		u.RecentActivity = append(u.RecentActivity, models.RecentActivity{
			ProblemID:    s.ProblemID,
			ProblemTitle: p.Title,
			Timestamp:    s.Timestamp.UTC().Format(time.RFC3339Nano),
			IsCorrect:    s.IsCorrect,
			Difficulty:   p.Difficulty,
		})
	}
	return u
}

// Leaderboard ranks users with submissions. names supplies display names;
// limit <= 0 returns everyone.
func Leaderboard(all []models.Submission, names map[string]string, now time.Time, limit int) []models.LeaderboardEntry {
	byUser := GroupByUser(all)
	standings := Standings(byUser)
	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}

	since := now.Add(-RecentWindow)
	entries := make([]models.LeaderboardEntry, 0, len(standings))
	for i, st := range standings {
		recent := 0
		for _, s := range byUser[st.UserID] {
			if s.Timestamp.After(since) {
				recent++
			}
		}
		name := names[st.UserID]
		if name == "" {
			name = st.UserID
		}
		entries = append(entries, models.LeaderboardEntry{
			Rank:              i + 1,
			UserID:            st.UserID,
			Name:              name,
			ProblemsSolved:    st.Solved,
			Accuracy:          st.Accuracy,
			RecentSubmissions: recent,
		})
	}
	return entries
}
