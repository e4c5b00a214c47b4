package stats

import "github.com/vytor/jeeprep/internal/models"

type rule struct {
	achievement models.Achievement
	earned      func(models.UserStats) bool
}

var rules = []rule{
	{
		achievement: models.Achievement{Name: "Problem Solver", Description: "Solved 5 or more problems correctly", Icon: "🎯"},
		earned:      func(s models.UserStats) bool { return s.ProblemsSolved >= 5 },
	},
	{
		achievement: models.Achievement{Name: "Accuracy Master", Description: "Maintained 80% or higher accuracy with at least 3 problems", Icon: "🎯"},
		earned:      func(s models.UserStats) bool { return s.AccuracyRate >= 80 && s.ProblemsSolved >= 3 },
	},
	{
		achievement: models.Achievement{Name: "Consistent Learner", Description: "Maintained a 3-day study streak", Icon: "🔥"},
		earned:      func(s models.UserStats) bool { return s.StudyStreak >= 3 },
	},
}

// Achievements lists what s has earned, in a fixed order.
func Achievements(s models.UserStats) []models.Achievement {
	earned := []models.Achievement{}
	for _, r := range rules {
		if r.earned(s) {
			earned = append(earned, r.achievement)
		}
	}
	return earned
}
