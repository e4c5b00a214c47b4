package models

type UserStats struct {
	ProblemsSolved   int    `json:"problemsSolved"`
	AccuracyRate     int    `json:"accuracyRate"`
	StudyStreak      int    `json:"studyStreak"`
	TimeSpent        string `json:"timeSpent"`
	TimeSpentSeconds int64  `json:"timeSpentSeconds"`
	CorrectSolved    int    `json:"correctSolved"`
	TotalSubmissions int    `json:"totalSubmissions"`
	TotalPoints      int    `json:"totalPoints"`
	Rank             int    `json:"rank"`
	LastUpdated      string `json:"lastUpdated"`
}

type Achievement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type UserStatsResponse struct {
	Stats        UserStats     `json:"stats"`
	Achievements []Achievement `json:"achievements"`
}

type SubmitAnswerResponse struct {
	Success bool         `json:"success"`
	Answer  AnswerRecord `json:"answer"`
	Stats   UserStats    `json:"stats"`
}

type ProblemStats struct {
	TotalAttempts      int            `json:"total_attempts"`
	CorrectAttempts    int            `json:"correct_attempts"`
	Accuracy           float64        `json:"accuracy"`
	AnswerDistribution map[string]int `json:"answer_distribution"`
	AverageTime        float64        `json:"average_time"`
	TotalReviews       int            `json:"total_reviews"`
	FirstSubmission    *string        `json:"first_submission"`
	LastSubmission     *string        `json:"last_submission"`
}

type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"userId"`
	Name              string `json:"name"`
	ProblemsSolved    int    `json:"problemsSolved"`
	Accuracy          int    `json:"accuracy"`
	RecentSubmissions int    `json:"recentSubmissions"`
}

type SubmissionSummary struct {
	Total          int     `json:"total"`
	Correct        int     `json:"correct"`
	AcceptanceRate float64 `json:"acceptanceRate"`
}

type DifficultyBreakdown struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

type RecentActivity struct {
	ProblemID    ProblemID  `json:"problemId"`
	ProblemTitle string     `json:"problemTitle"`
	Timestamp    string     `json:"timestamp"`
	IsCorrect    bool       `json:"isCorrect"`
	Difficulty   Difficulty `json:"difficulty"`
}

type UnifiedStats struct {
	User                 User                `json:"user"`
	Submissions          SubmissionSummary   `json:"submissions"`
	ProblemsByDifficulty DifficultyBreakdown `json:"problemsByDifficulty"`
	RecentActivity       []RecentActivity    `json:"recentActivity"`
	StudyStreak          int                 `json:"studyStreak"`
	TimeSpent            string              `json:"timeSpent"`
	Rank                 int                 `json:"rank"`
}
