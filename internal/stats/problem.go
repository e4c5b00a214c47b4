package stats

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vytor/jeeprep/internal/models"
)

// Percent returns part/whole as a percentage rounded to two decimals.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(whole))).
		Round(2).
		InexactFloat64()
}

// ForProblem summarises every submission made against one problem.
// Answers are grouped case-insensitively.
func ForProblem(subs []models.Submission, reviews int) models.ProblemStats {
	ps := models.ProblemStats{
		AnswerDistribution: map[string]int{},
		TotalReviews:       reviews,
	}
	var first, last time.Time
	for _, s := range subs {
		ps.TotalAttempts++
		if s.IsCorrect {
			ps.CorrectAttempts++
		}
		ps.AnswerDistribution[strings.ToUpper(strings.TrimSpace(s.Answer))]++
		if first.IsZero() || s.Timestamp.Before(first) {
			first = s.Timestamp
		}
		if last.IsZero() || s.Timestamp.After(last) {
			last = s.Timestamp
		}
	}
	ps.Accuracy = Percent(ps.CorrectAttempts, ps.TotalAttempts)

	if ps.TotalAttempts > 0 {
		f := first.UTC().Format(time.RFC3339Nano)
		l := last.UTC().Format(time.RFC3339Nano)
		ps.FirstSubmission, ps.LastSubmission = &f, &l
	}
	if ps.TotalAttempts > 1 {
		avg := last.Sub(first).Seconds() / float64(ps.TotalAttempts)
		ps.AverageTime = decimal.NewFromFloat(avg).Round(2).InexactFloat64()
	}
	return ps
}

// LatestAnswers returns the most recent answer in subs for each problem.
// Ties on timestamp go to the later entry in the log.
func LatestAnswers(subs []models.Submission) map[models.ProblemID]models.AnswerRecord {
	latest := make(map[models.ProblemID]models.Submission)
	for _, s := range subs {
		prev, ok := latest[s.ProblemID]
		if !ok || !s.Timestamp.Before(prev.Timestamp) {
			latest[s.ProblemID] = s
		}
	}
	out := make(map[models.ProblemID]models.AnswerRecord, len(latest))
	for id, s := range latest {
		out[id] = AnswerRecordOf(s)
	}
	return out
}

// AnswerRecordOf renders a submission as an answer history entry with an RFC 3339 timestamp.
func AnswerRecordOf(s models.Submission) models.AnswerRecord {
	return models.AnswerRecord{
		Answer:    s.Answer,
		IsCorrect: s.IsCorrect,
		Timestamp: s.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
