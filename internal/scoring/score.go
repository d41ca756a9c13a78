// Package scoring turns graded answers into percentages for the dashboard.
package scoring

import (
	"math"

	"github.com/samber/lo"

	"github.com/mockprep/backend/internal/domain/question"
)

// Breakdown is the decomposed form of a session score.
type Breakdown struct {
	Total      int `json:"total"`
	Correct    int `json:"correct"`
	Incorrect  int `json:"incorrect"`
	Percentage int `json:"percentage"`
}

// Score returns round(100 * correct / total). Only strictly true verdicts
// count as correct; an empty slice scores 0.
func Score(items []question.AnsweredQuestion) int {
	return Detailed(items).Percentage
}

// Detailed returns the same computation as Score split into its parts.
func Detailed(items []question.AnsweredQuestion) Breakdown {
	total := len(items)
	if total == 0 {
		return Breakdown{}
	}

	correct := lo.CountBy(items, func(a question.AnsweredQuestion) bool {
		return a.AIFeedback.Correct()
	})

	return Breakdown{
		Total:      total,
		Correct:    correct,
		Incorrect:  total - correct,
		Percentage: percentage(correct, total),
	}
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// Summary aggregates a user's history for the dashboard cards.
type Summary struct {
	TotalSessions int `json:"total_sessions"`
	AverageScore  int `json:"average_score"`
}

// Summarize averages per-session scores, rounding to the nearest integer.
func Summarize(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{}
	}
	sum := lo.Sum(scores)
	return Summary{
		TotalSessions: len(scores),
		AverageScore:  int(math.Round(float64(sum) / float64(len(scores)))),
	}
}
