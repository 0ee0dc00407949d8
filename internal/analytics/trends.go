package analytics

import (
	"fmt"
	"math"

	"github.com/tutorquest/backend/internal/models"
)

const (
	// trendMargin is the score-point band around the prior average inside
	// which a result counts as stable.
	trendMargin = 2.0

	// Consistency bands on the standard deviation of recent scores.
	consistencyHighBelow = 8.0
	consistencyLowAbove  = 20.0

	// trendWindow is how many prior quizzes feed the trend.
	trendWindow = 5
)

// AnalyzeProgressTrends compares the current quiz against up to the last
// five prior summaries (oldest first, most recent last). A first-ever quiz
// short-circuits with an encouraging message and no numeric trend.
func AnalyzeProgressTrends(prior []models.QuizSummary, current models.QuizSummary) models.ProgressTrend {
	if len(prior) == 0 {
		return models.ProgressTrend{
			FirstQuiz:  true,
			Direction:  "stable",
			LastScores: []float64{},
			Insights:   []string{"This is your first quiz — every expert started exactly here."},
			Recommendations: []string{
				"Take another quiz soon to start building your progress trend.",
			},
			Message: "First quiz complete! Keep going to unlock progress tracking.",
		}
	}

	if len(prior) > trendWindow {
		prior = prior[len(prior)-trendWindow:]
	}

	scores := make([]float64, len(prior))
	for i, q := range prior {
		scores[i] = q.Score
	}

	avg := mean(scores)
	best := scores[0]
	worst := scores[0]
	for _, s := range scores {
		if s > best {
			best = s
		}
		if s < worst {
			worst = s
		}
	}

	currentScore := current.ScorePercent()

	direction := "stable"
	switch {
	case currentScore > avg+trendMargin:
		direction = "improving"
	case currentScore < avg-trendMargin:
		direction = "declining"
	}

	var changePercent *float64
	if avg != 0 {
		cp := (currentScore - avg) / avg * 100
		changePercent = &cp
	}

	consistency := classifyConsistency(stdDev(scores))

	trend := models.ProgressTrend{
		Direction:      direction,
		ChangePercent:  changePercent,
		LastScores:     scores,
		RollingAverage: avg,
		BestScore:      best,
		WorstScore:     worst,
		Consistency:    consistency,
		VsLastQuiz:     currentScore - scores[len(scores)-1],
		VsAverage:      currentScore - avg,
		VsBest:         currentScore - best,
	}

	trend.Insights, trend.Recommendations = trendMessages(direction, consistency, trend)
	return trend
}

func classifyConsistency(sd float64) string {
	switch {
	case sd < consistencyHighBelow:
		return "high"
	case sd > consistencyLowAbove:
		return "low"
	default:
		return "moderate"
	}
}

// trendMessages is a deterministic rule table — no scoring model, just the
// branch that was taken.
func trendMessages(direction, consistency string, t models.ProgressTrend) (insights, recommendations []string) {
	switch direction {
	case "improving":
		insights = append(insights, fmt.Sprintf("Your score is up %.1f points on your recent average.", t.VsAverage))
		recommendations = append(recommendations, "Momentum is on your side — try mixing in harder questions.")
	case "declining":
		insights = append(insights, fmt.Sprintf("Your score dipped %.1f points below your recent average.", -t.VsAverage))
		recommendations = append(recommendations, "Revisit the concepts you missed before your next attempt.")
	default:
		insights = append(insights, "Your scores are holding steady around your recent average.")
		recommendations = append(recommendations, "Push past the plateau with a focused review session.")
	}

	switch consistency {
	case "high":
		insights = append(insights, "Your results are very consistent quiz to quiz.")
	case "low":
		insights = append(insights, "Your results swing a lot between quizzes.")
		recommendations = append(recommendations, "Shorter, more frequent sessions can smooth out the swings.")
	}

	if t.VsBest > 0 {
		insights = append(insights, "That's a new personal best!")
	}

	return insights, recommendations
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var sq float64
	for _, x := range xs {
		sq += (x - m) * (x - m)
	}
	return math.Sqrt(sq / float64(len(xs)))
}
