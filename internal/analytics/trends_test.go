package analytics

import (
	"math"
	"strings"
	"testing"

	"github.com/tutorquest/backend/internal/models"
)

func quizScoring(correct, total int) models.QuizSummary {
	q := models.QuizSummary{TotalQuestions: total, CorrectAnswers: correct}
	q.Score = q.ScorePercent()
	return q
}

func priorQuizzes(scores ...float64) []models.QuizSummary {
	out := make([]models.QuizSummary, len(scores))
	for i, s := range scores {
		out[i] = models.QuizSummary{Score: s, TotalQuestions: 10}
	}
	return out
}

func TestAnalyzeProgressTrendsFirstQuiz(t *testing.T) {
	got := AnalyzeProgressTrends(nil, quizScoring(8, 10))

	if !got.FirstQuiz {
		t.Error("empty prior list should mark first quiz")
	}
	if got.ChangePercent != nil {
		t.Errorf("first quiz should carry no numeric change, got %f", *got.ChangePercent)
	}
	if got.Message == "" {
		t.Error("first quiz should carry an encouraging message")
	}
}

func TestAnalyzeProgressTrendsImproving(t *testing.T) {
	prior := priorQuizzes(60, 70, 80, 90, 85)
	got := AnalyzeProgressTrends(prior, quizScoring(95, 100)) // 95%

	if got.Direction != "improving" {
		t.Errorf("direction = %q, want improving", got.Direction)
	}
	if got.RollingAverage != 77 {
		t.Errorf("rolling average = %f, want 77", got.RollingAverage)
	}
	if got.ChangePercent == nil {
		t.Fatal("change percent should be set")
	}
	want := (95.0 - 77.0) / 77.0 * 100
	if math.Abs(*got.ChangePercent-want) > 0.01 {
		t.Errorf("change percent = %f, want %f", *got.ChangePercent, want)
	}
	if got.VsBest != 5 {
		t.Errorf("vs best = %f, want 5", got.VsBest)
	}
	if got.VsLastQuiz != 10 {
		t.Errorf("vs last = %f, want 10", got.VsLastQuiz)
	}
}

func TestAnalyzeProgressTrendsDeclining(t *testing.T) {
	prior := priorQuizzes(80, 85, 90)
	got := AnalyzeProgressTrends(prior, quizScoring(6, 10)) // 60%

	if got.Direction != "declining" {
		t.Errorf("direction = %q, want declining", got.Direction)
	}
	if got.VsAverage >= 0 {
		t.Errorf("vs average = %f, want negative", got.VsAverage)
	}
}

func TestAnalyzeProgressTrendsStable(t *testing.T) {
	prior := priorQuizzes(80, 80, 80)
	got := AnalyzeProgressTrends(prior, quizScoring(8, 10)) // 80%

	if got.Direction != "stable" {
		t.Errorf("direction = %q, want stable", got.Direction)
	}
	if got.Consistency != "high" {
		t.Errorf("consistency = %q, want high for identical scores", got.Consistency)
	}
}

func TestAnalyzeProgressTrendsZeroAverageGuard(t *testing.T) {
	prior := priorQuizzes(0, 0)
	got := AnalyzeProgressTrends(prior, quizScoring(5, 10))

	if got.ChangePercent != nil {
		t.Errorf("zero prior average should yield nil change percent, got %f", *got.ChangePercent)
	}
	if got.Direction != "improving" {
		t.Errorf("direction = %q, want improving", got.Direction)
	}
}

func TestAnalyzeProgressTrendsWindowsToLastFive(t *testing.T) {
	// Seven priors; only the last five (all 90s) should count.
	prior := priorQuizzes(10, 10, 90, 90, 90, 90, 90)
	got := AnalyzeProgressTrends(prior, quizScoring(9, 10))

	if got.RollingAverage != 90 {
		t.Errorf("rolling average = %f, want 90 (window of 5)", got.RollingAverage)
	}
	if len(got.LastScores) != 5 {
		t.Errorf("last scores length = %d, want 5", len(got.LastScores))
	}
}

func TestAnalyzeProgressTrendsPersonalBestInsight(t *testing.T) {
	hasPB := func(insights []string) bool {
		for _, s := range insights {
			if strings.Contains(s, "personal best") {
				return true
			}
		}
		return false
	}

	// Beating the best earns the insight.
	got := AnalyzeProgressTrends(priorQuizzes(70, 80), quizScoring(9, 10))
	if !hasPB(got.Insights) {
		t.Errorf("score above best should announce a personal best: %v", got.Insights)
	}

	// Tying the best does not.
	got = AnalyzeProgressTrends(priorQuizzes(70, 90), quizScoring(9, 10))
	if hasPB(got.Insights) {
		t.Errorf("tie with best is not a new personal best: %v", got.Insights)
	}
}

func TestAnalyzeProgressTrendsLowConsistency(t *testing.T) {
	prior := priorQuizzes(20, 95, 30, 90, 25)
	got := AnalyzeProgressTrends(prior, quizScoring(5, 10))

	if got.Consistency != "low" {
		t.Errorf("consistency = %q, want low for wild swings", got.Consistency)
	}
}
