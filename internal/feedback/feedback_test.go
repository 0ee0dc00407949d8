package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tutorquest/backend/internal/models"
)

type failingClient struct{}

func (f *failingClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "", errors.New("api unavailable")
}

type blankClient struct{}

func (b *blankClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "   ", nil
}

func TestForQuizFallsBackOnError(t *testing.T) {
	svc := NewServiceWithClient(&failingClient{})
	sum := models.QuizSummary{TotalQuestions: 10, CorrectAnswers: 9}

	got := svc.ForQuiz(context.Background(), sum, nil)
	if got == "" {
		t.Fatal("fallback should produce a non-empty note")
	}
	if !strings.Contains(got, "9 of 10") {
		t.Errorf("fallback note = %q, want the score mentioned", got)
	}
}

func TestForQuizFallsBackOnBlankResponse(t *testing.T) {
	svc := NewServiceWithClient(&blankClient{})
	sum := models.QuizSummary{TotalQuestions: 4, CorrectAnswers: 1}

	got := svc.ForQuiz(context.Background(), sum, nil)
	if strings.TrimSpace(got) == "" {
		t.Error("blank LLM response should fall back to the template")
	}
}

func TestForQuizUsesMockClient(t *testing.T) {
	svc := NewServiceWithClient(NewMockClient())
	sum := models.QuizSummary{TotalQuestions: 5, CorrectAnswers: 5}

	got := svc.ForQuiz(context.Background(), sum, nil)
	if !strings.HasPrefix(got, "[Mock]") {
		t.Errorf("mock client note = %q", got)
	}
}

func TestBuildPromptIncludesAnalytics(t *testing.T) {
	sum := models.QuizSummary{TotalQuestions: 10, CorrectAnswers: 6, HighestStreak: 3}
	perf := &models.PerformanceAnalysis{
		IsRushing:   true,
		RushedCount: 2,
		Strengths: []models.ConceptAccuracy{
			{Concept: "algebra", Attempts: 3, Correct: 3, Accuracy: 100},
		},
		CriticalWeaknesses: []models.ConceptAccuracy{
			{Concept: "fractions", Attempts: 3, Correct: 0, Accuracy: 0},
		},
	}

	prompt := buildPrompt(sum, perf)
	for _, want := range []string{"6 of 10", "algebra", "fractions", "rushed 2"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestFallbackMessageBands(t *testing.T) {
	tests := []struct {
		correct, total int
		wantSubstr     string
	}{
		{10, 10, "Outstanding"},
		{7, 10, "Nice job"},
		{5, 10, "Good effort"},
		{2, 10, "practice"},
	}
	for _, tt := range tests {
		sum := models.QuizSummary{TotalQuestions: tt.total, CorrectAnswers: tt.correct}
		got := fallbackMessage(sum)
		if !strings.Contains(got, tt.wantSubstr) {
			t.Errorf("fallback for %d/%d = %q, want %q", tt.correct, tt.total, got, tt.wantSubstr)
		}
	}
}
