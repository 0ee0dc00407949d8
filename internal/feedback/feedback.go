package feedback

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tutorquest/backend/internal/models"
)

const systemPrompt = `You are a warm, encouraging tutor writing a short note to a student who just finished a quiz. Write 2-4 sentences. Mention one specific strength and one specific area to work on, drawn from the stats you are given. Never scold. Plain text only, no markdown.`

// Service turns quiz results into a short personalized note. When the LLM
// is unreachable the service degrades to a templated message so quiz
// submission never fails on feedback.
type Service struct {
	llm   LLMClient
	model string
}

func NewService() *Service {
	var llm LLMClient
	model := "mock"

	if os.Getenv("MOCK_FEEDBACK") == "true" {
		llm = NewMockClient()
		log.Println("[feedback] using mock client")
	} else {
		model = os.Getenv("ANTHROPIC_MODEL")
		if model == "" {
			model = "claude-opus-4-5-20251101"
		}
		llm = NewAPIClient(model)
		log.Println("[feedback] using Anthropic API:", model)
	}

	return &Service{llm: llm, model: model}
}

// NewServiceWithClient is used by tests and callers that manage their own
// client selection.
func NewServiceWithClient(llm LLMClient) *Service {
	return &Service{llm: llm, model: "custom"}
}

// ForQuiz generates the feedback note. Always returns usable text.
func (s *Service) ForQuiz(ctx context.Context, sum models.QuizSummary, perf *models.PerformanceAnalysis) string {
	prompt := buildPrompt(sum, perf)

	text, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		log.Printf("[feedback] generation failed, falling back to template: %v", err)
		return fallbackMessage(sum)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackMessage(sum)
	}
	return text
}

func buildPrompt(sum models.QuizSummary, perf *models.PerformanceAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quiz results: %d of %d correct (%.0f%%), highest streak %d, %d points earned.\n",
		sum.CorrectAnswers, sum.TotalQuestions, sum.ScorePercent(), sum.HighestStreak, sum.TotalScore)

	if perf != nil {
		if len(perf.Strengths) > 0 {
			names := make([]string, 0, len(perf.Strengths))
			for _, s := range perf.Strengths {
				names = append(names, s.Concept)
			}
			fmt.Fprintf(&b, "Strong concepts: %s.\n", strings.Join(names, ", "))
		}
		if len(perf.CriticalWeaknesses) > 0 {
			names := make([]string, 0, len(perf.CriticalWeaknesses))
			for _, w := range perf.CriticalWeaknesses {
				names = append(names, w.Concept)
			}
			fmt.Fprintf(&b, "Concepts needing work: %s.\n", strings.Join(names, ", "))
		}
		if perf.IsRushing {
			fmt.Fprintf(&b, "The student rushed %d questions (under a few seconds each).\n", perf.RushedCount)
		}
	}

	b.WriteString("Write the note now.")
	return b.String()
}

// fallbackMessage is the templated note used when generation fails.
func fallbackMessage(sum models.QuizSummary) string {
	pct := sum.ScorePercent()
	switch {
	case pct >= 90:
		return fmt.Sprintf("Outstanding work! You got %d of %d right. Keep this momentum going into your next quiz.",
			sum.CorrectAnswers, sum.TotalQuestions)
	case pct >= 70:
		return fmt.Sprintf("Nice job! You got %d of %d right. A little more practice on the ones you missed and you'll be at the top of your game.",
			sum.CorrectAnswers, sum.TotalQuestions)
	case pct >= 50:
		return fmt.Sprintf("Good effort! You got %d of %d right. Review the questions you missed and try again soon.",
			sum.CorrectAnswers, sum.TotalQuestions)
	default:
		return fmt.Sprintf("You got %d of %d right this time. Every quiz is practice, and the concepts you missed are now scheduled for review.",
			sum.CorrectAnswers, sum.TotalQuestions)
	}
}
