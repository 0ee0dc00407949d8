package feedback

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tutorquest/backend/internal/engine"
	"github.com/tutorquest/backend/internal/models"
)

const gradingSystemPrompt = `You are grading a student's answer against a reference answer. Reply with exactly one word: CORRECT if the student's answer demonstrates the same meaning as the reference, or INCORRECT otherwise. Accept paraphrases and minor spelling mistakes.`

// Oracle is the AI-backed grading implementation for free-text answer types.
// Exact-match types and any LLM failure fall through to the heuristic, so
// grading never blocks on the API.
type Oracle struct {
	llm      LLMClient
	fallback engine.HeuristicOracle
}

// GradingOracle exposes an AI grader built on this service's client.
func (s *Service) GradingOracle() *Oracle {
	return &Oracle{llm: s.llm}
}

func (o *Oracle) Grade(ctx context.Context, submitted, reference string, questionType models.QuestionType) (bool, error) {
	switch questionType {
	case models.TypeShortAnswer, models.TypeVoice:
	default:
		return o.fallback.Grade(ctx, submitted, reference, questionType)
	}

	if strings.TrimSpace(submitted) == "" {
		return false, nil
	}

	prompt := fmt.Sprintf("Reference answer: %s\nStudent's answer: %s", reference, submitted)
	verdict, err := o.llm.Complete(ctx, gradingSystemPrompt, prompt)
	if err != nil {
		log.Printf("[feedback] WARN: AI grading failed, using heuristic: %v", err)
		return o.fallback.Grade(ctx, submitted, reference, questionType)
	}

	switch strings.ToUpper(strings.TrimSpace(verdict)) {
	case "CORRECT":
		return true, nil
	case "INCORRECT":
		return false, nil
	default:
		log.Printf("[feedback] WARN: unparseable grading verdict %q, using heuristic", verdict)
		return o.fallback.Grade(ctx, submitted, reference, questionType)
	}
}
