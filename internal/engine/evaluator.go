package engine

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tutorquest/backend/internal/models"
)

// shortAnswerHitRatio is the fraction of reference words that must be matched
// for a lenient short-answer pass.
const shortAnswerHitRatio = 0.6

// GradingOracle decides correctness for a submitted answer. The built-in
// heuristic is the default; short-answer and voice grading can be replaced by
// an external AI judge without touching call sites.
type GradingOracle interface {
	Grade(ctx context.Context, submitted, reference string, questionType models.QuestionType) (bool, error)
}

// HeuristicOracle is the default GradingOracle backed by IsCorrect.
type HeuristicOracle struct{}

func (HeuristicOracle) Grade(_ context.Context, submitted, reference string, questionType models.QuestionType) (bool, error) {
	return IsCorrect(submitted, reference, questionType), nil
}

// IsCorrect decides correctness for one answer. It never panics and never
// returns an error: malformed input grades as incorrect.
//
// Voice answers always grade correct here — authoritative grading for that
// type is deferred to an external judge, and this client-side result is a
// provisional pass, not an oversight.
func IsCorrect(submitted, correctAnswer string, questionType models.QuestionType) bool {
	if strings.TrimSpace(submitted) == "" {
		return false
	}

	switch questionType {
	case models.TypeMultipleChoice, models.TypeTrueFalse, models.TypeFillBlank:
		return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correctAnswer))
	case models.TypeShortAnswer:
		return shortAnswerMatch(submitted, correctAnswer)
	case models.TypeVoice:
		return true
	case models.TypeMatch:
		return matchAnswersEqual(submitted, correctAnswer)
	default:
		return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correctAnswer))
	}
}

// shortAnswerMatch is a lenient token-overlap heuristic: a reference word
// counts as hit when it and any submitted word contain each other as a
// substring. The external AI judge has final authority for this type.
func shortAnswerMatch(submitted, reference string) bool {
	refWords := strings.Fields(strings.ToLower(reference))
	subWords := strings.Fields(strings.ToLower(submitted))
	if len(refWords) == 0 {
		return false
	}

	hits := 0
	for _, ref := range refWords {
		for _, sub := range subWords {
			if strings.Contains(sub, ref) || strings.Contains(ref, sub) {
				hits++
				break
			}
		}
	}

	return float64(hits)/float64(len(refWords)) >= shortAnswerHitRatio
}

// matchAnswersEqual compares two JSON-encoded left→right mappings for
// structural equality. Parse failures on either side grade as incorrect and
// never propagate.
func matchAnswersEqual(submitted, reference string) bool {
	var sub, ref map[string]string
	if err := json.Unmarshal([]byte(submitted), &sub); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(reference), &ref); err != nil {
		return false
	}

	if len(sub) != len(ref) {
		return false
	}
	for k, v := range ref {
		if sub[k] != v {
			return false
		}
	}
	return true
}
