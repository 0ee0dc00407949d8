package questions

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tutorquest/backend/internal/models"
)

// ValidationError rejects a whole batch; no partial acceptance.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// Upstream generators disagree on field names. Each canonical field has an
// ordered alias list, resolved once at ingress; everything downstream is
// statically typed.
var fieldAliases = map[string][]string{
	"question_text":  {"question_text", "question"},
	"correct_answer": {"correct_answer", "correct"},
	"question_type":  {"question_type", "questionType"},
	"concept_tested": {"concept_tested", "concept"},
	"difficulty":     {"difficulty"},
	"explanation":    {"explanation"},
	"options":        {"options"},
}

// NormalizeQuestionBatch validates a raw batch of generated questions and
// produces canonical records owned by the given student, dated now, active.
// Any missing required field rejects the entire batch, naming the 1-based
// index of the offending item.
func NormalizeQuestionBatch(raw []map[string]interface{}, studentID int64, now time.Time) ([]models.Question, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Errors: []string{"question batch is empty"}}
	}

	out := make([]models.Question, 0, len(raw))

	for i, item := range raw {
		qNum := i + 1

		text := resolveString(item, "question_text")
		answer := resolveAnswer(item)
		typeStr := resolveString(item, "question_type")

		var errs []string
		if text == "" {
			errs = append(errs, fmt.Sprintf("question %d: missing question text", qNum))
		}
		if answer == "" {
			errs = append(errs, fmt.Sprintf("question %d: missing correct answer", qNum))
		}
		if typeStr == "" {
			errs = append(errs, fmt.Sprintf("question %d: missing question type", qNum))
		}
		if len(errs) > 0 {
			return nil, &ValidationError{Errors: errs}
		}

		qType := models.QuestionType(typeStr)
		if !models.ValidQuestionTypes[qType] {
			log.Printf("[questions] WARN: question %d has unrecognized type %q, defaulting to multiple_choice", qNum, typeStr)
			qType = models.TypeMultipleChoice
		}

		concept := resolveString(item, "concept_tested")
		if concept == "" {
			concept = "General"
		}

		difficulty := models.Difficulty(resolveString(item, "difficulty"))
		switch difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			difficulty = models.DifficultyMedium
		}

		out = append(out, models.Question{
			StudentID:     studentID,
			QuestionText:  text,
			QuestionType:  qType,
			Options:       resolveOptions(item),
			CorrectAnswer: answer,
			ConceptTested: concept,
			Difficulty:    difficulty,
			Explanation:   resolveString(item, "explanation"),
			Active:        true,
			CreatedDate:   now,
		})
	}

	return out, nil
}

// resolveString returns the first non-empty string value among the field's
// aliases.
func resolveString(item map[string]interface{}, canonical string) string {
	for _, alias := range fieldAliases[canonical] {
		if v, ok := item[alias]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// resolveAnswer handles the correct-answer field, which some generators emit
// as a string and others as a structured value (a mapping for match
// questions, a bare boolean for true/false). Structured values are
// re-encoded to the string wire form.
func resolveAnswer(item map[string]interface{}) string {
	for _, alias := range fieldAliases["correct_answer"] {
		v, ok := item[alias]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if strings.TrimSpace(val) != "" {
				return strings.TrimSpace(val)
			}
		case bool:
			return fmt.Sprintf("%t", val)
		case map[string]interface{}:
			if b, err := json.Marshal(val); err == nil {
				return string(b)
			}
		case float64:
			return fmt.Sprintf("%g", val)
		}
	}
	return ""
}

// resolveOptions keeps the options payload in its wire shape (array for
// choice lists, object for match columns); nil when absent or unencodable.
func resolveOptions(item map[string]interface{}) json.RawMessage {
	v, ok := item["options"]
	if !ok || v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
