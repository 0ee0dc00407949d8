package questions

import (
	"strings"
	"testing"
	"time"

	"github.com/tutorquest/backend/internal/models"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestNormalizeQuestionBatchAliases(t *testing.T) {
	raw := []map[string]interface{}{
		{
			"question":     "What is the capital of France?",
			"correct":      "Paris",
			"questionType": "multiple_choice",
			"options":      []interface{}{"Paris", "London", "Berlin", "Madrid"},
			"concept":      "Geography",
			"difficulty":   "easy",
		},
		{
			"question_text":  "Water boils at 100C at sea level.",
			"correct_answer": "true",
			"question_type":  "true_false",
		},
	}

	qs, err := NormalizeQuestionBatch(raw, 7, testNow)
	if err != nil {
		t.Fatalf("NormalizeQuestionBatch returned error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}

	q := qs[0]
	if q.QuestionText != "What is the capital of France?" {
		t.Errorf("question text = %q", q.QuestionText)
	}
	if q.CorrectAnswer != "Paris" || q.QuestionType != models.TypeMultipleChoice {
		t.Errorf("answer/type = %q/%q", q.CorrectAnswer, q.QuestionType)
	}
	if q.ConceptTested != "Geography" || q.Difficulty != models.DifficultyEasy {
		t.Errorf("concept/difficulty = %q/%q", q.ConceptTested, q.Difficulty)
	}
	if q.StudentID != 7 || !q.Active || !q.CreatedDate.Equal(testNow) {
		t.Errorf("ownership fields wrong: %+v", q)
	}

	choices, err := q.ChoiceOptions()
	if err != nil || len(choices) != 4 {
		t.Errorf("choices = %v (err %v), want 4 entries", choices, err)
	}

	// Second item exercises the other alias set and the defaults
	q = qs[1]
	if q.ConceptTested != "General" {
		t.Errorf("default concept = %q, want General", q.ConceptTested)
	}
	if q.Difficulty != models.DifficultyMedium {
		t.Errorf("default difficulty = %q, want medium", q.Difficulty)
	}
	if q.Explanation != "" {
		t.Errorf("default explanation = %q, want empty", q.Explanation)
	}
	if q.Options != nil {
		t.Errorf("default options = %s, want nil", q.Options)
	}
}

func TestNormalizeQuestionBatchMissingFieldNamesIndex(t *testing.T) {
	raw := []map[string]interface{}{
		{"question": "q1", "correct": "a", "question_type": "fill_blank"},
		{"question": "q2", "correct": "b", "question_type": "fill_blank"},
		{"correct": "c", "question_type": "fill_blank"}, // index 2 (0-based) lacks both text aliases
	}

	_, err := NormalizeQuestionBatch(raw, 1, testNow)
	if err == nil {
		t.Fatal("expected batch rejection")
	}
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(vErr.Error(), "question 3") {
		t.Errorf("error should name 1-based index 3, got %q", vErr.Error())
	}
}

func TestNormalizeQuestionBatchEmpty(t *testing.T) {
	if _, err := NormalizeQuestionBatch(nil, 1, testNow); err == nil {
		t.Error("nil batch should be rejected")
	}
	if _, err := NormalizeQuestionBatch([]map[string]interface{}{}, 1, testNow); err == nil {
		t.Error("empty batch should be rejected")
	}
}

func TestNormalizeQuestionBatchUnknownTypeDefaults(t *testing.T) {
	raw := []map[string]interface{}{
		{"question": "q", "correct": "a", "question_type": "essay"},
	}

	qs, err := NormalizeQuestionBatch(raw, 1, testNow)
	if err != nil {
		t.Fatalf("unknown type should not reject: %v", err)
	}
	if qs[0].QuestionType != models.TypeMultipleChoice {
		t.Errorf("type = %q, want multiple_choice fallback", qs[0].QuestionType)
	}
}

func TestNormalizeQuestionBatchStructuredAnswer(t *testing.T) {
	raw := []map[string]interface{}{
		{
			"question":      "Match the capitals",
			"question_type": "match",
			"correct": map[string]interface{}{
				"France": "Paris",
			},
			"options": map[string]interface{}{
				"left":  []interface{}{"France"},
				"right": []interface{}{"Paris"},
			},
		},
		{
			"question":      "The sky is blue.",
			"question_type": "true_false",
			"correct":       true,
		},
	}

	qs, err := NormalizeQuestionBatch(raw, 1, testNow)
	if err != nil {
		t.Fatalf("NormalizeQuestionBatch returned error: %v", err)
	}

	if qs[0].CorrectAnswer != `{"France":"Paris"}` {
		t.Errorf("match answer = %q, want JSON-encoded mapping", qs[0].CorrectAnswer)
	}
	opts, err := qs[0].MatchColumns()
	if err != nil || len(opts.Left) != 1 || opts.Right[0] != "Paris" {
		t.Errorf("match options = %+v (err %v)", opts, err)
	}

	if qs[1].CorrectAnswer != "true" {
		t.Errorf("boolean answer = %q, want \"true\"", qs[1].CorrectAnswer)
	}
}
