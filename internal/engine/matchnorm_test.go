package engine

import (
	"reflect"
	"testing"

	"github.com/tutorquest/backend/internal/models"
)

func matchQuestion(t *testing.T, left, right []string) models.Question {
	t.Helper()
	q := models.Question{QuestionType: models.TypeMatch}
	if err := q.SetMatchColumns(&models.MatchOptions{Left: left, Right: right}); err != nil {
		t.Fatalf("set match columns: %v", err)
	}
	return q
}

func TestNormalizeMatchQuestionDuplicates(t *testing.T) {
	q := matchQuestion(t,
		[]string{"France", "England", "Texas"},
		[]string{"Paris", "London", "Paris"},
	)

	got := NormalizeMatchQuestion(q)

	opts, err := got.MatchColumns()
	if err != nil {
		t.Fatalf("decode normalized options: %v", err)
	}

	wantRight := []string{"Paris", "London", "Paris (2)"}
	if !reflect.DeepEqual(opts.Right, wantRight) {
		t.Errorf("right column = %v, want %v", opts.Right, wantRight)
	}
	if !reflect.DeepEqual(opts.Left, []string{"France", "England", "Texas"}) {
		t.Errorf("left column changed: %v", opts.Left)
	}
}

func TestNormalizeMatchQuestionTriplicate(t *testing.T) {
	q := matchQuestion(t,
		[]string{"a", "b", "c"},
		[]string{"X", "X", "X"},
	)

	got := NormalizeMatchQuestion(q)
	opts, _ := got.MatchColumns()

	wantRight := []string{"X", "X (2)", "X (3)"}
	if !reflect.DeepEqual(opts.Right, wantRight) {
		t.Errorf("right column = %v, want %v", opts.Right, wantRight)
	}
}

func TestNormalizeMatchQuestionNonMatchIdentity(t *testing.T) {
	q := models.Question{
		QuestionType:  models.TypeMultipleChoice,
		QuestionText:  "What is 2+2?",
		CorrectAnswer: "4",
	}

	got := NormalizeMatchQuestion(q)
	if !reflect.DeepEqual(got, q) {
		t.Error("non-match question should pass through unchanged")
	}
}

func TestNormalizeMatchQuestionMalformedOptions(t *testing.T) {
	q := models.Question{
		QuestionType: models.TypeMatch,
		Options:      []byte(`{"left": ["a"]}`),
	}

	got := NormalizeMatchQuestion(q)
	if string(got.Options) != string(q.Options) {
		t.Error("missing right column should be a no-op")
	}

	q.Options = []byte(`not json`)
	got = NormalizeMatchQuestion(q)
	if string(got.Options) != "not json" {
		t.Error("malformed options should be a no-op")
	}
}

func TestNormalizeMatchQuestionNoDuplicates(t *testing.T) {
	q := matchQuestion(t, []string{"a", "b"}, []string{"1", "2"})
	got := NormalizeMatchQuestion(q)
	opts, _ := got.MatchColumns()
	if !reflect.DeepEqual(opts.Right, []string{"1", "2"}) {
		t.Errorf("clean right column changed: %v", opts.Right)
	}
}
