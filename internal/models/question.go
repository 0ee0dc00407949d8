package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortAnswer    QuestionType = "short_answer"
	TypeVoice          QuestionType = "voice"
	TypeFillBlank      QuestionType = "fill_blank"
	TypeMatch          QuestionType = "match"
)

var ValidQuestionTypes = map[QuestionType]bool{
	TypeMultipleChoice: true,
	TypeTrueFalse:      true,
	TypeShortAnswer:    true,
	TypeVoice:          true,
	TypeFillBlank:      true,
	TypeMatch:          true,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MatchOptions holds the two columns of a match question.
type MatchOptions struct {
	Left  []string `json:"left"`
	Right []string `json:"right"`
}

// Question is the canonical record produced by the batch validator.
// Options stays JSON on the wire (list of strings for multiple_choice,
// {left, right} object for match, null otherwise) and is decoded into a
// typed form at the point of use.
type Question struct {
	ID            int64           `json:"id"`
	StudentID     int64           `json:"student_id"`
	QuestionText  string          `json:"question_text"`
	QuestionType  QuestionType    `json:"question_type"`
	Options       json.RawMessage `json:"options,omitempty"`
	CorrectAnswer string          `json:"correct_answer"`
	ConceptTested string          `json:"concept_tested"`
	Difficulty    Difficulty      `json:"difficulty"`
	Explanation   string          `json:"explanation"`
	Active        bool            `json:"active"`
	CreatedDate   time.Time       `json:"created_date"`
}

// ChoiceOptions decodes the options payload as an ordered list of choices.
func (q *Question) ChoiceOptions() ([]string, error) {
	if len(q.Options) == 0 {
		return nil, nil
	}
	var choices []string
	if err := json.Unmarshal(q.Options, &choices); err != nil {
		return nil, fmt.Errorf("decode choice options: %w", err)
	}
	return choices, nil
}

// MatchColumns decodes the options payload as a left/right column pair.
func (q *Question) MatchColumns() (*MatchOptions, error) {
	if len(q.Options) == 0 {
		return nil, nil
	}
	var opts MatchOptions
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, fmt.Errorf("decode match options: %w", err)
	}
	return &opts, nil
}

// SetMatchColumns re-encodes a typed column pair back onto the wire form.
func (q *Question) SetMatchColumns(opts *MatchOptions) error {
	b, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encode match options: %w", err)
	}
	q.Options = b
	return nil
}

// ── Request/Response Types ─────────────────────────────

type IngestBatchRequest struct {
	Questions []map[string]interface{} `json:"questions"`
}

type IngestBatchResponse struct {
	Inserted    int `json:"inserted"`
	Deactivated int `json:"deactivated"`
}

type QuestionListResponse struct {
	Questions []Question `json:"questions"`
	Total     int        `json:"total"`
}
