package models

import "time"

// AnswerRecord is one student response within a quiz attempt. Submitted is a
// plain string for every type except match, where it carries a JSON-encoded
// left→right mapping (the wire contract the quiz player produces).
type AnswerRecord struct {
	QuestionID       int64   `json:"question_id"`
	Concept          string  `json:"concept"`
	ChosenConcept    string  `json:"chosen_concept,omitempty"`
	Submitted        string  `json:"submitted_answer"`
	Correct          bool    `json:"correct"`
	TimeSpentSeconds float64 `json:"time_spent_seconds"`
	PointsEarned     int     `json:"points_earned"`
}

// AnswersEnvelope is the answers_json column payload.
type AnswersEnvelope struct {
	Questions []AnswerRecord         `json:"questions"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// QuizSummary is one completed quiz attempt. Immutable once stored.
type QuizSummary struct {
	ID               int64           `json:"id,omitempty"`
	StudentID        int64           `json:"student_id"`
	QuizDate         time.Time       `json:"quiz_date"`
	TotalQuestions   int             `json:"total_questions"`
	CorrectAnswers   int             `json:"correct_answers"`
	IncorrectAnswers int             `json:"incorrect_answers"`
	Score            float64         `json:"score"`
	TimeTakenSeconds float64         `json:"time_taken_seconds"`
	HighestStreak    int             `json:"highest_streak"`
	TotalScore       int             `json:"total_score"`
	Answers          AnswersEnvelope `json:"answers_json"`
	ConceptsTested   []string        `json:"concepts_tested"`
}

// ScorePercent derives the percentage from correct/total. The stored Score
// field is always set from this, never trusted from the client.
func (q *QuizSummary) ScorePercent() float64 {
	if q.TotalQuestions == 0 {
		return 0
	}
	return float64(q.CorrectAnswers) / float64(q.TotalQuestions) * 100
}

// ── Leaderboard ─────────────────────────────────────────

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	StudentID     int64  `json:"student_id"`
	DisplayName   string `json:"display_name"`
	WeeklyPoints  int    `json:"weekly_points"`
	IsCurrentUser bool   `json:"is_current_user,omitempty"`
}

type LeaderboardResponse struct {
	Period  string             `json:"period"`
	Entries []LeaderboardEntry `json:"entries"`
}

// ── Requests/Responses ──────────────────────────────────

// SubmittedAnswer is one raw client answer. For match questions Answer
// carries the JSON-encoded left→right mapping.
type SubmittedAnswer struct {
	QuestionID       int64   `json:"question_id"`
	Answer           string  `json:"answer"`
	TimeSpentSeconds float64 `json:"time_spent_seconds"`
	ChosenConcept    string  `json:"chosen_concept,omitempty"`
}

type SubmitQuizRequest struct {
	Answers  []SubmittedAnswer      `json:"answers"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type QuizHistoryResponse struct {
	Quizzes []QuizSummary `json:"quizzes"`
	Total   int           `json:"total"`
}
