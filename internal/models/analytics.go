package models

import "time"

// ── Performance Analysis ────────────────────────────────
// Derived from a single QuizSummary; never persisted.

type PerformanceAnalysis struct {
	IsRushing          bool              `json:"is_rushing"`
	RushedCount        int               `json:"rushed_count"`
	ConfusionPairs     []ConfusionPair   `json:"confusion_pairs"`
	TimeBuckets        TimeBucketReport  `json:"time_buckets"`
	FastestCorrectSecs float64           `json:"fastest_correct_seconds"`
	SlowestCorrectSecs float64           `json:"slowest_correct_seconds"`
	CriticalWeaknesses []ConceptAccuracy `json:"critical_weaknesses"`
	ModerateWeaknesses []ConceptAccuracy `json:"moderate_weaknesses"`
	Strengths          []ConceptAccuracy `json:"strengths"`
}

type ConfusionPair struct {
	ConceptA    string `json:"concept_a"`
	ConceptB    string `json:"concept_b"`
	Occurrences int    `json:"occurrences"`
}

type TimeBucketReport struct {
	Fast   BucketStat `json:"fast"`
	Medium BucketStat `json:"medium"`
	Slow   BucketStat `json:"slow"`
}

type BucketStat struct {
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type ConceptAccuracy struct {
	Concept  string  `json:"concept"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// ── Progress Trend ──────────────────────────────────────

type ProgressTrend struct {
	FirstQuiz       bool      `json:"first_quiz"`
	Direction       string    `json:"direction"`
	ChangePercent   *float64  `json:"change_percent"`
	LastScores      []float64 `json:"last_scores"`
	RollingAverage  float64   `json:"rolling_average"`
	BestScore       float64   `json:"best_score"`
	WorstScore      float64   `json:"worst_score"`
	Consistency     string    `json:"consistency"`
	VsLastQuiz      float64   `json:"vs_last_quiz"`
	VsAverage       float64   `json:"vs_average"`
	VsBest          float64   `json:"vs_best"`
	Insights        []string  `json:"insights"`
	Recommendations []string  `json:"recommendations"`
	Message         string    `json:"message,omitempty"`
}

// ── SRS ─────────────────────────────────────────────────

// ConceptMastery is one row per (student, concept) in the spaced-repetition
// store. Mastery runs 0–100.
type ConceptMastery struct {
	ID           int64     `json:"id"`
	StudentID    int64     `json:"student_id"`
	Concept      string    `json:"concept"`
	Mastery      int       `json:"mastery"`
	TimesSeen    int       `json:"times_seen"`
	TimesCorrect int       `json:"times_correct"`
	LastSeenAt   time.Time `json:"last_seen_at"`
	NextDueDate  time.Time `json:"next_due_date"`
}

type SRSRecommendationSet struct {
	ReviewTomorrow     []string   `json:"review_tomorrow"`
	ReviewThisWeek     []string   `json:"review_this_week"`
	CriticalConcepts   []string   `json:"critical_concepts"`
	StrugglingConcepts []string   `json:"struggling_concepts"`
	MasteredConcepts   []string   `json:"mastered_concepts"`
	Summary            SRSSummary `json:"summary"`
	ActionItems        []string   `json:"action_items"`
}

type SRSSummary struct {
	TotalConcepts int `json:"total_concepts"`
	DueTomorrow   int `json:"due_tomorrow"`
	DueThisWeek   int `json:"due_this_week"`
	Critical      int `json:"critical"`
	Struggling    int `json:"struggling"`
	Mastered      int `json:"mastered"`
}

// ── Unified Client Payload ──────────────────────────────

type ClientResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    ClientResponseData `json:"data"`
}

type ClientResponseData struct {
	Score               float64               `json:"score"`
	TotalQuestions      int                   `json:"total_questions"`
	CorrectAnswers      int                   `json:"correct_answers"`
	TotalPoints         int                   `json:"total_points"`
	PerformanceAnalysis *PerformanceAnalysis  `json:"performance_analysis"`
	ProgressTrends      *ProgressTrend        `json:"progress_trends"`
	SRSRecommendations  *SRSRecommendationSet `json:"srs_recommendations"`
	WeeklyRank          *int                  `json:"weekly_rank"`
	TotalStudents       int                   `json:"total_students"`
	Feedback            string                `json:"feedback"`
	NextMilestone       string                `json:"next_milestone"`
	SRSUpdated          bool                  `json:"srs_updated"`
	ConceptsUpdated     int                   `json:"concepts_updated"`
}
