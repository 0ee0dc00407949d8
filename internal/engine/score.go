package engine

import "github.com/tutorquest/backend/internal/models"

// ComputeScore returns the points for one answer. Streak is the
// consecutive-correct count before this answer, so the bonus scales with
// momentum already built. There is deliberately no time-based bonus: time
// pressure would penalize careful thinkers.
func ComputeScore(correct bool, streakBeforeAnswer int) int {
	if !correct {
		return 0
	}
	return (100 + 20*streakBeforeAnswer) / 10
}

// Session tracks the mutable state of one quiz attempt. The evaluator and
// score functions stay pure; all streak/point bookkeeping lives here, owned
// by the caller.
type Session struct {
	Streak        int
	HighestStreak int
	TotalPoints   int
	Correct       int
	Answered      int
	Answers       []models.AnswerRecord
}

func NewSession() *Session {
	return &Session{}
}

// Record scores one answer, updates streak state, and appends the answer
// record. Returns the points earned.
func (s *Session) Record(questionID int64, concept, submitted string, correct bool, timeSpentSeconds float64) int {
	points := ComputeScore(correct, s.Streak)

	if correct {
		s.Streak++
		s.Correct++
		if s.Streak > s.HighestStreak {
			s.HighestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}

	s.Answered++
	s.TotalPoints += points
	s.Answers = append(s.Answers, models.AnswerRecord{
		QuestionID:       questionID,
		Concept:          concept,
		Submitted:        submitted,
		Correct:          correct,
		TimeSpentSeconds: timeSpentSeconds,
		PointsEarned:     points,
	})

	return points
}

// Summary materializes the session into an immutable quiz summary for the
// given student. Score percentage is derived, never carried separately.
func (s *Session) Summary(studentID int64, concepts []string) models.QuizSummary {
	var totalTime float64
	for _, a := range s.Answers {
		totalTime += a.TimeSpentSeconds
	}

	sum := models.QuizSummary{
		StudentID:        studentID,
		TotalQuestions:   s.Answered,
		CorrectAnswers:   s.Correct,
		IncorrectAnswers: s.Answered - s.Correct,
		TimeTakenSeconds: totalTime,
		HighestStreak:    s.HighestStreak,
		TotalScore:       s.TotalPoints,
		Answers:          models.AnswersEnvelope{Questions: s.Answers},
		ConceptsTested:   concepts,
	}
	sum.Score = sum.ScorePercent()
	return sum
}
