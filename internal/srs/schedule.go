package srs

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/tutorquest/backend/internal/models"
)

// Mastery blending: the latest quiz weighs more than history so a student
// who finally gets fractions right sees the number move.
const (
	latestWeight     = 0.6
	historicalWeight = 0.4
)

// Review intervals by mastery band, in days.
const (
	intervalCritical   = 1
	intervalStruggling = 3
	intervalLearning   = 7
	intervalMastered   = 14
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ApplyQuizResults folds one quiz's answers into the student's concept
// mastery rows and reschedules each touched concept. Returns the number of
// concepts updated.
func (s *Service) ApplyQuizResults(studentID int64, answers []models.AnswerRecord, now time.Time) (int, error) {
	type tally struct {
		attempts int
		correct  int
	}
	byConcept := make(map[string]*tally)
	for _, a := range answers {
		if a.Concept == "" {
			continue
		}
		t := byConcept[a.Concept]
		if t == nil {
			t = &tally{}
			byConcept[a.Concept] = t
		}
		t.attempts++
		if a.Correct {
			t.correct++
		}
	}

	updated := 0
	for concept, t := range byConcept {
		latest := float64(t.correct) / float64(t.attempts) * 100

		existing, err := s.store.GetConcept(studentID, concept)
		if err != nil {
			return updated, fmt.Errorf("get mastery for %q: %w", concept, err)
		}

		var mastery int
		rec := models.ConceptMastery{
			StudentID: studentID,
			Concept:   concept,
		}
		if existing == nil {
			// First exposure: no history to blend against.
			mastery = int(math.Round(latest))
		} else {
			mastery = BlendMastery(existing.Mastery, latest)
			rec.TimesSeen = existing.TimesSeen
			rec.TimesCorrect = existing.TimesCorrect
		}

		rec.Mastery = mastery
		rec.TimesSeen += t.attempts
		rec.TimesCorrect += t.correct
		rec.LastSeenAt = now
		rec.NextDueDate = NextReviewDate(mastery, now)

		if err := s.store.Upsert(rec); err != nil {
			return updated, fmt.Errorf("upsert mastery for %q: %w", concept, err)
		}
		updated++
	}

	if updated > 0 {
		log.Printf("[srs] student %d: updated mastery for %d concepts", studentID, updated)
	}
	return updated, nil
}

// MasteryForStudent returns all mastery rows for a student, for the
// recommendation pass.
func (s *Service) MasteryForStudent(studentID int64) ([]models.ConceptMastery, error) {
	return s.store.GetMasteryForStudent(studentID)
}

// BlendMastery mixes the latest quiz accuracy (0-100) with the stored
// mastery score, weighting the fresh signal at 60%.
func BlendMastery(historical int, latestPct float64) int {
	blended := latestPct*latestWeight + float64(historical)*historicalWeight
	m := int(math.Round(blended))
	if m < 0 {
		return 0
	}
	if m > 100 {
		return 100
	}
	return m
}

// NextReviewDate schedules the next review: weak concepts come back fast,
// mastered ones get two weeks of rest.
func NextReviewDate(mastery int, now time.Time) time.Time {
	day := now.Truncate(24 * time.Hour)
	switch {
	case mastery < 40:
		return day.AddDate(0, 0, intervalCritical)
	case mastery < 60:
		return day.AddDate(0, 0, intervalStruggling)
	case mastery < 80:
		return day.AddDate(0, 0, intervalLearning)
	default:
		return day.AddDate(0, 0, intervalMastered)
	}
}
