package questions

import (
	"fmt"
	"log"
	"time"

	"github.com/tutorquest/backend/internal/engine"
	"github.com/tutorquest/backend/internal/models"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// IngestBatch validates a raw generated batch and swaps it in as the
// student's active question set. Validation failure rejects the whole batch
// and leaves the previous set untouched.
func (s *Service) IngestBatch(raw []map[string]interface{}, studentID int64) (*models.IngestBatchResponse, error) {
	qs, err := NormalizeQuestionBatch(raw, studentID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	deactivated, err := s.store.ReplaceActive(studentID, qs)
	if err != nil {
		return nil, fmt.Errorf("replace question set: %w", err)
	}

	log.Printf("[questions] ingested %d questions for student %d (superseded %d)", len(qs), studentID, deactivated)

	return &models.IngestBatchResponse{Inserted: len(qs), Deactivated: deactivated}, nil
}

// ActiveQuestions returns the student's playable set with match options
// normalized for display.
func (s *Service) ActiveQuestions(studentID int64) ([]models.Question, error) {
	qs, err := s.store.GetActiveQuestions(studentID)
	if err != nil {
		return nil, err
	}

	for i := range qs {
		qs[i] = engine.NormalizeMatchQuestion(qs[i])
	}

	return qs, nil
}
