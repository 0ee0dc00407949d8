package srs

import (
	"database/sql"
	"fmt"

	"github.com/tutorquest/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetConcept(studentID int64, concept string) (*models.ConceptMastery, error) {
	var m models.ConceptMastery
	err := s.db.QueryRow(
		`SELECT id, student_id, concept, mastery, times_seen, times_correct,
		        last_seen_at, next_due_date
		 FROM concept_mastery
		 WHERE student_id = $1 AND concept = $2`,
		studentID, concept,
	).Scan(&m.ID, &m.StudentID, &m.Concept, &m.Mastery, &m.TimesSeen,
		&m.TimesCorrect, &m.LastSeenAt, &m.NextDueDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get concept mastery: %w", err)
	}
	return &m, nil
}

func (s *Store) Upsert(m models.ConceptMastery) error {
	_, err := s.db.Exec(
		`INSERT INTO concept_mastery
		    (student_id, concept, mastery, times_seen, times_correct, last_seen_at, next_due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (student_id, concept) DO UPDATE SET
		    mastery = EXCLUDED.mastery,
		    times_seen = EXCLUDED.times_seen,
		    times_correct = EXCLUDED.times_correct,
		    last_seen_at = EXCLUDED.last_seen_at,
		    next_due_date = EXCLUDED.next_due_date`,
		m.StudentID, m.Concept, m.Mastery, m.TimesSeen, m.TimesCorrect,
		m.LastSeenAt, m.NextDueDate,
	)
	if err != nil {
		return fmt.Errorf("upsert concept mastery: %w", err)
	}
	return nil
}

func (s *Store) GetMasteryForStudent(studentID int64) ([]models.ConceptMastery, error) {
	rows, err := s.db.Query(
		`SELECT id, student_id, concept, mastery, times_seen, times_correct,
		        last_seen_at, next_due_date
		 FROM concept_mastery
		 WHERE student_id = $1
		 ORDER BY next_due_date, concept`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("get student mastery: %w", err)
	}
	defer rows.Close()

	var records []models.ConceptMastery
	for rows.Next() {
		var m models.ConceptMastery
		if err := rows.Scan(&m.ID, &m.StudentID, &m.Concept, &m.Mastery, &m.TimesSeen,
			&m.TimesCorrect, &m.LastSeenAt, &m.NextDueDate); err != nil {
			return nil, fmt.Errorf("scan mastery row: %w", err)
		}
		records = append(records, m)
	}
	return records, rows.Err()
}
