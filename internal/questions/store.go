package questions

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

// ReplaceActive supersedes the student's current question set with the new
// batch in a single transaction: deactivate and insert commit together, so
// a failure anywhere leaves the previous set active. Returns the number of
// questions superseded.
func (s *Store) ReplaceActive(studentID int64, qs []models.Question) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin replace active: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE questions SET active = FALSE WHERE student_id = $1 AND active = TRUE`,
		studentID,
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate questions: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO questions
		    (student_id, question_text, question_type, options, correct_answer,
		     concept_tested, difficulty, explanation, active, created_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
	)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range qs {
		var options interface{}
		if len(q.Options) > 0 {
			options = []byte(q.Options)
		}
		if _, err := stmt.Exec(
			q.StudentID, q.QuestionText, q.QuestionType, options, q.CorrectAnswer,
			q.ConceptTested, q.Difficulty, q.Explanation, q.Active, q.CreatedDate,
		); err != nil {
			return 0, fmt.Errorf("insert question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit replace active: %w", err)
	}

	n, _ := res.RowsAffected()
	return int(n), nil
}

// GetActiveQuestions returns the student's active set, oldest first.
func (s *Store) GetActiveQuestions(studentID int64) ([]models.Question, error) {
	rows, err := s.db.Query(
		`SELECT id, student_id, question_text, question_type, options, correct_answer,
		        concept_tested, difficulty, explanation, active, created_date
		 FROM questions
		 WHERE student_id = $1 AND active = TRUE
		 ORDER BY id`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("get active questions: %w", err)
	}
	defer rows.Close()

	var out []models.Question
	for rows.Next() {
		var q models.Question
		var options sql.NullString
		if err := rows.Scan(
			&q.ID, &q.StudentID, &q.QuestionText, &q.QuestionType, &options, &q.CorrectAnswer,
			&q.ConceptTested, &q.Difficulty, &q.Explanation, &q.Active, &q.CreatedDate,
		); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if options.Valid {
			q.Options = []byte(options.String)
		}
		out = append(out, q)
	}

	return out, rows.Err()
}
