package quiz

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/lib/pq"

	"github.com/tutorquest/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Submissions ─────────────────────────────────────────

func (s *Store) InsertSubmission(sum *models.QuizSummary) error {
	answersJSON, err := json.Marshal(sum.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	err = s.db.QueryRow(
		`INSERT INTO quiz_submissions
		    (student_id, quiz_date, total_questions, correct_answers, incorrect_answers,
		     score, time_taken_seconds, highest_streak, total_score, answers_json, concepts_tested)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		sum.StudentID, sum.QuizDate, sum.TotalQuestions, sum.CorrectAnswers, sum.IncorrectAnswers,
		sum.Score, sum.TimeTakenSeconds, sum.HighestStreak, sum.TotalScore, answersJSON,
		pq.Array(sum.ConceptsTested),
	).Scan(&sum.ID)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// RecentSubmissions returns the student's last N quizzes in chronological
// order, oldest first.
func (s *Store) RecentSubmissions(studentID int64, limit int) ([]models.QuizSummary, error) {
	rows, err := s.db.Query(
		`SELECT id, student_id, quiz_date, total_questions, correct_answers, incorrect_answers,
		        score, time_taken_seconds, highest_streak, total_score, answers_json, concepts_tested
		 FROM quiz_submissions
		 WHERE student_id = $1
		 ORDER BY quiz_date DESC
		 LIMIT $2`,
		studentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get recent submissions: %w", err)
	}
	defer rows.Close()

	var quizzes []models.QuizSummary
	for rows.Next() {
		var q models.QuizSummary
		var answersJSON []byte
		if err := rows.Scan(&q.ID, &q.StudentID, &q.QuizDate, &q.TotalQuestions, &q.CorrectAnswers,
			&q.IncorrectAnswers, &q.Score, &q.TimeTakenSeconds, &q.HighestStreak, &q.TotalScore,
			&answersJSON, pq.Array(&q.ConceptsTested)); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		q.Answers = decodeAnswers(answersJSON, q.ID)
		quizzes = append(quizzes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order
	for i, j := 0, len(quizzes)-1; i < j; i, j = i+1, j-1 {
		quizzes[i], quizzes[j] = quizzes[j], quizzes[i]
	}
	return quizzes, nil
}

// decodeAnswers unpacks an answers_json column. A corrupt row degrades to an
// empty envelope but leaves a trace, since silent data loss here would make
// the analytics look inexplicably empty.
func decodeAnswers(raw []byte, submissionID int64) models.AnswersEnvelope {
	var env models.AnswersEnvelope
	if len(raw) == 0 {
		return env
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("[quiz] WARN: corrupt answers_json on submission %d: %v", submissionID, err)
	}
	return env
}

func (s *Store) CountSubmissions(studentID int64) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM quiz_submissions WHERE student_id = $1`,
		studentID,
	).Scan(&count)
	return count, err
}

// ── Weekly Points ───────────────────────────────────────

func (s *Store) AddWeeklyPoints(studentID int64, points int) error {
	_, err := s.db.Exec(
		`INSERT INTO weekly_points (student_id, points) VALUES ($1, $2)
		 ON CONFLICT (student_id) DO UPDATE SET
		    points = weekly_points.points + EXCLUDED.points,
		    updated_at = NOW()`,
		studentID, points,
	)
	if err != nil {
		return fmt.Errorf("add weekly points: %w", err)
	}
	return nil
}

func (s *Store) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.Query(
		`SELECT u.id, u.name, w.points,
		        ROW_NUMBER() OVER (ORDER BY w.points DESC, u.id) as rank
		 FROM weekly_points w
		 JOIN users u ON u.id = w.student_id
		 WHERE w.points > 0
		 ORDER BY w.points DESC, u.id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		var fullName string
		if err := rows.Scan(&e.StudentID, &fullName, &e.WeeklyPoints, &e.Rank); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		e.DisplayName = models.User{Name: fullName}.DisplayName()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) ResetWeeklyPoints() error {
	_, err := s.db.Exec(`UPDATE weekly_points SET points = 0, updated_at = NOW()`)
	return err
}
