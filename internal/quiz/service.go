package quiz

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tutorquest/backend/internal/analytics"
	"github.com/tutorquest/backend/internal/engine"
	"github.com/tutorquest/backend/internal/feedback"
	"github.com/tutorquest/backend/internal/models"
	"github.com/tutorquest/backend/internal/questions"
	"github.com/tutorquest/backend/internal/srs"
)

const (
	defaultHistoryLimit = 5
	maxHistoryLimit     = 50
	leaderboardLimit    = 20
	trendLookback       = 5
)

type Service struct {
	store     *Store
	questions *questions.Service
	srs       *srs.Service
	feedback  *feedback.Service
	oracle    engine.GradingOracle
	cfg       analytics.Config
}

func NewService(store *Store, qs *questions.Service, srsSvc *srs.Service, fb *feedback.Service) *Service {
	return &Service{
		store:     store,
		questions: qs,
		srs:       srsSvc,
		feedback:  fb,
		oracle:    engine.HeuristicOracle{},
		cfg:       analytics.DefaultConfig(),
	}
}

// SetGradingOracle swaps the default heuristic grader for another
// implementation, such as the AI-backed one.
func (s *Service) SetGradingOracle(o engine.GradingOracle) {
	s.oracle = o
}

// Submit grades a quiz, persists the attempt, updates mastery, and fans out
// the analytics passes. Grading and persistence are authoritative; every
// downstream transform degrades to an empty default on failure so the
// student always gets their result.
func (s *Service) Submit(ctx context.Context, studentID int64, req models.SubmitQuizRequest) (*models.ClientResponse, error) {
	if len(req.Answers) == 0 {
		return nil, fmt.Errorf("no answers submitted")
	}

	active, err := s.questions.ActiveQuestions(studentID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	now := time.Now().UTC()
	sum := gradeQuiz(ctx, s.oracle, studentID, active, req)
	sum.QuizDate = now

	// Prior attempts are fetched before the insert so the trend comparison
	// never sees the quiz being submitted.
	prior, err := s.store.RecentSubmissions(studentID, trendLookback)
	if err != nil {
		log.Printf("[quiz] WARN: failed to load prior submissions for student %d: %v", studentID, err)
		prior = nil
	}

	if err := s.store.InsertSubmission(&sum); err != nil {
		return nil, fmt.Errorf("persist submission: %w", err)
	}

	if err := s.store.AddWeeklyPoints(studentID, sum.TotalScore); err != nil {
		log.Printf("[quiz] WARN: failed to add weekly points for student %d: %v", studentID, err)
	}

	srsUpdated := true
	conceptsUpdated, err := s.srs.ApplyQuizResults(studentID, sum.Answers.Questions, now)
	if err != nil {
		log.Printf("[quiz] WARN: SRS update failed for student %d: %v", studentID, err)
		srsUpdated = false
	}

	// Performance analysis is computed up front so the feedback prompt can
	// reference it. The remaining transforms run concurrently; failures are
	// logged and degrade to nil, and the aggregator substitutes defaults.
	p := analytics.AnalyzePerformance(sum, s.cfg)
	perf := &p

	var (
		trends      *models.ProgressTrend
		srsRecs     *models.SRSRecommendationSet
		leaderboard []models.LeaderboardEntry
		note        string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t := analytics.AnalyzeProgressTrends(prior, sum)
		trends = &t
		return nil
	})
	g.Go(func() error {
		records, err := s.srs.MasteryForStudent(studentID)
		if err != nil {
			log.Printf("[quiz] WARN: mastery fetch failed for student %d: %v", studentID, err)
			return nil
		}
		r := analytics.ProcessSRSRecommendations(records, now)
		srsRecs = &r
		return nil
	})
	g.Go(func() error {
		entries, err := s.store.GetLeaderboard(leaderboardLimit)
		if err != nil {
			log.Printf("[quiz] WARN: leaderboard fetch failed: %v", err)
			return nil
		}
		leaderboard = entries
		return nil
	})
	g.Go(func() error {
		note = s.feedback.ForQuiz(gctx, sum, perf)
		return nil
	})
	g.Wait()

	resp := analytics.BuildFinalResponse(analytics.AggregateInput{
		Summary:         sum,
		Performance:     perf,
		Trends:          trends,
		SRS:             srsRecs,
		Leaderboard:     leaderboard,
		Feedback:        note,
		SRSUpdated:      srsUpdated,
		ConceptsUpdated: conceptsUpdated,
	})
	return &resp, nil
}

// gradeQuiz evaluates every submitted answer against the active question
// set. Answers referencing unknown or inactive questions are skipped. An
// oracle error falls back to the built-in heuristic so grading always
// completes.
func gradeQuiz(ctx context.Context, oracle engine.GradingOracle, studentID int64, active []models.Question, req models.SubmitQuizRequest) models.QuizSummary {
	byID := make(map[int64]models.Question, len(active))
	for _, q := range active {
		byID[q.ID] = q
	}

	session := engine.NewSession()
	var concepts []string
	seen := make(map[string]bool)

	for _, ans := range req.Answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			log.Printf("[quiz] WARN: student %d answered unknown question %d, skipping", studentID, ans.QuestionID)
			continue
		}

		correct, err := oracle.Grade(ctx, ans.Answer, q.CorrectAnswer, q.QuestionType)
		if err != nil {
			log.Printf("[quiz] WARN: grading oracle failed on question %d, using heuristic: %v", q.ID, err)
			correct = engine.IsCorrect(ans.Answer, q.CorrectAnswer, q.QuestionType)
		}
		session.Record(q.ID, q.ConceptTested, ans.Answer, correct, ans.TimeSpentSeconds)
		session.Answers[len(session.Answers)-1].ChosenConcept = ans.ChosenConcept

		if !seen[q.ConceptTested] {
			seen[q.ConceptTested] = true
			concepts = append(concepts, q.ConceptTested)
		}
	}

	sum := session.Summary(studentID, concepts)
	sum.Answers.Metadata = req.Metadata
	return sum
}

// ── History & Leaderboard ───────────────────────────────

func (s *Service) History(studentID int64, limit int) (*models.QuizHistoryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	quizzes, err := s.store.RecentSubmissions(studentID, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.store.CountSubmissions(studentID)
	if err != nil {
		return nil, err
	}
	if quizzes == nil {
		quizzes = []models.QuizSummary{}
	}
	// Newest first for display
	for i, j := 0, len(quizzes)-1; i < j; i, j = i+1, j-1 {
		quizzes[i], quizzes[j] = quizzes[j], quizzes[i]
	}
	return &models.QuizHistoryResponse{Quizzes: quizzes, Total: total}, nil
}

func (s *Service) Leaderboard(studentID int64) (*models.LeaderboardResponse, error) {
	entries, err := s.store.GetLeaderboard(leaderboardLimit)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].StudentID == studentID {
			entries[i].IsCurrentUser = true
		}
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return &models.LeaderboardResponse{
		Period:  currentWeekPeriod(time.Now().UTC()),
		Entries: entries,
	}, nil
}

func currentWeekPeriod(now time.Time) string {
	weekStart := now.AddDate(0, 0, -int(now.Weekday()-time.Monday+7)%7)
	weekEnd := weekStart.AddDate(0, 0, 6)
	return fmt.Sprintf("%s to %s", weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02"))
}

// ── Background Workers ──────────────────────────────────

// StartWeeklyResetWorker zeroes the weekly leaderboard every Monday at
// 00:xx UTC.
func (s *Service) StartWeeklyResetWorker(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	log.Println("[quiz] Weekly reset worker started")

	for {
		select {
		case <-ctx.Done():
			log.Println("[quiz] Weekly reset worker shutting down")
			return
		case t := <-ticker.C:
			utc := t.UTC()
			if utc.Weekday() == time.Monday && utc.Hour() == 0 {
				log.Println("[quiz] Running weekly leaderboard reset")
				if err := s.store.ResetWeeklyPoints(); err != nil {
					log.Printf("[quiz] WARN: weekly reset failed: %v", err)
				}
			}
		}
	}
}
