package analytics

import (
	"fmt"

	"github.com/tutorquest/backend/internal/models"
)

// AggregateInput carries everything the final payload needs. Any analytics
// field may be nil — a slow or failed sibling transform degrades to an empty
// default rather than corrupting the response.
type AggregateInput struct {
	Summary         models.QuizSummary
	Performance     *models.PerformanceAnalysis
	Trends          *models.ProgressTrend
	SRS             *models.SRSRecommendationSet
	Leaderboard     []models.LeaderboardEntry
	Feedback        string
	SRSUpdated      bool
	ConceptsUpdated int
}

// BuildFinalResponse merges the analytics outputs, leaderboard rank, and
// feedback into the unified client payload. It always completes: absent
// pieces resolve to empty objects, a missing leaderboard entry to a nil
// rank.
func BuildFinalResponse(in AggregateInput) models.ClientResponse {
	perf := in.Performance
	if perf == nil {
		empty := emptyAnalysis()
		perf = &empty
	}

	trends := in.Trends
	if trends == nil {
		trends = &models.ProgressTrend{
			LastScores:      []float64{},
			Insights:        []string{},
			Recommendations: []string{},
		}
	}

	srs := in.SRS
	if srs == nil {
		empty := ProcessSRSRecommendations(nil, in.Summary.QuizDate)
		srs = &empty
	}

	rank := findRank(in.Leaderboard, in.Summary.StudentID)

	return models.ClientResponse{
		Success: true,
		Message: motivationalMessage(rank),
		Data: models.ClientResponseData{
			Score:               in.Summary.ScorePercent(),
			TotalQuestions:      in.Summary.TotalQuestions,
			CorrectAnswers:      in.Summary.CorrectAnswers,
			TotalPoints:         in.Summary.TotalScore,
			PerformanceAnalysis: perf,
			ProgressTrends:      trends,
			SRSRecommendations:  srs,
			WeeklyRank:          rank,
			TotalStudents:       len(in.Leaderboard),
			Feedback:            in.Feedback,
			NextMilestone:       nextMilestone(rank),
			SRSUpdated:          in.SRSUpdated,
			ConceptsUpdated:     in.ConceptsUpdated,
		},
	}
}

// findRank returns the student's 1-based position in the snapshot, nil when
// absent.
func findRank(entries []models.LeaderboardEntry, studentID int64) *int {
	for i, e := range entries {
		if e.StudentID == studentID {
			rank := i + 1
			return &rank
		}
	}
	return nil
}

func motivationalMessage(rank *int) string {
	switch {
	case rank == nil:
		return "Quiz complete! Keep practicing to climb onto the leaderboard."
	case *rank == 1:
		return "You're #1 on the leaderboard this week!"
	case *rank <= 3:
		return fmt.Sprintf("You're in the top 3 — rank #%d this week!", *rank)
	default:
		return fmt.Sprintf("Quiz complete! %d spots to go to reach the top of the leaderboard.", *rank-1)
	}
}

func nextMilestone(rank *int) string {
	switch {
	case rank == nil:
		return "Score your first leaderboard points this week"
	case *rank == 1:
		return "Defend your #1 spot"
	case *rank <= 3:
		return "Take the #1 spot"
	default:
		return "Break into the top 3"
	}
}
