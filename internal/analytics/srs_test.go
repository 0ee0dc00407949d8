package analytics

import (
	"testing"
	"time"

	"github.com/tutorquest/backend/internal/models"
)

var srsNow = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func masteryRow(concept string, mastery int, due time.Time) models.ConceptMastery {
	return models.ConceptMastery{Concept: concept, Mastery: mastery, NextDueDate: due}
}

func TestProcessSRSRecommendationsEmpty(t *testing.T) {
	got := ProcessSRSRecommendations(nil, srsNow)

	if got.Summary.TotalConcepts != 0 {
		t.Errorf("total concepts = %d, want 0", got.Summary.TotalConcepts)
	}
	if len(got.ReviewTomorrow)+len(got.ReviewThisWeek)+len(got.CriticalConcepts)+
		len(got.StrugglingConcepts)+len(got.MasteredConcepts) != 0 {
		t.Errorf("buckets should all be empty: %+v", got)
	}
	if len(got.ActionItems) != 0 {
		t.Errorf("action items = %v, want none", got.ActionItems)
	}
	if got.ReviewTomorrow == nil {
		t.Error("buckets should be empty slices, not nil")
	}
}

func TestProcessSRSRecommendationsDueBuckets(t *testing.T) {
	records := []models.ConceptMastery{
		masteryRow("fractions", 70, srsNow.AddDate(0, 0, 1)), // due tomorrow
		masteryRow("decimals", 70, srsNow.AddDate(0, 0, 4)),  // due this week
		masteryRow("algebra", 70, srsNow.AddDate(0, 0, 20)),  // far out
	}

	got := ProcessSRSRecommendations(records, srsNow)

	if len(got.ReviewTomorrow) != 1 || got.ReviewTomorrow[0] != "fractions" {
		t.Errorf("review tomorrow = %v, want [fractions]", got.ReviewTomorrow)
	}
	if len(got.ReviewThisWeek) != 1 || got.ReviewThisWeek[0] != "decimals" {
		t.Errorf("review this week = %v, want [decimals]", got.ReviewThisWeek)
	}
	if got.Summary.DueTomorrow != 1 || got.Summary.DueThisWeek != 1 || got.Summary.TotalConcepts != 3 {
		t.Errorf("summary = %+v", got.Summary)
	}
}

func TestProcessSRSRecommendationsMasteryBuckets(t *testing.T) {
	far := srsNow.AddDate(0, 1, 0)
	records := []models.ConceptMastery{
		masteryRow("fractions", 20, far), // critical
		masteryRow("decimals", 50, far),  // struggling
		masteryRow("algebra", 90, far),   // mastered
		masteryRow("geometry", 70, far),  // middle band, no bucket
	}

	got := ProcessSRSRecommendations(records, srsNow)

	if len(got.CriticalConcepts) != 1 || got.CriticalConcepts[0] != "fractions" {
		t.Errorf("critical = %v, want [fractions]", got.CriticalConcepts)
	}
	if len(got.StrugglingConcepts) != 1 || got.StrugglingConcepts[0] != "decimals" {
		t.Errorf("struggling = %v, want [decimals]", got.StrugglingConcepts)
	}
	if len(got.MasteredConcepts) != 1 || got.MasteredConcepts[0] != "algebra" {
		t.Errorf("mastered = %v, want [algebra]", got.MasteredConcepts)
	}
}

func TestProcessSRSRecommendationsOverlappingBuckets(t *testing.T) {
	// Critical AND due tomorrow: appears in both buckets.
	records := []models.ConceptMastery{
		masteryRow("fractions", 10, srsNow.AddDate(0, 0, 1)),
	}

	got := ProcessSRSRecommendations(records, srsNow)

	if len(got.ReviewTomorrow) != 1 || len(got.CriticalConcepts) != 1 {
		t.Errorf("concept should land in both buckets: %+v", got)
	}
}

func TestProcessSRSRecommendationsActionItems(t *testing.T) {
	records := []models.ConceptMastery{
		masteryRow("fractions", 10, srsNow.AddDate(0, 0, 1)),
		masteryRow("algebra", 95, srsNow.AddDate(0, 1, 0)),
	}

	got := ProcessSRSRecommendations(records, srsNow)

	if len(got.ActionItems) == 0 {
		t.Fatal("non-empty buckets should produce action items")
	}
	if got.ActionItems[0] != "Review 1 critical concepts before your next session" {
		t.Errorf("first action item = %q", got.ActionItems[0])
	}
}

func TestProcessSRSRecommendationsOverdue(t *testing.T) {
	// Already-overdue concepts count as due tomorrow.
	records := []models.ConceptMastery{
		masteryRow("fractions", 70, srsNow.AddDate(0, 0, -3)),
	}

	got := ProcessSRSRecommendations(records, srsNow)
	if len(got.ReviewTomorrow) != 1 {
		t.Errorf("overdue concept should be in review_tomorrow: %+v", got)
	}
}
