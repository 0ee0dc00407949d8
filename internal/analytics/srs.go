package analytics

import (
	"fmt"
	"time"

	"github.com/tutorquest/backend/internal/models"
)

// Mastery bands for spaced-repetition classification, 0–100 scale.
const (
	masteryCriticalBelow = 40
	masteryStrugglingMax = 60
	masteryMasteredMin   = 80
)

// ProcessSRSRecommendations classifies concept-mastery rows into review
// schedules. The due buckets and the mastery buckets are independent
// classifications, not a partition — a critical concept that is also due
// tomorrow lands in both. Empty input yields empty buckets and zero counts.
func ProcessSRSRecommendations(records []models.ConceptMastery, now time.Time) models.SRSRecommendationSet {
	set := models.SRSRecommendationSet{
		ReviewTomorrow:     []string{},
		ReviewThisWeek:     []string{},
		CriticalConcepts:   []string{},
		StrugglingConcepts: []string{},
		MasteredConcepts:   []string{},
		ActionItems:        []string{},
	}

	tomorrow := now.Truncate(24 * time.Hour).AddDate(0, 0, 1)
	nextWeek := now.Truncate(24 * time.Hour).AddDate(0, 0, 7)

	for _, r := range records {
		due := r.NextDueDate.Truncate(24 * time.Hour)
		if !due.After(tomorrow) {
			set.ReviewTomorrow = append(set.ReviewTomorrow, r.Concept)
		} else if !due.After(nextWeek) {
			set.ReviewThisWeek = append(set.ReviewThisWeek, r.Concept)
		}

		switch {
		case r.Mastery < masteryCriticalBelow:
			set.CriticalConcepts = append(set.CriticalConcepts, r.Concept)
		case r.Mastery < masteryStrugglingMax:
			set.StrugglingConcepts = append(set.StrugglingConcepts, r.Concept)
		case r.Mastery >= masteryMasteredMin:
			set.MasteredConcepts = append(set.MasteredConcepts, r.Concept)
		}
	}

	set.Summary = models.SRSSummary{
		TotalConcepts: len(records),
		DueTomorrow:   len(set.ReviewTomorrow),
		DueThisWeek:   len(set.ReviewThisWeek),
		Critical:      len(set.CriticalConcepts),
		Struggling:    len(set.StrugglingConcepts),
		Mastered:      len(set.MasteredConcepts),
	}

	set.ActionItems = srsActionItems(set)
	return set
}

func srsActionItems(set models.SRSRecommendationSet) []string {
	items := []string{}

	if n := len(set.CriticalConcepts); n > 0 {
		items = append(items, fmt.Sprintf("Review %d critical concepts before your next session", n))
	}
	if n := len(set.ReviewTomorrow); n > 0 {
		items = append(items, fmt.Sprintf("%d concepts are due for review by tomorrow", n))
	}
	if n := len(set.StrugglingConcepts); n > 0 {
		items = append(items, fmt.Sprintf("Spend extra practice time on %d struggling concepts", n))
	}
	if n := len(set.MasteredConcepts); n > 0 {
		items = append(items, fmt.Sprintf("Nice work — %d concepts mastered so far", n))
	}

	return items
}
