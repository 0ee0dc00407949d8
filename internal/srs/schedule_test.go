package srs

import (
	"testing"
	"time"
)

func TestBlendMastery(t *testing.T) {
	tests := []struct {
		name       string
		historical int
		latest     float64
		want       int
	}{
		{"fresh signal dominates", 50, 100, 80}, // 100*0.6 + 50*0.4
		{"bad quiz drags down", 80, 0, 32},      // 0*0.6 + 80*0.4
		{"equal stays put", 70, 70, 70},
		{"rounds to nearest", 55, 60, 58}, // 36 + 22 = 58
		{"clamps at zero", 0, 0, 0},
		{"clamps at hundred", 100, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlendMastery(tt.historical, tt.latest); got != tt.want {
				t.Errorf("BlendMastery(%d, %f) = %d, want %d", tt.historical, tt.latest, got, tt.want)
			}
		})
	}
}

func TestNextReviewDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	day := now.Truncate(24 * time.Hour)

	tests := []struct {
		mastery  int
		wantDays int
	}{
		{10, 1},  // critical
		{39, 1},  // boundary: still critical
		{40, 3},  // struggling
		{59, 3},  // boundary: still struggling
		{60, 7},  // learning
		{79, 7},  // boundary: still learning
		{80, 14}, // mastered
		{100, 14},
	}
	for _, tt := range tests {
		got := NextReviewDate(tt.mastery, now)
		want := day.AddDate(0, 0, tt.wantDays)
		if !got.Equal(want) {
			t.Errorf("NextReviewDate(%d) = %v, want %v", tt.mastery, got, want)
		}
	}
}

func TestNextReviewDateIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 8, 29, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)

	if !NextReviewDate(50, morning).Equal(NextReviewDate(50, evening)) {
		t.Error("due date should depend on the day, not the hour")
	}
}
