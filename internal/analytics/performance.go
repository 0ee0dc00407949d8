package analytics

import (
	"sort"

	"github.com/tutorquest/backend/internal/models"
)

// Config holds the product-tunable thresholds for performance analysis.
// These moved out of inline literals so tuning doesn't require touching the
// algorithm.
type Config struct {
	// RushingTimeSeconds: answers faster than this count as rushed.
	RushingTimeSeconds float64
	// RushingMinOccurrences: rushed answers needed before is_rushing trips.
	RushingMinOccurrences int
	// FastBucketMaxSeconds / MediumBucketMaxSeconds partition answers into
	// fast/medium/slow for the time-accuracy report.
	FastBucketMaxSeconds   float64
	MediumBucketMaxSeconds float64
	// Accuracy bands, percentages.
	CriticalAccuracyBelow float64
	ModerateAccuracyBelow float64
	StrengthAccuracyMin   float64
	// MinAttempts: attempts on a concept before it can be classified.
	MinAttempts int
	// ConfusionMinRecurrence: times a concept pair must recur to report it.
	ConfusionMinRecurrence int
}

func DefaultConfig() Config {
	return Config{
		RushingTimeSeconds:     5,
		RushingMinOccurrences:  2,
		FastBucketMaxSeconds:   10,
		MediumBucketMaxSeconds: 30,
		CriticalAccuracyBelow:  40,
		ModerateAccuracyBelow:  60,
		StrengthAccuracyMin:    80,
		MinAttempts:            2,
		ConfusionMinRecurrence: 2,
	}
}

// AnalyzePerformance derives rushing, confusion, time-bucket, and
// weakness/strength patterns from one quiz attempt. An empty answer list
// yields a zeroed analysis, never an error.
func AnalyzePerformance(sum models.QuizSummary, cfg Config) models.PerformanceAnalysis {
	analysis := emptyAnalysis()

	answers := sum.Answers.Questions
	if len(answers) == 0 {
		return analysis
	}

	// Rushing: too-fast answers, right or wrong, signal guessing or haste.
	for _, a := range answers {
		if a.TimeSpentSeconds < cfg.RushingTimeSeconds {
			analysis.RushedCount++
		}
	}
	analysis.IsRushing = analysis.RushedCount >= cfg.RushingMinOccurrences

	analysis.ConfusionPairs = confusionPairs(answers, cfg.ConfusionMinRecurrence)
	analysis.TimeBuckets = timeBuckets(answers, cfg)

	fastest, slowest := correctTimings(answers)
	analysis.FastestCorrectSecs = fastest
	analysis.SlowestCorrectSecs = slowest

	critical, moderate, strengths := conceptBands(answers, cfg)
	analysis.CriticalWeaknesses = critical
	analysis.ModerateWeaknesses = moderate
	analysis.Strengths = strengths

	return analysis
}

func emptyAnalysis() models.PerformanceAnalysis {
	return models.PerformanceAnalysis{
		ConfusionPairs:     []models.ConfusionPair{},
		CriticalWeaknesses: []models.ConceptAccuracy{},
		ModerateWeaknesses: []models.ConceptAccuracy{},
		Strengths:          []models.ConceptAccuracy{},
	}
}

// confusionPairs pairs the tested concept with the concept implied by the
// chosen wrong option. Pairs are unordered; a pair must recur minRecurrence
// times before it is reported.
func confusionPairs(answers []models.AnswerRecord, minRecurrence int) []models.ConfusionPair {
	counts := make(map[[2]string]int)

	for _, a := range answers {
		if a.Correct {
			continue
		}
		chosen := a.ChosenConcept
		if chosen == "" || chosen == a.Concept {
			continue
		}
		key := [2]string{a.Concept, chosen}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		counts[key]++
	}

	var pairs []models.ConfusionPair
	for key, n := range counts {
		if n >= minRecurrence {
			pairs = append(pairs, models.ConfusionPair{ConceptA: key[0], ConceptB: key[1], Occurrences: n})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Occurrences != pairs[j].Occurrences {
			return pairs[i].Occurrences > pairs[j].Occurrences
		}
		return pairs[i].ConceptA < pairs[j].ConceptA
	})

	if pairs == nil {
		pairs = []models.ConfusionPair{}
	}
	return pairs
}

func timeBuckets(answers []models.AnswerRecord, cfg Config) models.TimeBucketReport {
	var report models.TimeBucketReport

	for _, a := range answers {
		var bucket *models.BucketStat
		switch {
		case a.TimeSpentSeconds <= cfg.FastBucketMaxSeconds:
			bucket = &report.Fast
		case a.TimeSpentSeconds <= cfg.MediumBucketMaxSeconds:
			bucket = &report.Medium
		default:
			bucket = &report.Slow
		}
		bucket.Answered++
		if a.Correct {
			bucket.Correct++
		}
	}

	for _, b := range []*models.BucketStat{&report.Fast, &report.Medium, &report.Slow} {
		if b.Answered > 0 {
			b.Accuracy = float64(b.Correct) / float64(b.Answered) * 100
		}
	}

	return report
}

// correctTimings returns min/max time spent among correct answers only.
// Zero/zero when nothing was answered correctly.
func correctTimings(answers []models.AnswerRecord) (fastest, slowest float64) {
	first := true
	for _, a := range answers {
		if !a.Correct {
			continue
		}
		if first {
			fastest, slowest = a.TimeSpentSeconds, a.TimeSpentSeconds
			first = false
			continue
		}
		if a.TimeSpentSeconds < fastest {
			fastest = a.TimeSpentSeconds
		}
		if a.TimeSpentSeconds > slowest {
			slowest = a.TimeSpentSeconds
		}
	}
	return fastest, slowest
}

func conceptBands(answers []models.AnswerRecord, cfg Config) (critical, moderate, strengths []models.ConceptAccuracy) {
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

	critical = []models.ConceptAccuracy{}
	moderate = []models.ConceptAccuracy{}
	strengths = []models.ConceptAccuracy{}

	for concept, t := range byConcept {
		if t.attempts < cfg.MinAttempts {
			continue
		}
		acc := float64(t.correct) / float64(t.attempts) * 100
		entry := models.ConceptAccuracy{Concept: concept, Attempts: t.attempts, Correct: t.correct, Accuracy: acc}

		switch {
		case acc < cfg.CriticalAccuracyBelow:
			critical = append(critical, entry)
		case acc < cfg.ModerateAccuracyBelow:
			moderate = append(moderate, entry)
		case acc >= cfg.StrengthAccuracyMin:
			strengths = append(strengths, entry)
		}
	}

	for _, list := range [][]models.ConceptAccuracy{critical, moderate, strengths} {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Accuracy != list[j].Accuracy {
				return list[i].Accuracy < list[j].Accuracy
			}
			return list[i].Concept < list[j].Concept
		})
	}

	return critical, moderate, strengths
}
