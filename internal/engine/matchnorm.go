package engine

import (
	"fmt"

	"github.com/tutorquest/backend/internal/models"
)

// NormalizeMatchQuestion repairs duplicate right-column labels in a match
// question's option set. The second occurrence of a label becomes
// "label (2)", the third "label (3)", and so on; the first occurrence, list
// order, and the left column are untouched. Non-match questions and
// malformed option sets pass through unchanged.
//
// Known edge case: a pre-existing label that already ends in " (2)" can
// collide with a generated suffix. The upstream generators never emit such
// labels, so this mirrors their behavior rather than guarding against it.
func NormalizeMatchQuestion(q models.Question) models.Question {
	if q.QuestionType != models.TypeMatch {
		return q
	}

	opts, err := q.MatchColumns()
	if err != nil || opts == nil || len(opts.Left) == 0 || len(opts.Right) == 0 {
		return q
	}

	seen := make(map[string]int, len(opts.Right))
	changed := false
	right := make([]string, len(opts.Right))
	for i, label := range opts.Right {
		seen[label]++
		if seen[label] > 1 {
			right[i] = fmt.Sprintf("%s (%d)", label, seen[label])
			changed = true
		} else {
			right[i] = label
		}
	}

	if !changed {
		return q
	}

	if err := q.SetMatchColumns(&models.MatchOptions{Left: opts.Left, Right: right}); err != nil {
		return q
	}
	return q
}
