// Package ranking scores history entries for suggestion ordering.
package ranking

import (
	"time"

	"locsuggest/api/models"
)

// Weights blend frequency and recency into a single rank score.
type Weights struct {
	Frequency float64
	Recency   float64
}

// Score computes the rank score for one entry at the given instant:
// frequency contributes the raw search count, recency contributes
// 1/(days since last search + 1). A last search in the future of now
// (clock skew) counts as zero days.
//
// Scores are only comparable within one user's result set; there is no
// cross-user normalization.
func Score(entry models.HistoryEntry, now time.Time, w Weights) float64 {
	days := now.Sub(entry.LastSearched).Hours() / 24
	if days < 0 {
		days = 0
	}
	frequency := float64(entry.SearchCount)
	recency := 1 / (days + 1)
	return w.Frequency*frequency + w.Recency*recency
}
