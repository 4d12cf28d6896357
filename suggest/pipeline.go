// Package suggest answers autocomplete queries over a user's search history.
package suggest

import (
	"sort"
	"strings"
	"time"

	"locsuggest/api/config"
	"locsuggest/api/models"
	"locsuggest/api/ranking"
)

// Source tags explain why an entry was suggested. Frequency takes priority
// over recency when both apply.
const (
	SourceFrequent = "frequent"
	SourceRecent   = "recent"
	SourceStandard = "standard"
)

// HistoryProvider is the read-only view of the store the pipeline needs.
type HistoryProvider interface {
	History(userID string) []models.HistoryEntry
}

// Pipeline filters, classifies, scores and ranks a user's history against
// a text query. It never mutates the store.
type Pipeline struct {
	history HistoryProvider
	weights ranking.Weights
	cfg     config.SuggestConfig
}

// NewPipeline wires a pipeline to its history source and tunables.
func NewPipeline(history HistoryProvider, cfg *config.Config) *Pipeline {
	return &Pipeline{
		history: history,
		weights: ranking.Weights{
			Frequency: cfg.Ranking.FrequencyWeight,
			Recency:   cfg.Ranking.RecencyWeight,
		},
		cfg: cfg.Suggest,
	}
}

// Suggest returns the user's ranked suggestions for query, truncated to
// limit. A limit below 1 means the configured default. Queries shorter
// than the minimum length return an empty result, not an error.
func (p *Pipeline) Suggest(userID, query string, limit int) []models.Suggestion {
	return p.suggestAt(userID, query, limit, time.Now().UTC())
}

func (p *Pipeline) suggestAt(userID, query string, limit int, now time.Time) []models.Suggestion {
	if limit < 1 {
		limit = p.cfg.DefaultLimit
	}
	suggestions := make([]models.Suggestion, 0)
	if len(query) < p.cfg.MinQueryLength {
		return suggestions
	}

	needle := strings.ToLower(query)
	for _, e := range p.history.History(userID) {
		if !strings.Contains(strings.ToLower(e.DisplayName), needle) {
			continue
		}
		suggestions = append(suggestions, models.Suggestion{
			LocationID:   e.LocationID,
			DisplayName:  e.DisplayName,
			Lat:          e.Lat,
			Lon:          e.Lon,
			Source:       p.classify(e, now),
			RankScore:    ranking.Score(e, now, p.weights),
			SearchCount:  e.SearchCount,
			LastSearched: e.LastSearched,
		})
	}

	// Rank score descending, then most recent first, then location_id so
	// the order is fully deterministic.
	sort.Slice(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.RankScore != b.RankScore {
			return a.RankScore > b.RankScore
		}
		if !a.LastSearched.Equal(b.LastSearched) {
			return a.LastSearched.After(b.LastSearched)
		}
		return a.LocationID < b.LocationID
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func (p *Pipeline) classify(e models.HistoryEntry, now time.Time) string {
	if e.SearchCount > p.cfg.FrequentThreshold {
		return SourceFrequent
	}
	window := time.Duration(p.cfg.RecentWindowDays) * 24 * time.Hour
	if now.Sub(e.LastSearched) <= window {
		return SourceRecent
	}
	return SourceStandard
}
