package store

import (
	"locsuggest/api/models"
	"locsuggest/api/utils"
)

// Stats aggregates counts over the whole store: distinct users with at
// least one entry, the sum of search counts across all entries, and the
// average per user rounded to two decimals (0 when there are no users).
func (s *HistoryStore) Stats() models.AggregateStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.AggregateStats
	for _, entries := range s.users {
		if len(entries) == 0 {
			continue
		}
		stats.TotalUsers++
		for _, e := range entries {
			stats.TotalSearches += e.SearchCount
		}
	}
	if stats.TotalUsers > 0 {
		stats.AvgSearchesPerUser = utils.Round2(float64(stats.TotalSearches) / float64(stats.TotalUsers))
	}
	return stats
}
