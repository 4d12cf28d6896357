package models

import "time"

// HistoryEntry is one user's accumulated search record for one location.
// Identity within a user's history is LocationID; DisplayName is not unique.
type HistoryEntry struct {
	LocationID    string    `json:"location_id"`
	DisplayName   string    `json:"display_name"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	SearchCount   int       `json:"search_count"`
	FirstSearched time.Time `json:"first_searched"`
	LastSearched  time.Time `json:"last_searched"`
}

// Suggestion is a history entry ranked against an autocomplete query.
// Source explains why the entry was suggested: "frequent", "recent" or
// "standard".
type Suggestion struct {
	LocationID   string    `json:"location_id"`
	DisplayName  string    `json:"display_name"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	Source       string    `json:"source"`
	RankScore    float64   `json:"rank_score"`
	SearchCount  int       `json:"search_count"`
	LastSearched time.Time `json:"last_searched"`
}

// AggregateStats are derived counts over the whole store, never persisted.
type AggregateStats struct {
	TotalUsers         int     `json:"total_users"`
	TotalSearches      int     `json:"total_searches"`
	AvgSearchesPerUser float64 `json:"avg_searches_per_user"`
}
