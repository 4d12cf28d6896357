// api/store/history_store.go
package store

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"locsuggest/api/database"
	"locsuggest/api/models"
)

// HistoryStore owns every user's search history. All mutations are
// serialized behind one lock because each mutation flushes the full
// dataset; reads share the lock and always see a consistent snapshot.
type HistoryStore struct {
	mu         sync.RWMutex
	users      map[string][]*models.HistoryEntry
	db         *database.SnapshotFile
	maxPerUser int
}

// NewHistoryStore loads the persisted dataset from db. An unreadable or
// unparseable snapshot is logged and treated as an empty dataset so the
// service still starts.
func NewHistoryStore(db *database.SnapshotFile, maxPerUser int) *HistoryStore {
	s := &HistoryStore{
		users:      make(map[string][]*models.HistoryEntry),
		db:         db,
		maxPerUser: maxPerUser,
	}
	if err := db.Load(&s.users); err != nil {
		log.Warnf("History snapshot unreadable, starting from an empty dataset: %v", err)
		s.users = make(map[string][]*models.HistoryEntry)
	}
	if s.users == nil {
		s.users = make(map[string][]*models.HistoryEntry)
	}
	log.Infof("History store loaded with %d users", len(s.users))
	return s
}

// RecordSearch tracks one search of a location by a user and returns the
// entry's resulting search count. A repeat search of a known location_id
// only bumps the count and last_searched; display name and coordinates
// are never refreshed from later requests. Once the user's history grows
// past the per-user bound the entry with the earliest first_searched is
// evicted.
//
// The full dataset is flushed before returning. On flush failure the
// in-memory mutation is kept and a *PersistenceError is returned: the
// caller must treat it as "mutation may be lost on restart", not as
// "mutation didn't happen".
func (s *HistoryStore) RecordSearch(userID string, loc models.TrackedLocation) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	entries := s.users[userID]

	var entry *models.HistoryEntry
	for _, e := range entries {
		if e.LocationID == loc.LocationID {
			entry = e
			break
		}
	}

	if entry != nil {
		entry.SearchCount++
		entry.LastSearched = now
	} else {
		entry = &models.HistoryEntry{
			LocationID:    loc.LocationID,
			DisplayName:   loc.DisplayName,
			Lat:           loc.Lat,
			Lon:           loc.Lon,
			SearchCount:   1,
			FirstSearched: now,
			LastSearched:  now,
		}
		entries = append(entries, entry)
		if len(entries) > s.maxPerUser {
			entries = evictOldest(entries)
		}
		s.users[userID] = entries
	}

	count := entry.SearchCount
	if err := s.flushLocked("track"); err != nil {
		return count, err
	}
	return count, nil
}

// evictOldest removes the single entry with the earliest first_searched,
// preserving the order of the rest.
func evictOldest(entries []*models.HistoryEntry) []*models.HistoryEntry {
	oldest := 0
	for i, e := range entries {
		if e.FirstSearched.Before(entries[oldest].FirstSearched) {
			oldest = i
		}
	}
	return append(entries[:oldest], entries[oldest+1:]...)
}

// History returns a copy of the user's entries. An unknown user yields an
// empty slice, never an error.
func (s *HistoryStore) History(userID string) []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.users[userID]
	out := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	return out
}

// Clear removes the user's entire history and flushes. Clearing an unknown
// user is a no-op success.
func (s *HistoryStore) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, userID)
	return s.flushLocked("clear")
}

// flushLocked rewrites the full dataset. Callers must hold the write lock.
func (s *HistoryStore) flushLocked(op string) error {
	if err := s.db.Save(s.users); err != nil {
		log.Errorf("Failed to persist history snapshot on %s: %v", op, err)
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}
