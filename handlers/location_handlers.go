// api/handlers/location_handlers.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"locsuggest/api/models"
	"locsuggest/api/store"
	"locsuggest/api/suggest"
)

type LocationHandlers struct {
	HistoryStore *store.HistoryStore
	Pipeline     *suggest.Pipeline
}

func NewLocationHandlers(s *store.HistoryStore, p *suggest.Pipeline) *LocationHandlers {
	return &LocationHandlers{
		HistoryStore: s,
		Pipeline:     p,
	}
}

// Track records one search of a location for a user and returns the
// entry's updated search count. A failed flush still reports 500 even
// though the in-memory mutation is applied.
func (h *LocationHandlers) Track(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorf("Error binding track request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: user_id and location with location_id and display_name are required"})
		return
	}

	count, err := h.HistoryStore.RecordSearch(req.UserID, req.Location)
	if err != nil {
		log.Errorf("Error persisting search for user %s: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist search history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"search_count": count})
}

// Suggestions answers an autocomplete query from the user's history.
func (h *LocationHandlers) Suggestions(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}
	query := c.Query("q")

	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'limit' parameter. Must be a positive integer."})
			return
		}
		limit = parsed
	}

	results := h.Pipeline.Suggest(userID, query, limit)
	c.JSON(http.StatusOK, gin.H{
		"suggestions": results,
		"count":       len(results),
	})
}

// History returns every stored entry for the user. An unknown user gets
// an empty list, not a 404.
func (h *LocationHandlers) History(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	entries := h.HistoryStore.History(userID)
	c.JSON(http.StatusOK, gin.H{
		"history": entries,
		"count":   len(entries),
	})
}

// Clear deletes the user's entire history. Clearing a user with no
// history is still a success.
func (h *LocationHandlers) Clear(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	if err := h.HistoryStore.Clear(userID); err != nil {
		log.Errorf("Error persisting history clear for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist history clear"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// Stats reports aggregate counts across all users.
func (h *LocationHandlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.HistoryStore.Stats())
}
