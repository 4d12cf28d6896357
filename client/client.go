// Package client is a thin HTTP wrapper around the suggestion API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"locsuggest/api/models"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a client for the API at baseURL authenticating with the
// shared secret apiKey.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type trackResponse struct {
	SearchCount int `json:"search_count"`
}

type suggestionsResponse struct {
	Suggestions []models.Suggestion `json:"suggestions"`
	Count       int                 `json:"count"`
}

type historyResponse struct {
	History []models.HistoryEntry `json:"history"`
	Count   int                   `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Track records one search of a location and returns the entry's updated
// search count.
func (c *Client) Track(ctx context.Context, userID string, loc models.TrackedLocation) (int, error) {
	body := models.TrackRequest{UserID: userID, Location: loc}
	var resp trackResponse
	if err := c.do(ctx, http.MethodPost, "/api/track", nil, body, &resp); err != nil {
		return 0, err
	}
	return resp.SearchCount, nil
}

// Suggestions queries the user's ranked suggestions. A limit of 0 lets the
// server apply its default.
func (c *Client) Suggestions(ctx context.Context, userID, query string, limit int) ([]models.Suggestion, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp suggestionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/suggestions", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// History fetches every stored entry for the user.
func (c *Client) History(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	params := url.Values{}
	params.Set("user_id", userID)
	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, "/api/history", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// Clear deletes the user's entire history.
func (c *Client) Clear(ctx context.Context, userID string) error {
	params := url.Values{}
	params.Set("user_id", userID)
	return c.do(ctx, http.MethodDelete, "/api/history", params, nil, nil)
}

// Stats reports aggregate counts across all users.
func (c *Client) Stats(ctx context.Context) (models.AggregateStats, error) {
	var stats models.AggregateStats
	err := c.do(ctx, http.MethodGet, "/api/stats", nil, nil, &stats)
	return stats, err
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
