package models

// TrackedLocation is the client-supplied identity of a searched location.
// Lat and Lon are carried through unchanged and never range-checked here.
type TrackedLocation struct {
	LocationID  string  `json:"location_id" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type TrackRequest struct {
	UserID   string          `json:"user_id" binding:"required"`
	Location TrackedLocation `json:"location" binding:"required"`
}
