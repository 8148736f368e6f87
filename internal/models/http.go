// Package models defines the link record and the request and response
// structures exchanged with clients of the links service.
package models

// LinkRequest is the body of a create request. ID is optional, the service
// assigns one when it is empty.
type LinkRequest struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
}

// ConflictResponse is returned when a link with the same id or url exists.
type ConflictResponse struct {
	// Existing is the stored link the request collided with.
	Existing *UsefulLink `json:"existing"`
}

// LoadingResponse reports a single loading flag.
type LoadingResponse struct {
	Loading bool `json:"loading"`
}

// LoadingRequest sets a single loading flag.
type LoadingRequest struct {
	Loading *bool `json:"loading"`
}

// StatsResponse holds the totals served on the internal stats endpoint.
type StatsResponse struct {
	Links   int `json:"links"`
	Authors int `json:"authors"`
}
