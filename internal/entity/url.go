// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which binds a short code to the original URL,
// the AccessRecord logged on every successful resolution, and the errors
// shared between the storage, use case and delivery layers.
package entity

import "errors"

var (
	// ErrURLNotFound is returned when a URL with the specified short code cannot be found.
	ErrURLNotFound = errors.New("url not found")
	// ErrAnalyticsNotFound is returned when no access records exist for the specified short code.
	ErrAnalyticsNotFound = errors.New("analytics not found")
	// ErrGenerationExhausted is returned when every short code candidate for a URL collided.
	ErrGenerationExhausted = errors.New("short code generation exhausted")
	// ErrEmptyURL is returned when an empty original URL is submitted for shortening.
	ErrEmptyURL = errors.New("original url is empty")
)

// URL represents a shortened URL.
type URL struct {
	ShortCode   string // ShortCode is the generated code used to shorten the original URL.
	OriginalURL string // OriginalURL is the full URL that the short code resolves to.
}
