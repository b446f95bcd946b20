package cache

import (
	"net/http"
	"time"
)

// Entry is a cached registry response.
type Entry struct {
	// Data is the response body. It is empty for negative entries.
	Data []byte

	// StatusCode is the HTTP status code of the cached response.
	StatusCode int

	// CachedAt is when the entry was stored.
	CachedAt time.Time
}

// NewEntry returns an entry for a response with the given status and body.
func NewEntry(statusCode int, body []byte) *Entry {
	return &Entry{
		Data:       body,
		StatusCode: statusCode,
		CachedAt:   time.Now(),
	}
}

// Negative reports whether the entry records a "not found" or "gone" answer.
func (e *Entry) Negative() bool {
	return e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone
}

// Age returns how long ago the entry was stored.
func (e *Entry) Age() time.Duration {
	return time.Since(e.CachedAt)
}

// Cacheable reports whether a response with this status may be cached.
// Only successful lookups and not found/gone answers qualify.
func Cacheable(statusCode int) bool {
	switch statusCode {
	case http.StatusOK, http.StatusNotFound, http.StatusGone:
		return true
	default:
		return false
	}
}
