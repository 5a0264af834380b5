package fetch

import (
	"errors"
	"net/http"
	"time"
)

const httpTimeout = 10 * time.Second

// DefaultTTL is how long cached API responses stay fresh. Annotation data
// changes on release cycles measured in weeks, so a day is conservative.
const DefaultTTL = 24 * time.Hour

var (
	// ErrNotFound is returned when a resource does not exist at the data
	// source (HTTP 404).
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection
	// errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Segment is a residue range on the UniProt sequence, 1-based and inclusive
// at both ends. All data sources report coordinates in this convention.
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewHTTPClient creates an HTTP client with the standard timeout for
// annotation service requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
