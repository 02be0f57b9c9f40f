package gcalendar

import (
	"time"

	"google.golang.org/api/calendar/v3"
)

const (
	// DefaultCalendarID is the user's primary calendar.
	DefaultCalendarID = "primary"
	// DefaultMaxResults is the page size used when none is requested.
	DefaultMaxResults = 10
)

// Credential is caller-provided OAuth2 token material authorizing calendar
// access. It is consumed read-only and never persisted here; refreshing is
// the concern of the OAuth flow that produced it.
type Credential struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
	Scopes       []string
}

// QueryOptions filters and pages an event listing. Immutable per call.
type QueryOptions struct {
	CalendarID   string // defaults to DefaultCalendarID
	MaxResults   int64  // defaults to DefaultMaxResults, passed through unvalidated
	UpcomingOnly bool   // when true, only events starting at or after "now" (UTC)
}

// DefaultQueryOptions returns the options used when the caller has no
// preference: primary calendar, 10 results, upcoming events only.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		CalendarID:   DefaultCalendarID,
		MaxResults:   DefaultMaxResults,
		UpcomingOnly: true,
	}
}

// EventResult is the outcome of a single listing call. Exactly one of the
// two shapes holds: events populated with Error empty, or Events empty with
// Error set. Events are the provider's objects, passed through unmodified.
type EventResult struct {
	Events        []*calendar.Event `json:"events"`
	NextPageToken string            `json:"next_page_token,omitempty"`
	Error         string            `json:"error,omitempty"`
}
