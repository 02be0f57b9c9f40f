package gcalendar

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"calendar-assistant/pkg/log"
)

// servicePoolSize bounds the number of per-credential calendar services
// kept alive at once.
const servicePoolSize = 64

// Client wraps the Google Calendar API for credential-scoped event queries.
// Services are pooled per credential so repeated calls for the same user
// skip the SDK setup cost. Safe for concurrent use.
type Client struct {
	l          log.Logger
	oauth      *oauth2.Config
	httpClient *http.Client
	pool       *lru.Cache[string, *calendar.Service]
}

// New creates a Client that authenticates each call with the given OAuth2
// config and the caller-supplied credential. oauthCfg may be nil, in which
// case access tokens are used as-is without refresh.
func New(l log.Logger, oauthCfg *oauth2.Config) (*Client, error) {
	pool, err := lru.New[string, *calendar.Service](servicePoolSize)
	if err != nil {
		return nil, fmt.Errorf("creating service pool: %w", err)
	}
	return &Client{l: l, oauth: oauthCfg, pool: pool}, nil
}

// NewFromHTTP creates a Client backed by a pre-configured HTTP client,
// bypassing token handling entirely.
func NewFromHTTP(l log.Logger, httpClient *http.Client) (*Client, error) {
	pool, err := lru.New[string, *calendar.Service](servicePoolSize)
	if err != nil {
		return nil, fmt.Errorf("creating service pool: %w", err)
	}
	return &Client{l: l, httpClient: httpClient, pool: pool}, nil
}

// GetEvents lists events from a calendar on behalf of the given credential.
//
// Provider request errors (4xx/5xx reported by the Calendar API) are logged
// and folded into the result's Error field with an empty event list; they
// never surface as a Go error. Everything below that abstraction — service
// construction, transport failures — returns a non-nil error.
func (c *Client) GetEvents(ctx context.Context, cred Credential, opts QueryOptions) (EventResult, error) {
	svc, err := c.serviceFor(cred)
	if err != nil {
		return EventResult{}, err
	}

	if opts.CalendarID == "" {
		opts.CalendarID = DefaultCalendarID
	}
	if opts.MaxResults == 0 {
		opts.MaxResults = DefaultMaxResults
	}

	call := svc.Events.List(opts.CalendarID).
		MaxResults(opts.MaxResults).
		SingleEvents(true).
		OrderBy("startTime")

	if opts.UpcomingOnly {
		// "now" is recomputed on every call, never cached.
		call = call.TimeMin(time.Now().UTC().Format(time.RFC3339))
	}

	events, err := call.Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			c.l.Errorf(ctx, "pkg.gcalendar.GetEvents: provider error listing %q: code=%d message=%q",
				opts.CalendarID, gerr.Code, gerr.Message)
			return EventResult{
				Events: []*calendar.Event{},
				Error:  fmt.Sprintf("calendar API error %d: %s", gerr.Code, gerr.Message),
			}, nil
		}
		return EventResult{}, fmt.Errorf("listing events in %q: %w", opts.CalendarID, err)
	}

	items := events.Items
	if items == nil {
		items = []*calendar.Event{}
	}

	return EventResult{
		Events:        items,
		NextPageToken: events.NextPageToken,
	}, nil
}

// serviceFor returns the pooled calendar service for the credential,
// building one on first use. Pooled services outlive the request that
// first built them, so construction and token refresh are bound to a
// background context; per-call cancellation happens at Do time only.
func (c *Client) serviceFor(cred Credential) (*calendar.Service, error) {
	key := credentialKey(cred)
	if svc, ok := c.pool.Get(key); ok {
		return svc, nil
	}

	baseCtx := context.Background()
	if c.httpClient != nil {
		baseCtx = context.WithValue(baseCtx, oauth2.HTTPClient, c.httpClient)
	}

	httpClient := c.httpClient
	if c.oauth != nil || httpClient == nil {
		token := &oauth2.Token{
			AccessToken:  cred.AccessToken,
			RefreshToken: cred.RefreshToken,
			TokenType:    cred.TokenType,
			Expiry:       cred.Expiry,
		}
		var ts oauth2.TokenSource
		if c.oauth != nil {
			ts = c.oauth.TokenSource(baseCtx, token)
		} else {
			ts = oauth2.StaticTokenSource(token)
		}
		httpClient = oauth2.NewClient(baseCtx, ts)
	}

	svc, err := calendar.NewService(baseCtx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}

	c.pool.Add(key, svc)
	return svc, nil
}

// credentialKey derives the pool key from the token material.
func credentialKey(cred Credential) string {
	sum := sha256.Sum256([]byte(cred.AccessToken + "\x00" + cred.RefreshToken))
	return hex.EncodeToString(sum[:])
}
