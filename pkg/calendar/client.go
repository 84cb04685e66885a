// Package calendar provides the external calendar collaborator: a REST
// client, a refreshing per-user token source, and the availability provider
// that turns raw events into free slots.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/moim-labs/moim/pkg/version"
)

// ErrUnauthorized is returned when the provider rejects the access token.
var ErrUnauthorized = errors.New("calendar token rejected")

// Event is one calendar entry read from the provider. All-day events carry
// civil-day bounds (end exclusive) and AllDay=true.
type Event struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
	AllDay  bool
}

// EventInput describes an event to create.
type EventInput struct {
	Summary   string
	Start     time.Time
	End       time.Time
	AllDay    bool
	Location  string
	Attendees []string
}

// CreatedEvent is the provider's answer to a create call.
type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// Client provides HTTP access to the calendar provider (google-calendar API
// shape). One instance is shared; per-user authorization travels as a bearer
// token on each call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	logger     *slog.Logger
}

// NewClient creates a calendar REST client. timeout of 0 defaults to 15 s.
func NewClient(baseURL string, timeout time.Duration, loc *time.Location) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		loc:        loc,
		logger:     slog.Default().With("component", "calendar-client"),
	}
}

type eventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type wireEvent struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	Status    string    `json:"status,omitempty"`
	Location  string    `json:"location,omitempty"`
	Start     eventTime `json:"start"`
	End       eventTime `json:"end"`
	HTMLLink  string    `json:"htmlLink,omitempty"`
	Attendees []struct {
		Email string `json:"email"`
	} `json:"attendees,omitempty"`
}

type listResponse struct {
	Items []wireEvent `json:"items"`
}

// ListEvents returns the user's events overlapping [from, to).
func (c *Client) ListEvents(ctx context.Context, token string, from, to time.Time) ([]Event, error) {
	q := url.Values{}
	q.Set("timeMin", from.Format(time.RFC3339))
	q.Set("timeMax", to.Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")

	var parsed listResponse
	if err := c.do(ctx, http.MethodGet, "/calendars/primary/events?"+q.Encode(), token, nil, &parsed); err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Status == "cancelled" {
			continue
		}
		ev, err := c.decodeEvent(item)
		if err != nil {
			c.logger.Warn("Skipping undecodable calendar event", "event_id", item.ID, "error", err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// CreateEvent writes one event to the user's calendar and returns its id and
// link. Attendees are passed through as-is; finalization deliberately sends
// an empty list so every participant gets an owner-local event without
// duplicate invitation mail.
func (c *Client) CreateEvent(ctx context.Context, token string, input EventInput) (*CreatedEvent, error) {
	body := map[string]interface{}{
		"summary": input.Summary,
	}
	if input.Location != "" {
		body["location"] = input.Location
	}
	if input.AllDay {
		body["start"] = eventTime{Date: input.Start.In(c.loc).Format("2006-01-02")}
		body["end"] = eventTime{Date: input.End.In(c.loc).Format("2006-01-02")}
	} else {
		body["start"] = eventTime{DateTime: input.Start.Format(time.RFC3339), TimeZone: c.loc.String()}
		body["end"] = eventTime{DateTime: input.End.Format(time.RFC3339), TimeZone: c.loc.String()}
	}
	attendees := make([]map[string]string, 0, len(input.Attendees))
	for _, email := range input.Attendees {
		attendees = append(attendees, map[string]string{"email": email})
	}
	body["attendees"] = attendees

	var created wireEvent
	if err := c.do(ctx, http.MethodPost, "/calendars/primary/events", token, body, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("calendar returned event without id")
	}
	return &CreatedEvent{ID: created.ID, HTMLLink: created.HTMLLink}, nil
}

// DeleteEvent removes one event. Already-gone events are not an error.
func (c *Client) DeleteEvent(ctx context.Context, token, eventID string) error {
	err := c.do(ctx, http.MethodDelete, "/calendars/primary/events/"+url.PathEscape(eventID), token, nil, nil)
	var statusErr *statusError
	if errors.As(err, &statusErr) && (statusErr.code == http.StatusNotFound || statusErr.code == http.StatusGone) {
		return nil
	}
	return err
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("calendar returned HTTP %d: %s", e.code, e.body)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", version.Full())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calendar request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read calendar response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w (HTTP %d)", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode >= 300:
		return &statusError{code: resp.StatusCode, body: truncateBody(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode calendar response: %w", err)
		}
	}
	return nil
}

func (c *Client) decodeEvent(item wireEvent) (Event, error) {
	ev := Event{ID: item.ID, Summary: item.Summary}

	switch {
	case item.Start.Date != "":
		start, err := time.ParseInLocation("2006-01-02", item.Start.Date, c.loc)
		if err != nil {
			return Event{}, fmt.Errorf("parse all-day start: %w", err)
		}
		end := start.AddDate(0, 0, 1)
		if item.End.Date != "" {
			if parsed, err := time.ParseInLocation("2006-01-02", item.End.Date, c.loc); err == nil {
				end = parsed
			}
		}
		ev.Start, ev.End, ev.AllDay = start, end, true
	default:
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return Event{}, fmt.Errorf("parse start: %w", err)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return Event{}, fmt.Errorf("parse end: %w", err)
		}
		ev.Start, ev.End = start.In(c.loc), end.In(c.loc)
	}

	if !ev.Start.Before(ev.End) {
		return Event{}, fmt.Errorf("event %s has non-positive span", item.ID)
	}
	return ev, nil
}

func truncateBody(raw []byte) string {
	s := string(raw)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
