package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

// calendarDouble speaks just enough of the google-calendar wire for
// pkg/calendar: event list/insert/delete plus the OAuth refresh endpoint.
// State is keyed by access token, one calendar per token.
type calendarDouble struct {
	srv *httptest.Server

	mu      sync.Mutex
	valid   map[string]bool          // live access tokens
	staged  map[string][]stagedEvent // token → pre-existing events
	refresh map[string]string        // refresh token → access token it mints
	created []InsertedEvent
	nextID  int
}

// stagedEvent is a pre-existing calendar entry served by the list call.
type stagedEvent struct {
	id      string
	summary string
	start   time.Time
	end     time.Time
}

// InsertedEvent records one accepted insert.
type InsertedEvent struct {
	Token     string
	EventID   string
	Summary   string
	Location  string
	Start     time.Time
	End       time.Time
	Attendees []string
	Deleted   bool
}

func newCalendarDouble(t *testing.T) *calendarDouble {
	d := &calendarDouble{
		valid:   make(map[string]bool),
		staged:  make(map[string][]stagedEvent),
		refresh: make(map[string]string),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", d.handleToken)
	mux.HandleFunc("/calendars/primary/events", d.handleEvents)
	mux.HandleFunc("/calendars/primary/events/", d.handleEventByID)
	d.srv = httptest.NewServer(mux)
	t.Cleanup(d.srv.Close)
	return d
}

func (d *calendarDouble) URL() string      { return d.srv.URL }
func (d *calendarDouble) TokenURL() string { return d.srv.URL + "/oauth/token" }

// AllowToken registers a live access token.
func (d *calendarDouble) AllowToken(token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.valid[token] = true
}

// AllowRefresh lets refreshToken mint accessToken; the minted token is live.
func (d *calendarDouble) AllowRefresh(refreshToken, accessToken string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refresh[refreshToken] = accessToken
	d.valid[accessToken] = true
}

// Revoke kills an access token; subsequent calls carrying it answer 401.
func (d *calendarDouble) Revoke(token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.valid, token)
}

// StageBusy adds a pre-existing event to the token's calendar.
func (d *calendarDouble) StageBusy(token, summary string, start, end time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.staged[token] = append(d.staged[token], stagedEvent{
		id:      fmt.Sprintf("staged-%04d", d.nextID),
		summary: summary,
		start:   start,
		end:     end,
	})
}

// Inserted returns a copy of every accepted insert, oldest first.
func (d *calendarDouble) Inserted() []InsertedEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]InsertedEvent, len(d.created))
	copy(out, d.created)
	return out
}

// InsertCount reports how many inserts were accepted.
func (d *calendarDouble) InsertCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.created)
}

func (d *calendarDouble) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil || r.PostFormValue("grant_type") != "refresh_token" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}

	d.mu.Lock()
	token, ok := d.refresh[r.PostFormValue("refresh_token")]
	d.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (d *calendarDouble) handleEvents(w http.ResponseWriter, r *http.Request) {
	token, ok := d.authorize(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		d.handleList(w, r, token)
	case http.MethodPost:
		d.handleInsert(w, r, token)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (d *calendarDouble) handleList(w http.ResponseWriter, r *http.Request, token string) {
	timeMin, _ := time.Parse(time.RFC3339, r.URL.Query().Get("timeMin"))
	timeMax, _ := time.Parse(time.RFC3339, r.URL.Query().Get("timeMax"))

	d.mu.Lock()
	events := make([]stagedEvent, 0, len(d.staged[token]))
	events = append(events, d.staged[token]...)
	for _, ins := range d.created {
		if ins.Token == token && !ins.Deleted {
			events = append(events, stagedEvent{
				id:      ins.EventID,
				summary: ins.Summary,
				start:   ins.Start,
				end:     ins.End,
			})
		}
	}
	d.mu.Unlock()

	items := make([]map[string]any, 0, len(events))
	for _, ev := range events {
		if !timeMin.IsZero() && !ev.end.After(timeMin) {
			continue
		}
		if !timeMax.IsZero() && !ev.start.Before(timeMax) {
			continue
		}
		items = append(items, map[string]any{
			"id":      ev.id,
			"summary": ev.summary,
			"status":  "confirmed",
			"start":   map[string]string{"dateTime": ev.start.Format(time.RFC3339)},
			"end":     map[string]string{"dateTime": ev.end.Format(time.RFC3339)},
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i]["start"].(map[string]string)["dateTime"] < items[j]["start"].(map[string]string)["dateTime"]
	})
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (d *calendarDouble) handleInsert(w http.ResponseWriter, r *http.Request, token string) {
	var body struct {
		Summary  string `json:"summary"`
		Location string `json:"location"`
		Start    struct {
			DateTime string `json:"dateTime"`
			Date     string `json:"date"`
		} `json:"start"`
		End struct {
			DateTime string `json:"dateTime"`
			Date     string `json:"date"`
		} `json:"end"`
		Attendees []struct {
			Email string `json:"email"`
		} `json:"attendees"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	start, err := time.Parse(time.RFC3339, body.Start.DateTime)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad start"})
		return
	}
	end, err := time.Parse(time.RFC3339, body.End.DateTime)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad end"})
		return
	}
	attendees := make([]string, 0, len(body.Attendees))
	for _, a := range body.Attendees {
		attendees = append(attendees, a.Email)
	}

	d.mu.Lock()
	d.nextID++
	id := fmt.Sprintf("evt-%04d", d.nextID)
	d.created = append(d.created, InsertedEvent{
		Token:     token,
		EventID:   id,
		Summary:   body.Summary,
		Location:  body.Location,
		Start:     start,
		End:       end,
		Attendees: attendees,
	})
	d.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"id":       id,
		"htmlLink": "https://calendar.google.com/calendar/event?eid=" + id,
	})
}

func (d *calendarDouble) handleEventByID(w http.ResponseWriter, r *http.Request) {
	token, ok := d.authorize(w, r)
	if !ok {
		return
	}
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/calendars/primary/events/")

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.created {
		if d.created[i].Token == token && d.created[i].EventID == id && !d.created[i].Deleted {
			d.created[i].Deleted = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (d *calendarDouble) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	d.mu.Lock()
	live := d.valid[token]
	d.mu.Unlock()
	if !live {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error": map[string]any{"code": 401, "message": "Invalid Credentials"},
		})
		return "", false
	}
	return token, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
