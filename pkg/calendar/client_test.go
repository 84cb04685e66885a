package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*60*60)

func TestListEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))
		assert.NotEmpty(t, r.URL.Query().Get("timeMin"))

		_, _ = w.Write([]byte(`{"items":[
			{"id":"e1","summary":"회의","start":{"dateTime":"2025-12-17T15:00:00+09:00"},"end":{"dateTime":"2025-12-17T16:00:00+09:00"}},
			{"id":"e2","summary":"워크숍","start":{"date":"2025-12-19"},"end":{"date":"2025-12-21"}},
			{"id":"e3","summary":"취소됨","status":"cancelled","start":{"dateTime":"2025-12-17T10:00:00+09:00"},"end":{"dateTime":"2025-12-17T11:00:00+09:00"}},
			{"id":"e4","summary":"broken","start":{"dateTime":"not-a-time"},"end":{"dateTime":"huh"}}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, kst)
	events, err := c.ListEvents(context.Background(), "tok-1",
		time.Date(2025, 12, 17, 0, 0, 0, 0, kst), time.Date(2025, 12, 22, 0, 0, 0, 0, kst))
	require.NoError(t, err)
	require.Len(t, events, 2, "cancelled and undecodable events are skipped")

	assert.Equal(t, "회의", events[0].Summary)
	assert.False(t, events[0].AllDay)
	assert.Equal(t, time.Date(2025, 12, 17, 15, 0, 0, 0, kst).Unix(), events[0].Start.Unix())

	assert.True(t, events[1].AllDay)
	assert.Equal(t, time.Date(2025, 12, 19, 0, 0, 0, 0, kst), events[1].Start)
	assert.Equal(t, time.Date(2025, 12, 21, 0, 0, 0, 0, kst), events[1].End, "all-day end date is exclusive")
}

func TestCreateEvent(t *testing.T) {
	t.Run("timed event with empty attendees", func(t *testing.T) {
		var got map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"id":"new-1","htmlLink":"https://cal/new-1"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 0, kst)
		created, err := c.CreateEvent(context.Background(), "tok", EventInput{
			Summary:   "저녁 약속",
			Start:     time.Date(2025, 12, 17, 18, 0, 0, 0, kst),
			End:       time.Date(2025, 12, 17, 20, 0, 0, 0, kst),
			Location:  "강남",
			Attendees: nil,
		})
		require.NoError(t, err)
		assert.Equal(t, "new-1", created.ID)
		assert.Equal(t, "https://cal/new-1", created.HTMLLink)

		assert.Equal(t, "저녁 약속", got["summary"])
		assert.Equal(t, "강남", got["location"])
		attendees, ok := got["attendees"].([]interface{})
		require.True(t, ok, "attendees key must be present even when empty")
		assert.Empty(t, attendees)
		start := got["start"].(map[string]interface{})
		assert.Contains(t, start["dateTime"], "2025-12-17T18:00:00")
	})

	t.Run("all-day event uses date fields", func(t *testing.T) {
		var got map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"id":"new-2"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 0, kst)
		_, err := c.CreateEvent(context.Background(), "tok", EventInput{
			Summary: "여행",
			Start:   time.Date(2025, 12, 19, 0, 0, 0, 0, kst),
			End:     time.Date(2025, 12, 22, 0, 0, 0, 0, kst),
			AllDay:  true,
		})
		require.NoError(t, err)
		start := got["start"].(map[string]interface{})
		assert.Equal(t, "2025-12-19", start["date"])
	})

	t.Run("missing id is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 0, kst)
		_, err := c.CreateEvent(context.Background(), "tok", EventInput{Summary: "x",
			Start: time.Now(), End: time.Now().Add(time.Hour)})
		assert.Error(t, err)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("gone events are fine", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 0, kst)
		assert.NoError(t, c.DeleteEvent(context.Background(), "tok", "missing"))
	})

	t.Run("server errors propagate", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, 0, kst)
		assert.Error(t, c.DeleteEvent(context.Background(), "tok", "e1"))
	})
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, kst)
	_, err := c.ListEvents(context.Background(), "bad", time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrUnauthorized)
}
