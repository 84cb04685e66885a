package llm

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

func TestHTTPClientComplete(t *testing.T) {
	t.Run("choices array shape", func(t *testing.T) {
		var gotReq chatRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"내일 저녁 좋아요!"}}]}`))
		}))
		defer srv.Close()

		c := NewHTTPClient(Config{Endpoint: srv.URL, APIKey: "test-key", Model: "test-model"})
		reply, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, Options{})
		require.NoError(t, err)
		assert.Equal(t, "내일 저녁 좋아요!", reply)
		assert.Equal(t, "test-model", gotReq.Model)
		assert.False(t, gotReq.Stream)
		assert.InDelta(t, 0.7, gotReq.Temperature, 0.001)
	})

	t.Run("bare response shape", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"response":"알겠습니다."}`))
		}))
		defer srv.Close()

		c := NewHTTPClient(Config{Endpoint: srv.URL})
		reply, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, Options{})
		require.NoError(t, err)
		assert.Equal(t, "알겠습니다.", reply)
	})

	t.Run("legacy text choice shape", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[{"text":"ok"}]}`))
		}))
		defer srv.Close()

		c := NewHTTPClient(Config{Endpoint: srv.URL})
		reply, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, Options{})
		require.NoError(t, err)
		assert.Equal(t, "ok", reply)
	})

	t.Run("http error surfaces status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model overloaded", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewHTTPClient(Config{Endpoint: srv.URL})
		_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("provider error field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}))
		defer srv.Close()

		c := NewHTTPClient(Config{Endpoint: srv.URL})
		_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("empty completion is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"response":""}`))
		}))
		defer srv.Close()

		c := NewHTTPClient(Config{Endpoint: srv.URL})
		_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, Options{})
		assert.Error(t, err)
	})

	t.Run("context timeout propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"response":"too late"}`))
		}))
		defer srv.Close()

		c := NewHTTPClient(Config{Endpoint: srv.URL})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := c.Complete(ctx, []Message{{Role: RoleUser, Content: "hi"}}, Options{})
		assert.Error(t, err)
	})
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"plain prose passes through", "내일 6시 괜찮아요!", "내일 6시 괜찮아요!", true},
		{"json envelope with message", `{"decision":"ACCEPT","message":"좋아요, 그 시간에 봬요."}`, "좋아요, 그 시간에 봬요.", true},
		{"json envelope with reason only", `{"ok":false,"reason":"그날은 선약이 있어요."}`, "그날은 선약이 있어요.", true},
		{"json envelope without prose", `{"decision":"ACCEPT"}`, "", false},
		{"broken json discarded", `{"message": "unterminated`, "", false},
		{"empty", "   ", "", false},
		{"fenced json", "```json\n{\"message\":\"반가워요\"}\n```", "반가워요", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sanitize(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		got, ok := ExtractJSON(`{"date":"2025-12-17"}`)
		require.True(t, ok)
		assert.JSONEq(t, `{"date":"2025-12-17"}`, got)
	})

	t.Run("object inside chatter", func(t *testing.T) {
		got, ok := ExtractJSON("Here you go:\n{\"a\":{\"b\":1}}\nDone.")
		require.True(t, ok)
		assert.JSONEq(t, `{"a":{"b":1}}`, got)
	})

	t.Run("braces inside strings do not confuse depth", func(t *testing.T) {
		got, ok := ExtractJSON(`{"text":"curly } inside"}`)
		require.True(t, ok)
		assert.JSONEq(t, `{"text":"curly } inside"}`, got)
	})

	t.Run("no object", func(t *testing.T) {
		_, ok := ExtractJSON("no json here")
		assert.False(t, ok)
	})
}
