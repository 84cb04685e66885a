package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWebTestServer creates a minimal Server with an Echo instance and dummy
// API + health routes, mimicking the real route registration order (API
// routes first, then web routes via SetWebDir).
func newWebTestServer(t *testing.T) *Server {
	t.Helper()
	e := echo.New()
	s := &Server{echo: e}

	e.GET("/health", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/api/chat/sessions", func(c *echo.Context) error {
		return c.String(http.StatusOK, "api-response")
	})
	return s
}

// writeWebFiles creates a temp directory with the given files and returns
// the directory path. Files are specified as relative path → content pairs.
func writeWebFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestSetupWebRoutes(t *testing.T) {
	t.Run("no web dir — no SPA fallback", func(t *testing.T) {
		s := newWebTestServer(t)
		s.setupWebRoutes()

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("web dir without index.html — skips", func(t *testing.T) {
		s := newWebTestServer(t)
		s.webDir = t.TempDir()
		s.setupWebRoutes()

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("SPA fallback serves index.html for client routes", func(t *testing.T) {
		dir := writeWebFiles(t, map[string]string{
			"index.html": "<html><body>moim</body></html>",
		})
		s := newWebTestServer(t)
		s.webDir = dir
		s.setupWebRoutes()

		tests := []struct {
			name string
			path string
		}{
			{name: "root", path: "/"},
			{name: "chat view", path: "/chat"},
			{name: "thread view", path: "/threads/th-12"},
			{name: "settings", path: "/settings/calendar"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "moim")
				assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"),
					"SPA fallback should set no-cache so browsers pick up new asset hashes after deployments")
			})
		}
	})

	t.Run("serves exact file when it exists on disk", func(t *testing.T) {
		dir := writeWebFiles(t, map[string]string{
			"index.html":  "<html>index</html>",
			"favicon.ico": "icon-data",
			"robots.txt":  "User-agent: *",
		})
		s := newWebTestServer(t)
		s.webDir = dir
		s.setupWebRoutes()

		tests := []struct {
			name     string
			path     string
			contains string
		}{
			{name: "favicon", path: "/favicon.ico", contains: "icon-data"},
			{name: "robots.txt", path: "/robots.txt", contains: "User-agent"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), tt.contains)
				assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"),
					"unhashed root files should use no-cache")
			})
		}
	})

	t.Run("serves hashed bundles from /assets/ with immutable cache", func(t *testing.T) {
		dir := writeWebFiles(t, map[string]string{
			"index.html":              "<html>index</html>",
			"assets/app-abc.js":       "console.log('app')",
			"assets/style-def123.css": "body { color: red }",
		})
		s := newWebTestServer(t)
		s.webDir = dir
		s.setupWebRoutes()

		tests := []struct {
			name     string
			path     string
			contains string
		}{
			{name: "JS bundle", path: "/assets/app-abc.js", contains: "console.log"},
			{name: "CSS bundle", path: "/assets/style-def123.css", contains: "body"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), tt.contains)
				assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"),
					"hashed bundles should have aggressive cache headers")
			})
		}
	})

	t.Run("missing asset returns 404", func(t *testing.T) {
		dir := writeWebFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newWebTestServer(t)
		s.webDir = dir
		s.setupWebRoutes()

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/gone.js", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), "index")
	})

	t.Run("API routes take priority over SPA fallback", func(t *testing.T) {
		dir := writeWebFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newWebTestServer(t)
		s.webDir = dir
		s.setupWebRoutes()

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chat/sessions", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "api-response", rec.Body.String())
	})

	t.Run("unregistered /api/ path returns 404 not index.html", func(t *testing.T) {
		dir := writeWebFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newWebTestServer(t)
		s.webDir = dir
		s.setupWebRoutes()

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

		assert.NotContains(t, rec.Body.String(), "index")
	})

	t.Run("/health route is not intercepted by SPA fallback", func(t *testing.T) {
		dir := writeWebFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newWebTestServer(t)
		s.webDir = dir
		s.setupWebRoutes()

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})
}

func TestSetWebDir(t *testing.T) {
	t.Run("registers routes when called with valid dir", func(t *testing.T) {
		dir := writeWebFiles(t, map[string]string{
			"index.html": "<html>spa</html>",
		})
		s := newWebTestServer(t)

		s.SetWebDir(dir)

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/some-page", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "spa")
	})

	t.Run("empty dir is a no-op", func(t *testing.T) {
		s := newWebTestServer(t)

		s.SetWebDir("")

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/some-page", nil))
		assert.NotEqual(t, http.StatusOK, rec.Code)
	})
}
