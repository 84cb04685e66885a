package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// setupWebRoutes serves the built chat web client next to the API: exact
// files from the web dir, hashed bundles under /assets/ with immutable
// caching, and index.html as the SPA fallback for client-side routes.
// Registered API routes keep priority; unknown /api/ paths stay 404 instead
// of falling back to the SPA.
func (s *Server) setupWebRoutes() {
	if s.webDir == "" {
		return
	}
	indexPath := filepath.Join(s.webDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		slog.Warn("Web dir has no index.html, serving API only", "dir", s.webDir)
		return
	}

	s.echo.GET("/assets/*", func(c *echo.Context) error {
		name := filepath.Clean("/" + c.Param("*"))
		assetPath := filepath.Join(s.webDir, "assets", name)
		if info, err := os.Stat(assetPath); err != nil || info.IsDir() {
			return echo.NewHTTPError(http.StatusNotFound, "asset not found")
		}
		// Bundles are content-hashed, safe to cache forever.
		c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		http.ServeFile(c.Response(), c.Request(), assetPath)
		return nil
	})

	s.echo.GET("/*", func(c *echo.Context) error {
		reqPath := c.Request().URL.Path
		if strings.HasPrefix(reqPath, "/api/") {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		}

		// Unhashed root files (favicon, robots.txt) and the SPA fallback
		// must revalidate so deployments take effect immediately.
		c.Response().Header().Set("Cache-Control", "no-cache")

		filePath := filepath.Join(s.webDir, filepath.Clean("/"+reqPath))
		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			http.ServeFile(c.Response(), c.Request(), filePath)
			return nil
		}
		http.ServeFile(c.Response(), c.Request(), indexPath)
		return nil
	})

	slog.Info("Web client routes registered", "dir", s.webDir)
}
