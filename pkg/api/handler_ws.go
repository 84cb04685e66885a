package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler handles GET /ws.
// Upgrades to WebSocket and hands the connection to the ConnectionManager,
// pre-subscribed to the caller's user channel so notifications and chat
// events arrive without an explicit subscribe. Clients add session channels
// themselves when they open a negotiation view.
func (s *Server) wsHandler(c *echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	// Same-origin is always accepted; cross-origin must match the allowlist
	// built from server config. An empty allowlist rejects cross-origin.
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: s.wsOrigins,
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn, "user:"+userID)
	return nil
}
