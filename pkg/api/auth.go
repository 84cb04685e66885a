package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// userIDHeader carries the caller's identity. Authentication is handled in
// front of the service; moim trusts the header as a dev convention.
const userIDHeader = "X-User-ID"

// currentUserID extracts the caller's user ID or fails the request with 401.
func currentUserID(c *echo.Context) (string, error) {
	userID := c.Request().Header.Get(userIDHeader)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "X-User-ID header is required")
	}
	return userID, nil
}
