package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/moim-labs/moim/pkg/approval"
	"github.com/moim-labs/moim/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		return echo.NewHTTPError(http.StatusConflict, "resource is not in a state that allows this operation")
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict, "resource was modified concurrently, retry")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapApprovalError maps approval coordinator errors to HTTP error responses.
func mapApprovalError(err error) *echo.HTTPError {
	if errors.Is(err, approval.ErrThreadNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "thread not found")
	}
	if errors.Is(err, approval.ErrNotParticipant) {
		return echo.NewHTTPError(http.StatusForbidden, "you are not a participant of this thread")
	}
	if errors.Is(err, approval.ErrNoPendingApproval) {
		return echo.NewHTTPError(http.StatusConflict, "no approval is pending for this thread")
	}
	if errors.Is(err, approval.ErrAlreadyFinalized) {
		return echo.NewHTTPError(http.StatusConflict, "thread is already fully approved")
	}
	if errors.Is(err, approval.ErrNoAgreedSlot) {
		return echo.NewHTTPError(http.StatusConflict, "thread has no agreed slot to confirm")
	}
	return mapServiceError(err)
}
