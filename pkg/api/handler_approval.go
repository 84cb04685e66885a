package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/moim-labs/moim/pkg/models"
)

// approvalHandler handles POST /api/approvals.
// Records the caller's decision on a pending thread. Approvals may finalize
// the thread (calendar writes happen inside the coordinator); a rejection
// reopens it for recoordination.
func (s *Server) approvalHandler(c *echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if s.approvals == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "approvals are not available")
	}

	var req models.ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ThreadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread_id is required")
	}

	var result *models.ApprovalResult
	if req.Approved {
		result, err = s.approvals.Approve(c.Request().Context(), userID, req.ThreadID)
	} else {
		result, err = s.approvals.Reject(c.Request().Context(), userID, req.ThreadID)
	}
	if err != nil {
		return mapApprovalError(err)
	}

	return c.JSON(http.StatusOK, result)
}
