package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/pkg/approval"
	"github.com/moim-labs/moim/pkg/models"
)

type fakeApprovals struct {
	gotUserID   string
	gotThreadID string
	approves    int
	rejects     int
	result      *models.ApprovalResult
	err         error
}

func (f *fakeApprovals) Approve(_ context.Context, userID, threadID string) (*models.ApprovalResult, error) {
	f.gotUserID = userID
	f.gotThreadID = threadID
	f.approves++
	return f.result, f.err
}

func (f *fakeApprovals) Reject(_ context.Context, userID, threadID string) (*models.ApprovalResult, error) {
	f.gotUserID = userID
	f.gotThreadID = threadID
	f.rejects++
	return f.result, f.err
}

func TestApprovalHandler(t *testing.T) {
	t.Run("missing identity returns 401", func(t *testing.T) {
		s := &Server{approvals: &fakeApprovals{}}
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/approvals", strings.NewReader(`{"thread_id":"th-1","approved":true}`))
		req.Header.Set("Content-Type", "application/json")
		c := e.NewContext(req, httptest.NewRecorder())

		err := s.approvalHandler(c)
		assertHTTPError(t, err, http.StatusUnauthorized, "X-User-ID")
	})

	t.Run("no coordinator returns 503", func(t *testing.T) {
		s := &Server{}
		e := echo.New()
		c := e.NewContext(postJSON("/api/approvals", `{"thread_id":"th-1","approved":true}`), httptest.NewRecorder())

		err := s.approvalHandler(c)
		assertHTTPError(t, err, http.StatusServiceUnavailable, "approvals")
	})

	t.Run("missing thread_id returns 400", func(t *testing.T) {
		s := &Server{approvals: &fakeApprovals{}}
		e := echo.New()
		c := e.NewContext(postJSON("/api/approvals", `{"approved":true}`), httptest.NewRecorder())

		err := s.approvalHandler(c)
		assertHTTPError(t, err, http.StatusBadRequest, "thread_id")
	})

	t.Run("approved true records an approval", func(t *testing.T) {
		fake := &fakeApprovals{result: &models.ApprovalResult{
			ThreadID:     "th-1",
			SessionIDs:   []string{"sess-1", "sess-2"},
			ApprovedBy:   []string{"u-me"},
			AllApproved:  false,
			ResponseText: "승인했어요. 다른 참여자를 기다리는 중이에요.",
		}}
		s := &Server{approvals: fake}
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(postJSON("/api/approvals", `{"thread_id":"th-1","approved":true}`), rec)

		require.NoError(t, s.approvalHandler(c))
		assert.Equal(t, 1, fake.approves)
		assert.Equal(t, 0, fake.rejects)
		assert.Equal(t, "u-me", fake.gotUserID)
		assert.Equal(t, "th-1", fake.gotThreadID)

		assert.Equal(t, http.StatusOK, rec.Code)
		var result models.ApprovalResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, []string{"sess-1", "sess-2"}, result.SessionIDs)
		assert.False(t, result.AllApproved)
	})

	t.Run("approved false records a rejection", func(t *testing.T) {
		fake := &fakeApprovals{result: &models.ApprovalResult{
			ThreadID:     "th-1",
			ResponseText: "거절을 전달했어요. 다시 조율해 볼게요.",
		}}
		s := &Server{approvals: fake}
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(postJSON("/api/approvals", `{"thread_id":"th-1","approved":false}`), rec)

		require.NoError(t, s.approvalHandler(c))
		assert.Equal(t, 0, fake.approves)
		assert.Equal(t, 1, fake.rejects)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("coordinator sentinels map to HTTP statuses", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			wantCode int
		}{
			{name: "not a participant", err: approval.ErrNotParticipant, wantCode: http.StatusForbidden},
			{name: "thread not found", err: approval.ErrThreadNotFound, wantCode: http.StatusNotFound},
			{name: "rejection after finalize", err: approval.ErrAlreadyFinalized, wantCode: http.StatusConflict},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := &Server{approvals: &fakeApprovals{err: tt.err}}
				e := echo.New()
				c := e.NewContext(postJSON("/api/approvals", `{"thread_id":"th-1","approved":false}`), httptest.NewRecorder())

				err := s.approvalHandler(c)
				require.Error(t, err)
				he, ok := err.(*echo.HTTPError)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, he.Code)
			})
		}
	})
}
