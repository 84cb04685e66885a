package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApprovalMetadata(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		wantNil bool
		check   func(t *testing.T, m *ApprovalMetadata)
	}{
		{
			name:    "nil input returns nil",
			raw:     nil,
			wantNil: true,
		},
		{
			name:    "empty map returns nil",
			raw:     map[string]interface{}{},
			wantNil: true,
		},
		{
			name: "full approval state",
			raw: map[string]interface{}{
				"thread_id":        "thread-1",
				"session_ids":      []interface{}{"s-1", "s-2"},
				"approved_by_list": []interface{}{"alice", "bob"},
				"all_approved":     true,
				"approved_by":      "bob",
				"approved_at":      "2025-12-24T18:00:00+09:00",
				"buttons_disabled": true,
			},
			check: func(t *testing.T, m *ApprovalMetadata) {
				assert.Equal(t, "thread-1", m.ThreadID)
				assert.Equal(t, []string{"s-1", "s-2"}, m.SessionIDs)
				assert.Equal(t, []string{"alice", "bob"}, m.ApprovedByList)
				assert.True(t, m.AllApproved)
				assert.Equal(t, "bob", m.ApprovedBy)
				require.NotNil(t, m.ApprovedAt)
				assert.Equal(t, 24, m.ApprovedAt.Day())
				assert.True(t, m.ButtonsDisabled)
			},
		},
		{
			name: "partial approval keeps zero values",
			raw: map[string]interface{}{
				"thread_id":        "thread-2",
				"approved_by_list": []interface{}{"alice"},
			},
			check: func(t *testing.T, m *ApprovalMetadata) {
				assert.False(t, m.AllApproved)
				assert.Nil(t, m.ApprovedAt)
				assert.False(t, m.ButtonsDisabled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseApprovalMetadata(tt.raw)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			tt.check(t, m)
		})
	}
}

func TestApprovalMetadataRoundTrip(t *testing.T) {
	at := time.Date(2025, 12, 24, 18, 0, 0, 0, time.FixedZone("KST", 9*60*60))
	in := &ApprovalMetadata{
		ThreadID:       "thread-1",
		SessionIDs:     []string{"s-1"},
		ApprovedByList: []string{"alice"},
		ApprovedBy:     "alice",
		ApprovedAt:     &at,
	}

	out, err := ParseApprovalMetadata(in.ToMap())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.ThreadID, out.ThreadID)
	assert.Equal(t, in.SessionIDs, out.SessionIDs)
	assert.Equal(t, in.ApprovedByList, out.ApprovedByList)
	require.NotNil(t, out.ApprovedAt)
	assert.True(t, at.Equal(*out.ApprovedAt))

	// Zero fields must not leak keys into the bag.
	m := in.ToMap()
	assert.NotContains(t, m, "all_approved")
	assert.NotContains(t, m, "buttons_disabled")
}

func TestParseRecommendationMetadata(t *testing.T) {
	raw := map[string]interface{}{
		"recommendation_mode": true,
		"candidates": []interface{}{
			map[string]interface{}{
				"date":            "2025-12-26",
				"time_condition":  "18시 이후",
				"available_count": float64(3),
				"all_available":   true,
				"participants":    []interface{}{"u-1", "u-2", "u-3"},
			},
			map[string]interface{}{
				"date":            "2025-12-27",
				"available_count": float64(2),
				"all_available":   false,
			},
		},
		"friend_ids":   []interface{}{"u-2", "u-3"},
		"friend_names": []interface{}{"영희", "철수"},
		"activity":     "저녁",
	}

	m, err := ParseRecommendationMetadata(raw)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Len(t, m.Candidates, 2)
	assert.Equal(t, "2025-12-26", m.Candidates[0].Date)
	assert.Equal(t, "18시 이후", m.Candidates[0].TimeCondition)
	assert.Equal(t, 3, m.Candidates[0].AvailableCount)
	assert.True(t, m.Candidates[0].AllAvailable)
	assert.Equal(t, []string{"u-1", "u-2", "u-3"}, m.Candidates[0].Participants)
	assert.False(t, m.Candidates[1].AllAvailable)
	assert.Equal(t, []string{"영희", "철수"}, m.FriendNames)
	assert.Equal(t, "저녁", m.Activity)
}

func TestParseRecommendationMetadataNotPending(t *testing.T) {
	// A bag without the mode flag is some other metadata shape, not a
	// pending recommendation.
	m, err := ParseRecommendationMetadata(map[string]interface{}{
		"thread_id": "thread-1",
	})
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestParseTimeSelectionMetadata(t *testing.T) {
	raw := map[string]interface{}{
		"awaiting_time_selection": true,
		"selected_date":           "2025-12-26",
		"time_condition":          "18시 이후",
		"friend_ids":              []interface{}{"u-2"},
		"friend_names":            []interface{}{"영희"},
		"activity":                "치맥",
	}

	m, err := ParseTimeSelectionMetadata(raw)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "2025-12-26", m.SelectedDate)
	assert.Equal(t, "18시 이후", m.TimeCondition)
	assert.Equal(t, []string{"u-2"}, m.FriendIDs)

	off, err := ParseTimeSelectionMetadata(map[string]interface{}{
		"selected_date": "2025-12-26",
	})
	require.NoError(t, err)
	assert.Nil(t, off)
}

func TestParsePendingPersonalMetadata(t *testing.T) {
	raw := map[string]interface{}{
		"awaiting_confirmation": true,
		"date":                  "2025-12-26",
		"start_time":            "14:00",
		"end_time":              "16:00",
		"title":                 "스터디",
	}

	m, err := ParsePendingPersonalMetadata(raw)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "14:00", m.StartTime)
	assert.Equal(t, "16:00", m.EndTime)
	assert.Equal(t, "스터디", m.Title)
}

func TestParseRejectionMetadata(t *testing.T) {
	raw := map[string]interface{}{
		"needs_recoordination": true,
		"thread_id":            "thread-1",
		"session_ids":          []interface{}{"s-1", "s-2"},
		"rejected_by":          "u-2",
	}

	m, err := ParseRejectionMetadata(raw)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.True(t, m.NeedsRecoordination)
	assert.Equal(t, "u-2", m.RejectedBy)
	assert.Equal(t, []string{"s-1", "s-2"}, m.SessionIDs)
}

func TestParseSlotFillingMetadata(t *testing.T) {
	raw := map[string]interface{}{
		"awaiting_slot_fill": true,
		"pending_intent": map[string]interface{}{
			"friend_names":         []interface{}{"영희"},
			"activity":             "점심",
			"has_schedule_request": true,
			"missing_fields":       []interface{}{"date", "time"},
		},
	}

	m, err := ParseSlotFillingMetadata(raw)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.NotNil(t, m.PendingIntent)
	assert.Equal(t, []string{"영희"}, m.PendingIntent.FriendNames)
	assert.True(t, m.PendingIntent.HasScheduleRequest)
	assert.Equal(t, []string{"date", "time"}, m.PendingIntent.MissingFields)
}
