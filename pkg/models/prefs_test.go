package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionPrefs(t *testing.T) {
	raw := map[string]interface{}{
		"summary":          "철수와 저녁",
		"activity":         "치맥",
		"thread_id":        "thread-1",
		"participants":     []interface{}{"u-1", "u-2"},
		"requested_date":   "2025-12-26",
		"requested_time":   "19:00",
		"duration_minutes": float64(120),
	}

	p, err := ParseSessionPrefs(raw)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "철수와 저녁", p.Summary)
	assert.Equal(t, "thread-1", p.ThreadID)
	assert.Equal(t, []string{"u-1", "u-2"}, p.Participants)
	assert.Equal(t, "2025-12-26", p.RequestedDate)
	assert.Equal(t, "19:00", p.RequestedTime)
	assert.Equal(t, 120, p.DurationMinutes)
	assert.Empty(t, p.AgreedDate)

	empty, err := ParseSessionPrefs(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestSessionPrefsRoundTripPreservesAgreement(t *testing.T) {
	in := &SessionPrefs{
		Summary:         "여행 계획",
		ThreadID:        "thread-7",
		Participants:    []string{"u-1", "u-2", "u-3"},
		RequestedDate:   "2025-12-20",
		RequestedTime:   "10:00",
		AgreedDate:      "2025-12-21",
		AgreedTime:      "11:00",
		DurationMinutes: 120,
		DurationNights:  1,
	}

	out, err := ParseSessionPrefs(in.ToMap())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)

	// requested_* must survive agreement being written next to it.
	m := in.ToMap()
	assert.Equal(t, "2025-12-20", m["requested_date"])
	assert.Equal(t, "2025-12-21", m["agreed_date"])
}

func TestSessionPrefsToMapOmitsZeroFields(t *testing.T) {
	p := &SessionPrefs{ThreadID: "thread-1"}
	m := p.ToMap()
	assert.Equal(t, map[string]any{"thread_id": "thread-1"}, m)

	var nilPrefs *SessionPrefs
	assert.Equal(t, map[string]any{}, nilPrefs.ToMap())
}

func TestParseMessagePayload(t *testing.T) {
	raw := map[string]interface{}{
		"proposal": map[string]interface{}{
			"date":             "2025-12-26",
			"time":             "19:00",
			"activity":         "치맥",
			"duration_minutes": float64(120),
		},
		"participant_availabilities": []interface{}{
			map[string]interface{}{
				"user_id":      "u-1",
				"display_name": "철수",
				"is_available": true,
			},
			map[string]interface{}{
				"user_id":      "u-2",
				"is_available": false,
				"conflict_info": map[string]interface{}{
					"event_summary": "회의",
					"start":         "2025-12-26T18:00:00+09:00",
					"end":           "2025-12-26T20:00:00+09:00",
				},
			},
		},
	}

	p, err := ParseMessagePayload(raw)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.Proposal)
	assert.Equal(t, "2025-12-26", p.Proposal.Date)
	assert.Equal(t, "19:00", p.Proposal.Time)
	assert.Equal(t, 120, p.Proposal.DurationMinutes)
	require.Len(t, p.ParticipantAvailabilities, 2)
	assert.True(t, p.ParticipantAvailabilities[0].IsAvailable)
	assert.Nil(t, p.ParticipantAvailabilities[0].ConflictInfo)
	require.NotNil(t, p.ParticipantAvailabilities[1].ConflictInfo)
	assert.Equal(t, "회의", p.ParticipantAvailabilities[1].ConflictInfo.EventSummary)

	empty, err := ParseMessagePayload(map[string]interface{}{})
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestIntentHelpers(t *testing.T) {
	i := &Intent{
		FriendName:         "영희",
		Date:               "2025-12-26",
		Time:               "19:00",
		HasScheduleRequest: true,
	}
	assert.Equal(t, []string{"영희"}, i.Friends())
	assert.True(t, i.HasDate())
	assert.False(t, i.HasDateRange())
	assert.True(t, i.HasTime())
	assert.False(t, i.HasTimeSpan())

	r := &Intent{
		FriendNames: []string{"영희", "철수"},
		StartDate:   "2025-12-20",
		EndDate:     "2025-12-21",
		StartTime:   "10:00",
		EndTime:     "12:00",
	}
	assert.Equal(t, []string{"영희", "철수"}, r.Friends())
	assert.True(t, r.HasDateRange())
	assert.True(t, r.HasTimeSpan())

	m := &Intent{MissingFields: []string{"date", "time"}}
	assert.True(t, m.Missing("date"))
	assert.False(t, m.Missing("friend_name"))
	assert.Nil(t, m.Friends())
}
