package models

// SessionPrefs is the typed view of a session's place_pref JSON bag. It
// carries everything the orchestrator needs to reconstruct a negotiation
// without extra tables: what was asked, what was agreed, and which thread
// the session belongs to.
type SessionPrefs struct {
	Summary  string `json:"summary,omitempty"`
	Location string `json:"location,omitempty"`
	Activity string `json:"activity,omitempty"`

	// ThreadID groups sessions that share one logical group chat. Message
	// queries by thread union every grouped session's transcript.
	ThreadID string `json:"thread_id,omitempty"`

	// Participants holds the full participant id set (initiator included).
	// Recoordination recovers the group from here when sessions are reused.
	Participants []string `json:"participants,omitempty"`

	RequestedDate string `json:"requested_date,omitempty"`
	RequestedTime string `json:"requested_time,omitempty"`
	AgreedDate    string `json:"agreed_date,omitempty"`
	AgreedTime    string `json:"agreed_time,omitempty"`

	DurationMinutes int `json:"duration_minutes,omitempty"`
	DurationNights  int `json:"duration_nights,omitempty"`

	// HiddenBy lists users who dismissed this session from their view;
	// LeftParticipants lists users who left the group after creation.
	HiddenBy         []string `json:"hidden_by,omitempty"`
	LeftParticipants []string `json:"left_participants,omitempty"`
}

// ToMap converts prefs into the JSON bag stored on the session row.
func (p *SessionPrefs) ToMap() map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return structToMap(p)
}

// ParseSessionPrefs decodes a place_pref bag. Returns nil for empty input.
func ParseSessionPrefs(raw map[string]any) (*SessionPrefs, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p SessionPrefs
	if err := mapToStruct(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
