package models

// Proposal is the structured half of a negotiation message: a concrete slot
// an agent suggested or agreed to.
type Proposal struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location,omitempty"`
	Activity        string `json:"activity,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	DurationNights  int    `json:"duration_nights,omitempty"`
}

// ConflictInfo names the calendar entry that blocked a proposal. It is only
// ever surfaced to the calendar's owner; other participants see a redacted
// availability flag.
type ConflictInfo struct {
	EventSummary string `json:"event_summary,omitempty"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
}

// ParticipantAvailability is one participant's availability snapshot inside
// a disambiguation or majority-recommendation message.
type ParticipantAvailability struct {
	UserID       string        `json:"user_id"`
	DisplayName  string        `json:"display_name,omitempty"`
	IsAvailable  bool          `json:"is_available"`
	ConflictInfo *ConflictInfo `json:"conflict_info,omitempty"`
}

// MessagePayload is the typed view of negotiation_messages.payload.
type MessagePayload struct {
	Proposal                  *Proposal                 `json:"proposal,omitempty"`
	ConflictInfo              *ConflictInfo             `json:"conflict_info,omitempty"`
	MajorityRecommendation    *Proposal                 `json:"majority_recommendation,omitempty"`
	ParticipantAvailabilities []ParticipantAvailability `json:"participant_availabilities,omitempty"`
}

// ToMap converts the payload into the JSON bag stored on the message row.
func (p *MessagePayload) ToMap() map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return structToMap(p)
}

// ParseMessagePayload decodes a message payload bag. Returns nil for empty
// input.
func ParseMessagePayload(raw map[string]any) (*MessagePayload, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p MessagePayload
	if err := mapToStruct(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
