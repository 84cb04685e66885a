package models

import "time"

// Chat log metadata bags. The orchestrator and the approval coordinator
// reconstruct per-thread state from the most recent log rows carrying these
// records; there is no dedicated state table.

// ApprovalMetadata rides on schedule_approval logs. ApprovedByList is a
// cached display value only. The coordinator's source of truth is a fresh
// scan of every participant's latest approval-response log, never this cache.
type ApprovalMetadata struct {
	ThreadID        string     `json:"thread_id,omitempty"`
	SessionIDs      []string   `json:"session_ids,omitempty"`
	ApprovedByList  []string   `json:"approved_by_list,omitempty"`
	AllApproved     bool       `json:"all_approved,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ButtonsDisabled bool       `json:"buttons_disabled,omitempty"`
}

// ApprovalResponseMetadata rides on approval_response logs — the rows the
// fresh scan counts. Approved is deliberately not omitempty: a recorded
// refusal must survive the round trip as an explicit false.
type ApprovalResponseMetadata struct {
	Approved bool   `json:"approved"`
	ThreadID string `json:"thread_id,omitempty"`
}

// RejectionMetadata rides on schedule_rejection logs and arms recoordination.
type RejectionMetadata struct {
	NeedsRecoordination bool     `json:"needs_recoordination,omitempty"`
	ThreadID            string   `json:"thread_id,omitempty"`
	SessionIDs          []string `json:"session_ids,omitempty"`
	RejectedBy          string   `json:"rejected_by,omitempty"`
}

// RecommendationCandidate is one of the numbered date options offered when
// the user gave a range (or no date) instead of a concrete day.
type RecommendationCandidate struct {
	Date           string   `json:"date"`
	TimeCondition  string   `json:"time_condition,omitempty"`
	AvailableCount int      `json:"available_count"`
	AllAvailable   bool     `json:"all_available"`
	Participants   []string `json:"participants,omitempty"`
}

// RecommendationMetadata rides on the ai_response that offered candidates.
// The next user message is parsed against Candidates ("1", "12/24", "두번째").
type RecommendationMetadata struct {
	RecommendationMode bool                      `json:"recommendation_mode,omitempty"`
	Candidates         []RecommendationCandidate `json:"candidates,omitempty"`
	FriendIDs          []string                  `json:"friend_ids,omitempty"`
	FriendNames        []string                  `json:"friend_names,omitempty"`
	Activity           string                    `json:"activity,omitempty"`
}

// TimeSelectionMetadata rides on the ai_response that acknowledged a date and
// asked for a time. TimeCondition, when set, constrains the acceptable answer
// (e.g. "18시 이후").
type TimeSelectionMetadata struct {
	AwaitingTimeSelection bool     `json:"awaiting_time_selection,omitempty"`
	SelectedDate          string   `json:"selected_date,omitempty"`
	TimeCondition         string   `json:"time_condition,omitempty"`
	FriendIDs             []string `json:"friend_ids,omitempty"`
	FriendNames           []string `json:"friend_names,omitempty"`
	Activity              string   `json:"activity,omitempty"`
	ThreadID              string   `json:"thread_id,omitempty"`
}

// PendingPersonalMetadata rides on the ai_response that offered to write a
// personal schedule and awaits a short confirmation ("응", "네").
type PendingPersonalMetadata struct {
	AwaitingConfirmation bool   `json:"awaiting_confirmation,omitempty"`
	Date                 string `json:"date,omitempty"`
	StartTime            string `json:"start_time,omitempty"`
	EndTime              string `json:"end_time,omitempty"`
	Title                string `json:"title,omitempty"`
	Location             string `json:"location,omitempty"`
}

// SlotFillingMetadata rides on a slot-filling question so the next turn can
// merge the user's answer into the stashed partial intent.
type SlotFillingMetadata struct {
	AwaitingSlotFill bool    `json:"awaiting_slot_fill,omitempty"`
	PendingIntent    *Intent `json:"pending_intent,omitempty"`
}

func (m *ApprovalMetadata) ToMap() map[string]any {
	return structToMap(m)
}

func (m *ApprovalResponseMetadata) ToMap() map[string]any {
	return structToMap(m)
}

func (m *RejectionMetadata) ToMap() map[string]any {
	return structToMap(m)
}

func (m *RecommendationMetadata) ToMap() map[string]any {
	return structToMap(m)
}

func (m *TimeSelectionMetadata) ToMap() map[string]any {
	return structToMap(m)
}

func (m *PendingPersonalMetadata) ToMap() map[string]any {
	return structToMap(m)
}

func (m *SlotFillingMetadata) ToMap() map[string]any {
	return structToMap(m)
}

// ParseApprovalMetadata decodes approval state from a chat log's metadata.
// Returns nil for empty input.
func ParseApprovalMetadata(raw map[string]any) (*ApprovalMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m ApprovalMetadata
	if err := mapToStruct(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseApprovalResponseMetadata decodes one participant's recorded decision.
// Returns nil for empty input.
func ParseApprovalResponseMetadata(raw map[string]any) (*ApprovalResponseMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m ApprovalResponseMetadata
	if err := mapToStruct(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseRejectionMetadata decodes rejection state from a chat log's metadata.
// Returns nil for empty input.
func ParseRejectionMetadata(raw map[string]any) (*RejectionMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m RejectionMetadata
	if err := mapToStruct(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseRecommendationMetadata decodes candidate state from a chat log's
// metadata. Returns nil for empty input or when recommendation mode is off.
func ParseRecommendationMetadata(raw map[string]any) (*RecommendationMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m RecommendationMetadata
	if err := mapToStruct(raw, &m); err != nil {
		return nil, err
	}
	if !m.RecommendationMode {
		return nil, nil
	}
	return &m, nil
}

// ParseTimeSelectionMetadata decodes time-selection state from a chat log's
// metadata. Returns nil for empty input or when no selection is pending.
func ParseTimeSelectionMetadata(raw map[string]any) (*TimeSelectionMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m TimeSelectionMetadata
	if err := mapToStruct(raw, &m); err != nil {
		return nil, err
	}
	if !m.AwaitingTimeSelection {
		return nil, nil
	}
	return &m, nil
}

// ParsePendingPersonalMetadata decodes a stashed personal schedule offer.
// Returns nil for empty input or when no confirmation is pending.
func ParsePendingPersonalMetadata(raw map[string]any) (*PendingPersonalMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m PendingPersonalMetadata
	if err := mapToStruct(raw, &m); err != nil {
		return nil, err
	}
	if !m.AwaitingConfirmation {
		return nil, nil
	}
	return &m, nil
}

// ParseSlotFillingMetadata decodes a stashed partial intent. Returns nil for
// empty input or when no slot fill is pending.
func ParseSlotFillingMetadata(raw map[string]any) (*SlotFillingMetadata, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m SlotFillingMetadata
	if err := mapToStruct(raw, &m); err != nil {
		return nil, err
	}
	if !m.AwaitingSlotFill {
		return nil, nil
	}
	return &m, nil
}
