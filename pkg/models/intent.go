package models

// Intent is the structured reading of one user utterance. Names are never
// fabricated: a field stays empty unless the user actually said it.
type Intent struct {
	FriendName  string   `json:"friend_name,omitempty"`
	FriendNames []string `json:"friend_names,omitempty"`

	// Date fields hold civil dates as "2006-01-02"; Date is set for a single
	// day, StartDate/EndDate for a range.
	Date      string `json:"date,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// Time fields hold clock times as "15:04". Time is a single instant,
	// StartTime/EndTime an explicit span.
	Time      string `json:"time,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	Activity string `json:"activity,omitempty"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`

	HasScheduleRequest bool `json:"has_schedule_request"`

	// MissingFields lists the slots still needed before dispatch: "date",
	// "time", and "friend_name" when no friends were selected via UI.
	MissingFields []string `json:"missing_fields,omitempty"`
}

// HasDate reports whether any date information was extracted.
func (i *Intent) HasDate() bool {
	return i.Date != "" || i.StartDate != ""
}

// HasDateRange reports whether the utterance named a multi-day range.
func (i *Intent) HasDateRange() bool {
	return i.StartDate != "" && i.EndDate != "" && i.StartDate != i.EndDate
}

// HasTime reports whether any time information was extracted.
func (i *Intent) HasTime() bool {
	return i.Time != "" || i.StartTime != ""
}

// HasTimeSpan reports whether the utterance named an explicit start and end.
func (i *Intent) HasTimeSpan() bool {
	return i.StartTime != "" && i.EndTime != ""
}

// Friends returns the mentioned friend names, folding the single-name field
// into the list form.
func (i *Intent) Friends() []string {
	if len(i.FriendNames) > 0 {
		return i.FriendNames
	}
	if i.FriendName != "" {
		return []string{i.FriendName}
	}
	return nil
}

// Missing reports whether the named slot is still unfilled.
func (i *Intent) Missing(field string) bool {
	for _, f := range i.MissingFields {
		if f == field {
			return true
		}
	}
	return false
}

// LooksPersonal reports whether the utterance reads as the user's own
// booking rather than a meeting: an explicit time span or a named errand
// needs no companion.
func (i *Intent) LooksPersonal() bool {
	return i.HasTimeSpan() || i.Title != ""
}

// RecomputeMissing rebuilds MissingFields from the current slot values.
// Both the extractor and the slot-filling merge go through here so the two
// never disagree on what still has to be asked.
func (i *Intent) RecomputeMissing(friendsSelected bool) {
	i.MissingFields = nil
	if !i.HasScheduleRequest {
		return
	}
	if !i.HasDate() {
		i.MissingFields = append(i.MissingFields, "date")
	}
	if !i.HasTime() {
		i.MissingFields = append(i.MissingFields, "time")
	}
	if !friendsSelected && len(i.FriendNames) == 0 && !i.LooksPersonal() {
		i.MissingFields = append(i.MissingFields, "friend_name")
	}
}
