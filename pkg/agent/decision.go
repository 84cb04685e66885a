package agent

import (
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
)

// Decision is one agent turn: the chosen kind, the structured half, and the
// natural-language surface.
//
// Conflict names the calendar entry that blocked the target. It belongs to
// this agent's own user; the engine attaches it only to the owner's copy of
// the message and to internal logs, never to prose other users can read.
type Decision struct {
	Type     negotiationmessage.Type
	Proposal *schedule.Proposal
	Conflict *models.ConflictInfo
	Message  string
}

// NeedsHuman reports whether the decision escalates out of autonomous
// negotiation.
func (d Decision) NeedsHuman() bool {
	return d.Type == negotiationmessage.TypeNeedHuman
}

// Payload converts the structured half to the persisted message payload.
// The owner-only conflict detail is included; the engine strips it from
// copies addressed to other participants.
func (d Decision) Payload() *models.MessagePayload {
	if d.Proposal == nil && d.Conflict == nil {
		return nil
	}
	p := &models.MessagePayload{ConflictInfo: d.Conflict}
	if d.Proposal != nil {
		p.Proposal = &models.Proposal{
			Date:            d.Proposal.Date,
			Time:            d.Proposal.Time,
			Location:        d.Proposal.Location,
			Activity:        d.Proposal.Activity,
			DurationMinutes: d.Proposal.DurationMinutes,
			DurationNights:  d.Proposal.DurationNights,
		}
	}
	return p
}
