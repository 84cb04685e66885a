// Code generated by ent, DO NOT EDIT.

package calendarevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moim-labs/moim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldOwnerID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldSessionID, v))
}

// GoogleEventID applies equality check predicate on the "google_event_id" field. It's identical to GoogleEventIDEQ.
func GoogleEventID(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldGoogleEventID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldSummary, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldLocation, v))
}

// StartAt applies equality check predicate on the "start_at" field. It's identical to StartAtEQ.
func StartAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStartAt, v))
}

// EndAt applies equality check predicate on the "end_at" field. It's identical to EndAtEQ.
func EndAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldEndAt, v))
}

// HTMLLink applies equality check predicate on the "html_link" field. It's identical to HTMLLinkEQ.
func HTMLLink(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldHTMLLink, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldOwnerID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// GoogleEventIDEQ applies the EQ predicate on the "google_event_id" field.
func GoogleEventIDEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldGoogleEventID, v))
}

// GoogleEventIDNEQ applies the NEQ predicate on the "google_event_id" field.
func GoogleEventIDNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldGoogleEventID, v))
}

// GoogleEventIDIn applies the In predicate on the "google_event_id" field.
func GoogleEventIDIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldGoogleEventID, vs...))
}

// GoogleEventIDNotIn applies the NotIn predicate on the "google_event_id" field.
func GoogleEventIDNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldGoogleEventID, vs...))
}

// GoogleEventIDGT applies the GT predicate on the "google_event_id" field.
func GoogleEventIDGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldGoogleEventID, v))
}

// GoogleEventIDGTE applies the GTE predicate on the "google_event_id" field.
func GoogleEventIDGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldGoogleEventID, v))
}

// GoogleEventIDLT applies the LT predicate on the "google_event_id" field.
func GoogleEventIDLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldGoogleEventID, v))
}

// GoogleEventIDLTE applies the LTE predicate on the "google_event_id" field.
func GoogleEventIDLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldGoogleEventID, v))
}

// GoogleEventIDContains applies the Contains predicate on the "google_event_id" field.
func GoogleEventIDContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldGoogleEventID, v))
}

// GoogleEventIDHasPrefix applies the HasPrefix predicate on the "google_event_id" field.
func GoogleEventIDHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldGoogleEventID, v))
}

// GoogleEventIDHasSuffix applies the HasSuffix predicate on the "google_event_id" field.
func GoogleEventIDHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldGoogleEventID, v))
}

// GoogleEventIDEqualFold applies the EqualFold predicate on the "google_event_id" field.
func GoogleEventIDEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldGoogleEventID, v))
}

// GoogleEventIDContainsFold applies the ContainsFold predicate on the "google_event_id" field.
func GoogleEventIDContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldGoogleEventID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldSummary, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldLocation, v))
}

// StartAtEQ applies the EQ predicate on the "start_at" field.
func StartAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStartAt, v))
}

// StartAtNEQ applies the NEQ predicate on the "start_at" field.
func StartAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldStartAt, v))
}

// StartAtIn applies the In predicate on the "start_at" field.
func StartAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldStartAt, vs...))
}

// StartAtNotIn applies the NotIn predicate on the "start_at" field.
func StartAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldStartAt, vs...))
}

// StartAtGT applies the GT predicate on the "start_at" field.
func StartAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldStartAt, v))
}

// StartAtGTE applies the GTE predicate on the "start_at" field.
func StartAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldStartAt, v))
}

// StartAtLT applies the LT predicate on the "start_at" field.
func StartAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldStartAt, v))
}

// StartAtLTE applies the LTE predicate on the "start_at" field.
func StartAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldStartAt, v))
}

// EndAtEQ applies the EQ predicate on the "end_at" field.
func EndAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldEndAt, v))
}

// EndAtNEQ applies the NEQ predicate on the "end_at" field.
func EndAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldEndAt, v))
}

// EndAtIn applies the In predicate on the "end_at" field.
func EndAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldEndAt, vs...))
}

// EndAtNotIn applies the NotIn predicate on the "end_at" field.
func EndAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldEndAt, vs...))
}

// EndAtGT applies the GT predicate on the "end_at" field.
func EndAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldEndAt, v))
}

// EndAtGTE applies the GTE predicate on the "end_at" field.
func EndAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldEndAt, v))
}

// EndAtLT applies the LT predicate on the "end_at" field.
func EndAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldEndAt, v))
}

// EndAtLTE applies the LTE predicate on the "end_at" field.
func EndAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldEndAt, v))
}

// HTMLLinkEQ applies the EQ predicate on the "html_link" field.
func HTMLLinkEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldHTMLLink, v))
}

// HTMLLinkNEQ applies the NEQ predicate on the "html_link" field.
func HTMLLinkNEQ(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldHTMLLink, v))
}

// HTMLLinkIn applies the In predicate on the "html_link" field.
func HTMLLinkIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldHTMLLink, vs...))
}

// HTMLLinkNotIn applies the NotIn predicate on the "html_link" field.
func HTMLLinkNotIn(vs ...string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldHTMLLink, vs...))
}

// HTMLLinkGT applies the GT predicate on the "html_link" field.
func HTMLLinkGT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldHTMLLink, v))
}

// HTMLLinkGTE applies the GTE predicate on the "html_link" field.
func HTMLLinkGTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldHTMLLink, v))
}

// HTMLLinkLT applies the LT predicate on the "html_link" field.
func HTMLLinkLT(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldHTMLLink, v))
}

// HTMLLinkLTE applies the LTE predicate on the "html_link" field.
func HTMLLinkLTE(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldHTMLLink, v))
}

// HTMLLinkContains applies the Contains predicate on the "html_link" field.
func HTMLLinkContains(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContains(FieldHTMLLink, v))
}

// HTMLLinkHasPrefix applies the HasPrefix predicate on the "html_link" field.
func HTMLLinkHasPrefix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasPrefix(FieldHTMLLink, v))
}

// HTMLLinkHasSuffix applies the HasSuffix predicate on the "html_link" field.
func HTMLLinkHasSuffix(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldHasSuffix(FieldHTMLLink, v))
}

// HTMLLinkIsNil applies the IsNil predicate on the "html_link" field.
func HTMLLinkIsNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIsNull(FieldHTMLLink))
}

// HTMLLinkNotNil applies the NotNil predicate on the "html_link" field.
func HTMLLinkNotNil() predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotNull(FieldHTMLLink))
}

// HTMLLinkEqualFold applies the EqualFold predicate on the "html_link" field.
func HTMLLinkEqualFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEqualFold(FieldHTMLLink, v))
}

// HTMLLinkContainsFold applies the ContainsFold predicate on the "html_link" field.
func HTMLLinkContainsFold(v string) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldContainsFold(FieldHTMLLink, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.CalendarEvent {
	return predicate.CalendarEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.CalendarEvent {
	return predicate.CalendarEvent(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalendarEvent) predicate.CalendarEvent {
	return predicate.CalendarEvent(sql.NotPredicates(p))
}
