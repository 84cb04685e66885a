// Code generated by ent, DO NOT EDIT.

package negotiationsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moim-labs/moim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContainsFold(FieldID, id))
}

// InitiatorID applies equality check predicate on the "initiator_id" field. It's identical to InitiatorIDEQ.
func InitiatorID(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldInitiatorID, v))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldTargetID, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldIntent, v))
}

// FinalEventID applies equality check predicate on the "final_event_id" field. It's identical to FinalEventIDEQ.
func FinalEventID(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldFinalEventID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// InitiatorIDEQ applies the EQ predicate on the "initiator_id" field.
func InitiatorIDEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldInitiatorID, v))
}

// InitiatorIDNEQ applies the NEQ predicate on the "initiator_id" field.
func InitiatorIDNEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldInitiatorID, v))
}

// InitiatorIDIn applies the In predicate on the "initiator_id" field.
func InitiatorIDIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldInitiatorID, vs...))
}

// InitiatorIDNotIn applies the NotIn predicate on the "initiator_id" field.
func InitiatorIDNotIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldInitiatorID, vs...))
}

// InitiatorIDGT applies the GT predicate on the "initiator_id" field.
func InitiatorIDGT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldInitiatorID, v))
}

// InitiatorIDGTE applies the GTE predicate on the "initiator_id" field.
func InitiatorIDGTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldInitiatorID, v))
}

// InitiatorIDLT applies the LT predicate on the "initiator_id" field.
func InitiatorIDLT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldInitiatorID, v))
}

// InitiatorIDLTE applies the LTE predicate on the "initiator_id" field.
func InitiatorIDLTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldInitiatorID, v))
}

// InitiatorIDContains applies the Contains predicate on the "initiator_id" field.
func InitiatorIDContains(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContains(FieldInitiatorID, v))
}

// InitiatorIDHasPrefix applies the HasPrefix predicate on the "initiator_id" field.
func InitiatorIDHasPrefix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasPrefix(FieldInitiatorID, v))
}

// InitiatorIDHasSuffix applies the HasSuffix predicate on the "initiator_id" field.
func InitiatorIDHasSuffix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasSuffix(FieldInitiatorID, v))
}

// InitiatorIDEqualFold applies the EqualFold predicate on the "initiator_id" field.
func InitiatorIDEqualFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEqualFold(FieldInitiatorID, v))
}

// InitiatorIDContainsFold applies the ContainsFold predicate on the "initiator_id" field.
func InitiatorIDContainsFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContainsFold(FieldInitiatorID, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDIsNil applies the IsNil predicate on the "target_id" field.
func TargetIDIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldTargetID))
}

// TargetIDNotNil applies the NotNil predicate on the "target_id" field.
func TargetIDNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldTargetID))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContainsFold(FieldTargetID, v))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContainsFold(FieldIntent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldStatus, vs...))
}

// TimeWindowIsNil applies the IsNil predicate on the "time_window" field.
func TimeWindowIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldTimeWindow))
}

// TimeWindowNotNil applies the NotNil predicate on the "time_window" field.
func TimeWindowNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldTimeWindow))
}

// PlacePrefIsNil applies the IsNil predicate on the "place_pref" field.
func PlacePrefIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldPlacePref))
}

// PlacePrefNotNil applies the NotNil predicate on the "place_pref" field.
func PlacePrefNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldPlacePref))
}

// FinalEventIDEQ applies the EQ predicate on the "final_event_id" field.
func FinalEventIDEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldFinalEventID, v))
}

// FinalEventIDNEQ applies the NEQ predicate on the "final_event_id" field.
func FinalEventIDNEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldFinalEventID, v))
}

// FinalEventIDIn applies the In predicate on the "final_event_id" field.
func FinalEventIDIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldFinalEventID, vs...))
}

// FinalEventIDNotIn applies the NotIn predicate on the "final_event_id" field.
func FinalEventIDNotIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldFinalEventID, vs...))
}

// FinalEventIDGT applies the GT predicate on the "final_event_id" field.
func FinalEventIDGT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldFinalEventID, v))
}

// FinalEventIDGTE applies the GTE predicate on the "final_event_id" field.
func FinalEventIDGTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldFinalEventID, v))
}

// FinalEventIDLT applies the LT predicate on the "final_event_id" field.
func FinalEventIDLT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldFinalEventID, v))
}

// FinalEventIDLTE applies the LTE predicate on the "final_event_id" field.
func FinalEventIDLTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldFinalEventID, v))
}

// FinalEventIDContains applies the Contains predicate on the "final_event_id" field.
func FinalEventIDContains(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContains(FieldFinalEventID, v))
}

// FinalEventIDHasPrefix applies the HasPrefix predicate on the "final_event_id" field.
func FinalEventIDHasPrefix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasPrefix(FieldFinalEventID, v))
}

// FinalEventIDHasSuffix applies the HasSuffix predicate on the "final_event_id" field.
func FinalEventIDHasSuffix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasSuffix(FieldFinalEventID, v))
}

// FinalEventIDIsNil applies the IsNil predicate on the "final_event_id" field.
func FinalEventIDIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldFinalEventID))
}

// FinalEventIDNotNil applies the NotNil predicate on the "final_event_id" field.
func FinalEventIDNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldFinalEventID))
}

// FinalEventIDEqualFold applies the EqualFold predicate on the "final_event_id" field.
func FinalEventIDEqualFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEqualFold(FieldFinalEventID, v))
}

// FinalEventIDContainsFold applies the ContainsFold predicate on the "final_event_id" field.
func FinalEventIDContainsFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContainsFold(FieldFinalEventID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInitiator applies the HasEdge predicate on the "initiator" edge.
func HasInitiator() predicate.NegotiationSession {
	return predicate.NegotiationSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InitiatorTable, InitiatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInitiatorWith applies the HasEdge predicate on the "initiator" edge with a given conditions (other predicates).
func HasInitiatorWith(preds ...predicate.User) predicate.NegotiationSession {
	return predicate.NegotiationSession(func(s *sql.Selector) {
		step := newInitiatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.NegotiationSession {
	return predicate.NegotiationSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.NegotiationMessage) predicate.NegotiationSession {
	return predicate.NegotiationSession(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NegotiationSession) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NegotiationSession) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NegotiationSession) predicate.NegotiationSession {
	return predicate.NegotiationSession(sql.NotPredicates(p))
}
