// Code generated by ent, DO NOT EDIT.

package negotiationmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moim-labs/moim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldSessionID, v))
}

// SenderID applies equality check predicate on the "sender_id" field. It's identical to SenderIDEQ.
func SenderID(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldSenderID, v))
}

// ReceiverID applies equality check predicate on the "receiver_id" field. It's identical to ReceiverIDEQ.
func ReceiverID(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldReceiverID, v))
}

// SenderName applies equality check predicate on the "sender_name" field. It's identical to SenderNameEQ.
func SenderName(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldSenderName, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldRound, v))
}

// Prose applies equality check predicate on the "prose" field. It's identical to ProseEQ.
func Prose(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldProse, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContainsFold(FieldSessionID, v))
}

// SenderIDEQ applies the EQ predicate on the "sender_id" field.
func SenderIDEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldSenderID, v))
}

// SenderIDNEQ applies the NEQ predicate on the "sender_id" field.
func SenderIDNEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldSenderID, v))
}

// SenderIDIn applies the In predicate on the "sender_id" field.
func SenderIDIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldSenderID, vs...))
}

// SenderIDNotIn applies the NotIn predicate on the "sender_id" field.
func SenderIDNotIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldSenderID, vs...))
}

// SenderIDGT applies the GT predicate on the "sender_id" field.
func SenderIDGT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGT(FieldSenderID, v))
}

// SenderIDGTE applies the GTE predicate on the "sender_id" field.
func SenderIDGTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGTE(FieldSenderID, v))
}

// SenderIDLT applies the LT predicate on the "sender_id" field.
func SenderIDLT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLT(FieldSenderID, v))
}

// SenderIDLTE applies the LTE predicate on the "sender_id" field.
func SenderIDLTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLTE(FieldSenderID, v))
}

// SenderIDContains applies the Contains predicate on the "sender_id" field.
func SenderIDContains(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContains(FieldSenderID, v))
}

// SenderIDHasPrefix applies the HasPrefix predicate on the "sender_id" field.
func SenderIDHasPrefix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasPrefix(FieldSenderID, v))
}

// SenderIDHasSuffix applies the HasSuffix predicate on the "sender_id" field.
func SenderIDHasSuffix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasSuffix(FieldSenderID, v))
}

// SenderIDEqualFold applies the EqualFold predicate on the "sender_id" field.
func SenderIDEqualFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEqualFold(FieldSenderID, v))
}

// SenderIDContainsFold applies the ContainsFold predicate on the "sender_id" field.
func SenderIDContainsFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContainsFold(FieldSenderID, v))
}

// ReceiverIDEQ applies the EQ predicate on the "receiver_id" field.
func ReceiverIDEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldReceiverID, v))
}

// ReceiverIDNEQ applies the NEQ predicate on the "receiver_id" field.
func ReceiverIDNEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldReceiverID, v))
}

// ReceiverIDIn applies the In predicate on the "receiver_id" field.
func ReceiverIDIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldReceiverID, vs...))
}

// ReceiverIDNotIn applies the NotIn predicate on the "receiver_id" field.
func ReceiverIDNotIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldReceiverID, vs...))
}

// ReceiverIDGT applies the GT predicate on the "receiver_id" field.
func ReceiverIDGT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGT(FieldReceiverID, v))
}

// ReceiverIDGTE applies the GTE predicate on the "receiver_id" field.
func ReceiverIDGTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGTE(FieldReceiverID, v))
}

// ReceiverIDLT applies the LT predicate on the "receiver_id" field.
func ReceiverIDLT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLT(FieldReceiverID, v))
}

// ReceiverIDLTE applies the LTE predicate on the "receiver_id" field.
func ReceiverIDLTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLTE(FieldReceiverID, v))
}

// ReceiverIDContains applies the Contains predicate on the "receiver_id" field.
func ReceiverIDContains(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContains(FieldReceiverID, v))
}

// ReceiverIDHasPrefix applies the HasPrefix predicate on the "receiver_id" field.
func ReceiverIDHasPrefix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasPrefix(FieldReceiverID, v))
}

// ReceiverIDHasSuffix applies the HasSuffix predicate on the "receiver_id" field.
func ReceiverIDHasSuffix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasSuffix(FieldReceiverID, v))
}

// ReceiverIDIsNil applies the IsNil predicate on the "receiver_id" field.
func ReceiverIDIsNil() predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIsNull(FieldReceiverID))
}

// ReceiverIDNotNil applies the NotNil predicate on the "receiver_id" field.
func ReceiverIDNotNil() predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotNull(FieldReceiverID))
}

// ReceiverIDEqualFold applies the EqualFold predicate on the "receiver_id" field.
func ReceiverIDEqualFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEqualFold(FieldReceiverID, v))
}

// ReceiverIDContainsFold applies the ContainsFold predicate on the "receiver_id" field.
func ReceiverIDContainsFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContainsFold(FieldReceiverID, v))
}

// SenderNameEQ applies the EQ predicate on the "sender_name" field.
func SenderNameEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldSenderName, v))
}

// SenderNameNEQ applies the NEQ predicate on the "sender_name" field.
func SenderNameNEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldSenderName, v))
}

// SenderNameIn applies the In predicate on the "sender_name" field.
func SenderNameIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldSenderName, vs...))
}

// SenderNameNotIn applies the NotIn predicate on the "sender_name" field.
func SenderNameNotIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldSenderName, vs...))
}

// SenderNameGT applies the GT predicate on the "sender_name" field.
func SenderNameGT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGT(FieldSenderName, v))
}

// SenderNameGTE applies the GTE predicate on the "sender_name" field.
func SenderNameGTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGTE(FieldSenderName, v))
}

// SenderNameLT applies the LT predicate on the "sender_name" field.
func SenderNameLT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLT(FieldSenderName, v))
}

// SenderNameLTE applies the LTE predicate on the "sender_name" field.
func SenderNameLTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLTE(FieldSenderName, v))
}

// SenderNameContains applies the Contains predicate on the "sender_name" field.
func SenderNameContains(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContains(FieldSenderName, v))
}

// SenderNameHasPrefix applies the HasPrefix predicate on the "sender_name" field.
func SenderNameHasPrefix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasPrefix(FieldSenderName, v))
}

// SenderNameHasSuffix applies the HasSuffix predicate on the "sender_name" field.
func SenderNameHasSuffix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasSuffix(FieldSenderName, v))
}

// SenderNameEqualFold applies the EqualFold predicate on the "sender_name" field.
func SenderNameEqualFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEqualFold(FieldSenderName, v))
}

// SenderNameContainsFold applies the ContainsFold predicate on the "sender_name" field.
func SenderNameContainsFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContainsFold(FieldSenderName, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldType, vs...))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLTE(FieldRound, v))
}

// ProseEQ applies the EQ predicate on the "prose" field.
func ProseEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldProse, v))
}

// ProseNEQ applies the NEQ predicate on the "prose" field.
func ProseNEQ(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldProse, v))
}

// ProseIn applies the In predicate on the "prose" field.
func ProseIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldProse, vs...))
}

// ProseNotIn applies the NotIn predicate on the "prose" field.
func ProseNotIn(vs ...string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldProse, vs...))
}

// ProseGT applies the GT predicate on the "prose" field.
func ProseGT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGT(FieldProse, v))
}

// ProseGTE applies the GTE predicate on the "prose" field.
func ProseGTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGTE(FieldProse, v))
}

// ProseLT applies the LT predicate on the "prose" field.
func ProseLT(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLT(FieldProse, v))
}

// ProseLTE applies the LTE predicate on the "prose" field.
func ProseLTE(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLTE(FieldProse, v))
}

// ProseContains applies the Contains predicate on the "prose" field.
func ProseContains(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContains(FieldProse, v))
}

// ProseHasPrefix applies the HasPrefix predicate on the "prose" field.
func ProseHasPrefix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasPrefix(FieldProse, v))
}

// ProseHasSuffix applies the HasSuffix predicate on the "prose" field.
func ProseHasSuffix(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldHasSuffix(FieldProse, v))
}

// ProseEqualFold applies the EqualFold predicate on the "prose" field.
func ProseEqualFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEqualFold(FieldProse, v))
}

// ProseContainsFold applies the ContainsFold predicate on the "prose" field.
func ProseContainsFold(v string) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldContainsFold(FieldProse, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.NegotiationMessage {
	return predicate.NegotiationMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.NegotiationSession) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NegotiationMessage) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NegotiationMessage) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NegotiationMessage) predicate.NegotiationMessage {
	return predicate.NegotiationMessage(sql.NotPredicates(p))
}
