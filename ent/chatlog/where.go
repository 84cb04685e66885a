// Code generated by ent, DO NOT EDIT.

package chatlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moim-labs/moim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldUserID, v))
}

// FriendID applies equality check predicate on the "friend_id" field. It's identical to FriendIDEQ.
func FriendID(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldFriendID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldSessionID, v))
}

// ChatSessionID applies equality check predicate on the "chat_session_id" field. It's identical to ChatSessionIDEQ.
func ChatSessionID(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldChatSessionID, v))
}

// RequestText applies equality check predicate on the "request_text" field. It's identical to RequestTextEQ.
func RequestText(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldRequestText, v))
}

// ResponseText applies equality check predicate on the "response_text" field. It's identical to ResponseTextEQ.
func ResponseText(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldResponseText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContainsFold(FieldUserID, v))
}

// FriendIDEQ applies the EQ predicate on the "friend_id" field.
func FriendIDEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldFriendID, v))
}

// FriendIDNEQ applies the NEQ predicate on the "friend_id" field.
func FriendIDNEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldFriendID, v))
}

// FriendIDIn applies the In predicate on the "friend_id" field.
func FriendIDIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldFriendID, vs...))
}

// FriendIDNotIn applies the NotIn predicate on the "friend_id" field.
func FriendIDNotIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldFriendID, vs...))
}

// FriendIDGT applies the GT predicate on the "friend_id" field.
func FriendIDGT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGT(FieldFriendID, v))
}

// FriendIDGTE applies the GTE predicate on the "friend_id" field.
func FriendIDGTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGTE(FieldFriendID, v))
}

// FriendIDLT applies the LT predicate on the "friend_id" field.
func FriendIDLT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLT(FieldFriendID, v))
}

// FriendIDLTE applies the LTE predicate on the "friend_id" field.
func FriendIDLTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLTE(FieldFriendID, v))
}

// FriendIDContains applies the Contains predicate on the "friend_id" field.
func FriendIDContains(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContains(FieldFriendID, v))
}

// FriendIDHasPrefix applies the HasPrefix predicate on the "friend_id" field.
func FriendIDHasPrefix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasPrefix(FieldFriendID, v))
}

// FriendIDHasSuffix applies the HasSuffix predicate on the "friend_id" field.
func FriendIDHasSuffix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasSuffix(FieldFriendID, v))
}

// FriendIDIsNil applies the IsNil predicate on the "friend_id" field.
func FriendIDIsNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIsNull(FieldFriendID))
}

// FriendIDNotNil applies the NotNil predicate on the "friend_id" field.
func FriendIDNotNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotNull(FieldFriendID))
}

// FriendIDEqualFold applies the EqualFold predicate on the "friend_id" field.
func FriendIDEqualFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEqualFold(FieldFriendID, v))
}

// FriendIDContainsFold applies the ContainsFold predicate on the "friend_id" field.
func FriendIDContainsFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContainsFold(FieldFriendID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContainsFold(FieldSessionID, v))
}

// ChatSessionIDEQ applies the EQ predicate on the "chat_session_id" field.
func ChatSessionIDEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldChatSessionID, v))
}

// ChatSessionIDNEQ applies the NEQ predicate on the "chat_session_id" field.
func ChatSessionIDNEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldChatSessionID, v))
}

// ChatSessionIDIn applies the In predicate on the "chat_session_id" field.
func ChatSessionIDIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldChatSessionID, vs...))
}

// ChatSessionIDNotIn applies the NotIn predicate on the "chat_session_id" field.
func ChatSessionIDNotIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldChatSessionID, vs...))
}

// ChatSessionIDGT applies the GT predicate on the "chat_session_id" field.
func ChatSessionIDGT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGT(FieldChatSessionID, v))
}

// ChatSessionIDGTE applies the GTE predicate on the "chat_session_id" field.
func ChatSessionIDGTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGTE(FieldChatSessionID, v))
}

// ChatSessionIDLT applies the LT predicate on the "chat_session_id" field.
func ChatSessionIDLT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLT(FieldChatSessionID, v))
}

// ChatSessionIDLTE applies the LTE predicate on the "chat_session_id" field.
func ChatSessionIDLTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLTE(FieldChatSessionID, v))
}

// ChatSessionIDContains applies the Contains predicate on the "chat_session_id" field.
func ChatSessionIDContains(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContains(FieldChatSessionID, v))
}

// ChatSessionIDHasPrefix applies the HasPrefix predicate on the "chat_session_id" field.
func ChatSessionIDHasPrefix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasPrefix(FieldChatSessionID, v))
}

// ChatSessionIDHasSuffix applies the HasSuffix predicate on the "chat_session_id" field.
func ChatSessionIDHasSuffix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasSuffix(FieldChatSessionID, v))
}

// ChatSessionIDIsNil applies the IsNil predicate on the "chat_session_id" field.
func ChatSessionIDIsNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIsNull(FieldChatSessionID))
}

// ChatSessionIDNotNil applies the NotNil predicate on the "chat_session_id" field.
func ChatSessionIDNotNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotNull(FieldChatSessionID))
}

// ChatSessionIDEqualFold applies the EqualFold predicate on the "chat_session_id" field.
func ChatSessionIDEqualFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEqualFold(FieldChatSessionID, v))
}

// ChatSessionIDContainsFold applies the ContainsFold predicate on the "chat_session_id" field.
func ChatSessionIDContainsFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContainsFold(FieldChatSessionID, v))
}

// RequestTextEQ applies the EQ predicate on the "request_text" field.
func RequestTextEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldRequestText, v))
}

// RequestTextNEQ applies the NEQ predicate on the "request_text" field.
func RequestTextNEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldRequestText, v))
}

// RequestTextIn applies the In predicate on the "request_text" field.
func RequestTextIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldRequestText, vs...))
}

// RequestTextNotIn applies the NotIn predicate on the "request_text" field.
func RequestTextNotIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldRequestText, vs...))
}

// RequestTextGT applies the GT predicate on the "request_text" field.
func RequestTextGT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGT(FieldRequestText, v))
}

// RequestTextGTE applies the GTE predicate on the "request_text" field.
func RequestTextGTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGTE(FieldRequestText, v))
}

// RequestTextLT applies the LT predicate on the "request_text" field.
func RequestTextLT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLT(FieldRequestText, v))
}

// RequestTextLTE applies the LTE predicate on the "request_text" field.
func RequestTextLTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLTE(FieldRequestText, v))
}

// RequestTextContains applies the Contains predicate on the "request_text" field.
func RequestTextContains(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContains(FieldRequestText, v))
}

// RequestTextHasPrefix applies the HasPrefix predicate on the "request_text" field.
func RequestTextHasPrefix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasPrefix(FieldRequestText, v))
}

// RequestTextHasSuffix applies the HasSuffix predicate on the "request_text" field.
func RequestTextHasSuffix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasSuffix(FieldRequestText, v))
}

// RequestTextIsNil applies the IsNil predicate on the "request_text" field.
func RequestTextIsNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIsNull(FieldRequestText))
}

// RequestTextNotNil applies the NotNil predicate on the "request_text" field.
func RequestTextNotNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotNull(FieldRequestText))
}

// RequestTextEqualFold applies the EqualFold predicate on the "request_text" field.
func RequestTextEqualFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEqualFold(FieldRequestText, v))
}

// RequestTextContainsFold applies the ContainsFold predicate on the "request_text" field.
func RequestTextContainsFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContainsFold(FieldRequestText, v))
}

// ResponseTextEQ applies the EQ predicate on the "response_text" field.
func ResponseTextEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldResponseText, v))
}

// ResponseTextNEQ applies the NEQ predicate on the "response_text" field.
func ResponseTextNEQ(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldResponseText, v))
}

// ResponseTextIn applies the In predicate on the "response_text" field.
func ResponseTextIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldResponseText, vs...))
}

// ResponseTextNotIn applies the NotIn predicate on the "response_text" field.
func ResponseTextNotIn(vs ...string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldResponseText, vs...))
}

// ResponseTextGT applies the GT predicate on the "response_text" field.
func ResponseTextGT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGT(FieldResponseText, v))
}

// ResponseTextGTE applies the GTE predicate on the "response_text" field.
func ResponseTextGTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGTE(FieldResponseText, v))
}

// ResponseTextLT applies the LT predicate on the "response_text" field.
func ResponseTextLT(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLT(FieldResponseText, v))
}

// ResponseTextLTE applies the LTE predicate on the "response_text" field.
func ResponseTextLTE(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLTE(FieldResponseText, v))
}

// ResponseTextContains applies the Contains predicate on the "response_text" field.
func ResponseTextContains(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContains(FieldResponseText, v))
}

// ResponseTextHasPrefix applies the HasPrefix predicate on the "response_text" field.
func ResponseTextHasPrefix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasPrefix(FieldResponseText, v))
}

// ResponseTextHasSuffix applies the HasSuffix predicate on the "response_text" field.
func ResponseTextHasSuffix(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldHasSuffix(FieldResponseText, v))
}

// ResponseTextIsNil applies the IsNil predicate on the "response_text" field.
func ResponseTextIsNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIsNull(FieldResponseText))
}

// ResponseTextNotNil applies the NotNil predicate on the "response_text" field.
func ResponseTextNotNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotNull(FieldResponseText))
}

// ResponseTextEqualFold applies the EqualFold predicate on the "response_text" field.
func ResponseTextEqualFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEqualFold(FieldResponseText, v))
}

// ResponseTextContainsFold applies the ContainsFold predicate on the "response_text" field.
func ResponseTextContainsFold(v string) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldContainsFold(FieldResponseText, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v MessageType) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v MessageType) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...MessageType) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...MessageType) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldMessageType, vs...))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChatLog {
	return predicate.ChatLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.ChatLog {
	return predicate.ChatLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.ChatLog {
	return predicate.ChatLog(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatSession applies the HasEdge predicate on the "chat_session" edge.
func HasChatSession() predicate.ChatLog {
	return predicate.ChatLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChatSessionTable, ChatSessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatSessionWith applies the HasEdge predicate on the "chat_session" edge with a given conditions (other predicates).
func HasChatSessionWith(preds ...predicate.ChatSession) predicate.ChatLog {
	return predicate.ChatLog(func(s *sql.Selector) {
		step := newChatSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatLog) predicate.ChatLog {
	return predicate.ChatLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatLog) predicate.ChatLog {
	return predicate.ChatLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatLog) predicate.ChatLog {
	return predicate.ChatLog(sql.NotPredicates(p))
}
