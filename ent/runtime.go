// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/moim-labs/moim/ent/calendarevent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/chatsession"
	"github.com/moim-labs/moim/ent/event"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/ent/schema"
	"github.com/moim-labs/moim/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	calendareventFields := schema.CalendarEvent{}.Fields()
	_ = calendareventFields
	// calendareventDescCreatedAt is the schema descriptor for created_at field.
	calendareventDescCreatedAt := calendareventFields[10].Descriptor()
	// calendarevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	calendarevent.DefaultCreatedAt = calendareventDescCreatedAt.Default.(func() time.Time)
	chatlogFields := schema.ChatLog{}.Fields()
	_ = chatlogFields
	// chatlogDescCreatedAt is the schema descriptor for created_at field.
	chatlogDescCreatedAt := chatlogFields[9].Descriptor()
	// chatlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatlog.DefaultCreatedAt = chatlogDescCreatedAt.Default.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescTitle is the schema descriptor for title field.
	chatsessionDescTitle := chatsessionFields[2].Descriptor()
	// chatsession.DefaultTitle holds the default value on creation for the title field.
	chatsession.DefaultTitle = chatsessionDescTitle.Default.(string)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[3].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[4].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	negotiationmessageFields := schema.NegotiationMessage{}.Fields()
	_ = negotiationmessageFields
	// negotiationmessageDescCreatedAt is the schema descriptor for created_at field.
	negotiationmessageDescCreatedAt := negotiationmessageFields[9].Descriptor()
	// negotiationmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	negotiationmessage.DefaultCreatedAt = negotiationmessageDescCreatedAt.Default.(func() time.Time)
	negotiationsessionFields := schema.NegotiationSession{}.Fields()
	_ = negotiationsessionFields
	// negotiationsessionDescCreatedAt is the schema descriptor for created_at field.
	negotiationsessionDescCreatedAt := negotiationsessionFields[14].Descriptor()
	// negotiationsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	negotiationsession.DefaultCreatedAt = negotiationsessionDescCreatedAt.Default.(func() time.Time)
	// negotiationsessionDescUpdatedAt is the schema descriptor for updated_at field.
	negotiationsessionDescUpdatedAt := negotiationsessionFields[15].Descriptor()
	// negotiationsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	negotiationsession.DefaultUpdatedAt = negotiationsessionDescUpdatedAt.Default.(func() time.Time)
	// negotiationsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	negotiationsession.UpdateDefaultUpdatedAt = negotiationsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[6].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
