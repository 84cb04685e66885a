// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CalendarEvent is the predicate function for calendarevent builders.
type CalendarEvent func(*sql.Selector)

// ChatLog is the predicate function for chatlog builders.
type ChatLog func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// NegotiationMessage is the predicate function for negotiationmessage builders.
type NegotiationMessage func(*sql.Selector)

// NegotiationSession is the predicate function for negotiationsession builders.
type NegotiationSession func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
