package slack

import (
	"fmt"
	"regexp"
	"strings"

	goslack "github.com/slack-go/slack"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func collectMessageText(msg goslack.Message) string {
	var parts []string
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	return strings.Join(parts, " ")
}

// SessionFingerprint identifies all escalations about one negotiation session.
// Embedded in every posted message so follow-up escalations can thread under
// the first one.
func SessionFingerprint(sessionID string) string {
	return "moim-esc " + sessionID
}

// EscalationFingerprint identifies one escalation kind for one session.
// The posting worker dedups on it: the same (session, kind) pair is posted
// at most once, across process restarts via channel-history search.
// Formatted so it contains the session fingerprint as a prefix.
func EscalationFingerprint(sessionID string, kind EscalationKind) string {
	return fmt.Sprintf("%s %s", SessionFingerprint(sessionID), kind)
}
