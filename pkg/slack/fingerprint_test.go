package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "MOIM-ESC Sess-1 Need_Human",
			expected: "moim-esc sess-1 need_human",
		},
		{
			name:     "collapse whitespace",
			input:    "moim-esc   sess-1\t\tdeadlock",
			expected: "moim-esc sess-1 deadlock",
		},
		{
			name:     "trim",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "korean text unchanged by lowering",
			input:    "  협상   중단  ",
			expected: "협상 중단",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	tests := []struct {
		name     string
		msg      goslack.Message
		expected string
	}{
		{
			name: "text only",
			msg: goslack.Message{
				Msg: goslack.Msg{Text: "hello world"},
			},
			expected: "hello world",
		},
		{
			name: "text with attachment text",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "escalation",
					Attachments: []goslack.Attachment{
						{Text: "협상 결렬"},
					},
				},
			},
			expected: "escalation 협상 결렬",
		},
		{
			name: "text with attachment fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "escalation",
					Attachments: []goslack.Attachment{
						{Fallback: "fallback text"},
					},
				},
			},
			expected: "escalation fallback text",
		},
		{
			name: "attachment with both text and fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Attachments: []goslack.Attachment{
						{Text: "att text", Fallback: "att fallback"},
					},
				},
			},
			expected: "att text att fallback",
		},
		{
			name:     "empty message",
			msg:      goslack.Message{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectMessageText(tt.msg))
		})
	}
}

func TestEscalationFingerprint(t *testing.T) {
	fp := EscalationFingerprint("sess-1", EscalationNeedHuman)
	assert.Equal(t, "moim-esc sess-1 need_human", fp)

	// Kind fingerprints must contain the session fingerprint so the thread
	// lookup finds messages posted under either.
	assert.Contains(t, fp, SessionFingerprint("sess-1"))

	// Distinct kinds, distinct fingerprints
	assert.NotEqual(t, fp, EscalationFingerprint("sess-1", EscalationDeadlock))
	assert.NotEqual(t, fp, EscalationFingerprint("sess-2", EscalationNeedHuman))
}
