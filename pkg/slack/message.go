package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var kindEmoji = map[EscalationKind]string{
	EscalationNeedHuman:       ":raising_hand:",
	EscalationDeadlock:        ":no_entry_sign:",
	EscalationCalendarFailure: ":warning:",
}

var kindLabel = map[EscalationKind]string{
	EscalationNeedHuman:       "협상 중단 — 사람의 확인이 필요합니다",
	EscalationDeadlock:        "협상 결렬 — 라운드 한도 초과",
	EscalationCalendarFailure: "캘린더 등록 부분 실패",
}

func sessionURL(sessionID, dashboardURL string) string {
	return fmt.Sprintf("%s/sessions/%s", dashboardURL, sessionID)
}

// BuildEscalationMessage creates Block Kit blocks for an ops escalation:
// a compact Korean summary of what stalled and a deep link into the session.
// The trailing context block carries the fingerprint used for dedup.
func BuildEscalationMessage(esc Escalation, dashboardURL string) []goslack.Block {
	emoji := kindEmoji[esc.Kind]
	if emoji == "" {
		emoji = ":question:"
	}
	label := kindLabel[esc.Kind]
	if label == "" {
		label = string(esc.Kind)
	}

	var blocks []goslack.Block

	headerText := fmt.Sprintf("%s *%s*", emoji, label)
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
		nil, nil,
	))

	var lines []string
	if esc.Intent != "" {
		lines = append(lines, fmt.Sprintf("*요청:* %s", esc.Intent))
	}
	if esc.Initiator != "" {
		lines = append(lines, fmt.Sprintf("*요청자:* %s", esc.Initiator))
	}
	if esc.Reason != "" {
		lines = append(lines, fmt.Sprintf("*사유:* %s", esc.Reason))
	}
	if len(esc.FailedUsers) > 0 {
		lines = append(lines, fmt.Sprintf("*등록 실패:* %s", strings.Join(esc.FailedUsers, ", ")))
	}
	if len(lines) > 0 {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(strings.Join(lines, "\n")), false, false),
			nil, nil,
		))
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "대시보드에서 보기", false, false))
	btn.URL = sessionURL(esc.SessionID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	fp := EscalationFingerprint(esc.SessionID, esc.Kind)
	blocks = append(blocks, goslack.NewContextBlock("",
		goslack.NewTextBlockObject(goslack.MarkdownType, "`"+fp+"`", false, false),
	))

	return blocks
}

// escalationFallbackText renders the plain-text preview. It must contain the
// fingerprint: conversations.history search reads msg.Text, not blocks.
func escalationFallbackText(esc Escalation) string {
	label := kindLabel[esc.Kind]
	if label == "" {
		label = string(esc.Kind)
	}
	return fmt.Sprintf("[%s] %s", EscalationFingerprint(esc.SessionID, esc.Kind), label)
}

// truncateForSlack caps text at the block limit, cutting on rune boundaries
// so Korean text is never split mid-character.
func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — 전체 내용은 대시보드에서 확인)_"
}
