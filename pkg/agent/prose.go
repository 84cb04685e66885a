package agent

import (
	"context"
	"fmt"

	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/llm"
	"github.com/moim-labs/moim/pkg/schedule"
)

// Escalation reasons; also the backbone of the NEED_HUMAN fallback sentence.
const (
	reasonCalendarUnavailable = "캘린더 정보를 불러오지 못했어요."
	reasonBadProposal         = "제안된 일정을 해석하지 못했어요."
	reasonNoAlternative       = "제안된 시간도, 대신할 만한 시간도 찾지 못했어요."
)

func (a *PersonalAgent) reasonNoAvailability() string {
	days := int(a.horizon.End.Sub(a.horizon.Start).Hours() / 24)
	if days <= 0 {
		days = DefaultHorizonDays
	}
	return fmt.Sprintf("앞으로 %d일 동안 비어 있는 시간이 없어요.", days)
}

// proseFacts is everything the prose layer may mention. The decision is
// already made when this is built; the model only phrases it.
type proseFacts struct {
	kind     negotiationmessage.Type
	proposal *schedule.Proposal
	// original is the countered proposal, set for COUNTER only.
	original *schedule.Proposal
	// reason is the deterministic NEED_HUMAN explanation.
	reason string
	// conflictTitles are this user's own event names; they are masked out of
	// the result in case the model names one anyway.
	conflictTitles []string
}

// writeProse asks the model for one Korean sentence around the decided
// facts, then sanitizes and masks the answer. Any failure — transport,
// empty completion, stray JSON — falls back to a deterministic sentence, so
// negotiation outcomes never depend on the model being reachable.
func (a *PersonalAgent) writeProse(ctx context.Context, f proseFacts) string {
	text := a.fallbackSentence(f)

	if a.prose != nil {
		raw, err := a.prose.Complete(ctx, a.prompt(f), llm.Options{MaxTokens: 200})
		if err != nil {
			a.logger.Warn("Prose generation failed, using fallback", "error", err)
		} else if clean, ok := llm.Sanitize(raw); ok {
			text = clean
		} else {
			a.logger.Warn("Prose completion unusable, using fallback")
		}
	}

	if a.masker != nil {
		text = a.masker.MaskProse(text, f.conflictTitles)
	}
	return text
}

func (a *PersonalAgent) prompt(f proseFacts) []llm.Message {
	system := fmt.Sprintf(
		"당신은 %s님의 일정 조율 비서입니다. 결정은 이미 내려져 있고, 당신은 그 결정을 전달하는 한국어 존댓말 문장 한두 개만 작성합니다. "+
			"JSON, 목록, 따옴표 없이 문장만 답하세요. 캘린더에 있는 기존 일정의 이름은 절대 언급하지 마세요.",
		a.user.DisplayName)

	var user string
	switch f.kind {
	case negotiationmessage.TypePropose:
		user = fmt.Sprintf("결정: %s에 %s을(를) 제안합니다. 상대방에게 이 약속을 제안하는 문장을 쓰세요.",
			f.proposal.DisplayKorean(a.loc), activityOr(f.proposal, "만남"))
	case negotiationmessage.TypeAccept:
		user = fmt.Sprintf("결정: 제안된 %s 일정이 가능합니다. 흔쾌히 수락하는 문장을 쓰세요.",
			f.proposal.DisplayKorean(a.loc))
	case negotiationmessage.TypeCounter:
		user = fmt.Sprintf("결정: %s에는 다른 일정이 있어 어렵고, 대신 %s을(를) 제안합니다. "+
			"정중히 거절하고 대안을 제안하는 문장을 쓰세요. 기존 일정이 무엇인지는 밝히지 마세요.",
			f.original.DisplayKorean(a.loc), f.proposal.DisplayKorean(a.loc))
	default:
		user = fmt.Sprintf("결정: 자동 조율이 어렵습니다. 사유: %s 사용자에게 직접 확인을 요청하는 문장을 쓰세요.", f.reason)
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}
}

// fallbackSentence renders the decision without any model involvement.
func (a *PersonalAgent) fallbackSentence(f proseFacts) string {
	switch f.kind {
	case negotiationmessage.TypePropose:
		if f.proposal.IsMultiDay() {
			return fmt.Sprintf("%s %s 어떠세요?", f.proposal.DisplayKorean(a.loc), activityOr(f.proposal, "일정"))
		}
		return fmt.Sprintf("%s에 %s 어떠세요?", f.proposal.DisplayKorean(a.loc), activityOr(f.proposal, "약속"))
	case negotiationmessage.TypeAccept:
		return fmt.Sprintf("%s 좋습니다. 저도 가능해요!", f.proposal.DisplayKorean(a.loc))
	case negotiationmessage.TypeCounter:
		return fmt.Sprintf("죄송하지만 %s에는 다른 일정이 있어요. 대신 %s 어떠세요?",
			f.original.DisplayKorean(a.loc), f.proposal.DisplayKorean(a.loc))
	default:
		reason := f.reason
		if reason == "" {
			reason = "일정을 자동으로 조율하기 어려워요."
		}
		return reason + " 직접 확인해 주시겠어요?"
	}
}

func activityOr(p *schedule.Proposal, fallback string) string {
	if p != nil && p.Activity != "" {
		return p.Activity
	}
	return fallback
}

// needHuman builds the escalation decision shared by every failure path.
func (a *PersonalAgent) needHuman(ctx context.Context, reason string) Decision {
	msg := a.writeProse(ctx, proseFacts{kind: negotiationmessage.TypeNeedHuman, reason: reason})
	return Decision{Type: negotiationmessage.TypeNeedHuman, Message: msg}
}
