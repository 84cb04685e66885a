// Package masking keeps other people's data out of shared transcripts.
//
// Two concerns meet here: the names of conflicting calendar events (an
// agent's counter-proposal must never reveal to other participants WHY its
// owner is busy) and personal identifiers the LLM may echo into prose.
package masking

import (
	"log/slog"
	"strings"
)

// RedactedSchedule replaces a conflicting event title wherever it appears in
// prose destined for other participants.
const RedactedSchedule = "[비공개 일정]"

// Service applies prose masking. Created once at application startup;
// thread-safe and stateless aside from compiled patterns.
type Service struct {
	patterns    []*CompiledPattern
	codeMaskers []Masker
}

// NewService creates a masking service with the built-in patterns plus any
// custom patterns from configuration. All patterns are compiled eagerly;
// invalid ones are logged and skipped.
func NewService(custom []PatternSpec) *Service {
	s := &Service{
		patterns:    compilePatterns(append(append([]PatternSpec{}, builtinPatterns...), custom...)),
		codeMaskers: []Masker{&CredentialJSONMasker{}},
	}

	slog.Info("Masking service initialized",
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers))

	return s
}

// MaskProse redacts the given conflict titles and then sweeps for personal
// identifiers. Fail-open: prose is user-facing and a masking bug must not
// blank a negotiation message; patterns that cannot apply simply don't.
func (s *Service) MaskProse(prose string, conflictTitles []string) string {
	if prose == "" {
		return prose
	}
	masked := prose
	for _, title := range conflictTitles {
		if len([]rune(title)) < 2 {
			continue
		}
		masked = strings.ReplaceAll(masked, title, RedactedSchedule)
	}
	return s.MaskText(masked)
}

// MaskText applies code maskers and regex patterns without title redaction.
func (s *Service) MaskText(text string) string {
	if text == "" {
		return text
	}
	masked := text
	for _, masker := range s.codeMaskers {
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}
	for _, pattern := range s.patterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}
	return masked
}
