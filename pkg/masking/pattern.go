package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// PatternSpec is a raw pattern as it appears in configuration.
type PatternSpec struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// builtinPatterns are personal identifiers that must never survive into a
// shared transcript, whatever the model decided to echo.
var builtinPatterns = []PatternSpec{
	{
		Name:        "email",
		Pattern:     `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`,
		Replacement: "[이메일]",
		Description: "Email addresses",
	},
	{
		Name:        "kr_phone",
		Pattern:     `01[016789][-.\s]?\d{3,4}[-.\s]?\d{4}`,
		Replacement: "[전화번호]",
		Description: "Korean mobile phone numbers",
	},
	{
		Name:        "kr_rrn",
		Pattern:     `\d{6}-[1-4]\d{6}`,
		Replacement: "[주민등록번호]",
		Description: "Korean resident registration numbers",
	},
	{
		Name:        "bearer_token",
		Pattern:     `(?i)bearer\s+[A-Za-z0-9._~+/\-]+=*`,
		Replacement: "Bearer [MASKED]",
		Description: "Bearer tokens leaked into error text",
	},
}

// compilePatterns compiles specs into patterns. Invalid patterns are logged
// and skipped.
func compilePatterns(specs []PatternSpec) []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(specs))
	for _, spec := range specs {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", spec.Name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        spec.Name,
			Regex:       re,
			Replacement: spec.Replacement,
			Description: spec.Description,
		})
	}
	return compiled
}
