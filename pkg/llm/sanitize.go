package llm

import (
	"encoding/json"
	"strings"
)

// Sanitize strips accidental structure from LLM prose. Models occasionally
// echo a JSON envelope instead of plain text; when the reply begins with `{`
// the `message` field is extracted (then `reason` as a fallback) and the
// envelope discarded. The boolean is false when no usable prose remains, in
// which case the caller substitutes its deterministic fallback sentence.
func Sanitize(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = stripCodeFence(s)

	if strings.HasPrefix(s, "{") {
		var envelope map[string]interface{}
		if err := json.Unmarshal([]byte(s), &envelope); err != nil {
			return "", false
		}
		if msg, ok := envelope["message"].(string); ok && strings.TrimSpace(msg) != "" {
			return strings.TrimSpace(msg), true
		}
		if reason, ok := envelope["reason"].(string); ok && strings.TrimSpace(reason) != "" {
			return strings.TrimSpace(reason), true
		}
		return "", false
	}

	if s == "" {
		return "", false
	}
	return s, true
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ExtractJSON pulls the first JSON object out of a completion, tolerating
// code fences and leading chatter. Used by structured-output callers (intent
// extraction); returns false when no object can be located.
func ExtractJSON(raw string) (string, bool) {
	s := stripCodeFence(strings.TrimSpace(raw))
	start := strings.Index(s, "{")
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
