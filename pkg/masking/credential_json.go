package masking

import (
	"encoding/json"
	"regexp"
	"strings"
)

// MaskedCredentialValue is the replacement string for masked credential values.
const MaskedCredentialValue = "[MASKED_CREDENTIAL]"

var credentialKeys = map[string]bool{
	"access_token":  true,
	"refresh_token": true,
	"id_token":      true,
	"client_secret": true,
	"api_key":       true,
}

var credentialKVPattern = regexp.MustCompile(
	`(?i)("?(?:access_token|refresh_token|id_token|client_secret|api_key)"?\s*[:=]\s*)"?[A-Za-z0-9._~+/\-]+=*"?`)

// CredentialJSONMasker masks OAuth credential values that leak into prose,
// typically when a calendar API error body gets echoed into a transcript.
// JSON payloads are walked structurally; everything else falls back to a
// key-value sweep.
type CredentialJSONMasker struct{}

// Name returns the unique identifier for this masker.
func (m *CredentialJSONMasker) Name() string { return "credential_json" }

// AppliesTo performs a lightweight check on whether this masker should process the text.
func (m *CredentialJSONMasker) AppliesTo(text string) bool {
	lower := strings.ToLower(text)
	for key := range credentialKeys {
		if strings.Contains(lower, key) {
			return true
		}
	}
	return false
}

// Mask applies masking logic and returns the masked result.
func (m *CredentialJSONMasker) Mask(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			maskCredentialValues(obj)
			if out, err := json.Marshal(obj); err == nil {
				return string(out)
			}
		}
	}
	return credentialKVPattern.ReplaceAllString(text, `${1}"`+MaskedCredentialValue+`"`)
}

func maskCredentialValues(obj map[string]interface{}) {
	for key, value := range obj {
		if credentialKeys[strings.ToLower(key)] {
			obj[key] = MaskedCredentialValue
			continue
		}
		switch v := value.(type) {
		case map[string]interface{}:
			maskCredentialValues(v)
		case []interface{}:
			for _, item := range v {
				if nested, ok := item.(map[string]interface{}); ok {
					maskCredentialValues(nested)
				}
			}
		}
	}
}
