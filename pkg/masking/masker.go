package masking

// Masker is the interface for code-based maskers that need structural
// awareness beyond regex pattern matching (e.g., walking a JSON object to
// mask credential values wherever they are nested).
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker
	// should process the text. Should be fast (string contains, not parsing).
	AppliesTo(text string) bool

	// Mask applies masking logic and returns the masked result.
	// Must be defensive: return original text on parse/processing errors.
	Mask(text string) string
}
