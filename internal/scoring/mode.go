package scoring

import "strings"

// TestMode selects which grading rulebook applies to an examination.
type TestMode string

const (
	// ModePMMM is the category-rubric scheme: seven fixed categories plus
	// tajweed and recitation add-ons.
	ModePMMM TestMode = "pmmm"
	// ModeNormal is the timed block-reading scheme.
	ModeNormal TestMode = "normal"
)

// DisplayName returns a human-readable label for the mode.
func (m TestMode) DisplayName() string {
	switch m {
	case ModePMMM:
		return "PMMM"
	case ModeNormal:
		return "Normal"
	default:
		return string(m)
	}
}

// NormalizeMode maps a raw mode string onto a TestMode. Unrecognized and
// legacy values fall back to PMMM, the only mode that existed before the
// timed block-reading scheme was introduced.
func NormalizeMode(raw string) TestMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "normal":
		return ModeNormal
	default:
		return ModePMMM
	}
}
