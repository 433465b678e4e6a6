package notetext

import "strings"

// blankAudioToken is what some speech engines emit for silent recordings.
const blankAudioToken = "[BLANK_AUDIO]"

// IsBlankTranscript reports whether a transcript carries no speech:
// empty, whitespace-only, or the engine's blank-audio marker (matched
// case-insensitively).
func IsBlankTranscript(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return true
	}
	return strings.EqualFold(trimmed, blankAudioToken)
}

// NormalizeTranscript collapses the whitespace noise of joined speech
// segments (doubled spaces, stray newlines, tabs) into single spaces and
// trims the ends. Idempotent.
func NormalizeTranscript(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
