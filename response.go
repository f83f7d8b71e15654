package tsl1128

import "strings"

// Outcome indicates how a response cycle terminated.
type Outcome int

// The different outcomes.
const (
	OutcomeSuccess = iota
	OutcomeError
)

// The framing prefixes used by the reader.
const (
	prefixCommand = "CS:"
	prefixSuccess = "OK:"
	prefixError   = "ER:"
)

// ResponseEvent contains one complete command/response cycle. It is
// self-contained and immutable once returned by the parser.
type ResponseEvent struct {
	// Command is the case-normalized command echoed by the reader. It is
	// empty when a terminator arrived without a preceding command echo.
	Command string

	// Payload holds the raw lines received between the command echo and
	// the terminator, in order.
	Payload []string

	// Outcome is OutcomeSuccess for OK: and OutcomeError for ER:.
	Outcome Outcome

	// Trailer is the text following the terminator prefix.
	Trailer string

	// Decoded is set on success when a decoder is registered for Command.
	Decoded *Result
}

// NormalizeCommand lower-cases and trims a command token so that echoes
// and registry keys compare equal.
func NormalizeCommand(command string) string {
	return strings.ToLower(strings.TrimSpace(command))
}
