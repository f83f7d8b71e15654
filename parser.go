package tsl1128

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// ResponseParser turns a stream of raw lines into ResponseEvents. The
// reader echoes every command as "CS:<command>", streams zero or more
// payload lines, and terminates with "OK:" or "ER:<message>".
//
// A ResponseParser is not safe for concurrent use. Feed lines from a
// single goroutine.
type ResponseParser struct {
	registry *Registry

	open    bool
	command string
	payload []string
}

// NewResponseParser returns a parser that decodes payloads with the given
// registry. A nil registry disables decoding.
func NewResponseParser(registry *Registry) *ResponseParser {
	return &ResponseParser{registry: registry}
}

// Command returns the command of the currently open cycle, if any.
func (p *ResponseParser) Command() (string, bool) {
	return p.command, p.open
}

// Reset discards any open cycle without emitting an event. A reset parser
// behaves identically to a freshly constructed one.
func (p *ResponseParser) Reset() {
	p.open = false
	p.command = ""
	p.payload = nil
}

// Feed processes a single line, already stripped of its terminator. It
// returns nil while a payload is accumulating and a ResponseEvent exactly
// when a terminator line completes a cycle. Feed never fails; every line
// is classified, not validated.
func (p *ResponseParser) Feed(line string) *ResponseEvent {
	switch {
	case strings.HasPrefix(line, prefixCommand):
		// A new echo while a cycle is open discards the pending
		// response. The hardware does not interleave commands.
		if p.open {
			log.Debugf("Discarding unterminated response for command '%s'.", p.command)
		}

		p.open = true
		p.command = NormalizeCommand(line[len(prefixCommand):])
		p.payload = nil

		return nil
	case strings.HasPrefix(line, prefixSuccess):
		event := p.finish(OutcomeSuccess, line[len(prefixSuccess):])

		if p.registry != nil {
			if decoder, ok := p.registry.Lookup(event.Command); ok {
				result := decoder.Decode(event.Payload)
				event.Decoded = &result
			}
		}

		return event
	case strings.HasPrefix(line, prefixError):
		return p.finish(OutcomeError, line[len(prefixError):])
	default:
		if !p.open {
			log.Debugf("Dropping orphan line: %s", line)
			return nil
		}

		p.payload = append(p.payload, line)

		return nil
	}
}

// finish closes the current cycle, if any, and builds the event. A
// terminator without a matching echo yields an event with an empty
// command and no payload.
func (p *ResponseParser) finish(outcome Outcome, trailer string) *ResponseEvent {
	event := &ResponseEvent{
		Command: p.command,
		Payload: p.payload,
		Outcome: outcome,
		Trailer: strings.TrimSpace(trailer),
	}

	p.Reset()

	return event
}
