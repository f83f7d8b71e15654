package tsl1128

import (
	"strings"
	"sync"
)

// Decoder converts the payload lines of one response into a Result.
// Implementations hold no state across invocations: decoding the same
// lines twice yields the same result.
type Decoder interface {
	Decode(lines []string) Result
}

// TagCount is one distinct EPC and the number of times it was reported
// within a single inventory scan.
type TagCount struct {
	EPC   string
	Count int
}

// Result is the decoded form of a response payload. Fields maps friendly
// labels to display-ready values. Tags is only populated by the inventory
// decoder, in first-seen order.
type Result struct {
	Fields map[string]string
	Tags   []TagCount
}

// Registry maps command strings to decoders.
type Registry struct {
	lock     sync.RWMutex
	decoders map[string]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: map[string]Decoder{},
	}
}

// DefaultRegistry returns a registry with decoders for the version,
// battery and inventory commands.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(".vr", VersionDecoder{})
	r.Register(".bl", BatteryDecoder{})
	r.Register(".iv", InventoryDecoder{})

	return r
}

// Register stores a decoder for the given command. The command is
// case-normalized. Registering twice replaces the previous decoder.
func (r *Registry) Register(command string, decoder Decoder) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.decoders[NormalizeCommand(command)] = decoder
}

// Lookup returns the decoder for the given command. The match is exact,
// no fallback.
func (r *Registry) Lookup(command string) (Decoder, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	decoder, ok := r.decoders[NormalizeCommand(command)]

	return decoder, ok
}

// splitField splits a "FIELD:VALUE" payload line. Lines without a
// separator or with an empty field code do not qualify.
func splitField(line string) (field string, value string, ok bool) {
	parts := strings.SplitN(line, ":", 2)

	if len(parts) != 2 {
		return "", "", false
	}

	field = strings.TrimSpace(parts[0])

	if field == "" {
		return "", "", false
	}

	return field, strings.TrimSpace(parts[1]), true
}
