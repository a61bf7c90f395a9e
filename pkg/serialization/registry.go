// Package serialization maps gate and generator kind tags to the codecs
// that read and write instances of each kind. Both directions of the
// circuit wire format go through a Registry: encoding writes a tag followed
// by the instance's own payload, decoding reads the tag and delegates to
// the registered decoder.
//
// A registry must be populated before any save or load call and must not be
// mutated while an encode or decode is in flight. The registry used to load
// a circuit must cover every tag the saving registry emitted, or decoding
// fails with ErrUnknownKind.
package serialization

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/yourorg/zkartifact/internal/logger"
	"github.com/yourorg/zkartifact/pkg/circuit"
	"github.com/yourorg/zkartifact/pkg/wire"
)

// ErrUnknownKind reports a kind tag with no registered codec, typically a
// configuration mismatch between the saving and loading processes.
var ErrUnknownKind = errors.New("unknown kind")

// GateDecoder reconstructs one gate instance from its payload bytes.
type GateDecoder func(r *wire.Reader) (circuit.Gate, error)

// GeneratorDecoder reconstructs one generator instance from its payload bytes.
type GeneratorDecoder func(r *wire.Reader) (circuit.Generator, error)

// Registry holds the two codec tables. The zero value is not usable; use
// NewRegistry or DefaultRegistry.
type Registry struct {
	mu         sync.RWMutex
	gates      map[string]GateDecoder
	generators map[string]GeneratorDecoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		gates:      make(map[string]GateDecoder),
		generators: make(map[string]GeneratorDecoder),
	}
}

// DefaultRegistry returns a registry pre-loaded with every built-in gate
// and generator kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

// RegisterGate adds a decoder for the given gate kind. The first
// registration for a tag wins; duplicates are ignored with a debug log.
func (r *Registry) RegisterGate(kind string, dec GateDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.gates[kind]; ok {
		log := logger.Logger()
		log.Debug().Str("kind", kind).Msg("gate kind registered multiple times")
		return
	}
	r.gates[kind] = dec
}

// RegisterGenerator adds a decoder for the given generator kind. Same
// first-wins rule as RegisterGate.
func (r *Registry) RegisterGenerator(kind string, dec GeneratorDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.generators[kind]; ok {
		log := logger.Logger()
		log.Debug().Str("kind", kind).Msg("generator kind registered multiple times")
		return
	}
	r.generators[kind] = dec
}

// GateKinds returns the registered gate tags, sorted.
func (r *Registry) GateKinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.gates))
	for k := range r.gates {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// GeneratorKinds returns the registered generator tags, sorted.
func (r *Registry) GeneratorKinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.generators))
	for k := range r.generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// EncodeGate writes g's kind tag and payload. A gate whose kind is not
// registered cannot be encoded: the producing and consuming processes must
// agree on the tag set, so an unregistered kind is caught at save time.
func (r *Registry) EncodeGate(w *wire.Writer, g circuit.Gate) error {
	r.mu.RLock()
	_, ok := r.gates[g.Kind()]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: gate %q", ErrUnknownKind, g.Kind())
	}
	w.WriteString(g.Kind())
	g.WriteTo(w)
	return nil
}

// DecodeGate reads a kind tag and delegates payload decoding to the
// registered decoder.
func (r *Registry) DecodeGate(rd *wire.Reader) (circuit.Gate, error) {
	kind, err := rd.ReadString()
	if err != nil {
		return nil, fmt.Errorf("gate tag: %w", err)
	}
	r.mu.RLock()
	dec, ok := r.gates[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: gate %q", ErrUnknownKind, kind)
	}
	g, err := dec(rd)
	if err != nil {
		return nil, fmt.Errorf("gate %q: %w", kind, err)
	}
	return g, nil
}

// EncodeGenerator writes g's kind tag and payload.
func (r *Registry) EncodeGenerator(w *wire.Writer, g circuit.Generator) error {
	r.mu.RLock()
	_, ok := r.generators[g.Kind()]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: generator %q", ErrUnknownKind, g.Kind())
	}
	w.WriteString(g.Kind())
	g.WriteTo(w)
	return nil
}

// DecodeGenerator reads a kind tag and delegates payload decoding to the
// registered decoder.
func (r *Registry) DecodeGenerator(rd *wire.Reader) (circuit.Generator, error) {
	kind, err := rd.ReadString()
	if err != nil {
		return nil, fmt.Errorf("generator tag: %w", err)
	}
	r.mu.RLock()
	dec, ok := r.generators[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: generator %q", ErrUnknownKind, kind)
	}
	g, err := dec(rd)
	if err != nil {
		return nil, fmt.Errorf("generator %q: %w", kind, err)
	}
	return g, nil
}
