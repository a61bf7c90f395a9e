package serialization

import (
	"fmt"

	"github.com/yourorg/zkartifact/pkg/circuit"
	"github.com/yourorg/zkartifact/pkg/wire"
)

// EncodeCircuit serializes c into one flat circuit blob:
// common parameters, then the count-prefixed gate list, then the
// count-prefixed generator list, each element as (tag, payload) via reg.
func EncodeCircuit(c *circuit.Circuit, reg *Registry) ([]byte, error) {
	w := wire.NewWriter()
	c.Common.WriteTo(w)

	w.WriteUint64(uint64(len(c.Gates)))
	for i, g := range c.Gates {
		if err := reg.EncodeGate(w, g); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
	}

	w.WriteUint64(uint64(len(c.Generators)))
	for i, g := range c.Generators {
		if err := reg.EncodeGenerator(w, g); err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
	}
	return w.Bytes(), nil
}

// DecodeCircuit reconstructs a circuit from a blob produced by
// EncodeCircuit. The whole buffer must be consumed; trailing bytes mean the
// blob and the decoder disagree about the layout.
func DecodeCircuit(data []byte, reg *Registry) (*circuit.Circuit, error) {
	r := wire.NewReader(data)

	common, err := circuit.ReadParameters(r)
	if err != nil {
		return nil, err
	}
	c := &circuit.Circuit{Common: common}

	gateCount, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("gate count: %w", err)
	}
	if gateCount > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: gate count %d exceeds remaining %d bytes",
			wire.ErrMalformedPayload, gateCount, r.Remaining())
	}
	c.Gates = make([]circuit.Gate, 0, gateCount)
	for i := uint64(0); i < gateCount; i++ {
		g, err := reg.DecodeGate(r)
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		c.Gates = append(c.Gates, g)
	}

	generatorCount, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("generator count: %w", err)
	}
	if generatorCount > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: generator count %d exceeds remaining %d bytes",
			wire.ErrMalformedPayload, generatorCount, r.Remaining())
	}
	c.Generators = make([]circuit.Generator, 0, generatorCount)
	for i := uint64(0); i < generatorCount; i++ {
		g, err := reg.DecodeGenerator(r)
		if err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		c.Generators = append(c.Generators, g)
	}

	if n := r.Remaining(); n != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after circuit", wire.ErrMalformedPayload, n)
	}
	return c, nil
}
