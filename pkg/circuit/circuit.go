// Package circuit defines the circuit-side data model: the common
// parameters shared with proofs, and the open, heterogeneous sets of gate
// and witness-generator instances a circuit is assembled from.
//
// Gate and generator kinds are identified by string tags. An instance knows
// how to write its own payload; decoding a payload back into an instance is
// the job of a codec registered in pkg/serialization.
package circuit

import "github.com/yourorg/zkartifact/pkg/wire"

// Gate is one typed constraint-system component. Kind returns the stable
// tag the serialization registry keys codecs by; WriteTo appends the
// kind-specific payload (tag excluded) to the buffer.
type Gate interface {
	Kind() string
	WriteTo(w *wire.Writer)
}

// Generator is one typed witness-computation descriptor, used only during
// proof construction. Same contract as Gate.
type Generator interface {
	Kind() string
	WriteTo(w *wire.Writer)
}

// Circuit is the constraint system an artifact pair is built around: fixed
// common parameters plus ordered gate and generator lists.
type Circuit struct {
	Common     CommonParameters
	Gates      []Gate
	Generators []Generator
}
