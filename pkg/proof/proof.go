// Package proof defines the proof artifact and its wire codec. A proof
// blob carries no shape information of its own: every field width below is
// dictated by the common parameters of the circuit the proof was built
// from, so decoding is only possible with those parameters in hand.
package proof

import (
	"fmt"

	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/yourorg/zkartifact/pkg/circuit"
	"github.com/yourorg/zkartifact/pkg/wire"
)

// Hash is a Poseidon digest, four field elements wide.
type Hash [4]goldilocks.Element

// Proof is the succinct attestation produced by the prover, together with
// the public inputs it commits to.
//
// Cap lengths are CapSize(); opening lengths are NumWires, NumConstants and
// NumChallenges*QuotientDegreeFactor respectively; PublicInputs has
// NumPublicInputs entries.
type Proof struct {
	WiresCap           []Hash
	PartialProductsCap []Hash
	QuotientPolysCap   []Hash

	WireOpenings     []goldilocks.Element
	ConstantOpenings []goldilocks.Element
	QuotientOpenings []goldilocks.Element

	PublicInputs []goldilocks.Element
}

// Bytes serializes the proof into one flat blob. The layout is positional;
// no counts or tags are written, mirroring the fact that the blob cannot be
// decoded without the circuit's common parameters.
func (p *Proof) Bytes() []byte {
	w := wire.NewWriter()
	for _, mc := range [][]Hash{p.WiresCap, p.PartialProductsCap, p.QuotientPolysCap} {
		for _, h := range mc {
			for _, e := range h {
				w.WriteElement(e)
			}
		}
	}
	for _, es := range [][]goldilocks.Element{p.WireOpenings, p.ConstantOpenings, p.QuotientOpenings, p.PublicInputs} {
		for _, e := range es {
			w.WriteElement(e)
		}
	}
	return w.Bytes()
}

// FromBytes reconstructs a proof from data, using common to size every
// field. The whole buffer must be consumed exactly; a length mismatch in
// either direction means the proof and parameters do not belong together.
func FromBytes(data []byte, common *circuit.CommonParameters) (*Proof, error) {
	r := wire.NewReader(data)
	p := &Proof{}

	var err error
	if p.WiresCap, err = readCap(r, common, "wires cap"); err != nil {
		return nil, err
	}
	if p.PartialProductsCap, err = readCap(r, common, "partial products cap"); err != nil {
		return nil, err
	}
	if p.QuotientPolysCap, err = readCap(r, common, "quotient polys cap"); err != nil {
		return nil, err
	}

	if p.WireOpenings, err = readOpenings(r, common.NumWires, "wire openings"); err != nil {
		return nil, err
	}
	if p.ConstantOpenings, err = readOpenings(r, common.NumConstants, "constant openings"); err != nil {
		return nil, err
	}
	numQuotient := common.NumChallenges * common.QuotientDegreeFactor
	if common.QuotientDegreeFactor != 0 && numQuotient/common.QuotientDegreeFactor != common.NumChallenges {
		return nil, fmt.Errorf("%w: quotient openings count overflows (%d challenges x %d factor)",
			wire.ErrMalformedPayload, common.NumChallenges, common.QuotientDegreeFactor)
	}
	if p.QuotientOpenings, err = readOpenings(r, numQuotient, "quotient openings"); err != nil {
		return nil, err
	}
	if p.PublicInputs, err = readOpenings(r, common.NumPublicInputs, "public inputs"); err != nil {
		return nil, err
	}

	if n := r.Remaining(); n != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after proof", wire.ErrMalformedPayload, n)
	}
	return p, nil
}

func readCap(r *wire.Reader, common *circuit.CommonParameters, what string) ([]Hash, error) {
	n := common.CapSize()
	if n > uint64(r.Remaining())/32 {
		return nil, fmt.Errorf("%w: %s: cap size %d exceeds remaining %d bytes",
			wire.ErrMalformedPayload, what, n, r.Remaining())
	}
	caps := make([]Hash, n)
	for i := range caps {
		for j := range caps[i] {
			e, err := r.ReadElement()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", what, err)
			}
			caps[i][j] = e
		}
	}
	return caps, nil
}

func readOpenings(r *wire.Reader, n uint64, what string) ([]goldilocks.Element, error) {
	if n > uint64(r.Remaining())/8 {
		return nil, fmt.Errorf("%w: %s: %d elements exceed remaining %d bytes",
			wire.ErrMalformedPayload, what, n, r.Remaining())
	}
	es := make([]goldilocks.Element, n)
	for i := range es {
		e, err := r.ReadElement()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		es[i] = e
	}
	return es, nil
}
