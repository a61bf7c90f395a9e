package circuit

import (
	"fmt"

	"github.com/yourorg/zkartifact/pkg/wire"
)

// maxLogSize bounds DegreeBits and CapHeight so that 1<<n stays sane; a
// blob claiming more is corrupt, not large.
const maxLogSize = 32

// CommonParameters is the fixed configuration shared by a circuit and any
// proof built from it. Its wire layout is ten uint64 fields in declaration
// order.
type CommonParameters struct {
	NumWires             uint64
	NumRoutedWires       uint64
	NumConstants         uint64
	NumChallenges        uint64
	SecurityBits         uint64
	DegreeBits           uint64
	CapHeight            uint64
	QuotientDegreeFactor uint64
	NumGateConstraints   uint64
	NumPublicInputs      uint64
}

// Degree returns the size of the evaluation domain.
func (p *CommonParameters) Degree() uint64 {
	return 1 << p.DegreeBits
}

// CapSize returns the number of hashes in a Merkle cap.
func (p *CommonParameters) CapSize() uint64 {
	return 1 << p.CapHeight
}

func (p *CommonParameters) WriteTo(w *wire.Writer) {
	w.WriteUint64(p.NumWires)
	w.WriteUint64(p.NumRoutedWires)
	w.WriteUint64(p.NumConstants)
	w.WriteUint64(p.NumChallenges)
	w.WriteUint64(p.SecurityBits)
	w.WriteUint64(p.DegreeBits)
	w.WriteUint64(p.CapHeight)
	w.WriteUint64(p.QuotientDegreeFactor)
	w.WriteUint64(p.NumGateConstraints)
	w.WriteUint64(p.NumPublicInputs)
}

// ReadParameters decodes a CommonParameters block and sanity-checks the
// logarithmic sizes.
func ReadParameters(r *wire.Reader) (CommonParameters, error) {
	var p CommonParameters
	fields := []*uint64{
		&p.NumWires, &p.NumRoutedWires, &p.NumConstants, &p.NumChallenges,
		&p.SecurityBits, &p.DegreeBits, &p.CapHeight, &p.QuotientDegreeFactor,
		&p.NumGateConstraints, &p.NumPublicInputs,
	}
	for _, f := range fields {
		v, err := r.ReadUint64()
		if err != nil {
			return CommonParameters{}, fmt.Errorf("common parameters: %w", err)
		}
		*f = v
	}
	if p.DegreeBits > maxLogSize {
		return CommonParameters{}, fmt.Errorf("%w: degree bits %d out of range", wire.ErrMalformedPayload, p.DegreeBits)
	}
	if p.CapHeight > maxLogSize {
		return CommonParameters{}, fmt.Errorf("%w: cap height %d out of range", wire.ErrMalformedPayload, p.CapHeight)
	}
	return p, nil
}
