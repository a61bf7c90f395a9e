package circuit

import (
	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/yourorg/zkartifact/pkg/wire"
)

// Stable kind tags for the built-in gate set.
const (
	KindArithmeticGate         = "arithmetic"
	KindConstantGate           = "constant"
	KindPoseidonGate           = "poseidon"
	KindPublicInputGate        = "public_input"
	KindCosetInterpolationGate = "coset_interpolation"
)

// ArithmeticGate evaluates numOps base-field multiply-add operations.
type ArithmeticGate struct {
	NumOps uint64
}

func (g *ArithmeticGate) Kind() string { return KindArithmeticGate }

func (g *ArithmeticGate) WriteTo(w *wire.Writer) {
	w.WriteUint64(g.NumOps)
}

// ConstantGate injects numConsts circuit constants into wires.
type ConstantGate struct {
	NumConsts uint64
}

func (g *ConstantGate) Kind() string { return KindConstantGate }

func (g *ConstantGate) WriteTo(w *wire.Writer) {
	w.WriteUint64(g.NumConsts)
}

// PoseidonGate applies one full-width Poseidon permutation. It is fully
// determined by its kind; the payload is empty.
type PoseidonGate struct{}

func (g *PoseidonGate) Kind() string { return KindPoseidonGate }

func (g *PoseidonGate) WriteTo(*wire.Writer) {}

// PublicInputGate routes the public-input hash into the wire polynomials.
// Payload is empty.
type PublicInputGate struct{}

func (g *PublicInputGate) Kind() string { return KindPublicInputGate }

func (g *PublicInputGate) WriteTo(*wire.Writer) {}

// CosetInterpolationGate interpolates a polynomial over a subgroup coset.
// The barycentric weights are precomputed field elements and travel with
// the gate.
type CosetInterpolationGate struct {
	SubgroupBits       uint64
	Degree             uint64
	BarycentricWeights []goldilocks.Element
}

func (g *CosetInterpolationGate) Kind() string { return KindCosetInterpolationGate }

func (g *CosetInterpolationGate) WriteTo(w *wire.Writer) {
	w.WriteUint64(g.SubgroupBits)
	w.WriteUint64(g.Degree)
	w.WriteElements(g.BarycentricWeights)
}
