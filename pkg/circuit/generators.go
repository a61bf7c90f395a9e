package circuit

import (
	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/yourorg/zkartifact/pkg/wire"
)

// Stable kind tags for the built-in generator set.
const (
	KindArithmeticBaseGenerator = "arithmetic_base"
	KindPoseidonGenerator       = "poseidon"
	KindRandomValueGenerator    = "random_value"
	KindConstantGenerator       = "constant"
)

// ArithmeticBaseGenerator fills in the output wire of one arithmetic
// operation at the given row.
type ArithmeticBaseGenerator struct {
	Row    uint64
	Const0 goldilocks.Element
	Const1 goldilocks.Element
}

func (g *ArithmeticBaseGenerator) Kind() string { return KindArithmeticBaseGenerator }

func (g *ArithmeticBaseGenerator) WriteTo(w *wire.Writer) {
	w.WriteUint64(g.Row)
	w.WriteElement(g.Const0)
	w.WriteElement(g.Const1)
}

// PoseidonGenerator computes the intermediate permutation state for the
// Poseidon gate at the given row.
type PoseidonGenerator struct {
	Row uint64
}

func (g *PoseidonGenerator) Kind() string { return KindPoseidonGenerator }

func (g *PoseidonGenerator) WriteTo(w *wire.Writer) {
	w.WriteUint64(g.Row)
}

// RandomValueGenerator assigns a blinding value to a single wire.
type RandomValueGenerator struct {
	Wire uint64
}

func (g *RandomValueGenerator) Kind() string { return KindRandomValueGenerator }

func (g *RandomValueGenerator) WriteTo(w *wire.Writer) {
	w.WriteUint64(g.Wire)
}

// ConstantGenerator copies a circuit constant into its wire slot.
type ConstantGenerator struct {
	Row           uint64
	ConstantIndex uint64
	Value         goldilocks.Element
}

func (g *ConstantGenerator) Kind() string { return KindConstantGenerator }

func (g *ConstantGenerator) WriteTo(w *wire.Writer) {
	w.WriteUint64(g.Row)
	w.WriteUint64(g.ConstantIndex)
	w.WriteElement(g.Value)
}
