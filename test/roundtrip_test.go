package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkartifact/pkg/circuit"
	"github.com/yourorg/zkartifact/pkg/proof"
	"github.com/yourorg/zkartifact/pkg/serialization"
	"github.com/yourorg/zkartifact/pkg/store"
	"github.com/yourorg/zkartifact/pkg/wire"
)

// fullCircuit exercises every built-in gate and generator kind in one
// artifact pair.
func fullCircuit() *circuit.Circuit {
	return &circuit.Circuit{
		Common: circuit.CommonParameters{
			NumWires:             135,
			NumRoutedWires:       80,
			NumConstants:         2,
			NumChallenges:        2,
			SecurityBits:         100,
			DegreeBits:           4,
			CapHeight:            2,
			QuotientDegreeFactor: 8,
			NumGateConstraints:   123,
			NumPublicInputs:      3,
		},
		Gates: []circuit.Gate{
			&circuit.ArithmeticGate{NumOps: 20},
			&circuit.ConstantGate{NumConsts: 2},
			&circuit.PoseidonGate{},
			&circuit.PublicInputGate{},
			&circuit.CosetInterpolationGate{
				SubgroupBits: 4,
				Degree:       6,
				BarycentricWeights: []goldilocks.Element{
					goldilocks.NewElement(3), goldilocks.NewElement(5), goldilocks.NewElement(7),
				},
			},
		},
		Generators: []circuit.Generator{
			&circuit.ArithmeticBaseGenerator{Row: 0, Const0: goldilocks.NewElement(1), Const1: goldilocks.NewElement(2)},
			&circuit.PoseidonGenerator{Row: 4},
			&circuit.RandomValueGenerator{Wire: 17},
			&circuit.ConstantGenerator{Row: 8, ConstantIndex: 1, Value: goldilocks.NewElement(42)},
		},
	}
}

func matchingProof(common *circuit.CommonParameters) *proof.Proof {
	var next uint64
	el := func() goldilocks.Element {
		next += 3
		return goldilocks.NewElement(next)
	}
	caps := func() []proof.Hash {
		hs := make([]proof.Hash, common.CapSize())
		for i := range hs {
			for j := range hs[i] {
				hs[i][j] = el()
			}
		}
		return hs
	}
	openings := func(n uint64) []goldilocks.Element {
		es := make([]goldilocks.Element, n)
		for i := range es {
			es[i] = el()
		}
		return es
	}
	return &proof.Proof{
		WiresCap:           caps(),
		PartialProductsCap: caps(),
		QuotientPolysCap:   caps(),
		WireOpenings:       openings(common.NumWires),
		ConstantOpenings:   openings(common.NumConstants),
		QuotientOpenings:   openings(common.NumChallenges * common.QuotientDegreeFactor),
		PublicInputs:       openings(common.NumPublicInputs),
	}
}

// TestArtifactRoundTrip drives the whole stack through real files: save,
// load, compare, and check byte-for-byte stability across a second save.
func TestArtifactRoundTrip(t *testing.T) {
	reg := serialization.DefaultRegistry()
	c := fullCircuit()
	p := matchingProof(&c.Common)

	dir := t.TempDir()
	proofPath := filepath.Join(dir, "proof.bin")
	circuitPath := filepath.Join(dir, "circuit.bin")

	require.NoError(t, store.Save(p, c, reg, proofPath, circuitPath))

	gotProof, gotCircuit, err := store.Load(proofPath, circuitPath, reg)
	require.NoError(t, err)
	require.Equal(t, c, gotCircuit)
	require.Equal(t, p, gotProof)

	// a second save of the loaded pair must reproduce identical files
	proofPath2 := filepath.Join(dir, "proof2.bin")
	circuitPath2 := filepath.Join(dir, "circuit2.bin")
	require.NoError(t, store.Save(gotProof, gotCircuit, reg, proofPath2, circuitPath2))

	first, err := os.ReadFile(circuitPath)
	require.NoError(t, err)
	second, err := os.ReadFile(circuitPath2)
	require.NoError(t, err)
	require.Equal(t, first, second)

	first, err = os.ReadFile(proofPath)
	require.NoError(t, err)
	second, err = os.ReadFile(proofPath2)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// muxGate is a third-party kind unknown to the default registry.
type muxGate struct {
	Selector uint64
}

func (g *muxGate) Kind() string { return "mux" }

func (g *muxGate) WriteTo(w *wire.Writer) {
	w.WriteUint64(g.Selector)
}

func decodeMuxGate(r *wire.Reader) (circuit.Gate, error) {
	sel, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	return &muxGate{Selector: sel}, nil
}

// TestCrossRegistryCompatibility saves with an extended registry and checks
// that a loader missing the custom kind rejects the circuit while a loader
// carrying a superset accepts it.
func TestCrossRegistryCompatibility(t *testing.T) {
	c := fullCircuit()
	c.Gates = append(c.Gates, &muxGate{Selector: 2})
	p := matchingProof(&c.Common)

	saver := serialization.DefaultRegistry()
	saver.RegisterGate("mux", decodeMuxGate)

	dir := t.TempDir()
	proofPath := filepath.Join(dir, "proof.bin")
	circuitPath := filepath.Join(dir, "circuit.bin")
	require.NoError(t, store.Save(p, c, saver, proofPath, circuitPath))

	// plain default registry: version mismatch, load must fail
	_, _, err := store.Load(proofPath, circuitPath, serialization.DefaultRegistry())
	require.ErrorIs(t, err, serialization.ErrUnknownKind)

	// superset registry: load succeeds and preserves the custom gate
	loader := serialization.DefaultRegistry()
	loader.RegisterGate("mux", decodeMuxGate)
	_, gotCircuit, err := store.Load(proofPath, circuitPath, loader)
	require.NoError(t, err)
	require.Equal(t, c, gotCircuit)
}
