package serialization

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkartifact/pkg/circuit"
	"github.com/yourorg/zkartifact/pkg/wire"
)

func testCircuit() *circuit.Circuit {
	return &circuit.Circuit{
		Common: circuit.CommonParameters{
			NumWires:             135,
			NumRoutedWires:       80,
			NumConstants:         2,
			NumChallenges:        2,
			SecurityBits:         100,
			DegreeBits:           3,
			CapHeight:            1,
			QuotientDegreeFactor: 8,
			NumGateConstraints:   123,
			NumPublicInputs:      2,
		},
		Gates: []circuit.Gate{
			&circuit.ArithmeticGate{NumOps: 20},
			&circuit.PoseidonGate{},
			&circuit.PublicInputGate{},
			&circuit.CosetInterpolationGate{
				SubgroupBits: 4,
				Degree:       6,
				BarycentricWeights: []goldilocks.Element{
					goldilocks.NewElement(17),
					goldilocks.NewElement(41),
				},
			},
		},
		Generators: []circuit.Generator{
			&circuit.ArithmeticBaseGenerator{Row: 0, Const0: goldilocks.NewElement(1), Const1: goldilocks.NewElement(2)},
			&circuit.RandomValueGenerator{Wire: 7},
			&circuit.ConstantGenerator{Row: 3, ConstantIndex: 1, Value: goldilocks.NewElement(99)},
		},
	}
}

func TestCircuitRoundTrip(t *testing.T) {
	reg := DefaultRegistry()
	c := testCircuit()

	blob, err := EncodeCircuit(c, reg)
	require.NoError(t, err)

	got, err := DecodeCircuit(blob, reg)
	require.NoError(t, err)
	require.Equal(t, c, got)

	// byte-for-byte stability on re-encode
	blob2, err := EncodeCircuit(got, reg)
	require.NoError(t, err)
	require.Equal(t, blob, blob2)
}

func TestCircuitTruncatedAtEveryBoundary(t *testing.T) {
	reg := DefaultRegistry()
	blob, err := EncodeCircuit(testCircuit(), reg)
	require.NoError(t, err)

	for cut := 0; cut < len(blob); cut++ {
		_, err := DecodeCircuit(blob[:cut], reg)
		if err == nil {
			t.Fatalf("cut at %d: truncated blob decoded successfully", cut)
		}
		if !errors.Is(err, wire.ErrMalformedPayload) && !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("cut at %d: unexpected error class: %v", cut, err)
		}
	}
}

func TestCircuitUnknownKindNoPartialResult(t *testing.T) {
	src := DefaultRegistry()
	src.RegisterGate("lookup", decodeLookupGate)

	c := testCircuit()
	c.Gates = append(c.Gates, &lookupGate{TableSize: 64})

	blob, err := EncodeCircuit(c, src)
	require.NoError(t, err)

	got, err := DecodeCircuit(blob, DefaultRegistry())
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Nil(t, got, "no partially-constructed circuit on failure")
}

func TestCircuitTrailingGarbage(t *testing.T) {
	reg := DefaultRegistry()
	blob, err := EncodeCircuit(testCircuit(), reg)
	require.NoError(t, err)

	_, err = DecodeCircuit(append(blob, 0xde, 0xad), reg)
	require.ErrorIs(t, err, wire.ErrMalformedPayload)
}

func TestCircuitBogusGateCount(t *testing.T) {
	reg := DefaultRegistry()

	w := wire.NewWriter()
	(&circuit.CommonParameters{}).WriteTo(w)
	w.WriteUint64(^uint64(0)) // gate count far beyond the buffer

	_, err := DecodeCircuit(w.Bytes(), reg)
	require.ErrorIs(t, err, wire.ErrMalformedPayload)
}
