package serialization

import (
	"github.com/yourorg/zkartifact/pkg/circuit"
	"github.com/yourorg/zkartifact/pkg/wire"
)

// registerBuiltins wires the standard gate and generator kinds into r.
// Encoding is the instance's own WriteTo; only the decode direction lives
// here.
func registerBuiltins(r *Registry) {
	r.RegisterGate(circuit.KindArithmeticGate, decodeArithmeticGate)
	r.RegisterGate(circuit.KindConstantGate, decodeConstantGate)
	r.RegisterGate(circuit.KindPoseidonGate, decodePoseidonGate)
	r.RegisterGate(circuit.KindPublicInputGate, decodePublicInputGate)
	r.RegisterGate(circuit.KindCosetInterpolationGate, decodeCosetInterpolationGate)

	r.RegisterGenerator(circuit.KindArithmeticBaseGenerator, decodeArithmeticBaseGenerator)
	r.RegisterGenerator(circuit.KindPoseidonGenerator, decodePoseidonGenerator)
	r.RegisterGenerator(circuit.KindRandomValueGenerator, decodeRandomValueGenerator)
	r.RegisterGenerator(circuit.KindConstantGenerator, decodeConstantGenerator)
}

func decodeArithmeticGate(r *wire.Reader) (circuit.Gate, error) {
	numOps, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	return &circuit.ArithmeticGate{NumOps: numOps}, nil
}

func decodeConstantGate(r *wire.Reader) (circuit.Gate, error) {
	numConsts, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	return &circuit.ConstantGate{NumConsts: numConsts}, nil
}

func decodePoseidonGate(*wire.Reader) (circuit.Gate, error) {
	return &circuit.PoseidonGate{}, nil
}

func decodePublicInputGate(*wire.Reader) (circuit.Gate, error) {
	return &circuit.PublicInputGate{}, nil
}

func decodeCosetInterpolationGate(r *wire.Reader) (circuit.Gate, error) {
	g := &circuit.CosetInterpolationGate{}
	var err error
	if g.SubgroupBits, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if g.Degree, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if g.BarycentricWeights, err = r.ReadElements(); err != nil {
		return nil, err
	}
	return g, nil
}

func decodeArithmeticBaseGenerator(r *wire.Reader) (circuit.Generator, error) {
	g := &circuit.ArithmeticBaseGenerator{}
	var err error
	if g.Row, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if g.Const0, err = r.ReadElement(); err != nil {
		return nil, err
	}
	if g.Const1, err = r.ReadElement(); err != nil {
		return nil, err
	}
	return g, nil
}

func decodePoseidonGenerator(r *wire.Reader) (circuit.Generator, error) {
	row, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	return &circuit.PoseidonGenerator{Row: row}, nil
}

func decodeRandomValueGenerator(r *wire.Reader) (circuit.Generator, error) {
	w, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	return &circuit.RandomValueGenerator{Wire: w}, nil
}

func decodeConstantGenerator(r *wire.Reader) (circuit.Generator, error) {
	g := &circuit.ConstantGenerator{}
	var err error
	if g.Row, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if g.ConstantIndex, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if g.Value, err = r.ReadElement(); err != nil {
		return nil, err
	}
	return g, nil
}
