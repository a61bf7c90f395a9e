// Package store persists and reloads the proof/circuit artifact pair as
// two independent binary files. The circuit blob is self-contained given a
// registry; the proof blob is not, so loading always decodes the circuit
// first and feeds its common parameters into the proof decoder.
//
// The dual write in Save is not transactional: if the circuit write
// succeeds and the proof write fails, the circuit file remains on disk in a
// valid, loadable state. Callers needing atomicity should write to
// temporary paths and rename above this layer.
package store

import (
	"fmt"
	"os"

	"github.com/yourorg/zkartifact/internal/logger"
	"github.com/yourorg/zkartifact/pkg/circuit"
	"github.com/yourorg/zkartifact/pkg/proof"
	"github.com/yourorg/zkartifact/pkg/serialization"
)

// Save serializes the pair and writes the circuit blob to circuitPath, then
// the proof blob to proofPath, creating or overwriting both files. The
// registry must cover every gate and generator kind appearing in c.
func Save(p *proof.Proof, c *circuit.Circuit, reg *serialization.Registry, proofPath, circuitPath string) error {
	circuitBytes, err := serialization.EncodeCircuit(c, reg)
	if err != nil {
		return fmt.Errorf("encode circuit: %w", err)
	}
	proofBytes := p.Bytes()

	if err := os.WriteFile(circuitPath, circuitBytes, 0o644); err != nil {
		return fmt.Errorf("write circuit: %w", err)
	}
	if err := os.WriteFile(proofPath, proofBytes, 0o644); err != nil {
		return fmt.Errorf("write proof: %w", err)
	}

	log := logger.Logger()
	log.Debug().
		Str("circuit", circuitPath).Int("circuitBytes", len(circuitBytes)).
		Str("proof", proofPath).Int("proofBytes", len(proofBytes)).
		Msg("artifacts saved")
	return nil
}

// Load reads and decodes the circuit blob, then decodes the proof blob
// against the loaded circuit's common parameters. It returns fresh values
// owned by the caller; loading the same files twice yields independent
// pairs.
func Load(proofPath, circuitPath string, reg *serialization.Registry) (*proof.Proof, *circuit.Circuit, error) {
	circuitBytes, err := os.ReadFile(circuitPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read circuit: %w", err)
	}
	c, err := serialization.DecodeCircuit(circuitBytes, reg)
	if err != nil {
		return nil, nil, fmt.Errorf("decode circuit: %w", err)
	}

	proofBytes, err := os.ReadFile(proofPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read proof: %w", err)
	}
	p, err := proof.FromBytes(proofBytes, &c.Common)
	if err != nil {
		return nil, nil, fmt.Errorf("decode proof: %w", err)
	}

	log := logger.Logger()
	log.Debug().
		Str("circuit", circuitPath).Int("gates", len(c.Gates)).Int("generators", len(c.Generators)).
		Str("proof", proofPath).Int("publicInputs", len(p.PublicInputs)).
		Msg("artifacts loaded")
	return p, c, nil
}
