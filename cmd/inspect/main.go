package main

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourorg/zkartifact/pkg/circuit"
	"github.com/yourorg/zkartifact/pkg/proof"
	"github.com/yourorg/zkartifact/pkg/serialization"
	"github.com/yourorg/zkartifact/pkg/store"
)

// summary is the machine-readable form of an artifact pair.
type summary struct {
	Parameters    circuit.CommonParameters `json:"parameters"`
	Gates         []string                 `json:"gates"`
	Generators    []string                 `json:"generators"`
	PublicInputs  []string                 `json:"publicInputs"` // decimal field elements
	CircuitDigest string                   `json:"circuitDigest"`
}

func summarize(p *proof.Proof, c *circuit.Circuit, reg *serialization.Registry) (*summary, error) {
	circuitBytes, err := serialization.EncodeCircuit(c, reg)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(circuitBytes)

	s := &summary{
		Parameters:    c.Common,
		Gates:         make([]string, len(c.Gates)),
		Generators:    make([]string, len(c.Generators)),
		PublicInputs:  make([]string, len(p.PublicInputs)),
		CircuitDigest: hexutil.Encode(sum[:]),
	}
	for i, g := range c.Gates {
		s.Gates[i] = g.Kind()
	}
	for i, g := range c.Generators {
		s.Generators[i] = g.Kind()
	}
	for i, e := range p.PublicInputs {
		s.PublicInputs[i] = e.String()
	}
	return s, nil
}

func main() {
	var proofPath, circuitPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load a proof/circuit artifact pair and print a summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if proofPath == "" || circuitPath == "" {
				_ = godotenv.Load()
				dir := os.Getenv("ZK_ARTIFACT_DIR")
				if dir == "" {
					return fmt.Errorf("--proof and --circuit flags or ZK_ARTIFACT_DIR env var are required")
				}
				if proofPath == "" {
					proofPath = filepath.Join(dir, "proof.bin")
				}
				if circuitPath == "" {
					circuitPath = filepath.Join(dir, "circuit.bin")
				}
			}

			reg := serialization.DefaultRegistry()
			p, c, err := store.Load(proofPath, circuitPath, reg)
			if err != nil {
				return err
			}
			s, err := summarize(p, c, reg)
			if err != nil {
				return err
			}

			if jsonOut {
				jsonBytes, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(jsonBytes))
				return nil
			}

			common := s.Parameters
			fmt.Printf("common parameters: wires=%d routed=%d constants=%d challenges=%d degree=2^%d cap=2^%d\n",
				common.NumWires, common.NumRoutedWires, common.NumConstants,
				common.NumChallenges, common.DegreeBits, common.CapHeight)

			fmt.Printf("gates (%d):\n", len(s.Gates))
			for i, kind := range s.Gates {
				fmt.Printf("  %3d  %s\n", i, kind)
			}
			fmt.Printf("generators (%d):\n", len(s.Generators))
			for i, kind := range s.Generators {
				fmt.Printf("  %3d  %s\n", i, kind)
			}

			fmt.Printf("public inputs (%d):\n", len(p.PublicInputs))
			for i, e := range p.PublicInputs {
				b := e.Bytes()
				fmt.Printf("  %3d  %s  (%s)\n", i, e.String(), hexutil.Encode(b[:]))
			}

			fmt.Printf("circuit digest: %s\n", s.CircuitDigest)
			return nil
		},
	}

	cmd.Flags().StringVar(&proofPath, "proof", "", "proof.bin")
	cmd.Flags().StringVar(&circuitPath, "circuit", "", "circuit.bin")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the summary as JSON")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
