package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourorg/zkartifact/pkg/serialization"
	"github.com/yourorg/zkartifact/pkg/store"
)

// repack loads an artifact pair and re-saves it atomically: both blobs are
// written to temp files in the output directory and renamed into place only
// after both writes succeed. This is the write-temp-then-rename recipe for
// callers that cannot tolerate the store's non-transactional dual write.
func main() {
	var proofPath, circuitPath, outDir string

	cmd := &cobra.Command{
		Use:   "repack",
		Short: "Re-serialize a proof/circuit artifact pair atomically",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := serialization.DefaultRegistry()
			p, c, err := store.Load(proofPath, circuitPath, reg)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			tmpProof := filepath.Join(outDir, ".proof.bin.tmp")
			tmpCircuit := filepath.Join(outDir, ".circuit.bin.tmp")
			if err := store.Save(p, c, reg, tmpProof, tmpCircuit); err != nil {
				os.Remove(tmpProof)
				os.Remove(tmpCircuit)
				return err
			}

			if err := os.Rename(tmpCircuit, filepath.Join(outDir, "circuit.bin")); err != nil {
				return err
			}
			if err := os.Rename(tmpProof, filepath.Join(outDir, "proof.bin")); err != nil {
				return err
			}
			fmt.Printf("repacked into %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&proofPath, "proof", "", "proof.bin")
	cmd.Flags().StringVar(&circuitPath, "circuit", "", "circuit.bin")
	cmd.Flags().StringVar(&outDir, "outdir", "./", "Output directory")
	_ = cmd.MarkFlagRequired("proof")
	_ = cmd.MarkFlagRequired("circuit")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
