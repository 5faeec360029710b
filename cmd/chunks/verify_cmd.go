// cmd/chunks/verify_cmd.go

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Juniorduc44/chunks/pkg/chunks"
	"github.com/Juniorduc44/chunks/pkg/verify"
)

func init() {
	rootCmd.AddCommand(verifyCmd())
}

func verifyCmd() *cobra.Command {
	var manifestPath string
	var deep bool
	var verbose bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a chunk set against its manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &verify.Options{
				ManifestPath: manifestPath,
				Deep:         deep,
				Verbose:      verbose,
				Quiet:        quiet,
			}

			var progressCb verify.ProgressCallback
			if verbose && !quiet {
				progressCb = func(event verify.ProgressEvent) {
					if event.Type == verify.EventChunk {
						fmt.Printf("  checked %s (%d/%d)\n", event.ChunkPath, event.Index, event.Total)
					}
				}
			}

			result, err := verify.Verify(opts, progressCb)
			if err != nil {
				return err
			}

			if !quiet {
				fmt.Printf("Chunks verified: %d / %d (%s)\n",
					result.ChunksVerified, result.ChunksTotal,
					chunks.FormatSize(uint64(result.BytesVerified)))
				if result.SourceHashChecked {
					fmt.Println("Round-trip hash: checked")
				}
			}

			if !result.Success() {
				for _, e := range result.Errors {
					fmt.Fprintf(os.Stderr, "  - %v\n", e)
				}
				return fmt.Errorf("verification failed with %d errors", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Manifest file written by split --manifest (required)")
	cmd.Flags().BoolVar(&deep, "deep", false, "Re-hash every chunk and re-check the round-trip source hash")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")

	_ = cmd.MarkFlagRequired("manifest")

	return cmd
}
