// cmd/chunks/split_cmd.go

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Juniorduc44/chunks/internal/prefs"
	"github.com/Juniorduc44/chunks/pkg/chunks"
	"github.com/Juniorduc44/chunks/pkg/split"
)

func init() {
	rootCmd.AddCommand(splitCmd())
}

func splitCmd() *cobra.Command {
	var inputPath, outputDir, unitName, codecName string
	var size float64
	var parts int
	var writeManifest bool
	var verbose bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a file into ordered chunk files",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Preferences fill in what the flags left out; never fatal.
			saved, _ := prefs.Load()
			if outputDir == "" {
				outputDir = saved.Get("output_dir", "")
			}
			if unitName == "" {
				unitName = saved.Get("unit", "MB")
			}

			codec, err := split.ParseCodec(codecName)
			if err != nil {
				return fmt.Errorf("%w: %q", split.ErrUnknownCodec, codecName)
			}

			opts := split.DefaultOptions()
			opts.InputPath = inputPath
			opts.OutputDir = outputDir
			opts.Codec = codec
			opts.WriteManifest = writeManifest
			opts.Verbose = verbose
			opts.Quiet = quiet

			if parts != 0 {
				opts.Parts = parts
			}
			if size != 0 {
				unit, err := split.ParseUnit(unitName)
				if err != nil {
					return err
				}
				opts.ChunkBytes = unit.Bytes(size)
			}

			if err := opts.Validate(); err != nil {
				return err
			}

			// Logging helper
			log := func(format string, args ...interface{}) {
				if !quiet {
					fmt.Printf(format+"\n", args...)
				}
			}

			log("Starting split...")
			log("  Input:  %s", opts.InputPath)
			log("  Output: %s", opts.OutputDir)
			if opts.Parts != 0 {
				log("  Mode:   %d parts", opts.Parts)
			} else {
				log("  Mode:   %s per chunk", chunks.FormatSize(uint64(opts.ChunkBytes)))
			}
			if opts.Codec != split.CodecNone {
				log("  Codec:  %s", opts.Codec)
			}
			log("")

			var progressCb split.ProgressCallback
			finish := func() {}
			if !quiet {
				progressCb, finish = split.ProgressBarCallback()
			}

			result, err := split.Split(opts, progressCb)
			finish()
			if err != nil {
				return err
			}

			log("")
			log("Created %d chunks (%s written)", result.ChunkCount(), chunks.FormatSize(uint64(result.BytesWritten())))
			if verbose {
				for _, c := range result.Chunks {
					log("  %-60s %10s", filepath.Base(c.Path), chunks.FormatSize(uint64(c.ByteSize)))
				}
			}
			if result.ManifestPath != "" {
				log("Manifest: %s", result.ManifestPath)
			}

			// Remember the last used unit and output directory; best effort.
			saved["unit"] = unitName
			saved["output_dir"] = outputDir
			_ = saved.Save()

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file to split (required)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: last used)")
	cmd.Flags().Float64VarP(&size, "size", "s", 0, "Target chunk size, in --unit multiples")
	cmd.Flags().StringVarP(&unitName, "unit", "u", "", "Size unit: MB, GB, Mb or Gb (default: last used, initially MB)")
	cmd.Flags().IntVarP(&parts, "parts", "p", 0, "Number of parts (mutually exclusive with --size)")
	cmd.Flags().StringVar(&codecName, "codec", "", "Compress chunks with zstd or xz (binary sources only)")
	cmd.Flags().BoolVar(&writeManifest, "manifest", false, "Write a JSON manifest next to the chunks")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}
