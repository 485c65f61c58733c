package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/prvkit/errs"
	"github.com/arloliu/prvkit/format"
	"github.com/arloliu/prvkit/layout"
	"github.com/arloliu/prvkit/prv"
)

// defaultLayoutPath is used when no layout argument is given, matching the
// legacy tool's lookup of layout.json next to the input.
const defaultLayoutPath = "layout.json"

func newConvertCommand(verbose *bool) *cobra.Command {
	var compressFlag string

	cmd := &cobra.Command{
		Use:   "convert <csv> <output> [layout]",
		Short: "Convert a CSV telemetry export into a PRV file",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)

			layoutPath := defaultLayoutPath
			if len(args) == 3 {
				layoutPath = args[2]
			}

			compression, err := format.ParseCompression(compressFlag)
			if err != nil {
				return err
			}

			schema, err := layout.Load(layoutPath)
			if err != nil {
				if errors.Is(err, errs.ErrLayoutNotFound) {
					return err
				}

				return &exitError{code: 1, err: err}
			}
			logger.Debug("layout schema loaded",
				"path", layoutPath,
				"line_length", schema.LineLength,
				"lines", len(schema.Lines))

			count, stats, err := prv.ConvertFile(args[0], args[1], schema, compression)
			if err != nil {
				if errors.Is(err, errs.ErrCSVNotFound) {
					return err
				}

				return &exitError{code: 1, err: err}
			}

			if compression != format.CompressionNone {
				logger.Info("output compressed",
					"algorithm", stats.Algorithm.String(),
					"original_bytes", stats.OriginalSize,
					"compressed_bytes", stats.CompressedSize,
					"space_savings_pct", fmt.Sprintf("%.1f", stats.SpaceSavings()))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", count, args[1])

			return nil
		},
	}

	cmd.Flags().StringVar(&compressFlag, "compress", "none",
		"Compression for the output file (none, zstd, s2, lz4)")

	return cmd
}
