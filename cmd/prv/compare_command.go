package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/prvkit/compare"
)

func newCompareCommand(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <sample> <generated>",
		Short: "Check that a generated PRV file matches the shape of a reference sample",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)

			result, err := compare.CheckFiles(args[0], args[1])
			if err != nil {
				return &exitError{code: 1, err: err}
			}

			logger.Debug("comparison finished",
				"sample", args[0],
				"generated", args[1])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sample median cont lines: %d, generated median cont lines: %d\n",
				result.SampleMedian, result.GeneratedMedian)
			fmt.Fprintf(out, "Passed %d/%d sampled records\n", result.Passed, result.Checked)

			if !result.OK() {
				return &exitError{code: 1, err: errors.New("structural comparison failed")}
			}

			return nil
		},
	}
}
