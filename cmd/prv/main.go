package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arloliu/prvkit/errs"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an execution error onto the tool's exit-code contract:
// convert exits 1 when the CSV is missing and 2 when the layout schema is
// missing; compare exits 1 on a failed check; usage problems exit 2.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	switch {
	case errors.Is(err, errs.ErrCSVNotFound):
		return 1
	case errors.Is(err, errs.ErrLayoutNotFound):
		return 2
	}

	// Flag and argument errors from cobra land here.
	return 2
}
