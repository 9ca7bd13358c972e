// Command salbp-solve is the Entry B file-driven CLI (SPEC_FULL.md §6):
// read an .alb instance, run the exact SALBP-1 solver, write a .sol
// solution file and a timing .csv file. Grounded on the teacher pack's
// cobra/viper CLI shape (cmd/cli/cmd/root.go, cmd/cli/cmd/analyze.go in
// the junjiewwang-perf-analysis example) and on the original's main()
// (optimum.c), which this generalizes from bare argv[1]/argv[2] parsing
// into flag/env-driven configuration.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
