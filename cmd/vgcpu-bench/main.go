// Command vgcpu-bench is the CLI front end for the vgbench harness: it
// drives runs across registered backends and scenes and writes JSON/CSV/
// summary reports.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vgcpu-bench:", err)
		os.Exit(1)
	}
}
