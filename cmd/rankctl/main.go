// Command rankctl drives the rank facade from the command line: load an
// N×N observation-count matrix, solve it, and print the recommended next
// comparison plus the baseline posterior.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "rankctl",
		Short: "rankctl — Bayesian pairwise-preference ranking from the command line",
	}
	root.AddCommand(runCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
