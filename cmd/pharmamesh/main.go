package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pharmamesh",
	Short: "Multi-specialist pharmaceutical research assistant",
	Long: `PharmaMesh routes free-text research queries to domain specialists
(clinical trials, patents, regulatory, scientific literature), optionally
fuses their answers into one synthesized report, and prints the result.

Available subcommands:
  query - Run a research query through the orchestrator
  data  - Query the built-in knowledge base directly`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(queryCmd, dataCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
