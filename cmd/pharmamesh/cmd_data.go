package main

import (
	"fmt"
	"strings"

	"github.com/hupe1980/pharmamesh/core"
	"github.com/hupe1980/pharmamesh/knowledge"
	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data [domain] [query]",
	Short: "Query the built-in knowledge base directly",
	Long: `Look up records in the built-in demo knowledge base without running the
orchestrator. Domain is one of: clinical, patent, regulatory, literature.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runData,
}

func runData(_ *cobra.Command, args []string) error {
	domain, err := core.ParseSpecialist(args[0])
	if err != nil {
		return err
	}
	if domain == core.SpecialistSynthesizer {
		return fmt.Errorf("domain %q has no knowledge base", domain)
	}

	src := knowledge.NewInMemorySource()
	records, err := src.Lookup(domain, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Println(knowledge.FormatRecords(records))
	return nil
}
