package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
	"github.com/rentfolio/rentfolio/renderer"
)

// exportCPACmd holds the flags for the 'export-cpa' subcommand.
type exportCPACmd struct {
	outputFile string
}

func (*exportCPACmd) Name() string     { return "export-cpa" }
func (*exportCPACmd) Synopsis() string { return "export the depreciation schedule for a CPA" }
func (*exportCPACmd) Usage() string {
	return `rfo export-cpa [-o <file>]

  Writes the depreciation schedule in the flat textual format expected by
  tax preparers, to stdout or to the given file.
`
}

func (c *exportCPACmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCPACmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	property, err := loadProperty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading property: %v\n", err)
		return subcommands.ExitFailure
	}
	if property.PlacedInService == nil {
		fmt.Fprintln(os.Stderr, "Error: property has no placed-in-service date")
		return subcommands.ExitFailure
	}

	engine := rentfolio.DefaultEngine()
	basis := engine.PropertyCostBasis(property)
	years := engine.DepreciationYears(property.Type)
	schedule := rentfolio.GenerateSchedule(basis.DepreciableBasis, years, *property.PlacedInService)

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := renderer.CPAReport(out, property, basis, years, schedule); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
