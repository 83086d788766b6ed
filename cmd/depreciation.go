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

// depreciationCmd holds the flags for the 'depreciation' subcommand.
type depreciationCmd struct {
	asOf string
}

func (*depreciationCmd) Name() string { return "depreciation" }
func (*depreciationCmd) Synopsis() string {
	return "display the depreciation schedule and current state"
}
func (*depreciationCmd) Usage() string {
	return `rfo depreciation [-d <date>]

  Displays the cost basis, the year-by-year straight-line depreciation
  schedule (mid-month convention), and where the property stands as of the
  given date.
`
}

func (c *depreciationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asOf, "d", rentfolio.Today().String(), "Date for the current-state summary.")
}

func (c *depreciationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	property, err := loadProperty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading property: %v\n", err)
		return subcommands.ExitFailure
	}
	asOf, err := rentfolio.ParseDate(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if property.PlacedInService == nil {
		fmt.Fprintln(os.Stderr, "Error: property has no placed-in-service date; depreciation state is meaningless without one")
		return subcommands.ExitFailure
	}

	engine := rentfolio.DefaultEngine()
	basis := engine.PropertyCostBasis(property)
	years := engine.DepreciationYears(property.Type)
	schedule := rentfolio.GenerateSchedule(basis.DepreciableBasis, years, *property.PlacedInService)
	state := rentfolio.DepreciationSummary(basis.DepreciableBasis, years, property.PlacedInService, asOf)

	printMarkdown(renderer.DepreciationMarkdown(property.Address, basis, years, schedule, state))

	return subcommands.ExitSuccess
}
