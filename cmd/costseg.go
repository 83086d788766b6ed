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

type costsegCmd struct{}

func (*costsegCmd) Name() string     { return "costseg" }
func (*costsegCmd) Synopsis() string { return "estimate the cost-segregation acceleration potential" }
func (*costsegCmd) Usage() string {
	return `rfo costseg

  Reports the bucketed estimate of the depreciable basis that a
  cost-segregation study would typically find eligible for accelerated
  treatment. This is a heuristic, not an engineering study.
`
}

func (c *costsegCmd) SetFlags(f *flag.FlagSet) {}

func (c *costsegCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	property, err := loadProperty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading property: %v\n", err)
		return subcommands.ExitFailure
	}

	engine := rentfolio.DefaultEngine()
	basis := engine.PropertyCostBasis(property)
	printMarkdown(renderer.CostSegMarkdown(engine.CostSegPotential(basis.DepreciableBasis)))

	return subcommands.ExitSuccess
}
