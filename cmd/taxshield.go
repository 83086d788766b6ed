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

// taxshieldCmd holds the flags for the 'taxshield' subcommand.
type taxshieldCmd struct {
	rate float64
	asOf string
}

func (*taxshieldCmd) Name() string     { return "taxshield" }
func (*taxshieldCmd) Synopsis() string { return "display the depreciation tax shield and paper loss" }
func (*taxshieldCmd) Usage() string {
	return `rfo taxshield [-rate <decimal>] [-d <date>]

  Values the depreciation deduction at a marginal tax rate and compares
  pre-tax and depreciation-shielded annual cash flow.
`
}

func (c *taxshieldCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", 0, "Marginal tax rate as a decimal (e.g. 0.32). Defaults to the standard 24%.")
	f.StringVar(&c.asOf, "d", rentfolio.Today().String(), "Date for the accumulated depreciation.")
}

func (c *taxshieldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	property, err := loadProperty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading property: %v\n", err)
		return subcommands.ExitFailure
	}
	transactions, err := loadTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	asOf, err := rentfolio.ParseDate(c.asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	engine := rentfolio.DefaultEngine()
	basis := engine.PropertyCostBasis(property)
	years := engine.DepreciationYears(property.Type)

	var accumulated, annual float64
	if state := rentfolio.DepreciationSummary(basis.DepreciableBasis, years, property.PlacedInService, asOf); state != nil {
		accumulated = state.Accumulated
		annual = state.Annual
	} else {
		annual = basis.DepreciableBasis / years
	}

	var rate *float64
	if c.rate > 0 {
		rate = &c.rate
	}
	shield := engine.TaxShield(annual, accumulated, rate)

	cashflow := engine.Cashflow(property, transactions)
	loss := engine.PaperLossComparison(cashflow.CashFlow.Value*12, annual, rate)

	printMarkdown(renderer.TaxShieldMarkdown(shield, loss))

	return subcommands.ExitSuccess
}
