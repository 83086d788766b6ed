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

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	month string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the monthly cash-flow analysis" }
func (*cashflowCmd) Usage() string {
	return `rfo cashflow [-m <YYYY-MM>]

  Displays projected and actual monthly cash flow, NOI, variance, and the
  status-tagged headline metrics for the property.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Calendar month to scope the transactions to (e.g. 2025-07). Defaults to all transactions.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.month != "" {
		on, err := rentfolio.ParseDate(c.month + "-1")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month %q: %v\n", c.month, err)
			return subcommands.ExitUsageError
		}
		transactions = transactions.InMonth(on.Year(), int(on.Month()))
	}

	report := rentfolio.DefaultEngine().Cashflow(property, transactions)
	printMarkdown(renderer.CashflowMarkdown(property.Address, report))

	return subcommands.ExitSuccess
}
