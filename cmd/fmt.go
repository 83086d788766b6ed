package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `rfo fmt

  Validates and formats the ledger file. This command reads all transactions,
  sorts them chronologically, and writes them back in a canonical JSONL form.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := loadTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(transactions) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no transactions found to format.")
		return subcommands.ExitSuccess
	}

	out, err := os.Create(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := rentfolio.EncodeTransactions(out, transactions); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not encode ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d transactions in %s (net %s)\n", len(transactions), *ledgerFile, transactions.Net().SignedString())
	return subcommands.ExitSuccess
}
