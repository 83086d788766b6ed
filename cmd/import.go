package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file     string
	items    string
	date     string
	amount   string
	txType   string
	category string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a vendor JSON export" }
func (*importCmd) Usage() string {
	return `rfo import -f <file> -items <path> -date <path> -amount <path> [-type <path>] [-category <path>]

  Maps a third-party property-management JSON export into ledger
  transactions using jsonpath expressions, and appends them to the ledger.

Usage Examples:
# Import from a typical export with a transactions array.
$ rfo import -f export.json -items '$.transactions[*]' -date '$.posted_on' -amount '$.amount'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON export file to import.")
	f.StringVar(&c.items, "items", "$.transactions[*]", "jsonpath to the list of transaction objects.")
	f.StringVar(&c.date, "date", "$.date", "jsonpath to the transaction date.")
	f.StringVar(&c.amount, "amount", "$.amount", "jsonpath to the amount.")
	f.StringVar(&c.txType, "type", "", "jsonpath to the type; when empty the amount sign decides.")
	f.StringVar(&c.category, "category", "", "jsonpath to the category.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	transactions, err := rentfolio.ImportTransactions(in, rentfolio.ImportMapping{
		Items:    c.items,
		Date:     c.date,
		Amount:   c.amount,
		Type:     c.txType,
		Category: c.category,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	for _, tx := range transactions {
		if status := appendTransaction(tx); status != subcommands.ExitSuccess {
			return status
		}
	}
	fmt.Printf("Imported %d transactions from %s\n", len(transactions), c.file)
	return subcommands.ExitSuccess
}
