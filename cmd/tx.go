package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	txType    string
	amount    string
	date      string
	category  string
	recurring bool
	memo      string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record an income or expense transaction" }
func (*txCmd) Usage() string {
	return `rfo tx -type <income|expense> -amount <decimal> [-date <date>] [-category <name>] [-recurring] [-memo <note>]

  Appends a transaction to the ledger file.

Usage Examples:
# Record this month's rent payment.
$ rfo tx -type income -amount 2000 -category rent -recurring
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "", "Transaction type: income or expense.")
	f.StringVar(&c.amount, "amount", "", "Amount as a decimal string, e.g. 1250.00.")
	f.StringVar(&c.date, "date", rentfolio.Today().String(), "Transaction date.")
	f.StringVar(&c.category, "category", "", "Category, e.g. rent, insurance.")
	f.BoolVar(&c.recurring, "recurring", false, "Mark the transaction as monthly recurring.")
	f.StringVar(&c.memo, "memo", "", "Optional note.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := rentfolio.ParseTxType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := rentfolio.ParseMoney(c.amount, "USD")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	on, err := rentfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	return appendTransaction(rentfolio.Transaction{
		Type:      typ,
		Amount:    amount,
		Date:      on,
		Category:  c.category,
		Recurring: c.recurring,
		Memo:      c.memo,
	})
}
