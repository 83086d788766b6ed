// Package cmd implements the CLI application to analyze a rental property.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rentfolio/rentfolio"
)

// Commands lists the subcommands of the rfo binary. A main package registers
// each of them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&cashflowCmd{},
	&depreciationCmd{},
	&taxshieldCmd{},
	&costsegCmd{},
	&exportCPACmd{},
	&txCmd{},
	&fmtCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var propertyFile = flag.String("property-file", "property.json", "Path to the property record (JSON)")
var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the transaction ledger (JSONL format)")

// loadProperty reads the property record from the app property file.
func loadProperty() (*rentfolio.Property, error) {
	f, err := os.Open(*propertyFile)
	if err != nil {
		return nil, fmt.Errorf("could not open property file %q: %w", *propertyFile, err)
	}
	defer f.Close()
	return rentfolio.DecodeProperty(f)
}

// loadTransactions reads the transaction ledger from the app ledger file.
// A missing ledger is not an error: the engine degrades gracefully on an
// empty transaction slice.
func loadTransactions() (rentfolio.Transactions, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, using an empty ledger instead")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return rentfolio.DecodeTransactions(f)
}

// appendTransaction appends a single transaction to the app ledger file.
func appendTransaction(tx rentfolio.Transaction) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := rentfolio.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. output is piped).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
