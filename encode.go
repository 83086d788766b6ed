package rentfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// This file persists the engine's input records in human-readable,
// git-friendly formats: the property as a single JSON document, the
// transaction ledger as JSONL with one transaction per line. Amounts stay
// string-encoded decimals so no precision is lost in round trips.

// jtransaction is the wire shape of one ledger line.
type jtransaction struct {
	Type      TxType          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency,omitempty"`
	Date      Date            `json:"date"`
	Category  string          `json:"category,omitempty"`
	Excluded  bool            `json:"excluded,omitempty"`
	Recurring bool            `json:"recurring,omitempty"`
	Memo      string          `json:"memo,omitempty"`
}

// DecodeTransactions decodes a JSONL stream of transactions. Lines are
// decoded leniently with respect to field order; unknown transaction types
// are a hard error.
func DecodeTransactions(r io.Reader) (Transactions, error) {
	var ts Transactions
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 {
			continue
		}
		var jt jtransaction
		if err := json.Unmarshal(raw, &jt); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(raw), err)
		}
		if _, err := ParseTxType(string(jt.Type)); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		ts = append(ts, Transaction{
			Type:      jt.Type,
			Amount:    M(jt.Amount, jt.Currency),
			Date:      jt.Date,
			Category:  jt.Category,
			Excluded:  jt.Excluded,
			Recurring: jt.Recurring,
			Memo:      jt.Memo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}
	return ts, nil
}

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, t Transaction) error {
	jt := jtransaction{
		Type:      t.Type,
		Amount:    t.Amount.Amount(),
		Currency:  t.Amount.Currency(),
		Date:      t.Date,
		Category:  t.Category,
		Excluded:  t.Excluded,
		Recurring: t.Recurring,
		Memo:      t.Memo,
	}
	b, err := json.Marshal(jt)
	if err != nil {
		return fmt.Errorf("could not encode transaction: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeTransactions writes the canonical form of a ledger: one JSONL line
// per transaction, in chronological order.
func EncodeTransactions(w io.Writer, ts Transactions) error {
	sorted := make(Transactions, len(ts))
	copy(sorted, ts)
	// stable order: by date, income before expenses on the same day
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		return a.Type == TxIncome && b.Type == TxExpense
	})
	for _, t := range sorted {
		if err := EncodeTransaction(w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeProperty decodes a property record from a single JSON document.
func DecodeProperty(r io.Reader) (*Property, error) {
	var p Property
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("could not decode property: %w", err)
	}
	return &p, nil
}

// EncodeProperty writes a property record as an indented JSON document.
func EncodeProperty(w io.Writer, p *Property) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("could not encode property: %w", err)
	}
	return nil
}
