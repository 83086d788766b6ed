package rentfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file imports transactions from third-party property-management JSON
// exports. Every vendor shapes its export differently, so the mapping is a
// set of jsonpath expressions rather than a fixed struct.

// ImportMapping selects transaction fields out of a vendor JSON export.
// Items locates the list of transaction objects; the remaining paths are
// evaluated against each item.
type ImportMapping struct {
	Items    string // e.g. "$.transactions[*]"
	Date     string // e.g. "$.posted_on"
	Amount   string // e.g. "$.amount"
	Type     string // optional; when empty the amount sign decides (>= 0 is income)
	Category string // optional
}

// ImportTransactions reads a vendor JSON export and maps it into
// transactions. Amounts may be JSON numbers or string-encoded decimals;
// when no Type path is mapped, non-negative amounts import as income and
// negative ones as expenses with the sign dropped.
func ImportTransactions(r io.Reader, m ImportMapping) (Transactions, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse import document: %w", err)
	}

	jitems, err := jsonpath.Get(m.Items, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating items path %q: %w", m.Items, err)
	}
	items, ok := jitems.([]any)
	if !ok {
		// because jsonpath is never clear about whether it returns a list or a single answer
		items = []any{jitems}
	}

	var ts Transactions
	for i, item := range items {
		t, err := importOne(item, m)
		if err != nil {
			return nil, fmt.Errorf("error importing item %d: %w", i, err)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

func importOne(item any, m ImportMapping) (Transaction, error) {
	var t Transaction

	jdate, err := pathString(item, m.Date)
	if err != nil {
		return t, fmt.Errorf("date: %w", err)
	}
	t.Date, err = ParseDate(jdate)
	if err != nil {
		return t, err
	}

	amount, err := pathDecimal(item, m.Amount)
	if err != nil {
		return t, fmt.Errorf("amount: %w", err)
	}

	if m.Type != "" {
		jtype, err := pathString(item, m.Type)
		if err != nil {
			return t, fmt.Errorf("type: %w", err)
		}
		t.Type, err = normalizeType(jtype)
		if err != nil {
			return t, err
		}
	} else if amount.IsNegative() {
		t.Type = TxExpense
		amount = amount.Neg()
	} else {
		t.Type = TxIncome
	}
	t.Amount = M(amount, "USD")

	if m.Category != "" {
		// missing category is not an error, exports are sloppy here
		if cat, err := pathString(item, m.Category); err == nil {
			t.Category = cat
		}
	}
	return t, nil
}

// normalizeType maps the many vendor spellings onto the two engine types.
func normalizeType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "credit", "deposit", "payment", "rent":
		return TxIncome, nil
	case "expense", "debit", "charge", "withdrawal":
		return TxExpense, nil
	default:
		return "", fmt.Errorf("unrecognized transaction type %q", s)
	}
}

func pathString(item any, path string) (string, error) {
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: expected a string, got %T", path, jval)
	}
	return s, nil
}

func pathDecimal(item any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, item)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("path %q: %w", path, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("path %q: expected a number or string, got %T", path, jval)
	}
}
