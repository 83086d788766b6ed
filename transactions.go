package rentfolio

import (
	"fmt"
)

// TxType is a typed string for identifying transaction kinds.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case "income":
		return TxIncome, nil
	case "expense":
		return TxExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single income or expense entry in a property's ledger.
// Amounts are exact Money values (persisted as string-encoded decimals);
// dates are local calendar dates so a payment recorded on the first of a
// month never drifts into the previous one.
type Transaction struct {
	Type      TxType
	Amount    Money
	Date      Date
	Category  string
	Excluded  bool // excluded transactions never contribute to any aggregate
	Recurring bool
	Memo      string
}

// Transactions is a list of transactions, typically the ledger slice for one
// property over the reporting period chosen by the caller.
type Transactions []Transaction

// NewTransaction builds a transaction with a USD amount.
func NewTransaction(typ TxType, on Date, amount float64, category string) Transaction {
	return Transaction{Type: typ, Amount: M(amount, "USD"), Date: on, Category: category}
}

// Income returns the non-excluded income transactions.
func (ts Transactions) Income() Transactions { return ts.filter(TxIncome, nil) }

// Expenses returns the non-excluded expense transactions.
func (ts Transactions) Expenses() Transactions { return ts.filter(TxExpense, nil) }

// Recurring returns the non-excluded recurring transactions of the given type.
func (ts Transactions) Recurring(typ TxType) Transactions {
	recurring := true
	return ts.filter(typ, &recurring)
}

// OneOff returns the non-excluded non-recurring transactions of the given type.
func (ts Transactions) OneOff(typ TxType) Transactions {
	recurring := false
	return ts.filter(typ, &recurring)
}

func (ts Transactions) filter(typ TxType, recurring *bool) Transactions {
	var out Transactions
	for _, t := range ts {
		if t.Excluded || t.Type != typ {
			continue
		}
		if recurring != nil && t.Recurring != *recurring {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Net returns the exact net amount of the ledger: income minus expenses,
// excluded transactions skipped.
func (ts Transactions) Net() Money {
	var net Money
	for _, t := range ts {
		if t.Excluded {
			continue
		}
		switch t.Type {
		case TxIncome:
			net = net.Add(t.Amount)
		case TxExpense:
			net = net.Sub(t.Amount)
		}
	}
	return net
}

// Total sums the transaction amounts as a float64 engine figure.
func (ts Transactions) Total() float64 {
	var total float64
	for _, t := range ts {
		total += t.Amount.AsFloat()
	}
	return total
}

// InMonth returns the transactions dated within the given calendar month.
func (ts Transactions) InMonth(year int, month int) Transactions {
	var out Transactions
	for _, t := range ts {
		if t.Date.Year() == year && int(t.Date.Month()) == month {
			out = append(out, t)
		}
	}
	return out
}
