package rentfolio

import "testing"

func TestTransactionsNet(t *testing.T) {
	ts := Transactions{
		NewTransaction(TxIncome, MustParseDate("2025-03-01"), 2000, "rent"),
		NewTransaction(TxExpense, MustParseDate("2025-03-05"), 450.25, "repairs"),
		{Type: TxExpense, Amount: M(9999.0, "USD"), Date: MustParseDate("2025-03-06"), Excluded: true},
	}

	net := ts.Net()
	if !net.Equal(M(1549.75, "USD")) {
		t.Errorf("Net = %v, want $1549.75", net)
	}
	if got := net.SignedString(); got != "+$1,549.75" {
		t.Errorf("SignedString = %q, want +$1,549.75", got)
	}

	// expenses exceeding income go negative
	overdrawn := Transactions{
		NewTransaction(TxIncome, MustParseDate("2025-04-01"), 100, "rent"),
		NewTransaction(TxExpense, MustParseDate("2025-04-02"), 350, "roof"),
	}
	if got := overdrawn.Net().SignedString(); got != "-$250.00" {
		t.Errorf("SignedString = %q, want -$250.00", got)
	}

	// the zero net renders as the dash placeholder
	if got := (Transactions{}).Net().SignedString(); got != "-" {
		t.Errorf("empty ledger SignedString = %q, want -", got)
	}
}
