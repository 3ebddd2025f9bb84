package finboard

import "fmt"

// Account is a money holding (bank account, cash, card). CurrentBalance is
// maintained incrementally by the CRUD layer on every write touching the
// account; the engine recomputes an independent all-time balance from the
// full history, see CurrentBalance in balance.go.
type Account struct {
	ID             string
	User           string
	Name           string
	OpeningBalance Money
	CurrentBalance Money
	Currency       string
}

// Reconcile compares the derived all-time balance against the sum of the
// incrementally maintained account balances. The two agree as long as every
// past write applied the exact delta of the transaction it recorded. A
// non-nil error reports the discrepancy; it signals a missed or double
// applied delta somewhere in the history, not which write caused it.
func Reconcile(accounts []Account, txs Transactions, asOf Date) error {
	derived := CurrentBalance(accounts, txs, asOf)

	var maintained Money
	for _, a := range accounts {
		maintained = maintained.Add(a.CurrentBalance)
	}

	if !derived.Equal(maintained) {
		return fmt.Errorf("balance mismatch: derived %s, maintained %s (drift %s)",
			derived, maintained, derived.Sub(maintained).SignedString())
	}
	return nil
}
