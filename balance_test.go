package finboard

import (
	"testing"
	"time"
)

func tx(tp TransactionType, amount float64, on Date) Transaction {
	return Transaction{Type: tp, Amount: M(amount, "EUR"), Date: on}
}

func TestCurrentBalance(t *testing.T) {
	now := NewDate(2024, time.June, 1)
	accounts := []Account{
		{ID: "a", OpeningBalance: M(1000, "EUR")},
		{ID: "b", OpeningBalance: M(500, "EUR")},
	}
	txs := Transactions{
		tx(Income, 200, NewDate(2024, time.May, 10)),
		tx(Expense, 50, NewDate(2024, time.May, 20)),
	}

	if got, want := CurrentBalance(accounts, txs, now), M(1650, "EUR"); !got.Equal(want) {
		t.Errorf("CurrentBalance() = %s, want %s", got, want)
	}
}

func TestCurrentBalance_IgnoresFutureTransactions(t *testing.T) {
	now := NewDate(2024, time.June, 1)
	accounts := []Account{{ID: "a", OpeningBalance: M(100, "EUR")}}
	txs := Transactions{
		tx(Income, 40, NewDate(2024, time.May, 1)),
		tx(Income, 1000, NewDate(2024, time.June, 2)), // future, excluded
	}
	if got, want := CurrentBalance(accounts, txs, now), M(140, "EUR"); !got.Equal(want) {
		t.Errorf("CurrentBalance() = %s, want %s", got, want)
	}
}

func TestDailyBalances(t *testing.T) {
	today := NewDate(2024, time.June, 10)
	current := M(1650, "EUR")
	txs := Transactions{
		tx(Income, 200, NewDate(2024, time.June, 5)),
		tx(Expense, 50, NewDate(2024, time.June, 8)),
	}

	series := DailyBalances(current, txs, today)

	testCases := []struct {
		day  Date
		want Money
	}{
		// before the June 5 income the balance was 1650 +50 -200.
		{NewDate(2024, time.June, 5), M(1500, "EUR")},
		// before the June 8 expense it was 1650 +50.
		{NewDate(2024, time.June, 8), M(1700, "EUR")},
		{today, current},
	}
	for _, tc := range testCases {
		got, ok := series.Get(tc.day)
		if !ok {
			t.Errorf("no sample on %s", tc.day)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("sample on %s = %s, want %s", tc.day, got, tc.want)
		}
	}
	if series.Len() != 3 {
		t.Errorf("Len() = %d, want 3", series.Len())
	}
}

func TestDailyBalances_SameDayReducesToOneSample(t *testing.T) {
	today := NewDate(2024, time.June, 10)
	current := M(100, "EUR")
	day := NewDate(2024, time.June, 5)
	txs := Transactions{
		tx(Income, 30, day),
		tx(Expense, 10, day),
		tx(Income, 5, day),
	}

	series := DailyBalances(current, txs, today)

	if series.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (one per day plus today)", series.Len())
	}
	// the sample is the balance with all of the day's transactions undone,
	// not an average: 100 -30 +10 -5.
	got, _ := series.Get(day)
	if want := M(75, "EUR"); !got.Equal(want) {
		t.Errorf("sample on %s = %s, want %s", day, got, want)
	}
}

func TestDailyBalances_PinsTodayToCurrent(t *testing.T) {
	today := NewDate(2024, time.June, 10)
	current := M(500, "EUR")
	txs := Transactions{tx(Income, 100, today)}

	series := DailyBalances(current, txs, today)

	got, _ := series.Get(today)
	if !got.Equal(current) {
		t.Errorf("sample today = %s, want current %s", got, current)
	}
	day, latest := series.Latest()
	if day != today || !latest.Equal(current) {
		t.Errorf("Latest() = %s %s, want %s %s", day, latest, today, current)
	}
}

// Replaying the series deltas forward from the earliest sample must land back
// on the current balance.
func TestDailyBalances_SelfConsistent(t *testing.T) {
	today := NewDate(2024, time.June, 10)
	current := M(1234.56, "EUR")
	txs := Transactions{
		tx(Income, 10.50, NewDate(2024, time.June, 1)),
		tx(Expense, 3.25, NewDate(2024, time.June, 1)),
		tx(Expense, 99.99, NewDate(2024, time.June, 4)),
		tx(Income, 500, NewDate(2024, time.June, 7)),
		tx(Expense, 0.01, NewDate(2024, time.June, 9)),
	}

	series := DailyBalances(current, txs, today)

	_, balance := series.First()
	for _, x := range txs {
		balance = balance.Add(x.Signed())
	}
	if !balance.Equal(current) {
		t.Errorf("replayed balance = %s, want %s", balance, current)
	}
}

func TestReconcile(t *testing.T) {
	now := NewDate(2024, time.June, 1)
	accounts := []Account{
		{ID: "a", OpeningBalance: M(1000, "EUR"), CurrentBalance: M(1200, "EUR")},
		{ID: "b", OpeningBalance: M(500, "EUR"), CurrentBalance: M(450, "EUR")},
	}
	txs := Transactions{
		tx(Income, 200, NewDate(2024, time.May, 10)),
		tx(Expense, 50, NewDate(2024, time.May, 20)),
	}

	if err := Reconcile(accounts, txs, now); err != nil {
		t.Errorf("Reconcile() = %v, want nil", err)
	}

	// a CRUD layer that forgot to apply a delta is detected.
	accounts[0].CurrentBalance = M(1100, "EUR")
	if err := Reconcile(accounts, txs, now); err == nil {
		t.Error("Reconcile() = nil, want drift error")
	}
}

// Reconciliation holds after any sequence of create, update and delete as
// long as each write applies its exact delta to the account balance.
func TestReconcile_MutationSequence(t *testing.T) {
	now := NewDate(2024, time.June, 1)
	account := Account{ID: "a", OpeningBalance: M(100, "EUR"), CurrentBalance: M(100, "EUR")}
	var ledger Transactions

	apply := func(delta Money) { account.CurrentBalance = account.CurrentBalance.Add(delta) }
	check := func(step string) {
		t.Helper()
		if err := Reconcile([]Account{account}, ledger, now); err != nil {
			t.Fatalf("after %s: %v", step, err)
		}
	}

	// create an income of 200.
	entry := tx(Income, 200, NewDate(2024, time.May, 1))
	ledger = append(ledger, entry)
	apply(entry.Signed())
	check("create income")

	// create an expense of 80.
	entry = tx(Expense, 80, NewDate(2024, time.May, 2))
	ledger = append(ledger, entry)
	apply(entry.Signed())
	check("create expense")

	// update the expense to 120: undo the old effect, apply the new one.
	apply(ledger[1].Signed().Neg())
	ledger[1].Amount = M(120, "EUR")
	apply(ledger[1].Signed())
	check("update expense")

	// delete the income: undo its effect.
	apply(ledger[0].Signed().Neg())
	ledger = ledger[1:]
	check("delete income")
}
