package finboard

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// TransactionType is the direction of a transaction: money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a transaction type name.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is one immutable ledger entry. The sign is implicit in Type:
// Amount is always non-negative.
type Transaction struct {
	ID       string
	User     string
	Title    string
	Type     TransactionType
	Amount   Money
	Date     Date
	Category string // optional category reference, "" when uncategorized
	Account  string // optional account reference
}

// Signed returns the amount with the sign implied by the type: positive for
// income, negative for expense.
func (t Transaction) Signed() Money {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Transactions is a list of ledger entries.
type Transactions []Transaction

// SortByDate sorts the transactions chronologically. The sort is stable, so
// same-day entries keep their original relative order.
func (txs Transactions) SortByDate() {
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })
}

// Filter returns an iterator over the transactions accepted by every predicate.
func (txs Transactions) Filter(predicates ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range txs {
			accept := true
			for _, p := range predicates {
				if !p(tx) {
					accept = false
					break
				}
			}
			if accept && !yield(tx) {
				return
			}
		}
	}
}

// ByType returns a predicate that filters transactions by type.
func ByType(tp TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == tp }
}

// ByCategory returns a predicate that filters transactions by category reference.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}

// InRange returns a predicate that filters transactions by date range.
func InRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

// OnOrBefore returns a predicate accepting transactions dated on or before day.
func OnOrBefore(day Date) func(Transaction) bool {
	return func(tx Transaction) bool { return !tx.Date.After(day) }
}
