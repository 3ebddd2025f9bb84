package finboard

import "iter"

// RecurringDefinition describes a transaction that repeats on a schedule.
// NextOccurrence is the single mutable pointer driving both projection and
// materialization: it only ever moves forward, and only the Materializer
// moves it.
type RecurringDefinition struct {
	ID             string
	User           string
	Title          string
	Type           TransactionType
	Amount         Money
	Frequency      Frequency
	NextOccurrence Date
	Active         bool
	Category       string
	Account        string
}

// Due reports whether the definition has an occurrence at or before now.
func (d RecurringDefinition) Due(now Date) bool {
	return d.Active && !d.NextOccurrence.After(now)
}

// Occurrences returns an iterator over the definition's occurrence dates from
// the stored NextOccurrence through 'until' inclusive. Projection is
// read-only: the stored pointer is never touched. The iteration is finite
// because Frequency.Next is strictly monotonic.
func (d RecurringDefinition) Occurrences(until Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := d.NextOccurrence; !on.After(until); on = d.Frequency.Next(on) {
			if !yield(on) {
				return
			}
		}
	}
}

// transaction builds the concrete ledger entry for one occurrence.
func (d RecurringDefinition) transaction(id string, on Date) Transaction {
	return Transaction{
		ID:       id,
		User:     d.User,
		Title:    d.Title,
		Type:     d.Type,
		Amount:   d.Amount,
		Date:     on,
		Category: d.Category,
		Account:  d.Account,
	}
}
