package finboard

import (
	"iter"
	"slices"
	"sort"
)

// CurrentBalance derives the all-time balance: the sum of every account's
// opening balance plus the net of all transactions dated on or before asOf.
// Future-dated transactions do not contribute.
func CurrentBalance(accounts []Account, txs Transactions, asOf Date) Money {
	var balance Money
	for _, a := range accounts {
		balance = balance.Add(a.OpeningBalance)
	}
	for tx := range txs.Filter(OnOrBefore(asOf)) {
		balance = balance.Add(tx.Signed())
	}
	return balance
}

// BalanceSeries stores a chronological series of balance samples, one per
// calendar day. Days are unique and the series is always sorted.
type BalanceSeries struct {
	days   []Date
	values []Money
}

// Len returns the number of samples in the series.
func (s *BalanceSeries) Len() int { return len(s.days) }

// Get returns the sample at 'day' and true, or zero value and false.
func (s *BalanceSeries) Get(day Date) (Money, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.values[i], true
	}
	return Money{}, false
}

// First returns the earliest date and value in the series.
// If the series is empty, it returns zero values.
func (s *BalanceSeries) First() (day Date, value Money) {
	if len(s.days) == 0 {
		return Date{}, Money{}
	}
	return s.days[0], s.values[0]
}

// Latest returns the latest date and value in the series.
// If the series is empty, it returns zero values.
func (s *BalanceSeries) Latest() (day Date, value Money) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, Money{}
	}
	return s.days[last], s.values[last]
}

// Append adds a sample to the series. An existing sample at that date is
// overwritten.
func (s *BalanceSeries) Append(on Date, v Money) *BalanceSeries {
	if i := slices.Index(s.days, on); i >= 0 {
		s.values[i] = v
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, v)
	s.sort()
	return s
}

func (s *BalanceSeries) sort() {
	sort.Sort(chronological{s})
}

// chronological is a private implementation to keep the series sorted.
type chronological struct{ *BalanceSeries }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (s *BalanceSeries) Values() iter.Seq2[Date, Money] {
	return func(yield func(Date, Money) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// DailyBalances reconstructs the balance at the end of each day in the
// trailing window by walking the window's transactions in reverse
// chronological order from the current balance, undoing each transaction's
// delta. The sample recorded for a day is the balance before all of that
// day's transactions; when several transactions share a day they reduce to
// that single sample. 'today' is always pinned to the current balance so the
// newest sample reflects the present.
func DailyBalances(current Money, txs Transactions, today Date) *BalanceSeries {
	sorted := make(Transactions, len(txs))
	copy(sorted, txs)
	sorted.SortByDate()

	series := &BalanceSeries{}
	balance := current
	for i := len(sorted) - 1; i >= 0; i-- {
		tx := sorted[i]
		balance = balance.Sub(tx.Signed())
		// walking backward, the last write for a day wins: the balance with
		// every transaction of that day undone.
		series.Append(tx.Date, balance)
	}
	series.Append(today, current)
	return series
}
