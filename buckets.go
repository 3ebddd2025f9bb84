package finboard

// MonthBucket is one calendar-month aggregation slot. Income and Expense hold
// the summed totals of actual transactions plus, in future months, projected
// recurring occurrences.
type MonthBucket struct {
	Month   MonthKey
	Income  Money
	Expense Money
}

// Net returns income minus expense for the bucket.
func (b MonthBucket) Net() Money { return b.Income.Sub(b.Expense) }

// BucketWindow bounds the monthly overview around the current month.
type BucketWindow struct {
	Back  int // months before the current one
	Ahead int // months after the current one
}

// DefaultBucketWindow is the window the dashboard displays.
var DefaultBucketWindow = BucketWindow{Back: 5, Ahead: 6}

// MonthlyBuckets aggregates transactions into an ordered, zero-initialized
// window of calendar-month buckets around now, then merges projected
// occurrences of the active recurring definitions into future buckets.
//
// A projected occurrence is only merged when its month is strictly after the
// current month and within the window's last month: a past or current bucket
// never receives projections, even for an occurrence still ahead of now, since
// materialization will turn it into an actual inside that same bucket.
// Definitions are read-only here; the stored NextOccurrence pointer is not
// advanced.
//
// The returned slice is ordered oldest month first, one bucket per month in
// the window whether or not any data fell into it.
func MonthlyBuckets(now Date, window BucketWindow, txs Transactions, defs []RecurringDefinition) []MonthBucket {
	first := now.AddMonths(-window.Back).MonthOf()
	last := now.AddMonths(window.Ahead).MonthOf()

	// fix the bucket order at construction time.
	buckets := make([]MonthBucket, 0, window.Back+window.Ahead+1)
	index := make(map[MonthKey]int)
	for k := first; !last.Before(k); k = k.Next() {
		index[k] = len(buckets)
		buckets = append(buckets, MonthBucket{Month: k})
	}

	span := NewRange(first.Start(), last.End())

	// pass 1: actual transactions.
	for tx := range txs.Filter(InRange(span)) {
		i := index[tx.Date.MonthOf()]
		switch tx.Type {
		case Income:
			buckets[i].Income = buckets[i].Income.Add(tx.Amount)
		case Expense:
			buckets[i].Expense = buckets[i].Expense.Add(tx.Amount)
		}
	}

	// pass 2: projected occurrences, strictly future months only.
	current := now.MonthOf()
	upper := last.End()
	for _, def := range defs {
		if !def.Active {
			continue
		}
		for on := range def.Occurrences(upper) {
			if !current.Before(on.MonthOf()) {
				continue
			}
			i := index[on.MonthOf()]
			switch def.Type {
			case Income:
				buckets[i].Income = buckets[i].Income.Add(def.Amount)
			case Expense:
				buckets[i].Expense = buckets[i].Expense.Add(def.Amount)
			}
		}
	}

	return buckets
}
