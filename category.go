package finboard

import "sort"

// Uncategorized is the bucket receiving transactions without a category.
const Uncategorized = "uncategorized"

// CategoryTotal is one slot of a category breakdown.
type CategoryTotal struct {
	Category string
	Total    Money
	Count    int
}

// CategoryBreakdown groups a transaction set by category, summing amounts.
// The caller is expected to pre-filter the set to one type and one period;
// the breakdown itself does not look at type or date. Entries come back
// sorted by descending total, ties keeping first-encountered order.
func CategoryBreakdown(txs Transactions) []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[string]int)

	for _, tx := range txs {
		category := tx.Category
		if category == "" {
			category = Uncategorized
		}
		i, ok := index[category]
		if !ok {
			i = len(totals)
			index[category] = i
			totals = append(totals, CategoryTotal{Category: category})
		}
		totals[i].Total = totals[i].Total.Add(tx.Amount)
		totals[i].Count++
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals
}
