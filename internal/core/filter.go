package core

// FilterAll is the sentinel value meaning "no filtering" for either selector.
const FilterAll = "all"

// FilterTransactions narrows the list to entries matching both selections.
// Each selection is either FilterAll or one concrete value; the result keeps
// the source order and never mutates the input slice. Applying the same pair
// twice yields the same set.
func FilterTransactions(transactions []Transaction, category, typ string) []Transaction {
	if category == FilterAll && typ == FilterAll {
		return transactions
	}
	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if category != FilterAll && t.Category != category {
			continue
		}
		if typ != FilterAll && string(t.Type) != typ {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
