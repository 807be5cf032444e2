package core

// Summary is the derived aggregate the service serves at /summary/.
// ByCategory has keys only for categories that have transactions, and the
// amounts accumulate income and expense alike.
type Summary struct {
	TotalIncome   Money            `json:"total_income"`
	TotalExpenses Money            `json:"total_expenses"`
	Balance       Money            `json:"balance"`
	ByCategory    map[string]Money `json:"by_category"`
}

// ComputeSummary aggregates the full transaction set. Balance may be negative.
func ComputeSummary(transactions []Transaction) Summary {
	s := Summary{ByCategory: make(map[string]Money)}
	for _, t := range transactions {
		switch t.Type {
		case Income:
			s.TotalIncome.Cents += t.Amount.Cents
		case Expense:
			s.TotalExpenses.Cents += t.Amount.Cents
		}
		cur := s.ByCategory[t.Category]
		cur.Cents += t.Amount.Cents
		s.ByCategory[t.Category] = cur
	}
	s.Balance.Cents = s.TotalIncome.Cents - s.TotalExpenses.Cents
	return s
}
