package web

import (
	"strconv"

	"fintrack/internal/core"
)

// transactionView is the template-friendly projection of a transaction.
type transactionView struct {
	ID          int64
	Description string
	Category    string
	Type        string
	Date        string
	Amount      string
	Signed      string
	IsExpense   bool
}

func viewOf(t core.Transaction) transactionView {
	sign := "+"
	if t.Type == core.Expense {
		sign = "-"
	}
	return transactionView{
		ID:          t.ID,
		Description: t.Description,
		Category:    t.Category,
		Type:        string(t.Type),
		Date:        t.Date.Short(),
		Amount:      formatUSD(t.Amount.Cents),
		Signed:      sign + formatUSD(t.Amount.Cents),
		IsExpense:   t.Type == core.Expense,
	}
}

func viewsOf(ts []core.Transaction) []transactionView {
	out := make([]transactionView, 0, len(ts))
	for _, t := range ts {
		out = append(out, viewOf(t))
	}
	return out
}

// formatUSD renders cents as "$12.34", with the minus sign ahead of the
// currency symbol for negative values.
func formatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	dollars := cents / 100
	rem := cents % 100
	s := "$" + strconv.FormatInt(dollars, 10) + "."
	if rem < 10 {
		s += "0"
	}
	s += strconv.FormatInt(rem, 10)
	if neg {
		return "-" + s
	}
	return s
}
