package core

import (
	"encoding/json"
	"testing"
)

func TestComputeSummary(t *testing.T) {
	transactions := []Transaction{
		{Amount: Money{Cents: 50000}, Type: Income, Category: "salary"},
		{Amount: Money{Cents: 10000}, Type: Expense, Category: "food"},
		{Amount: Money{Cents: 10000}, Type: Expense, Category: "bills"},
		{Amount: Money{Cents: 2500}, Type: Income, Category: "food"},
	}
	s := ComputeSummary(transactions)
	if s.TotalIncome.Cents != 52500 {
		t.Fatalf("income: expected 52500, got %d", s.TotalIncome.Cents)
	}
	if s.TotalExpenses.Cents != 20000 {
		t.Fatalf("expenses: expected 20000, got %d", s.TotalExpenses.Cents)
	}
	if s.Balance.Cents != 32500 {
		t.Fatalf("balance: expected 32500, got %d", s.Balance.Cents)
	}
	// by_category accumulates both types under the same key.
	if s.ByCategory["food"].Cents != 12500 {
		t.Fatalf("food: expected 12500, got %d", s.ByCategory["food"].Cents)
	}
	if _, ok := s.ByCategory["health"]; ok {
		t.Fatal("unexpected key for category without transactions")
	}
}

func TestComputeSummaryNegativeBalance(t *testing.T) {
	s := ComputeSummary([]Transaction{
		{Amount: Money{Cents: 100}, Type: Income, Category: "other"},
		{Amount: Money{Cents: 5100}, Type: Expense, Category: "bills"},
	})
	if s.Balance.Cents != -5000 {
		t.Fatalf("expected -5000, got %d", s.Balance.Cents)
	}
}

func TestSummaryJSONShape(t *testing.T) {
	s := Summary{
		TotalIncome:   Money{Cents: 50000},
		TotalExpenses: Money{Cents: 20000},
		Balance:       Money{Cents: 30000},
		ByCategory:    map[string]Money{"food": {Cents: 10000}},
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Summary
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Balance.Cents != 30000 || decoded.ByCategory["food"].Cents != 10000 {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}
