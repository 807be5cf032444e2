package core

import (
	"errors"
	"testing"
)

func validInput() TransactionInput {
	return TransactionInput{
		Description: "Groceries",
		Amount:      Money{Cents: 1250},
		Type:        Expense,
		Category:    "food",
		Date:        NewDate(2025, 1, 15),
	}
}

func TestTransactionInputValidate(t *testing.T) {
	if err := validInput().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*TransactionInput)
		want   error
	}{
		{"empty description", func(in *TransactionInput) { in.Description = "" }, ErrEmptyDescription},
		{"whitespace description", func(in *TransactionInput) { in.Description = "   \t" }, ErrEmptyDescription},
		{"zero amount", func(in *TransactionInput) { in.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(in *TransactionInput) { in.Amount = Money{Cents: -5} }, ErrInvalidAmount},
		{"bad type", func(in *TransactionInput) { in.Type = "transfer" }, ErrInvalidType},
		{"empty category", func(in *TransactionInput) { in.Category = "" }, ErrInvalidCategory},
		{"zero date", func(in *TransactionInput) { in.Date = Date{} }, ErrInvalidDate},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if err := in.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateRuleOrder(t *testing.T) {
	// When both form rules fail the description error is the one surfaced.
	in := validInput()
	in.Description = " "
	in.Amount = Money{}
	if err := in.Validate(); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected description error first, got %v", err)
	}
}

func TestTransactionPatchValidateAndApply(t *testing.T) {
	if err := (TransactionPatch{}).Validate(); err != nil {
		t.Fatalf("empty patch should validate, got %v", err)
	}
	if !(TransactionPatch{}).Empty() {
		t.Fatal("expected empty patch")
	}

	bad := "  "
	if err := (TransactionPatch{Description: &bad}).Validate(); !errors.Is(err, ErrEmptyDescription) {
		t.Fatal("expected description error")
	}

	tx := Transaction{
		ID:          7,
		Description: "old",
		Amount:      Money{Cents: 100},
		Type:        Expense,
		Category:    "food",
		Date:        NewDate(2025, 1, 1),
		CreatedAt:   NewDate(2025, 1, 1),
	}
	desc := "new"
	amount := Money{Cents: 999}
	(TransactionPatch{Description: &desc, Amount: &amount}).Apply(&tx)
	if tx.Description != "new" || tx.Amount.Cents != 999 {
		t.Fatalf("patch not applied: %+v", tx)
	}
	if tx.ID != 7 || tx.Category != "food" {
		t.Fatalf("patch touched unset fields: %+v", tx)
	}
}

func TestPatchFromSetsEveryField(t *testing.T) {
	p := PatchFrom(validInput())
	if p.Description == nil || p.Amount == nil || p.Type == nil || p.Category == nil || p.Date == nil {
		t.Fatalf("expected all fields set: %+v", p)
	}
	if *p.Description != "Groceries" || p.Amount.Cents != 1250 {
		t.Fatalf("wrong values: %+v", p)
	}
}
