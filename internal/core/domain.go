package core

import (
	"errors"
	"strings"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Transaction is the full record as the transaction service returns it.
	// ID and CreatedAt are service-assigned and never sent on create/update.
	Transaction struct {
		ID          int64           `json:"id"`
		Description string          `json:"description"`
		Amount      Money           `json:"amount"`
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"`
		Date        Date            `json:"date"`
		CreatedAt   Date            `json:"created_at"`
	}

	// TransactionInput is the create payload: Transaction minus ID/CreatedAt.
	TransactionInput struct {
		Description string          `json:"description"`
		Amount      Money           `json:"amount"`
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"`
		Date        Date            `json:"date"`
	}

	// TransactionPatch carries any subset of editable fields for a partial
	// update. ID and CreatedAt are deliberately absent.
	TransactionPatch struct {
		Description *string          `json:"description,omitempty"`
		Amount      *Money           `json:"amount,omitempty"`
		Type        *TransactionType `json:"type,omitempty"`
		Category    *string          `json:"category,omitempty"`
		Date        *Date            `json:"date,omitempty"`
	}
)

// Categories is the closed vocabulary offered by the form and filter widgets.
// The service accepts any non-empty category up to 50 characters.
var Categories = []string{
	"food",
	"transport",
	"shopping",
	"bills",
	"entertainment",
	"health",
	"education",
	"salary",
	"freelance",
	"other",
}

var (
	ErrEmptyDescription   = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description too long (max 255 characters)")
	ErrInvalidAmount      = errors.New("amount must be greater than 0")
	ErrInvalidType        = errors.New("type must be income or expense")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidDate        = errors.New("invalid date")
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Validate checks a submission. The first failing rule wins, and the rule
// order matches what the form surfaces: description first, amount second.
// The remaining rules guard the service boundary; a well-formed form cannot
// trip them because type, category and date come from closed widgets.
func (in TransactionInput) Validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}
	if in.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if len(in.Description) > 255 {
		return ErrDescriptionTooLong
	}
	if !in.Type.Valid() {
		return ErrInvalidType
	}
	if c := strings.TrimSpace(in.Category); c == "" || len(c) > 50 {
		return ErrInvalidCategory
	}
	if in.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Validate checks only the fields the patch actually sets.
func (p TransactionPatch) Validate() error {
	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			return ErrEmptyDescription
		}
		if len(*p.Description) > 255 {
			return ErrDescriptionTooLong
		}
	}
	if p.Amount != nil && p.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if p.Type != nil && !p.Type.Valid() {
		return ErrInvalidType
	}
	if p.Category != nil {
		if c := strings.TrimSpace(*p.Category); c == "" || len(c) > 50 {
			return ErrInvalidCategory
		}
	}
	if p.Date != nil && p.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Empty reports whether the patch sets no fields at all.
func (p TransactionPatch) Empty() bool {
	return p.Description == nil && p.Amount == nil && p.Type == nil &&
		p.Category == nil && p.Date == nil
}

// Apply copies the set fields onto t, leaving ID and CreatedAt untouched.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
}

// PatchFrom builds the patch that turns a stored transaction into the
// submitted input, setting every editable field.
func PatchFrom(in TransactionInput) TransactionPatch {
	desc := in.Description
	amount := in.Amount
	typ := in.Type
	cat := in.Category
	date := in.Date
	return TransactionPatch{
		Description: &desc,
		Amount:      &amount,
		Type:        &typ,
		Category:    &cat,
		Date:        &date,
	}
}
