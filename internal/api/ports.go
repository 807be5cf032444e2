package api

import (
	"context"

	"fintrack/internal/core"
)

// Ports consumed by the presentation tier. The Client implements all three;
// tests substitute fakes per concern.
type (
	TransactionLister interface {
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	TransactionWriter interface {
		CreateTransaction(ctx context.Context, in core.TransactionInput) (core.Transaction, error)
		UpdateTransaction(ctx context.Context, id int64, patch core.TransactionPatch) (core.Transaction, error)
		DeleteTransaction(ctx context.Context, id int64) error
	}

	SummaryReader interface {
		GetSummary(ctx context.Context) (core.Summary, error)
	}
)
