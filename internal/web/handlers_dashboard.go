package web

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

const recentCount = 5

type dashboardView struct {
	LoadFailed    bool
	TotalIncome   string
	TotalExpenses string
	Balance       string
	BalanceNeg    bool
	Recent        []transactionView
	HasRecent     bool
	Chart         chartView
}

// handleDashboard fetches the summary and the transaction list together.
// Both must succeed; a single failure renders the error state instead of a
// half-filled page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var (
		summary      core.Summary
		transactions []core.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.summary.GetSummary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.lister.ListTransactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Dashboard load failed",
			log.FieldError, err.Error())
		s.render(w, r, http.StatusInternalServerError, "dashboard.html", dashboardView{LoadFailed: true, Chart: buildChart(nil)})
		return
	}

	recent := transactions
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}

	s.render(w, r, http.StatusOK, "dashboard.html", dashboardView{
		TotalIncome:   formatUSD(summary.TotalIncome.Cents),
		TotalExpenses: formatUSD(summary.TotalExpenses.Cents),
		Balance:       formatUSD(summary.Balance.Cents),
		BalanceNeg:    summary.Balance.Cents < 0,
		Recent:        viewsOf(recent),
		HasRecent:     len(recent) > 0,
		Chart:         buildChart(summary.ByCategory),
	})
}
