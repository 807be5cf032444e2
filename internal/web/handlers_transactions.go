package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

type listView struct {
	Transactions []transactionView
	HasResults   bool
	Categories   []string
	Category     string
	Type         string
	Filtered     bool
	ErrorMsg     string
}

// handleListTransactions renders the full list, narrowed by the category and
// type selectors. Filtering happens here on the freshly fetched set; the
// service always returns everything.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	category := filterParam(r.URL.Query().Get("category"))
	typ := filterParam(r.URL.Query().Get("type"))

	transactions, err := s.lister.ListTransactions(r.Context())
	if err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Transaction list load failed",
			log.FieldError, err.Error())
		s.render(w, r, http.StatusInternalServerError, "transactions.html", listView{
			Categories: core.Categories,
			Category:   category,
			Type:       typ,
			ErrorMsg:   "Failed to load transactions",
		})
		return
	}

	filtered := core.FilterTransactions(transactions, category, typ)
	s.render(w, r, http.StatusOK, "transactions.html", listView{
		Transactions: viewsOf(filtered),
		HasResults:   len(filtered) > 0,
		Categories:   core.Categories,
		Category:     category,
		Type:         typ,
		Filtered:     category != core.FilterAll || typ != core.FilterAll,
	})
}

// handleDeleteTransaction removes one transaction and sends the browser back
// to the list with the active filters intact. A failed delete re-renders the
// current list with an error banner instead of redirecting.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	category := filterParam(r.Form.Get("category"))
	typ := filterParam(r.Form.Get("type"))

	if err := s.writer.DeleteTransaction(r.Context(), id); err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Transaction delete failed",
			log.FieldError, err.Error(),
			log.FieldTransactionID, id)

		transactions, listErr := s.lister.ListTransactions(r.Context())
		if listErr != nil {
			transactions = nil
		}
		filtered := core.FilterTransactions(transactions, category, typ)
		s.render(w, r, http.StatusInternalServerError, "transactions.html", listView{
			Transactions: viewsOf(filtered),
			HasResults:   len(filtered) > 0,
			Categories:   core.Categories,
			Category:     category,
			Type:         typ,
			Filtered:     category != core.FilterAll || typ != core.FilterAll,
			ErrorMsg:     "Failed to delete transaction",
		})
		return
	}

	http.Redirect(w, r, listURL(category, typ), http.StatusSeeOther)
}

// filterParam normalizes a selector value, treating absent or blank as "all".
func filterParam(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return core.FilterAll
	}
	return v
}

// listURL builds the list path carrying only non-default filters.
func listURL(category, typ string) string {
	q := url.Values{}
	if category != core.FilterAll {
		q.Set("category", category)
	}
	if typ != core.FilterAll {
		q.Set("type", typ)
	}
	if len(q) == 0 {
		return "/transactions"
	}
	return "/transactions?" + q.Encode()
}
