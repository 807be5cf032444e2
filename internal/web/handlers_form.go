package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"fintrack/internal/api"
	"fintrack/internal/core"
	"fintrack/internal/log"
)

// User-facing messages for the two rules the form can actually trip. The
// selectors and the date picker are closed widgets, so everything else only
// fails on hand-crafted requests and gets the generic save error.
const (
	msgDescriptionRequired = "Description is required"
	msgAmountInvalid       = "Amount must be greater than 0"
	msgSaveFailed          = "Failed to save transaction"
)

type formView struct {
	Title       string
	Action      string
	Submit      string
	Description string
	Amount      string
	Type        string
	Category    string
	DateValue   string
	Categories  []string
	ErrorMsg    string
}

func defaultForm() formView {
	return formView{
		Title:      "Add Transaction",
		Action:     "/transactions/new",
		Submit:     "Add Transaction",
		Amount:     "0",
		Type:       string(core.Expense),
		Category:   "food",
		DateValue:  core.Today().FormValue(),
		Categories: core.Categories,
	}
}

// handleNewTransaction shows the add form and processes its submission.
func (s *Server) handleNewTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, r, http.StatusOK, "transaction_form.html", defaultForm())
		return
	}

	view, in, ok := s.parseForm(w, r, defaultForm())
	if !ok {
		return
	}

	if _, err := s.writer.CreateTransaction(r.Context(), in); err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Transaction create failed",
			log.FieldError, err.Error(),
			log.FieldDescription, in.Description,
			log.FieldAmountCents, in.Amount.Cents)
		view.ErrorMsg = msgSaveFailed
		s.render(w, r, http.StatusInternalServerError, "transaction_form.html", view)
		return
	}

	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}

// handleEditTransaction pre-fills the form from the stored record and
// processes the full-record update. An id that no longer exists sends the
// browser back to the list without an error page.
func (s *Server) handleEditTransaction(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if r.Method == http.MethodGet {
		transactions, err := s.lister.ListTransactions(r.Context())
		if err != nil {
			log.FromContext(r.Context()).ErrorContext(r.Context(), "Transaction lookup failed",
				log.FieldError, err.Error(),
				log.FieldTransactionID, id)
			http.Redirect(w, r, "/transactions", http.StatusSeeOther)
			return
		}
		for _, t := range transactions {
			if t.ID == id {
				s.render(w, r, http.StatusOK, "transaction_form.html", editForm(t))
				return
			}
		}
		http.Redirect(w, r, "/transactions", http.StatusSeeOther)
		return
	}

	base := defaultForm()
	base.Title = "Edit Transaction"
	base.Action = "/transactions/" + strconv.FormatInt(id, 10) + "/edit"
	base.Submit = "Update Transaction"
	view, in, ok := s.parseForm(w, r, base)
	if !ok {
		return
	}

	if _, err := s.writer.UpdateTransaction(r.Context(), id, core.PatchFrom(in)); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			http.Redirect(w, r, "/transactions", http.StatusSeeOther)
			return
		}
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Transaction update failed",
			log.FieldError, err.Error(),
			log.FieldTransactionID, id)
		view.ErrorMsg = msgSaveFailed
		s.render(w, r, http.StatusInternalServerError, "transaction_form.html", view)
		return
	}

	http.Redirect(w, r, "/transactions", http.StatusSeeOther)
}

func editForm(t core.Transaction) formView {
	return formView{
		Title:       "Edit Transaction",
		Action:      "/transactions/" + strconv.FormatInt(t.ID, 10) + "/edit",
		Submit:      "Update Transaction",
		Description: t.Description,
		Amount:      t.Amount.String(),
		Type:        string(t.Type),
		Category:    t.Category,
		DateValue:   t.Date.FormValue(),
		Categories:  core.Categories,
	}
}

// parseForm reads and validates a submission. On a validation failure it
// renders the form again with the submitted values and returns ok=false.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request, view formView) (formView, core.TransactionInput, bool) {
	if err := r.ParseForm(); err != nil {
		view.ErrorMsg = msgSaveFailed
		s.render(w, r, http.StatusBadRequest, "transaction_form.html", view)
		return view, core.TransactionInput{}, false
	}

	view.Description = strings.TrimSpace(r.Form.Get("description"))
	view.Amount = strings.TrimSpace(r.Form.Get("amount"))
	if v := r.Form.Get("type"); v != "" {
		view.Type = v
	}
	if v := r.Form.Get("category"); v != "" {
		view.Category = v
	}
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		view.DateValue = v
	}

	fail := func(msg string) (formView, core.TransactionInput, bool) {
		view.ErrorMsg = msg
		s.render(w, r, http.StatusUnprocessableEntity, "transaction_form.html", view)
		return view, core.TransactionInput{}, false
	}

	if view.Description == "" {
		return fail(msgDescriptionRequired)
	}
	cents, err := core.ParseDecimalToCents(view.Amount)
	if err != nil {
		return fail(msgAmountInvalid)
	}
	date, err := core.ParseDate(view.DateValue)
	if err != nil {
		return fail(msgSaveFailed)
	}

	in := core.TransactionInput{
		Description: view.Description,
		Amount:      core.Money{Cents: cents},
		Type:        core.TransactionType(view.Type),
		Category:    view.Category,
		Date:        date,
	}
	if err := in.Validate(); err != nil {
		return fail(msgSaveFailed)
	}
	return view, in, true
}
