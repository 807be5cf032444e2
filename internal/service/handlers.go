package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/storage"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail mirrors the error body shape the original service emits.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Finance Tracker API"})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	skip := 0
	limit := defaultListLimit

	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeDetail(w, http.StatusUnprocessableEntity, "skip must be a non-negative integer")
			return
		}
		skip = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			writeDetail(w, http.StatusUnprocessableEntity, "limit must be between 1 and 1000")
			return
		}
		limit = n
	}

	transactions, err := s.store.List(r.Context(), skip, limit)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "List transactions failed", log.FieldError, err.Error())
		writeDetail(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in core.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := s.store.Create(r.Context(), in)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Create transaction failed",
			log.FieldError, err.Error(),
			log.FieldDescription, in.Description,
			log.FieldAmountCents, in.Amount.Cents)
		writeDetail(w, http.StatusInternalServerError, "failed to create transaction")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := s.store.Get(r.Context(), pathID(r))
	if errors.Is(err, storage.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Get transaction failed", log.FieldError, err.Error())
		writeDetail(w, http.StatusInternalServerError, "failed to load transaction")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var patch core.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := patch.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	id := pathID(r)

	// An empty patch is a no-op: return the stored record without writing.
	if patch.Empty() {
		t, err := s.store.Get(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Transaction not found")
			return
		}
		if err != nil {
			s.logger.ErrorContext(r.Context(), "Update transaction failed",
				log.FieldError, err.Error(),
				log.FieldTransactionID, id)
			writeDetail(w, http.StatusInternalServerError, "failed to update transaction")
			return
		}
		writeJSON(w, http.StatusOK, t)
		return
	}

	updated, err := s.store.Update(r.Context(), id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Update transaction failed",
			log.FieldError, err.Error(),
			log.FieldTransactionID, id)
		writeDetail(w, http.StatusInternalServerError, "failed to update transaction")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Delete transaction failed",
			log.FieldError, err.Error(),
			log.FieldTransactionID, id)
		writeDetail(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.store.List(r.Context(), 0, 0)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Summary aggregation failed", log.FieldError, err.Error())
		writeDetail(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	writeJSON(w, http.StatusOK, core.ComputeSummary(transactions))
}
