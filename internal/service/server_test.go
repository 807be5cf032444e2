package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

func newTestServer() *Server {
	return NewServer(":0", storage.NewMemoryStore(), nil)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.Server.Handler.ServeHTTP(rr, req)
	return rr
}

func createOne(t *testing.T, srv *Server, body string) core.Transaction {
	t.Helper()
	rr := doJSON(t, srv, http.MethodPost, "/transactions/", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rr.Code, rr.Body.String())
	}
	var tx core.Transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &tx); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	return tx
}

func TestCreateAndListRoundTrip(t *testing.T) {
	srv := newTestServer()
	created := createOne(t, srv,
		`{"description":"Groceries","amount":12.5,"type":"expense","category":"food","date":"2025-01-15T00:00:00Z"}`)
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("server must assign id and created_at: %+v", created)
	}

	rr := doJSON(t, srv, http.MethodGet, "/transactions/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	var list []core.Transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(list))
	}
	got := list[0]
	if got.Description != "Groceries" || got.Amount.Cents != 1250 ||
		got.Type != core.Expense || got.Category != "food" ||
		got.Date.FormValue() != "2025-01-15" {
		t.Fatalf("visible fields must round trip: %+v", got)
	}
}

func TestCreateValidation(t *testing.T) {
	srv := newTestServer()
	cases := []struct {
		name string
		body string
		want string
	}{
		{"empty description", `{"description":"  ","amount":5,"type":"expense","category":"food","date":"2025-01-15T00:00:00Z"}`, "description is required"},
		{"zero amount", `{"description":"x","amount":0,"type":"expense","category":"food","date":"2025-01-15T00:00:00Z"}`, "amount must be greater than 0"},
		{"bad type", `{"description":"x","amount":5,"type":"transfer","category":"food","date":"2025-01-15T00:00:00Z"}`, "type must be income or expense"},
		{"garbage body", `{"description":`, "invalid request body"},
	}
	for _, tc := range cases {
		rr := doJSON(t, srv, http.MethodPost, "/transactions/", tc.body)
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: status=%d", tc.name, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), tc.want) {
			t.Fatalf("%s: body=%s", tc.name, rr.Body.String())
		}
	}
}

func TestListPaginationParams(t *testing.T) {
	srv := newTestServer()
	for _, desc := range []string{"a", "b", "c"} {
		createOne(t, srv, `{"description":"`+desc+`","amount":1,"type":"expense","category":"other","date":"2025-01-15T00:00:00Z"}`)
	}

	rr := doJSON(t, srv, http.MethodGet, "/transactions/?skip=1&limit=1", "")
	var list []core.Transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Description != "b" {
		t.Fatalf("pagination: %+v", list)
	}

	rr = doJSON(t, srv, http.MethodGet, "/transactions/?limit=0", "")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("limit=0 must be rejected, got %d", rr.Code)
	}
	rr = doJSON(t, srv, http.MethodGet, "/transactions/?skip=-1", "")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("skip=-1 must be rejected, got %d", rr.Code)
	}
}

func TestUpdatePartial(t *testing.T) {
	srv := newTestServer()
	created := createOne(t, srv,
		`{"description":"Rent","amount":900,"type":"expense","category":"bills","date":"2025-01-01T00:00:00Z"}`)

	rr := doJSON(t, srv, http.MethodPut, "/transactions/1", `{"amount":950.5}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update status=%d body=%s", rr.Code, rr.Body.String())
	}
	var updated core.Transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Amount.Cents != 95050 {
		t.Fatalf("amount: %+v", updated)
	}
	if updated.Description != "Rent" || updated.ID != created.ID {
		t.Fatalf("unset fields must survive: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt.Time) {
		t.Fatal("created_at must be immutable")
	}

	// Unknown id
	rr = doJSON(t, srv, http.MethodPut, "/transactions/99", `{"amount":1}`)
	if rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), "Transaction not found") {
		t.Fatalf("expected 404 detail, got %d %s", rr.Code, rr.Body.String())
	}

	// Invalid patch value
	rr = doJSON(t, srv, http.MethodPut, "/transactions/1", `{"amount":-3}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("negative amount patch must be rejected, got %d", rr.Code)
	}
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	srv := newTestServer()
	created := createOne(t, srv,
		`{"description":"Rent","amount":900,"type":"expense","category":"bills","date":"2025-01-01T00:00:00Z"}`)

	rr := doJSON(t, srv, http.MethodPut, "/transactions/1", `{}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("empty patch: %d %s", rr.Code, rr.Body.String())
	}
	var got core.Transaction
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != created.ID || got.Description != "Rent" || got.Amount.Cents != 90000 {
		t.Fatalf("empty patch must leave the record unchanged: %+v", got)
	}

	rr = doJSON(t, srv, http.MethodPut, "/transactions/99", `{}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("empty patch on a missing id must 404, got %d", rr.Code)
	}
}

func TestDeleteTransaction(t *testing.T) {
	srv := newTestServer()
	createOne(t, srv, `{"description":"Snack","amount":3,"type":"expense","category":"food","date":"2025-01-15T00:00:00Z"}`)

	rr := doJSON(t, srv, http.MethodDelete, "/transactions/1", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "deleted successfully") {
		t.Fatalf("delete: %d %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, srv, http.MethodDelete, "/transactions/1", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("second delete must 404, got %d", rr.Code)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	srv := newTestServer()
	createOne(t, srv, `{"description":"Pay","amount":500,"type":"income","category":"salary","date":"2025-01-01T00:00:00Z"}`)
	createOne(t, srv, `{"description":"Rent","amount":200,"type":"expense","category":"bills","date":"2025-01-02T00:00:00Z"}`)
	createOne(t, srv, `{"description":"Lunch","amount":100,"type":"expense","category":"food","date":"2025-01-03T00:00:00Z"}`)

	rr := doJSON(t, srv, http.MethodGet, "/summary/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("summary status=%d", rr.Code)
	}
	var s core.Summary
	if err := json.Unmarshal(rr.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.TotalIncome.Cents != 50000 || s.TotalExpenses.Cents != 30000 || s.Balance.Cents != 20000 {
		t.Fatalf("summary totals: %+v", s)
	}
	if s.ByCategory["salary"].Cents != 50000 || s.ByCategory["food"].Cents != 10000 {
		t.Fatalf("by_category: %+v", s.ByCategory)
	}
}

func TestRootAndHealth(t *testing.T) {
	srv := newTestServer()
	rr := doJSON(t, srv, http.MethodGet, "/", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Finance Tracker API") {
		t.Fatalf("root: %d %s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, srv, http.MethodGet, "/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rr.Code)
	}
}
