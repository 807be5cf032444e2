// Package service implements the transaction service: the JSON REST API the
// web UI consumes. It owns persistence through the storage package and serves
// the /transactions/ and /summary/ contract.
package service

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"fintrack/internal/log"
	"fintrack/internal/metrics"
	"fintrack/internal/storage"
)

type Server struct {
	http.Server
	store   storage.Store
	logger  *log.Logger
	metrics *metrics.HTTPMetrics
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, store storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentService)
	}

	router := mux.NewRouter()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: router,
		},
		store:   store,
		logger:  logger,
		metrics: metrics.NewHTTPMetrics("fintrack_api"),
	}

	router.Use(s.requestMiddleware)

	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/transactions/", s.handleListTransactions).Methods(http.MethodGet)
	router.HandleFunc("/transactions/", s.handleCreateTransaction).Methods(http.MethodPost)
	router.HandleFunc("/transactions/{id:[0-9]+}", s.handleGetTransaction).Methods(http.MethodGet)
	router.HandleFunc("/transactions/{id:[0-9]+}", s.handleUpdateTransaction).Methods(http.MethodPut)
	router.HandleFunc("/transactions/{id:[0-9]+}", s.handleDeleteTransaction).Methods(http.MethodDelete)
	router.HandleFunc("/summary/", s.handleSummary).Methods(http.MethodGet)

	return s
}

// requestMiddleware stamps a request id, logs start/completion and records
// request metrics.
func (s *Server) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		logger := s.logger.With(log.FieldRequestID, requestID)
		ctx := r.Context()
		logger.DebugContext(ctx, "Request started",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path)

		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r.WithContext(ctx))

		elapsed := time.Since(start)
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		s.metrics.Observe(r.Method, route, rw.status, elapsed)
		logger.InfoContext(ctx, "Request completed",
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.status,
			log.FieldDuration, elapsed.Milliseconds())
	})
}

// statusWriter captures the status code written by a handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
