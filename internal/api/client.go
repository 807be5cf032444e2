// Package api is the data-access layer over the remote transaction service.
// Each operation is a single request/response translation: no retries, no
// backoff, no caching. Failures are logged here and propagated to the caller,
// which owns the policy for surfacing or retrying them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// StatusError is returned for any response outside the 2xx range. It carries
// the status text so callers can log it without exposing it to users.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return e.Status
}

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentAPI)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ListTransactions fetches the full transaction set, fresh every call, in
// whatever order the service delivers it.
func (c *Client) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	var out []core.Transaction
	if err := c.do(ctx, log.OpList, http.MethodGet, "/transactions/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTransaction posts a new transaction and returns the service-assigned
// full record. ID and CreatedAt are never part of the request body.
func (c *Client) CreateTransaction(ctx context.Context, in core.TransactionInput) (core.Transaction, error) {
	var out core.Transaction
	if err := c.do(ctx, log.OpCreate, http.MethodPost, "/transactions/", in, &out); err != nil {
		return core.Transaction{}, err
	}
	return out, nil
}

// UpdateTransaction sends a partial update for id and returns the updated record.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, patch core.TransactionPatch) (core.Transaction, error) {
	var out core.Transaction
	if err := c.do(ctx, log.OpUpdate, http.MethodPut, "/transactions/"+strconv.FormatInt(id, 10), patch, &out); err != nil {
		return core.Transaction{}, err
	}
	return out, nil
}

// DeleteTransaction removes a transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, log.OpDelete, http.MethodDelete, "/transactions/"+strconv.FormatInt(id, 10), nil, nil)
}

// GetSummary fetches the aggregate summary, fresh every call.
func (c *Client) GetSummary(ctx context.Context) (core.Summary, error) {
	var out core.Summary
	if err := c.do(ctx, log.OpSummary, http.MethodGet, "/summary/", nil, &out); err != nil {
		return core.Summary{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Transport failures propagate unchanged apart from wrapping.
		c.logger.ErrorContext(ctx, "Transaction service request failed",
			log.FieldOperation, op,
			log.FieldMethod, method,
			log.FieldPath, path,
			log.FieldError, err.Error())
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		statusErr := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
		c.logger.ErrorContext(ctx, "Transaction service returned error status",
			log.FieldOperation, op,
			log.FieldMethod, method,
			log.FieldPath, path,
			log.FieldStatusCode, resp.StatusCode)
		return statusErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.ErrorContext(ctx, "Transaction service response decode failed",
			log.FieldOperation, op,
			log.FieldPath, path,
			log.FieldError, err.Error())
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
