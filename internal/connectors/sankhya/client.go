package sankhya

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client issues gateway calls carrying the session's bearer token.
//
// It never retries on its own: a rejected token clears the session and surfaces
// as *SessionExpiredError, and the caller decides whether to run the whole
// operation again.
type Client struct {
	session    *Session
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client bound to session. Gateway calls have no client-side
// timeout; they are bounded only by the caller's context.
func NewClient(session *Session, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		session:    session,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Execute sends body as JSON to rawURL and decodes the response into out (when
// out is non-nil). Numbers are decoded as json.Number.
func (c *Client) Execute(ctx context.Context, method, rawURL string, body, out any) error {
	service := serviceLabel(rawURL)

	token, err := c.session.Acquire(ctx)
	if err != nil {
		recordRequest(service, outcomeAuthError, time.Now())
		return err
	}

	requestID := uuid.NewString()
	started := time.Now()
	log := c.logger.With(zap.String("service", service), zap.String("request_id", requestID))

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("sankhya: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), rawURL, reader)
	if err != nil {
		return fmt.Errorf("sankhya: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordRequest(service, outcomeFailure, started)
		log.Error("Sankhya request failed", zap.Error(err))
		return &CommunicationError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		recordRequest(service, outcomeFailure, started)
		return &CommunicationError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	log = log.With(zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(started)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.session.Invalidate()
		recordRequest(service, outcomeExpired, started)
		log.Warn("Sankhya rejected session token")
		return &SessionExpiredError{StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		recordRequest(service, outcomeFailure, started)
		log.Error("Sankhya request returned an error", zap.ByteString("body", payload))
		return &CommunicationError{StatusCode: resp.StatusCode, Body: diagnosticBody(payload)}
	}

	var envelope serviceResponse
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Status == serviceStatusError {
		recordRequest(service, outcomeFailure, started)
		log.Error("Sankhya service reported an error", zap.String("status_message", envelope.StatusMessage))
		return &CommunicationError{StatusCode: resp.StatusCode, Body: envelope.StatusMessage}
	}

	if out != nil && len(bytes.TrimSpace(payload)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(payload))
		dec.UseNumber()
		if err := dec.Decode(out); err != nil {
			recordRequest(service, outcomeFailure, started)
			return &CommunicationError{StatusCode: resp.StatusCode, Body: diagnosticBody(payload), Err: err}
		}
	}

	recordRequest(service, outcomeSuccess, started)
	log.Debug("Sankhya request completed")
	return nil
}

// diagnosticBody keeps the upstream payload readable in error messages: JSON is
// compacted, anything else is passed through trimmed.
func diagnosticBody(payload []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err == nil {
		return buf.String()
	}
	s := strings.TrimSpace(string(payload))
	if s == "" {
		return strconv.Quote("")
	}
	return s
}

func serviceLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	if name := u.Query().Get("serviceName"); name != "" {
		return name
	}
	return strings.TrimPrefix(u.Path, "/")
}

// IsSessionExpired reports whether err means the caller should retry the operation.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
