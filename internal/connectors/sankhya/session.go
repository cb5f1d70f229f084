package sankhya

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// maxResponseSize caps how much of an ERP response is read (10MB).
const maxResponseSize = 10 * 1024 * 1024

type loginResponse struct {
	BearerToken string `json:"bearerToken"`
	Token       string `json:"token"`
}

// Session owns the single cached ERP bearer token.
//
// The token slot is guarded by mu, but logins themselves are not serialized:
// two callers that both find the slot empty will each log in and the last one
// to finish overwrites the slot. Every token the ERP issues is independently
// valid, so either outcome leaves a usable credential cached.
type Session struct {
	config     Config
	httpClient *http.Client
	logger     *zap.Logger

	mu    sync.Mutex
	token string
}

// NewSession creates a session whose login calls are bounded by config.LoginTimeout.
func NewSession(config Config, logger *zap.Logger) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		config: config,
		httpClient: &http.Client{
			Timeout: config.LoginTimeout,
		},
		logger: logger,
	}, nil
}

// Acquire returns the cached token, logging in first when none is cached.
func (s *Session) Acquire(ctx context.Context) (string, error) {
	if token := s.cached(); token != "" {
		return token, nil
	}

	token, err := s.login(ctx)
	if err != nil {
		s.Invalidate()
		recordLogin(outcomeFailure)
		s.logger.Error("Sankhya login failed", zap.Error(err))
		return "", &AuthenticationError{Message: err.Error(), Err: err}
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	recordLogin(outcomeSuccess)
	s.logger.Info("Sankhya session established")
	return token, nil
}

// Invalidate drops the cached token so the next Acquire logs in again.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

func (s *Session) cached() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) login(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.LoginURL(), bytes.NewReader([]byte("{}")))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("token", s.config.Token)
	req.Header.Set("appkey", s.config.AppKey)
	req.Header.Set("username", s.config.Username)
	req.Header.Set("password", s.config.Password)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload loginResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("invalid login response: %w", err)
	}

	token := payload.BearerToken
	if token == "" {
		token = payload.Token
	}
	if token == "" {
		return "", ErrTokenMissing
	}

	return token, nil
}
