package sankhya

import (
	"errors"
	"fmt"
)

var (
	ErrAuthentication = errors.New("sankhya: authentication failed")
	ErrSessionExpired = errors.New("sankhya: session expired")
	ErrCommunication  = errors.New("sankhya: communication failed")
	ErrTokenMissing   = errors.New("token not found in login response")
)

// AuthenticationError reports a failed login. The cached credential is left absent.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("sankhya authentication failed: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// SessionExpiredError reports that the ERP rejected a cached token. The cache has
// been cleared; callers retry the whole operation.
type SessionExpiredError struct {
	StatusCode int
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("sankhya session expired (HTTP %d), try again", e.StatusCode)
}

func (e *SessionExpiredError) Is(target error) bool { return target == ErrSessionExpired }

// CommunicationError wraps any other upstream failure. Body keeps the upstream
// payload (or transport message) for diagnostics.
type CommunicationError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *CommunicationError) Error() string {
	detail := e.Body
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("sankhya communication failed (HTTP %d): %s", e.StatusCode, detail)
	}
	return fmt.Sprintf("sankhya communication failed: %s", detail)
}

func (e *CommunicationError) Unwrap() error { return e.Err }

func (e *CommunicationError) Is(target error) bool { return target == ErrCommunication }
