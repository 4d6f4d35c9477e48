package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies why a model call failed.
type Kind string

const (
	KindTransport       Kind = "transport"
	KindTimeout         Kind = "timeout"
	KindRateLimited     Kind = "rate_limited"
	KindAuth            Kind = "auth"
	KindRequest         Kind = "request"
	KindInvalidResponse Kind = "invalid_response"
)

// Error is a classified model call failure.
type Error struct {
	Provider   string
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same request may succeed if sent again.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTransport, KindTimeout, KindRateLimited:
		return true
	}
	return false
}

// KindOf returns the kind of a classified error, or KindTransport for
// anything unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTransport
}

// ErrEmptyResponse is wrapped when a provider answers without any text.
var ErrEmptyResponse = errors.New("empty response")

// InvalidResponse builds an invalid_response error.
func InvalidResponse(provider string, err error) *Error {
	return &Error{Provider: provider, Kind: KindInvalidResponse, Err: err}
}

// FromStatus classifies an HTTP status returned by a provider API.
func FromStatus(provider string, status int, err error) *Error {
	kind := KindRequest
	switch {
	case status == 401 || status == 403:
		kind = KindAuth
	case status == 408:
		kind = KindTimeout
	case status == 429:
		kind = KindRateLimited
	case status >= 500:
		kind = KindTransport
	}
	return &Error{Provider: provider, Kind: kind, StatusCode: status, Err: err}
}

// FromTransport classifies an error that never produced an HTTP status.
func FromTransport(provider string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Provider: provider, Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Provider: provider, Kind: KindTimeout, Err: err}
	}
	return &Error{Provider: provider, Kind: KindTransport, Err: err}
}
