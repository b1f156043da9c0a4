package errors

import (
	"errors"
	"fmt"
)

// FetchErrorType classifies transport-level failures.
type FetchErrorType string

const (
	FetchErrorNetwork        FetchErrorType = "network"
	FetchErrorServer         FetchErrorType = "server_error"
	FetchErrorInvalidRequest FetchErrorType = "invalid_request"
	FetchErrorExhausted      FetchErrorType = "exhausted"
)

// FetchError represents a failed HTTP fetch. Network and server errors are
// transient and retried locally; an exhausted error is terminal and records
// how many attempts were made.
type FetchError struct {
	Type     FetchErrorType
	URL      string
	Code     int
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	switch {
	case e.Type == FetchErrorExhausted:
		return fmt.Sprintf("fetch exhausted after %d attempts for %s: %v", e.Attempts, e.URL, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s error for %s: %v", e.Type, e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s error (code %d) for %s", e.Type, e.Code, e.URL)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsRetryable reports whether a fetch error type should be retried.
func IsRetryable(t FetchErrorType) bool {
	switch t {
	case FetchErrorNetwork, FetchErrorServer:
		return true
	default:
		return false
	}
}

// IsRetryableError reports whether err is a fetch error worth retrying.
// Parse errors and malformed requests are never retryable: refetching does
// not change page structure.
func IsRetryableError(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return IsRetryable(fe.Type)
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return false
	}
	return false
}

// IsExhausted reports whether err is a terminal fetch failure.
func IsExhausted(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Type == FetchErrorExhausted
}

// ParseKind identifies which required page structure was absent or malformed.
type ParseKind string

const (
	ParseMissingSummary  ParseKind = "missing_summary"
	ParseMissingSnapshot ParseKind = "missing_snapshot"
	ParseInvalidSnapshot ParseKind = "invalid_snapshot"
	ParseMissingUserNode ParseKind = "missing_user_node"
)

// ParseError represents structurally absent or malformed page data. It is
// fatal for the current run.
type ParseError struct {
	Kind    ParseKind
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Kind, e.Message)
}

// ParseKindOf returns the parse failure kind of err, or "" when err is not a
// parse error.
func ParseKindOf(err error) ParseKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
