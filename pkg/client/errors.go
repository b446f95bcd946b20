package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the client.
var (
	// ErrRegistry is matched by every RestError and Error, so callers can
	// tell registry failures apart from input validation errors.
	ErrRegistry = errors.New("registry error")

	// ErrClientClosed is returned by operations on a closed client.
	ErrClientClosed = errors.New("client is closed")
)

// ErrorClass represents a classification of registry failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents transport failures that got no response.
	ErrorClassNetwork ErrorClass = "network"
)

// classifyStatus categorizes a non-2xx status code.
func classifyStatus(status int) ErrorClass {
	if status >= 500 {
		return ErrorClassServer
	}
	return ErrorClassClient
}

// RestError is returned when the registry answers with an unexpected
// status, or when the request fails before any response arrives.
type RestError struct {
	Method string
	URL    string

	// StatusCode is zero when no response was received.
	StatusCode int

	Class   ErrorClass
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RestError) Error() string {
	return "REST API exception: " + e.Message
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *RestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRegistry.
func (e *RestError) Is(target error) bool {
	return target == ErrRegistry
}

// HasStatusCode reports whether a response was received.
func (e *RestError) HasStatusCode() bool {
	return e.StatusCode != 0
}

func newStatusError(method, url string, status int) *RestError {
	return &RestError{
		Method:     method,
		URL:        url,
		StatusCode: status,
		Class:      classifyStatus(status),
		Message:    fmt.Sprintf("%s %s: %d %s", method, url, status, http.StatusText(status)),
	}
}

func newTransportError(method, url string, err error) *RestError {
	return &RestError{
		Method:  method,
		URL:     url,
		Class:   ErrorClassNetwork,
		Message: fmt.Sprintf("%s %s: %v", method, url, err),
		Err:     err,
	}
}

// Error wraps any other failure during a client operation, such as a body
// that does not decode.
type Error struct {
	// Op is the operation that failed, e.g. "get enhet".
	Op  string
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("brreg %s: %v", e.Op, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRegistry.
func (e *Error) Is(target error) bool {
	return target == ErrRegistry
}
