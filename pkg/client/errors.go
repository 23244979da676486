package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog requests. Every *APIError unwraps to one of them.
var (
	// ErrNotFound is returned when the identifier does not resolve (404).
	ErrNotFound = errors.New("not found")

	// ErrNetworkFailure covers transport errors and non-2xx responses other than 404.
	ErrNetworkFailure = errors.New("network failure")
)

// ErrorClass represents a classification of request failures.
type ErrorClass string

const (
	// ErrorClassNotFound represents 404 responses.
	ErrorClassNotFound ErrorClass = "not_found"

	// ErrorClassClient represents other 4xx responses.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx responses.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents transport and timeout errors.
	ErrorClassNetwork ErrorClass = "network"
)

// APIError describes a failed catalog request.
type APIError struct {
	Endpoint   string
	StatusCode int // 0 for transport errors
	ErrorClass ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog %s error (status %d) for %s: %s: %v",
			e.ErrorClass, e.StatusCode, e.Endpoint, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog %s error (status %d) for %s: %s",
		e.ErrorClass, e.StatusCode, e.Endpoint, e.Message)
}

// Unwrap exposes both the sentinel for the class and the underlying cause.
func (e *APIError) Unwrap() []error {
	sentinel := ErrNetworkFailure
	if e.ErrorClass == ErrorClassNotFound {
		sentinel = ErrNotFound
	}
	if e.Err == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Err}
}

// classifyStatus maps an HTTP status to an error class. 2xx and 3xx yield "".
func classifyStatus(status int) ErrorClass {
	switch {
	case status == 404:
		return ErrorClassNotFound
	case status >= 400 && status < 500:
		return ErrorClassClient
	case status >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}
