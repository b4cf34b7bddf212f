package generate

import (
	"errors"
	"fmt"
	"strings"
)

// Class categorizes a generation failure and determines the retry policy
// applied to it.
type Class string

const (
	ClassRateLimited Class = "rate_limited"
	ClassAuth        Class = "auth"
	ClassBadRequest  Class = "bad_request"
	ClassUpstream    Class = "upstream_error"
	ClassNetwork     Class = "network"
	ClassCanceled    Class = "canceled"
	ClassGeneric     Class = "generic"
)

// Error is the terminal error surfaced after the retry budget is exhausted
// (or immediately, for non-retryable classes). Message is safe to show to
// end users; the raw upstream cause stays wrapped.
type Error struct {
	Class   Class
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// IsRetryable reports whether the class is retried under the bounded budget.
func (e *Error) IsRetryable() bool {
	switch e.Class {
	case ClassAuth, ClassBadRequest, ClassCanceled:
		return false
	}
	return true
}

// StatusError is the structured error the injectable upstream model is
// expected to surface: an HTTP-like status code plus the provider message.
type StatusError struct {
	Code int
	Msg  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Code, e.Msg)
}

// StatusCode returns the HTTP-like code carried by the error.
func (e *StatusError) StatusCode() int { return e.Code }

// statusFromError extracts an HTTP-like status code from err, preferring
// structured carriers over message sniffing.
func statusFromError(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode()
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return 429
	case strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "invalid api key"):
		return 401
	case strings.Contains(msg, "400"):
		return 400
	case strings.Contains(msg, "500") || strings.Contains(msg, "502") || strings.Contains(msg, "503") || strings.Contains(msg, "504"):
		return 500
	}
	return 0
}

// classify maps an upstream failure to its class, in the fixed evaluation
// order: rate limit, auth, bad request, server error, network, generic.
func classify(err error) Class {
	switch status := statusFromError(err); {
	case status == 429:
		return ClassRateLimited
	case status == 401:
		return ClassAuth
	case status == 400:
		return ClassBadRequest
	case status >= 500:
		return ClassUpstream
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "fetch") || strings.Contains(msg, "network") ||
		strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return ClassNetwork
	}
	return ClassGeneric
}

// userMessage is the stable user-facing sentence for each terminal class.
func userMessage(class Class, cause error) string {
	switch class {
	case ClassRateLimited:
		return "The service is experiencing high demand. Please try again in a moment."
	case ClassAuth:
		return "Authentication with the content service failed. Please check the API configuration."
	case ClassBadRequest:
		return "The request was invalid. Please rephrase your message and try again."
	case ClassUpstream:
		return "The content service is temporarily unavailable. Please try again shortly."
	case ClassNetwork:
		return "Unable to reach the content service. Please check your connection and try again."
	case ClassCanceled:
		return "The request was canceled before content generation finished."
	default:
		return fmt.Sprintf("Unable to generate content: %v", cause)
	}
}
