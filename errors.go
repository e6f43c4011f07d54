package farmdocs

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic across storage backends and front ends.
// They loosely map to HTTP-ish semantics but are not tied to any transport.
const (
	ECORPUS   = "corpus_not_found" // the documentation corpus root is absent
	EINTERNAL = "internal"         // internal error
	EINVALID  = "invalid"          // validation failed (includes empty queries)
	ENOTFOUND = "not_found"        // entity does not exist
	EREJECTED = "rejected"         // page filtered out by extraction heuristics
	ESTORE    = "store"            // persistence failure; fatal for an index run
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code and a
// human-readable message.
type Error struct {
	// Code is machine-readable, one of the constants above.
	Code string

	// Message is human-readable.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("farmdocs error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
