// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package attendance

import "errors"

// Kind classifies a failure for the client
type Kind string

const (
	KindInvalidRequest     Kind = "invalid_request"
	KindAlreadySubmitted   Kind = "already_submitted_today"
	KindStorageFailure     Kind = "storage_failure"
	KindPersistenceFailure Kind = "persistence_failure"
	KindStoreUnavailable   Kind = "store_unavailable"
)

// Sentinel errors returned by RecordStore implementations
var (
	ErrDuplicateLog = errors.New("exercise log already exists for this user and date")
	ErrUserNotFound = errors.New("user not found")
)

// Error carries a client-facing kind and message. Err is the internal
// cause and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or "" if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
