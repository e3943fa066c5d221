// internal/sampler/errors.go
package sampler

import "errors"

// Failure taxonomy. Every failure of a started run wraps exactly one of
// ErrConnection, ErrRead or ErrDecode; match with errors.Is.
var (
	// ErrConnection: the endpoint could not be reached. No iteration ran.
	ErrConnection = errors.New("sampler: connection failed")

	// ErrRead: a read failed at the transport or returned a malformed block.
	ErrRead = errors.New("sampler: malformed register response")

	// ErrDecode: a well-formed block could not be turned into channel values.
	ErrDecode = errors.New("sampler: register decode failed")

	// ErrCancelled is returned by Wait-style helpers for a stopped run.
	// It is never carried by an EventError.
	ErrCancelled = errors.New("sampler: run cancelled")
)
