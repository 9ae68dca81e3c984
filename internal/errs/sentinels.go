// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested event does not exist for the caller.
	// It deliberately covers both "no such id" and "id owned by someone else"
	// so that existence of other users' events never leaks.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates the request carried no resolvable session.
	ErrUnauthenticated = errors.New("unauthenticated")
)
