// Package repository defines error types and helpers that are reused
// across multiple repositories. Sentinel values allow higher layers such
// as handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to perform an operation on a resource owned by
// someone else.
package repository

import (
	"errors"
	"strings"
)

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update cannot be performed because
// of conflicting state, such as marking an already-paid payment as
// paid again. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// isMissingTable reports whether err is MySQL error 1146 ("table doesn't
// exist"). Some deployments provision entity tables lazily; list queries
// treat a missing table the same as zero rows so that a portfolio with no
// contracts yet still renders zero-valued analytics instead of an error.
func isMissingTable(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "1146")
}
