// Package exitcode contains all well-defined exit codes that sparsetest
// can return.
package exitcode

import (
	"errors"

	"github.com/slok/sparsetest/internal/model"
)

const (
	// OK is a successful run or a help request.
	OK = 0
	// Usage is a usage error like wrong cli syntax, wrong number of
	// parameters or bad sizes.
	Usage = 1
	// 2 is reserved because it is used by Go panic.

	// Open means the destination file could not be opened.
	Open = 3
	// Allocation means the internal buffers could not be allocated.
	Allocation = 5
	// Truncate means setting the file length failed.
	Truncate = 6
	// IO means a block write or the final stat failed.
	IO = 9
	// SizeMismatch means the final logical size is not the requested one.
	SizeMismatch = 10
	// SigInt means we got SIGINT or SIGTERM.
	SigInt = 130
)

// FromError returns the exit code for an error returned by a run.
func FromError(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, model.ErrSizeMismatch):
		return SizeMismatch
	case errors.Is(err, model.ErrInterrupted):
		return SigInt
	case errors.Is(err, model.ErrOpen):
		return Open
	case errors.Is(err, model.ErrAllocation):
		return Allocation
	case errors.Is(err, model.ErrTruncate):
		return Truncate
	case errors.Is(err, model.ErrWrite), errors.Is(err, model.ErrStat):
		return IO
	default:
		return Usage
	}
}
