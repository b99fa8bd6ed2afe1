package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrBadParameter is returned when a size argument can't be parsed.
	ErrBadParameter = errors.New("bad parameter")
	// ErrUsage is returned when the command line is not well formed.
	ErrUsage = errors.New("usage error")
	// ErrOpen is returned when the destination file can't be opened.
	ErrOpen = errors.New("could not open destination file")
	// ErrAllocation is returned when the internal buffers can't be allocated.
	ErrAllocation = errors.New("allocation failed")
	// ErrTruncate is returned when setting the file length fails.
	ErrTruncate = errors.New("truncate failed")
	// ErrWrite is returned when a block write fails or is short.
	ErrWrite = errors.New("write failed")
	// ErrStat is returned when the file metadata can't be read back.
	ErrStat = errors.New("stat failed")
	// ErrSizeMismatch is returned when the final logical size is not the requested one.
	ErrSizeMismatch = errors.New("final size mismatch")
	// ErrInterrupted is returned when the run is stopped by a signal.
	ErrInterrupted = errors.New("interrupted")
)

// SizeError is returned when a resolved size is out of its bounds.
type SizeError struct {
	// Param is the size name: "block size", "final size" or "write-every".
	Param string
	Size  int64
	// BlockSize is the lower bound the size broke, 0 when the size itself is malformed.
	BlockSize int64
}

func (e *SizeError) Error() string {
	if e.BlockSize == 0 {
		return fmt.Sprintf("bad %s %d", e.Param, e.Size)
	}
	return fmt.Sprintf("bad %s %d, cannot be less than blocksize %d", e.Param, e.Size, e.BlockSize)
}

func (e *SizeError) Unwrap() error { return ErrNotValid }

// SizeMismatchError is returned when the file length after the run is not the requested one.
type SizeMismatchError struct {
	Final     int64
	Requested int64
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("final size (%d) did not equal logical size requested (%d)", e.Final, e.Requested)
}

func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }
