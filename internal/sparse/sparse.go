// Package sparse writes sparse test files and reads back their allocation.
package sparse

import (
	"io"
	"os"
)

// Allocation is the logical size and the on-disk allocation of a file.
type Allocation struct {
	// LogicalSize is the apparent size of the file in bytes.
	LogicalSize int64
	// Blocks is the number of 512 byte blocks allocated by the filesystem.
	Blocks int64
}

// File is the target of a sparse test run.
type File interface {
	io.WriterAt
	io.Closer
	Truncate(size int64) error
	Allocation() (Allocation, error)
}

// Open opens (creating or truncating) the target file for a run.
func Open(path string) (File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, err
	}
	return &osFile{File: f}, nil
}

type osFile struct {
	*os.File
}
