//go:build !unix

package sparse

import "github.com/slok/sparsetest/internal/model"

// Allocation can't see the real allocation on non-unix platforms, the file
// is reported as fully allocated.
func (f *osFile) Allocation() (Allocation, error) {
	fi, err := f.Stat()
	if err != nil {
		return Allocation{}, err
	}

	size := fi.Size()
	return Allocation{
		LogicalSize: size,
		Blocks:      (size + model.StatBlockSize - 1) / model.StatBlockSize,
	}, nil
}
