// Package mem provides guarded allocation of the run buffers.
package mem

import (
	"fmt"
	"math"

	"github.com/slok/sparsetest/internal/model"
)

// MakeSlice allocates a zeroed slice of n elements. Lengths that can't be
// represented or that the runtime refuses to allocate are returned as an
// error wrapping model.ErrAllocation instead of panicking.
func MakeSlice[T any](n int64) (s []T, err error) {
	if n < 0 || uint64(n) > math.MaxInt {
		return nil, fmt.Errorf("can't allocate %d elements: %w", n, model.ErrAllocation)
	}

	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("can't allocate %d elements: %v: %w", n, r, model.ErrAllocation)
		}
	}()

	return make([]T, int(n)), nil
}
