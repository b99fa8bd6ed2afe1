// Package offset builds the sequence of block write offsets of a run.
package offset

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/slok/sparsetest/internal/model"
	"github.com/slok/sparsetest/internal/utils/mem"
)

// Count returns the number of block writes that fit in the logical size.
func Count(cfg model.Config) int64 {
	if cfg.LogicalSize < cfg.BlockSize || cfg.WriteEvery <= 0 {
		return 0
	}
	return (cfg.LogicalSize-cfg.BlockSize)/cfg.WriteEvery + 1
}

// Generate returns the ascending write offsets: 0, WriteEvery, 2*WriteEvery...
// while offset+BlockSize <= LogicalSize.
func Generate(cfg model.Config) ([]int64, error) {
	offsets, err := mem.MakeSlice[int64](Count(cfg))
	if err != nil {
		return nil, fmt.Errorf("could not allocate offsets: %w", err)
	}

	for i := range offsets {
		offsets[i] = int64(i) * cfg.WriteEvery
	}

	return offsets, nil
}

// Reorder permutes the offsets in place following the order policy.
// The random order draws from rng.
func Reorder(offsets []int64, order model.Order, rng *rand.Rand) error {
	switch order {
	case model.OrderAscending:
	case model.OrderDescending:
		slices.Reverse(offsets)
	case model.OrderRandom:
		if rng == nil {
			return fmt.Errorf("random order requires a random source: %w", model.ErrNotValid)
		}
		// Fisher-Yates.
		for i := len(offsets) - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			offsets[i], offsets[j] = offsets[j], offsets[i]
		}
	default:
		return fmt.Errorf("unknown order %q: %w", order, model.ErrNotValid)
	}

	return nil
}
