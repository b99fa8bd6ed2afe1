package model

import (
	"fmt"
	"math/bits"
)

// WordSize is the native machine word size in bytes. Block sizes must be a
// multiple of it so the write buffer can be filled with whole random words.
const WordSize = bits.UintSize / 8

// Default sizes.
const (
	DefaultBlockSize   int64 = 512
	DefaultLogicalSize int64 = 1024 * 1024 * 1024
	DefaultWriteEvery  int64 = 1024 * 1024
)

// Order is the order in which the offsets are written.
type Order string

const (
	// OrderAscending writes from the start of the file to the end.
	OrderAscending Order = "ascending"
	// OrderDescending writes from the end of the file to the start.
	OrderDescending Order = "descending"
	// OrderRandom writes in a shuffled order.
	OrderRandom Order = "random"
)

// Valid returns true if the order is a known one.
func (o Order) Valid() bool {
	switch o {
	case OrderAscending, OrderDescending, OrderRandom:
		return true
	}
	return false
}

// Config is the resolved configuration of a sparse test run.
// It is immutable once resolved and passed by value.
type Config struct {
	BlockSize       int64
	LogicalSize     int64
	WriteEvery      int64
	Order           Order
	InitialTruncate bool
	TargetPath      string
	// Seed is the random order seed, nil means time based.
	Seed *uint64
}

// Validate validates the run configuration.
func (c Config) Validate() error {
	if c.BlockSize <= 0 || c.BlockSize%WordSize != 0 {
		return fmt.Errorf("block size %d must be positive and a multiple of %d: %w", c.BlockSize, WordSize, ErrNotValid)
	}

	if c.LogicalSize < c.BlockSize {
		return fmt.Errorf("logical size %d can't be less than block size %d: %w", c.LogicalSize, c.BlockSize, ErrNotValid)
	}

	if c.WriteEvery < c.BlockSize {
		return fmt.Errorf("write every %d can't be less than block size %d: %w", c.WriteEvery, c.BlockSize, ErrNotValid)
	}

	if !c.Order.Valid() {
		return fmt.Errorf("unknown order %q: %w", c.Order, ErrNotValid)
	}

	if c.TargetPath == "" {
		return fmt.Errorf("target path is required: %w", ErrNotValid)
	}

	return nil
}
