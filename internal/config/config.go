// Package config resolves the raw command line options into a run configuration.
package config

import (
	"fmt"
	"math"

	"github.com/slok/sparsetest/internal/model"
	"github.com/slok/sparsetest/internal/size"
)

// Options are the raw options of a run. Nil sizes mean not set by the user.
type Options struct {
	BlockSize       *string
	LogicalSize     *string
	WriteEvery      *string
	Order           model.Order
	InitialTruncate bool
	Seed            *uint64
	// Args are the positional arguments, exactly one (the target path) is required.
	Args []string
}

// Resolve returns the validated configuration for the options.
//
// The block size is resolved first because bare numbers in the other sizes
// are counted in blocks of the final block size.
func Resolve(opts Options) (model.Config, error) {
	cfg := model.Config{
		BlockSize:       model.DefaultBlockSize,
		LogicalSize:     model.DefaultLogicalSize,
		WriteEvery:      model.DefaultWriteEvery,
		Order:           opts.Order,
		InitialTruncate: opts.InitialTruncate,
		Seed:            opts.Seed,
	}
	if cfg.Order == "" {
		cfg.Order = model.OrderAscending
	}

	if opts.BlockSize != nil {
		bs, err := size.Parse(*opts.BlockSize, model.DefaultBlockSize)
		if err != nil {
			return model.Config{}, err
		}
		if bs <= 0 || bs%model.WordSize != 0 {
			return model.Config{}, &model.SizeError{Param: "block size", Size: bs}
		}
		cfg.BlockSize = bs
	}

	if opts.LogicalSize != nil {
		ls, err := size.Parse(*opts.LogicalSize, cfg.BlockSize)
		if err != nil {
			return model.Config{}, err
		}
		cfg.LogicalSize = ls
	} else {
		cfg.LogicalSize = max(cfg.LogicalSize, times(cfg.BlockSize, 4))
	}
	if cfg.LogicalSize < cfg.BlockSize {
		return model.Config{}, &model.SizeError{Param: "final size", Size: cfg.LogicalSize, BlockSize: cfg.BlockSize}
	}

	if opts.WriteEvery != nil {
		we, err := size.Parse(*opts.WriteEvery, cfg.BlockSize)
		if err != nil {
			return model.Config{}, err
		}
		cfg.WriteEvery = we
	} else {
		cfg.WriteEvery = max(cfg.WriteEvery, times(cfg.BlockSize, 2))
	}
	if cfg.WriteEvery < cfg.BlockSize {
		return model.Config{}, &model.SizeError{Param: "write-every", Size: cfg.WriteEvery, BlockSize: cfg.BlockSize}
	}

	if len(opts.Args) != 1 {
		return model.Config{}, fmt.Errorf("exactly one destination file is required, got %d: %w", len(opts.Args), model.ErrUsage)
	}
	cfg.TargetPath = opts.Args[0]

	if err := cfg.Validate(); err != nil {
		return model.Config{}, err
	}

	return cfg, nil
}

// times multiplies saturating at the max int64.
func times(n, factor int64) int64 {
	if n > math.MaxInt64/factor {
		return math.MaxInt64
	}
	return n * factor
}
