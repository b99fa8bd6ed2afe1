package sparsetest

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/slok/sparsetest/internal/log"
	"github.com/slok/sparsetest/internal/model"
	"github.com/slok/sparsetest/internal/offset"
	"github.com/slok/sparsetest/internal/sparse"
)

// OpenFunc opens the target file of a run.
type OpenFunc func(path string) (sparse.File, error)

// ServiceConfig is the configuration for the sparse test service.
type ServiceConfig struct {
	Open   OpenFunc
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Open == nil {
		c.Open = sparse.Open
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.SparseTest"})

	return nil
}

// Service runs sparse file tests.
type Service struct {
	open   OpenFunc
	logger log.Logger
}

// NewService creates a new sparse test service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		open:   cfg.Open,
		logger: cfg.Logger,
	}, nil
}

// Request represents the sparse test request parameters.
type Request struct {
	Config model.Config
}

// Run creates the target file, writes a block at every offset in the
// requested order and returns the allocation report of the result.
func (s *Service) Run(ctx context.Context, req Request) (*model.Report, error) {
	cfg := req.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	runID := ulid.Make().String()
	ctx = s.logger.SetValuesOnCtx(ctx, log.Kv{"run-id": runID})
	logger := s.logger.WithCtxValues(ctx)

	f, err := s.open(cfg.TargetPath)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", model.ErrOpen, cfg.TargetPath, err)
	}
	defer f.Close()

	rng := newRand(cfg.Seed)
	writer, err := sparse.NewWriter(sparse.WriterConfig{
		File:            f,
		BlockSize:       cfg.BlockSize,
		LogicalSize:     cfg.LogicalSize,
		InitialTruncate: cfg.InitialTruncate,
		Rand:            rng,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create writer: %w", err)
	}

	offsets, err := offset.Generate(cfg)
	if err != nil {
		return nil, err
	}

	if err := offset.Reorder(offsets, cfg.Order, rng); err != nil {
		return nil, fmt.Errorf("could not reorder offsets: %w", err)
	}

	logger.Infof("writing %d blocks of %d bytes every %d bytes in %s order to %s", len(offsets), cfg.BlockSize, cfg.WriteEvery, cfg.Order, cfg.TargetPath)
	start := time.Now()
	if err := writer.Write(ctx, offsets); err != nil {
		return nil, err
	}
	logger.Debugf("blocks written in %s", time.Since(start))

	alloc, err := f.Allocation()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStat, err)
	}

	if alloc.LogicalSize != cfg.LogicalSize {
		return nil, &model.SizeMismatchError{Final: alloc.LogicalSize, Requested: cfg.LogicalSize}
	}

	return &model.Report{
		RunID:               runID,
		LogicalSize:         cfg.LogicalSize,
		OptimumPhysicalSize: int64(len(offsets)) * cfg.BlockSize,
		AllocatedBlocks:     alloc.Blocks,
		Writes:              int64(len(offsets)),
		BlockSize:           cfg.BlockSize,
		WriteEvery:          cfg.WriteEvery,
		Order:               cfg.Order,
	}, nil
}

// newRand returns a seeded random source, time based when there is no seed.
func newRand(seed *uint64) *rand.Rand {
	s := uint64(time.Now().UnixNano())
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewPCG(s, s))
}
