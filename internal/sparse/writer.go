package sparse

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/slok/sparsetest/internal/log"
	"github.com/slok/sparsetest/internal/model"
	"github.com/slok/sparsetest/internal/utils/mem"
)

// WriterConfig is the configuration of the block writer.
type WriterConfig struct {
	File            File
	BlockSize       int64
	LogicalSize     int64
	InitialTruncate bool
	// Rand is the source of the block content.
	Rand   *rand.Rand
	Logger log.Logger
}

func (c *WriterConfig) defaults() error {
	if c.File == nil {
		return fmt.Errorf("file is required")
	}

	if c.BlockSize <= 0 || c.BlockSize%model.WordSize != 0 {
		return fmt.Errorf("block size %d must be positive and a multiple of %d", c.BlockSize, model.WordSize)
	}

	if c.LogicalSize < c.BlockSize {
		return fmt.Errorf("logical size %d can't be less than block size %d", c.LogicalSize, c.BlockSize)
	}

	if c.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		c.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "sparse.Writer"})

	return nil
}

// Writer writes one block of random data at every offset of a run and sets
// the final logical size of the file.
type Writer struct {
	file            File
	logicalSize     int64
	initialTruncate bool
	rand            *rand.Rand
	buf             []byte
	logger          log.Logger
}

// NewWriter returns a new Writer. The block buffer is allocated here.
func NewWriter(cfg WriterConfig) (*Writer, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w: %w", err, model.ErrNotValid)
	}

	buf, err := mem.MakeSlice[byte](cfg.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("could not allocate block buffer: %w", err)
	}

	return &Writer{
		file:            cfg.File,
		logicalSize:     cfg.LogicalSize,
		initialTruncate: cfg.InitialTruncate,
		rand:            cfg.Rand,
		buf:             buf,
		logger:          cfg.Logger,
	}, nil
}

// Write writes a block at every offset in order. Short writes are not retried.
// The context is checked between blocks.
func (w *Writer) Write(ctx context.Context, offsets []int64) error {
	if w.initialTruncate {
		if err := w.truncate(); err != nil {
			return err
		}
	}

	for i, off := range offsets {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stopped after %d of %d writes: %w: %w", i, len(offsets), model.ErrInterrupted, err)
		}

		w.fill()
		n, err := w.file.WriteAt(w.buf, off)
		if err != nil {
			return fmt.Errorf("could not write block at offset %d: %w: %w", off, err, model.ErrWrite)
		}
		if n < len(w.buf) {
			return fmt.Errorf("short write at offset %d (%d of %d bytes): %w", off, n, len(w.buf), model.ErrWrite)
		}
	}
	w.logger.Debugf("%d blocks written", len(offsets))

	if !w.initialTruncate {
		if err := w.truncate(); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) truncate() error {
	if err := w.file.Truncate(w.logicalSize); err != nil {
		return fmt.Errorf("could not set file length to %d: %w: %w", w.logicalSize, err, model.ErrTruncate)
	}
	w.logger.Debugf("file length set to %d", w.logicalSize)
	return nil
}

// fill refills the block buffer with random machine words.
func (w *Writer) fill() {
	switch model.WordSize {
	case 8:
		for i := 0; i < len(w.buf); i += 8 {
			binary.NativeEndian.PutUint64(w.buf[i:], w.rand.Uint64())
		}
	default:
		for i := 0; i < len(w.buf); i += 4 {
			binary.NativeEndian.PutUint32(w.buf[i:], w.rand.Uint32())
		}
	}
}
