package exitcode_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/sparsetest/internal/exitcode"
	"github.com/slok/sparsetest/internal/model"
)

func TestFromError(t *testing.T) {
	tests := map[string]struct {
		err     error
		expCode int
	}{
		"No error":       {err: nil, expCode: 0},
		"Bad parameter":  {err: fmt.Errorf("invalid size: %w", model.ErrBadParameter), expCode: 1},
		"Bad sizes":      {err: fmt.Errorf("bad block size 0: %w", model.ErrNotValid), expCode: 1},
		"Usage":          {err: fmt.Errorf("missing file: %w", model.ErrUsage), expCode: 1},
		"Open":           {err: fmt.Errorf("%w: permission denied", model.ErrOpen), expCode: 3},
		"Allocation":     {err: fmt.Errorf("offsets: %w", model.ErrAllocation), expCode: 5},
		"Truncate":       {err: fmt.Errorf("file too large: %w", model.ErrTruncate), expCode: 6},
		"Write":          {err: fmt.Errorf("short write: %w", model.ErrWrite), expCode: 9},
		"Stat":           {err: fmt.Errorf("%w: bad fd", model.ErrStat), expCode: 9},
		"Size mismatch":  {err: fmt.Errorf("final size: %w", model.ErrSizeMismatch), expCode: 10},
		"Interrupted":    {err: fmt.Errorf("%w: %w", model.ErrInterrupted, context.Canceled), expCode: 130},
		"Unknown errors": {err: fmt.Errorf("something"), expCode: 1},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expCode, exitcode.FromError(test.err))
		})
	}
}
