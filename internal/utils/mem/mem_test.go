package mem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/sparsetest/internal/model"
	"github.com/slok/sparsetest/internal/utils/mem"
)

func TestMakeSlice(t *testing.T) {
	tests := map[string]struct {
		n      int64
		expLen int
		expErr bool
	}{
		"Empty slice": {
			n:      0,
			expLen: 0,
		},
		"Regular slice": {
			n:      128,
			expLen: 128,
		},
		"Negative length should fail": {
			n:      -1,
			expErr: true,
		},
		"Impossible length should fail": {
			n:      math.MaxInt64,
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := mem.MakeSlice[int64](test.n)

			if test.expErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrAllocation)
				return
			}

			require.NoError(t, err)
			assert.Len(t, s, test.expLen)
		})
	}
}
