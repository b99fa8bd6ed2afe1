package size_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/sparsetest/internal/model"
	"github.com/slok/sparsetest/internal/size"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		s         string
		blockSize int64
		exp       int64
		expErr    bool
	}{
		"Bare number should be multiplied by the block size": {
			s:         "10",
			blockSize: 512,
			exp:       5120,
		},
		"Bare number should use the current block size": {
			s:         "10",
			blockSize: 1024,
			exp:       10240,
		},
		"Zero should parse to zero": {
			s:         "0",
			blockSize: 512,
			exp:       0,
		},
		"Bytes suffix should not use the block size": {
			s:         "1024B",
			blockSize: 512,
			exp:       1024,
		},
		"Lower case suffix should be accepted": {
			s:         "1024b",
			blockSize: 4096,
			exp:       1024,
		},
		"Kilobytes": {
			s:         "10K",
			blockSize: 1024,
			exp:       10 * 1024,
		},
		"Megabytes": {
			s:         "3m",
			blockSize: 8,
			exp:       3 << 20,
		},
		"Gigabytes": {
			s:         "1G",
			blockSize: 512,
			exp:       1 << 30,
		},
		"Terabytes": {
			s:         "2T",
			blockSize: 512,
			exp:       2 << 40,
		},
		"Petabytes": {
			s:         "1p",
			blockSize: 512,
			exp:       1 << 50,
		},
		"Exabytes": {
			s:         "7E",
			blockSize: 512,
			exp:       7 << 60,
		},
		"Unknown suffix should fail": {
			s:         "12x",
			blockSize: 512,
			expErr:    true,
		},
		"Not a number should fail": {
			s:         "abc",
			blockSize: 512,
			expErr:    true,
		},
		"Empty should fail": {
			s:         "",
			blockSize: 512,
			expErr:    true,
		},
		"Suffix without number should fail": {
			s:         "K",
			blockSize: 512,
			expErr:    true,
		},
		"Garbage after the suffix should fail": {
			s:         "12kb",
			blockSize: 512,
			expErr:    true,
		},
		"Negative numbers should fail": {
			s:         "-5",
			blockSize: 512,
			expErr:    true,
		},
		"Spaces should fail": {
			s:         "5 ",
			blockSize: 512,
			expErr:    true,
		},
		"Overflowing suffix should fail": {
			s:         "8E",
			blockSize: 512,
			expErr:    true,
		},
		"Overflowing block multiplication should fail": {
			s:         "18014398509481984",
			blockSize: 512,
			expErr:    true,
		},
		"Number out of range should fail": {
			s:         "99999999999999999999",
			blockSize: 512,
			expErr:    true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := size.Parse(test.s, test.blockSize)

			if test.expErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrBadParameter)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.exp, got)
		})
	}
}

func TestParseSuffixIndependentOfBlockSize(t *testing.T) {
	for idx, suffix := range []string{"B", "K", "M", "G", "T", "P", "E"} {
		for _, bs := range []int64{8, 512, 4096, 1 << 20} {
			got, err := size.Parse("3"+suffix, bs)
			require.NoError(t, err)
			assert.Equal(t, int64(3)<<(10*idx), got, "suffix %s, block size %d", suffix, bs)
		}
	}
}
