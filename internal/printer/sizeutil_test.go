package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := map[string]struct {
		input int64
		exp   string
	}{
		"zero bytes": {
			input: 0,
			exp:   "0B",
		},
		"negative bytes should return zero": {
			input: -100,
			exp:   "0B",
		},
		"small bytes": {
			input: 512,
			exp:   "512B",
		},
		"one kibibyte": {
			input: 1024,
			exp:   "1KiB",
		},
		"mixed units": {
			input: 1536,
			exp:   "1KiB512B",
		},
		"one mebibyte": {
			input: 1024 * 1024,
			exp:   "1MiB",
		},
		"one gibibyte": {
			input: 1024 * 1024 * 1024,
			exp:   "1GiB",
		},
		"one tebibyte": {
			input: 1024 * 1024 * 1024 * 1024,
			exp:   "1TiB",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, FormatBytes(test.input))
		})
	}
}
