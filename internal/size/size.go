// Package size parses the size arguments of the command line.
//
// A size is a decimal number of blocks (using the current block size) or a
// decimal number followed by one case-insensitive unit suffix:
//
//	B  2^0 bytes
//	K  2^10 bytes
//	M  2^20 bytes
//	G  2^30 bytes
//	T  2^40 bytes
//	P  2^50 bytes
//	E  2^60 bytes
//
// Units are binary to keep compatibility with dd.
package size

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/slok/sparsetest/internal/model"
)

const suffixes = "bkmgtpe"

// Parse returns the number of bytes represented by s. Bare numbers are
// multiplied by blockSize.
func Parse(s string, blockSize int64) (int64, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("invalid size %q: %w", s, model.ErrBadParameter)
	}

	n, err := strconv.ParseUint(s[:i], 10, 63)
	if err != nil {
		return 0, fmt.Errorf("size %q out of range: %w", s, model.ErrBadParameter)
	}

	rest := s[i:]
	switch len(rest) {
	case 0:
		return mul(s, n, uint64(blockSize))
	case 1:
		idx := strings.IndexByte(suffixes, toLower(rest[0]))
		if idx < 0 {
			return 0, fmt.Errorf("unknown size suffix %q in %q: %w", rest, s, model.ErrBadParameter)
		}
		return mul(s, n, 1<<(10*idx))
	default:
		return 0, fmt.Errorf("invalid size suffix %q in %q: %w", rest, s, model.ErrBadParameter)
	}
}

func mul(s string, n, unit uint64) (int64, error) {
	hi, lo := bits.Mul64(n, unit)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("size %q overflows: %w", s, model.ErrBadParameter)
	}
	return int64(lo), nil
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
