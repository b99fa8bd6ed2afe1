//go:build unix

package sparse

import (
	"golang.org/x/sys/unix"
)

// Allocation uses fstat(2). st_blocks is always in 512 byte units, whatever
// the filesystem block size is.
func (f *osFile) Allocation() (Allocation, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return Allocation{}, err
	}

	return Allocation{
		LogicalSize: st.Size,
		Blocks:      int64(st.Blocks),
	}, nil
}
