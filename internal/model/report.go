package model

// StatBlockSize is the unit of the allocated block count reported by stat(2),
// it doesn't depend on the filesystem or on the configured block size.
const StatBlockSize int64 = 512

// Report is the allocation snapshot taken after all the writes of a run.
type Report struct {
	RunID string

	// Intended logical size.
	LogicalSize int64
	// OptimumPhysicalSize is the allocation if only the written blocks were stored.
	OptimumPhysicalSize int64
	// AllocatedBlocks is the number of 512 byte blocks reported by the filesystem.
	AllocatedBlocks int64

	Writes     int64
	BlockSize  int64
	WriteEvery int64
	Order      Order
}

// PhysicalSize is the actual on-disk allocation in bytes.
func (r Report) PhysicalSize() int64 {
	return r.AllocatedBlocks * StatBlockSize
}

// Density is the percentage of the logical size that is allocated on disk.
func (r Report) Density() float64 {
	den := r.LogicalSize
	if den == 0 {
		den = 1
	}
	return float64(r.PhysicalSize()) * 100.0 / float64(den)
}

// Efficiency is the percentage of the optimum physical size over the actual
// physical size. Values over 100 are possible and only reported.
func (r Report) Efficiency() float64 {
	den := r.PhysicalSize()
	if den == 0 {
		den = 1
	}
	return float64(r.OptimumPhysicalSize) * 100.0 / float64(den)
}
