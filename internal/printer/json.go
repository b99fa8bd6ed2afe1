package printer

import (
	"encoding/json"
	"io"

	"github.com/alecthomas/units"

	"github.com/slok/sparsetest/internal/model"
)

// reportOutput represents the structured report output.
type reportOutput struct {
	RunID             string     `json:"run_id" yaml:"run_id"`
	Order             string     `json:"order" yaml:"order"`
	Writes            int64      `json:"writes" yaml:"writes"`
	BlockSize         int64      `json:"block_size" yaml:"block_size"`
	WriteEvery        int64      `json:"write_every" yaml:"write_every"`
	LogicalSize       sizeOutput `json:"logical_size" yaml:"logical_size"`
	OptimumPhysical   sizeOutput `json:"optimum_physical_size" yaml:"optimum_physical_size"`
	ActualPhysical    sizeOutput `json:"actual_physical_size" yaml:"actual_physical_size"`
	AllocatedBlocks   int64      `json:"allocated_blocks" yaml:"allocated_blocks"`
	DensityPercent    float64    `json:"density_percent" yaml:"density_percent"`
	EfficiencyPercent float64    `json:"efficiency_percent" yaml:"efficiency_percent"`
}

// sizeOutput represents a size in bytes, mebibytes and blocks.
type sizeOutput struct {
	Bytes  int64            `json:"bytes" yaml:"bytes"`
	MiB    int64            `json:"mib" yaml:"mib"`
	Blocks int64            `json:"blocks" yaml:"blocks"`
	Human  units.Base2Bytes `json:"human" yaml:"human"`
}

func newSizeOutput(n, blockSize int64) sizeOutput {
	s := sizeOutput{
		Bytes: n,
		MiB:   n / (1024 * 1024),
		Human: units.Base2Bytes(max(n, 0)),
	}
	if blockSize > 0 {
		s.Blocks = n / blockSize
	}
	return s
}

func newReportOutput(r model.Report) reportOutput {
	return reportOutput{
		RunID:             r.RunID,
		Order:             string(r.Order),
		Writes:            r.Writes,
		BlockSize:         r.BlockSize,
		WriteEvery:        r.WriteEvery,
		LogicalSize:       newSizeOutput(r.LogicalSize, r.BlockSize),
		OptimumPhysical:   newSizeOutput(r.OptimumPhysicalSize, r.BlockSize),
		ActualPhysical:    newSizeOutput(r.PhysicalSize(), r.BlockSize),
		AllocatedBlocks:   r.AllocatedBlocks,
		DensityPercent:    r.Density(),
		EfficiencyPercent: r.Efficiency(),
	}
}

// JSONPrinter prints reports in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// PrintReport prints the report in JSON format.
func (j *JSONPrinter) PrintReport(r model.Report) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(newReportOutput(r))
}
