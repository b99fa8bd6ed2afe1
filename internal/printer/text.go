package printer

import (
	"fmt"
	"io"

	"github.com/slok/sparsetest/internal/model"
)

// TextPrinter prints the report as plain text lines.
type TextPrinter struct {
	writer io.Writer
}

// NewTextPrinter creates a new text printer.
func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{writer: w}
}

// PrintReport prints the sizes in bytes, mebibytes and blocks followed by
// the write summary and the density and efficiency percentages.
func (t *TextPrinter) PrintReport(r model.Report) error {
	lines := []string{"Results:\n"}
	lines = append(lines,
		sizeLine("Intended logical size", r.LogicalSize, r.BlockSize),
		sizeLine("Optimum physical size", r.OptimumPhysicalSize, r.BlockSize),
		sizeLine("Actual physical size", r.PhysicalSize(), r.BlockSize),
		fmt.Sprintf("\nUsed %d writes of %d bytes every %d bytes in %s order\n", r.Writes, r.BlockSize, r.WriteEvery, r.Order),
		fmt.Sprintf("Created %d %d byte blocks on disk\n", r.AllocatedBlocks, model.StatBlockSize),
		fmt.Sprintf("Density as %% of actual physical size over logical size: %f %%\n", r.Density()),
		fmt.Sprintf("Efficiency as %% of optimum physical size over actual: %f %%\n", r.Efficiency()),
	)

	for _, l := range lines {
		if _, err := io.WriteString(t.writer, l); err != nil {
			return err
		}
	}

	return nil
}

func sizeLine(label string, n, blockSize int64) string {
	blocks := int64(0)
	if blockSize > 0 {
		blocks = n / blockSize
	}
	return fmt.Sprintf("%23s: %15d bytes; %15d M; %15d blocks of %d bytes\n", label, n, n/(1024*1024), blocks, blockSize)
}
