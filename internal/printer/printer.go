package printer

import (
	"fmt"
	"io"

	"github.com/slok/sparsetest/internal/model"
)

// Formats supported by the printers.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Printer knows how to print sparse test reports in different formats.
type Printer interface {
	PrintReport(r model.Report) error
}

// New returns the printer for the format.
func New(format string, w io.Writer) (Printer, error) {
	switch format {
	case FormatText, "":
		return NewTextPrinter(w), nil
	case FormatJSON:
		return NewJSONPrinter(w), nil
	case FormatYAML:
		return NewYAMLPrinter(w), nil
	}
	return nil, fmt.Errorf("unknown format %q: %w", format, model.ErrNotValid)
}
