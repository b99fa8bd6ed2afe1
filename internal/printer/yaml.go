package printer

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/slok/sparsetest/internal/model"
)

// YAMLPrinter prints reports in YAML format.
type YAMLPrinter struct {
	writer io.Writer
}

// NewYAMLPrinter creates a new YAML printer.
func NewYAMLPrinter(w io.Writer) *YAMLPrinter {
	return &YAMLPrinter{writer: w}
}

// PrintReport prints the report in YAML format.
func (y *YAMLPrinter) PrintReport(r model.Report) error {
	enc := yaml.NewEncoder(y.writer)
	enc.SetIndent(2)
	if err := enc.Encode(newReportOutput(r)); err != nil {
		return err
	}
	return enc.Close()
}
