package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/sparsetest/internal/app/sparsetest"
	"github.com/slok/sparsetest/internal/config"
	"github.com/slok/sparsetest/internal/model"
	"github.com/slok/sparsetest/internal/printer"
)

// SizeUsage describes the SIZE arguments, it's appended to the usage.
const SizeUsage = `
SIZE can be specified in blocks (default), or use the following suffixes:
     B  Bytes      (2^0  bytes)
     K  Kilobytes  (2^10 bytes)
     M  Megabytes  (2^20 bytes)
     G  Gigabytes  (2^30 bytes)
     T  Terabytes  (2^40 bytes)
     P  Petabytes  (2^50 bytes)
     E  Exabytes   (2^60 bytes)

Note that --blocksize=1024 will set the block size to 1024 512 byte blocks (use
1024B if this is not what you mean). Also note that disk capacity is often
measured using decimal megabytes etc.; this convention is not adopted for
compatibility with dd.
`

// RunCommand is the sparse test command.
type RunCommand struct {
	rootCmd *RootCommand

	blockSize       string
	blockSizeSet    bool
	logicalSize     string
	logicalSizeSet  bool
	sizeAliasSet    bool
	writeEvery      string
	writeEverySet   bool
	order           model.Order
	initialTruncate bool
	seed            uint64
	seedSet         bool
	format          string
	args            []string
}

// NewRunCommand registers the sparse test flags and arguments on the application.
func NewRunCommand(rootCmd *RootCommand, app *kingpin.Application) *RunCommand {
	c := &RunCommand{rootCmd: rootCmd, order: model.OrderAscending}

	app.Flag("blocksize", "Use SIZE blocksize in bytes (default 512).").Short('b').PlaceHolder("SIZE").IsSetByUser(&c.blockSizeSet).StringVar(&c.blockSize)
	app.Flag("logicalsize", "Use logical size SIZE (default 1G).").Short('s').PlaceHolder("SIZE").IsSetByUser(&c.logicalSizeSet).StringVar(&c.logicalSize)
	app.Flag("size", "Alias of --logicalsize.").Hidden().PlaceHolder("SIZE").IsSetByUser(&c.sizeAliasSet).StringVar(&c.logicalSize)
	app.Flag("writeevery", "Write something every SIZE (default 1M).").Short('w').PlaceHolder("SIZE").IsSetByUser(&c.writeEverySet).StringVar(&c.writeEvery)
	app.Flag("descending", "Write in descending order.").Short('d').SetValue(&orderValue{target: &c.order, order: model.OrderDescending})
	app.Flag("random", "Write in random order.").Short('r').SetValue(&orderValue{target: &c.order, order: model.OrderRandom})
	app.Flag("initialtruncate", "Truncate at the start not the end.").Short('i').BoolVar(&c.initialTruncate)
	app.Flag("seed", "Seed of the random order and block content (default time based).").IsSetByUser(&c.seedSet).Uint64Var(&c.seed)
	app.Flag("format", "Report output format.").Default(printer.FormatText).EnumVar(&c.format, printer.FormatText, printer.FormatJSON, printer.FormatYAML)
	app.Arg("file", "Destination file, it will be overwritten.").StringsVar(&c.args)

	return c
}

// Options returns the raw run options from the parsed command line.
func (c RunCommand) Options() config.Options {
	opts := config.Options{
		Order:           c.order,
		InitialTruncate: c.initialTruncate,
		Args:            c.args,
	}

	if c.blockSizeSet {
		opts.BlockSize = &c.blockSize
	}
	if c.logicalSizeSet || c.sizeAliasSet {
		opts.LogicalSize = &c.logicalSize
	}
	if c.writeEverySet {
		opts.WriteEvery = &c.writeEvery
	}
	if c.seedSet {
		opts.Seed = &c.seed
	}

	return opts
}

func (c RunCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := config.Resolve(c.Options())
	if err != nil {
		return err
	}
	logger.Debugf("resolved configuration: %+v", cfg)

	p, err := printer.New(c.format, c.rootCmd.Stdout)
	if err != nil {
		return fmt.Errorf("could not create printer: %w", err)
	}

	svc, err := sparsetest.NewService(sparsetest.ServiceConfig{
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	report, err := svc.Run(ctx, sparsetest.Request{Config: cfg})
	if err != nil {
		return err
	}

	if err := p.PrintReport(*report); err != nil {
		return fmt.Errorf("could not print report: %w", err)
	}
	logger.Infof("%s allocated on disk for %s of logical size (%s optimum)",
		printer.FormatBytes(report.PhysicalSize()), printer.FormatBytes(report.LogicalSize), printer.FormatBytes(report.OptimumPhysicalSize))

	return nil
}
