package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/slok/sparsetest/cmd/sparsetest/commands"
	"github.com/slok/sparsetest/internal/exitcode"
	"github.com/slok/sparsetest/internal/log"
	loglogrus "github.com/slok/sparsetest/internal/log/logrus"
	"github.com/slok/sparsetest/internal/model"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

const appHelp = `Tests a file system's handling of sparse files. The destination path is overwritten with a sparse file of length specified with the -s parameter. Then, writes are made to the file at offsets specified by the -w parameter. Finally, the logical length of the file, and the usage on disk are both printed.`

// Run runs the main application.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("sparsetest", appHelp)
	app.Version(Version)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.UsageTemplate(kingpin.DefaultUsageTemplate + commands.SizeUsage)
	app.HelpFlag.Short('h')

	// Help and version print and finish the app successfully.
	finished := false
	app.Terminate(func(int) { finished = true })

	rootCmd := commands.NewRootCommand(app)
	var cmd commands.Command = commands.NewRunCommand(rootCmd, app)

	// Parse command.
	_, err = app.Parse(args[1:])
	if finished {
		return nil
	}
	if err != nil {
		app.Usage(nil)
		return fmt.Errorf("invalid command configuration: %w: %w", err, model.ErrUsage)
	}

	// Set standard output.
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// The report goes to stdout, logs are only enabled on debug so they don't
	// mix with it in the terminal.
	if !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(*rootCmd)

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return fmt.Errorf("termination signal received: %w", model.ErrInterrupted)
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				return cmd.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	err = g.Run()
	if err != nil {
		rootCmd.Logger.Debugf("run failed: %s", err)
	}
	if errors.Is(err, model.ErrUsage) {
		app.Usage(nil)
	}

	return err
}

// getLogger returns the application logger.
func getLogger(config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

// handleError writes the message of a failed run to w and returns the exit code.
func handleError(w io.Writer, err error) int {
	if err == nil {
		return exitcode.OK
	}

	var (
		sizeErr  *model.SizeError
		mismatch *model.SizeMismatchError
	)
	switch {
	case errors.As(err, &mismatch):
		fmt.Fprintf(w, "ERROR: final size (%d) did not equal logical size requested (%d)- something has gone wrong\n", mismatch.Final, mismatch.Requested)
	case errors.Is(err, model.ErrBadParameter):
		fmt.Fprintln(w, "sparsetest: Bad parameter")
	case errors.As(err, &sizeErr) && sizeErr.BlockSize == 0:
		fmt.Fprintf(w, "sparsetest: Bad %s %d\n", sizeErr.Param, sizeErr.Size)
	case errors.As(err, &sizeErr):
		fmt.Fprintf(w, "sparsetest: Bad %s %d - cannot be less than blocksize %d\n", sizeErr.Param, sizeErr.Size, sizeErr.BlockSize)
	case errors.Is(err, model.ErrOpen):
		fmt.Fprintf(w, "open() Could not open destination file: %s\n", sysError(err))
	case errors.Is(err, model.ErrAllocation):
		fmt.Fprintf(w, "calloc()/malloc() failed: %s\n", sysError(err))
	case errors.Is(err, model.ErrTruncate):
		fmt.Fprintf(w, "ftruncate() failed: %s\n", sysError(err))
	case errors.Is(err, model.ErrWrite):
		fmt.Fprintf(w, "write(dest) failed: %s\n", sysError(err))
	case errors.Is(err, model.ErrStat):
		fmt.Fprintf(w, "stat failed: %s\n", sysError(err))
	default:
		fmt.Fprintf(w, "sparsetest: %s\n", err)
	}

	return exitcode.FromError(err)
}

// sysError returns the system error description of err when it has one.
func sysError(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return err.Error()
	}

	msg := errno.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdout, os.Stderr)
	if err != nil {
		os.Exit(handleError(os.Stderr, err))
	}
}
