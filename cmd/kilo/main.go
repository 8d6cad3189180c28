// Package main is the entry point for the kilo terminal viewer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dshills/kilo/internal/app"
	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/config/loader"
	"github.com/dshills/kilo/internal/engine/document"
	"github.com/dshills/kilo/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "0.0.1"
	commit  = "unknown"
	date    = "unknown"
)

// errInterrupted is reported when a signal ends the session.
var errInterrupted = errors.New("interrupted")

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], config.FromEnv(loader.NewEnvLoader(config.EnvPrefix, os.Environ())), os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.showVersion {
		fmt.Printf("kilo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	logger := app.NullLogger
	if opts.cfg.LogFile != "" {
		l, closeLog, err := app.OpenFileLogger(opts.cfg.LogFile, app.ParseLogLevel(opts.cfg.LogLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer closeLog()
		logger = l
	}
	logger = logger.WithField("session", uuid.NewString()).WithComponent("main")

	quitKey, err := opts.cfg.QuitEvent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Signals must not kill the process once the terminal is raw
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	term, err := backend.Open(os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// Restores the terminal on every return path below
	defer term.Close()

	fatal := func(err error) int {
		logger.Error("%v", err)
		_, _ = io.WriteString(term, backend.ClearScreen+backend.CursorHome)
		_ = term.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	doc := document.Empty()
	if opts.path != "" {
		doc, err = document.Open(opts.path)
		if err != nil {
			return fatal(err)
		}
	}
	logger.WithField("path", opts.path).Debug("document loaded")
	if ctx.Err() != nil {
		return fatal(errInterrupted)
	}

	application, err := app.New(term, app.Options{
		Document: doc,
		QuitKey:  quitKey,
		Logger:   logger,
		Version:  version,
	})
	if err != nil {
		return fatal(err)
	}

	err = application.Run(ctx)
	switch {
	case errors.Is(err, app.ErrQuit):
		return 0
	case ctx.Err() != nil:
		return fatal(errInterrupted)
	default:
		return fatal(err)
	}
}

// cliOptions is the result of command line parsing.
type cliOptions struct {
	cfg         config.Config
	path        string
	showVersion bool
}

// flagPaths maps setting flags to the configuration they override.
var flagPaths = map[string]string{
	"log":       config.PathLogFile,
	"log-level": config.PathLogLevel,
	"quit-key":  config.PathQuitKey,
}

// parseFlags parses args over base. Flags override base only when given.
// It returns flag.ErrHelp after printing usage for -h.
func parseFlags(args []string, base config.Config, stderr io.Writer) (cliOptions, error) {
	opts := cliOptions{cfg: base}
	var showHelp bool

	fs := flag.NewFlagSet("kilo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.String("log", base.LogFile, "Write log messages to file")
	fs.String("log-level", base.LogLevel, "Log level (debug, info, warn, error)")
	fs.String("quit-key", base.QuitKey, "Key that exits (e.g. Ctrl+Q, <C-x>)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "kilo - minimal terminal text viewer\n\n")
		fmt.Fprintf(stderr, "Usage: kilo [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment:\n")
		fmt.Fprintf(stderr, "  KILO_LOG_FILE, KILO_LOG_LEVEL, KILO_QUIT_KEY\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  kilo                        Show the welcome screen\n")
		fmt.Fprintf(stderr, "  kilo main.go                View a file\n")
		fmt.Fprintf(stderr, "  kilo -log /tmp/kilo.log x   Log to a file\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if showHelp {
		fs.Usage()
		return opts, flag.ErrHelp
	}

	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if path, ok := flagPaths[f.Name]; ok && setErr == nil {
			setErr = opts.cfg.Set(path, f.Value.String())
		}
	})
	if setErr != nil {
		return opts, setErr
	}

	if err := opts.cfg.Validate(); err != nil {
		return opts, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.path = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}

	return opts, nil
}
