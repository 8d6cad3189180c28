// Package app provides the main application structure and coordination
// for the kilo viewer. It wires the terminal backend, key decoder,
// document, viewport and renderer together and runs the event loop.
package app

import (
	"github.com/dshills/kilo/internal/engine/document"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer"
	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// DefaultQuitKey is the key combination that exits when none is configured.
const DefaultQuitKey = "Ctrl+Q"

// State is the lifecycle state of an Application.
type State uint8

const (
	// StateReady means Run has not been called yet.
	StateReady State = iota
	// StateRunning means the event loop is active.
	StateRunning
	// StateTerminated means Run has returned.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Application owns the document and viewport and drives the terminal.
// All of its state is touched only from the goroutine calling Run.
type Application struct {
	backend  backend.Backend
	decoder  *key.Decoder
	renderer *renderer.Renderer
	logger   *Logger

	doc *document.Document
	vp  *viewport.State

	quitKey key.Event
	state   State
}

// Options configures the application.
type Options struct {
	// Document is the content to show. Nil shows an empty document.
	Document *document.Document

	// QuitKey exits the loop. The zero value means DefaultQuitKey.
	QuitKey key.Event

	// Logger receives lifecycle messages. Nil disables logging.
	Logger *Logger

	// Version is shown in the welcome banner.
	Version string
}

// New creates an Application on b. The screen size is queried once here;
// a failure is returned as an *InitError.
func New(b backend.Backend, opts Options) (*Application, error) {
	rows, cols, err := b.Size()
	if err != nil {
		return nil, &InitError{Component: "terminal", Err: err}
	}

	doc := opts.Document
	if doc == nil {
		doc = document.Empty()
	}
	quit := opts.QuitKey
	if quit.Key == key.KeyNone {
		quit = key.MustParse(DefaultQuitKey)
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	ropts := renderer.DefaultOptions()
	if opts.Version != "" {
		ropts.Version = opts.Version
	}

	app := &Application{
		backend:  b,
		decoder:  key.NewDecoder(b),
		renderer: renderer.New(ropts),
		logger:   logger.WithComponent("editor"),
		doc:      doc,
		vp:       viewport.New(viewport.Size{Rows: rows, Cols: cols}),
		quitKey:  quit,
	}

	app.logger.WithFields(map[string]any{
		"rows":  rows,
		"cols":  cols,
		"lines": doc.LineCount(),
	}).Info("initialized")

	return app, nil
}
