package app

import (
	"context"
	"errors"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// Run repaints the screen, waits for a key and applies it, until the quit
// key is pressed, ctx is cancelled or a terminal operation fails.
//
// Quitting clears the screen and returns ErrQuit. Any other error is an
// *OperationError. Run can be called once.
func (app *Application) Run(ctx context.Context) error {
	switch app.state {
	case StateRunning:
		return ErrAlreadyRunning
	case StateTerminated:
		return ErrNotRunning
	}
	app.state = StateRunning
	defer func() { app.state = StateTerminated }()

	for {
		if err := app.renderer.Refresh(app.backend, app.doc, app.vp); err != nil {
			return app.fail(NewOperationError("refresh", "", err))
		}

		ev, err := app.decoder.Decode(ctx)
		if err != nil {
			return app.fail(NewOperationError("read key", "", err))
		}

		if err := app.HandleKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				cur := app.vp.Cursor()
				app.logger.WithFields(map[string]any{
					"row": cur.Row,
					"col": cur.Col,
				}).Info("quit")
				return err
			}
			return app.fail(err)
		}
	}
}

// HandleKey applies a single key event. It returns ErrQuit for the quit key
// after clearing the screen.
func (app *Application) HandleKey(ev key.Event) error {
	if ev.Equals(app.quitKey) {
		if _, err := app.backend.Write([]byte(backend.ClearScreen + backend.CursorHome)); err != nil {
			return NewOperationError("clear screen", "", err)
		}
		return ErrQuit
	}

	// Modified keys never arrive from the decoder; a parsed one is ignored
	if !ev.Key.IsNavigationKey() || ev.Modifiers != key.ModNone {
		app.logger.Debug("ignored key %s", ev)
		return nil
	}

	lines := app.doc.LineCount()
	switch {
	case ev.Key.IsArrowKey():
		app.vp.MoveCursor(arrowDirections[ev.Key], lines)
	case ev.Key == key.KeyHome:
		app.vp.Home()
	case ev.Key == key.KeyEnd:
		app.vp.End()
	case ev.Key == key.KeyPageUp:
		app.vp.Page(viewport.Up, lines)
	case ev.Key == key.KeyPageDown:
		app.vp.Page(viewport.Down, lines)
	}
	return nil
}

var arrowDirections = map[key.Key]viewport.Direction{
	key.KeyUp:    viewport.Up,
	key.KeyDown:  viewport.Down,
	key.KeyLeft:  viewport.Left,
	key.KeyRight: viewport.Right,
}

func (app *Application) fail(err error) error {
	if errors.Is(err, context.Canceled) {
		app.logger.Warn("interrupted")
	} else {
		app.logger.Error("%v", err)
	}
	return err
}
