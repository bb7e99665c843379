package input

import (
	"context"
	"fmt"

	"github.com/dshills/ravana/internal/input/key"
	"github.com/dshills/ravana/internal/logging"
	"github.com/dshills/ravana/internal/renderer/backend"
)

// Listener is the main loop: it waits for terminal input and feeds each
// keystroke to a Handler.
type Listener struct {
	handle  *backend.Handle
	handler *Handler
	log     *logging.Logger
}

// NewListener creates a listener reading from the terminal behind h.
func NewListener(h *backend.Handle, handler *Handler) *Listener {
	return &Listener{
		handle:  h,
		handler: handler,
		log:     logging.Component("listener"),
	}
}

// Listen runs until a keystroke ends the loop, the terminal fails or ctx
// is done. A clean quit returns nil; cancellation returns ctx.Err().
//
// The terminal guard is held only to fetch the input source and to read
// each keystroke. Waiting for input and handling keystrokes happen
// outside it.
func (l *Listener) Listen(ctx context.Context) error {
	var fd *backend.InputFD
	err := l.handle.With(func(t *backend.Terminal) error {
		fd = t.InputFD()
		return nil
	})
	if err != nil {
		return fmt.Errorf("acquiring terminal input: %w", err)
	}

	l.log.Debug("listening")
	defer l.logSummary()

	for {
		if err := fd.Poll(ctx); err != nil {
			return err
		}

		ev, ok, err := l.next()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		flow, err := l.handler.HandleInput(ev)
		if err != nil {
			return err
		}
		if flow == FlowBreak {
			l.log.Info("quit requested")
			return nil
		}
	}
}

func (l *Listener) next() (ev key.Event, ok bool, err error) {
	err = l.handle.With(func(t *backend.Terminal) error {
		ev, ok, err = t.GetNBlock()
		return err
	})
	return ev, ok, err
}

func (l *Listener) logSummary() {
	snap := l.handler.Metrics().Snapshot()
	l.log.WithFields(map[string]any{
		"keystrokes":    snap.Keystrokes,
		"dispatched":    snap.Dispatched,
		"palette_lines": snap.PaletteLines,
		"unmatched":     snap.Unmatched,
		"undecodable":   snap.Undecodable,
		"failures":      snap.Failures,
		"avg_latency":   snap.AvgLatency,
		"p99_latency":   snap.P99Latency,
		"peak_latency":  snap.PeakLatency,
	}).Debug("input loop finished after %s", snap.Uptime)
}
