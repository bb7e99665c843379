package input

import (
	"fmt"

	"github.com/dshills/ravana/internal/command"
	"github.com/dshills/ravana/internal/input/key"
	"github.com/dshills/ravana/internal/input/keymap"
	"github.com/dshills/ravana/internal/logging"
	"github.com/dshills/ravana/internal/renderer/backend"
	"github.com/dshills/ravana/internal/tui"
)

// Controller is the application state the handler drives.
// *tui.App implements it.
type Controller interface {
	command.Target

	// EnterCmd opens the command line.
	EnterCmd() error
	// ExitCmd abandons the command line.
	ExitCmd() error
	// InputCmdPlt offers a keystroke to the command line.
	InputCmdPlt(ev key.Event) (tui.PaletteResult, error)
	// ExecCmd runs the command line.
	ExecCmd() (command.Result, error)
}

var _ Controller = (*tui.App)(nil)

// Handler runs the modal state machine for one keystroke at a time.
//
// In normal mode keystrokes accumulate in a buffer that is resolved
// against the binding trie. A ':' switches to command mode, where
// keystrokes go to the command palette until Enter or Esc.
//
// Handler is independent of the terminal; the Listener feeds it.
type Handler struct {
	app     Controller
	cmds    *command.Registry
	trie    *keymap.Trie
	buffer  key.Combination
	mode    Mode
	log     *logging.Logger
	metrics *Metrics
}

// NewHandler creates a handler in normal mode with an empty buffer.
// Bindings resolved by trie are dispatched through cmds.
func NewHandler(app Controller, cmds *command.Registry, trie *keymap.Trie) *Handler {
	return &Handler{
		app:     app,
		cmds:    cmds,
		trie:    trie,
		mode:    ModeNormal,
		log:     logging.Component("input"),
		metrics: NewMetrics(),
	}
}

// Mode returns the current mode.
func (h *Handler) Mode() Mode {
	return h.mode
}

// Buffer returns a copy of the pending key sequence.
func (h *Handler) Buffer() key.Combination {
	return h.buffer.Clone()
}

// Metrics returns the handler's metrics.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}

// HandleInput processes one keystroke. It returns FlowBreak when the
// loop should end: on quit, or with the error that made the terminal
// unusable. Any other error is logged and swallowed.
func (h *Handler) HandleInput(ev key.Event) (Flow, error) {
	timer := h.metrics.StartKeystroke()
	defer timer.Stop()

	if h.mode == ModeCommand {
		return h.handleCommand(ev)
	}
	return h.handleNormal(ev)
}

func (h *Handler) handleNormal(ev key.Event) (Flow, error) {
	if isCommandPrefix(ev) {
		h.mode = ModeCommand
		h.clearBuffer()
		return h.check(h.app.EnterCmd(), "entering command mode")
	}

	frag, ok := key.Decode(ev)
	if !ok {
		if !ev.Release {
			h.metrics.RecordUndecodable()
			h.log.Warn("unsupported key %s", ev)
		}
		return FlowContinue, nil
	}
	h.buffer = append(h.buffer, frag...)

	action, match := h.trie.Lookup(h.buffer)
	switch match {
	case keymap.NoMatch:
		h.metrics.RecordUnmatched()
		h.log.Debug("no binding for %s", h.buffer)
		h.clearBuffer()
	case keymap.Prefix:
		h.log.Trace("pending %s", h.buffer)
	case keymap.Exact:
		h.clearBuffer()
		return h.dispatch(action)
	}
	return FlowContinue, nil
}

func (h *Handler) dispatch(action string) (Flow, error) {
	h.metrics.RecordDispatch()
	h.log.Debug("dispatching %s", action)

	res, err := h.cmds.Exec(h.app, action)
	if flow, err := h.check(err, "running "+action); flow == FlowBreak {
		return flow, err
	}
	if action == command.VerbAppQuit || res == command.ResultQuit {
		return FlowBreak, nil
	}
	return FlowContinue, nil
}

func (h *Handler) handleCommand(ev key.Event) (Flow, error) {
	if ev.Release {
		return FlowContinue, nil
	}

	switch {
	case ev.Is(key.KeyEnter):
		h.mode = ModeNormal
		h.metrics.RecordPaletteLine()
		res, err := h.app.ExecCmd()
		if flow, err := h.check(err, "executing command line"); flow == FlowBreak {
			return flow, err
		}
		if res == command.ResultQuit {
			return FlowBreak, nil
		}

	case ev.Is(key.KeyEsc):
		h.mode = ModeNormal
		return h.check(h.app.ExitCmd(), "leaving command mode")

	case tui.ValidInput(ev):
		res, err := h.app.InputCmdPlt(ev)
		if res == tui.PaletteQuit {
			h.mode = ModeNormal
		}
		return h.check(err, "editing command line")
	}
	return FlowContinue, nil
}

// check turns err into the loop's verdict. Fatal terminal errors end
// the loop; the rest are logged.
func (h *Handler) check(err error, what string) (Flow, error) {
	if err == nil {
		return FlowContinue, nil
	}
	if backend.IsFatal(err) {
		return FlowBreak, fmt.Errorf("%s: %w", what, err)
	}
	h.metrics.RecordFailure()
	h.log.WithError(err).Warn("%s failed", what)
	return FlowContinue, nil
}

func (h *Handler) clearBuffer() {
	h.buffer = h.buffer[:0]
}

func isCommandPrefix(ev key.Event) bool {
	return ev.Rune == tui.CommandPrefix && !ev.Ctrl && !ev.Alt && !ev.Release
}
