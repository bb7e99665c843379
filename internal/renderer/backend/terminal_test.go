package backend

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ravana/internal/input/key"
	"github.com/dshills/ravana/internal/renderer/plane"
)

func newSim(t *testing.T, w, h int) *Terminal {
	t.Helper()
	term, err := NewSimulation(w, h)
	require.NoError(t, err)
	t.Cleanup(func() { _ = term.Stop() })
	return term
}

func TestConvertKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want key.Event
	}{
		{"rune", tcell.KeyRune, 'x', tcell.ModNone, key.Event{Rune: 'x'}},
		{"alt rune", tcell.KeyRune, 'x', tcell.ModAlt, key.Event{Rune: 'x', Alt: true}},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, key.Event{Key: key.KeyEnter}},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, key.Event{Key: key.KeyTab}},
		{"backtab", tcell.KeyBacktab, 0, tcell.ModNone, key.Event{Key: key.KeyTab, Shift: true}},
		{"backspace", tcell.KeyBackspace, 0, tcell.ModNone, key.Event{Key: key.KeyBackspace}},
		{"backspace2", tcell.KeyBackspace2, 0, tcell.ModNone, key.Event{Key: key.KeyBackspace}},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, key.Event{Key: key.KeyEsc}},
		{"ctrl b", tcell.KeyCtrlB, 0, tcell.ModCtrl, key.Event{Rune: 'b', Ctrl: true}},
		{"ctrl z", tcell.KeyCtrlZ, 0, tcell.ModNone, key.Event{Rune: 'z', Ctrl: true}},
		{"up", tcell.KeyUp, 0, tcell.ModNone, key.Event{Key: key.KeyUp}},
		{"shift f5", tcell.KeyF5, 0, tcell.ModShift, key.Event{Key: key.KeyF5, Shift: true}},
		{"delete", tcell.KeyDelete, 0, tcell.ModNone, key.Event{Key: key.KeyDel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKeyEvent(tcell.NewEventKey(tt.key, tt.r, tt.mod))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := convertKeyEvent(tcell.NewEventKey(tcell.KeyF64, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestSimulationRender(t *testing.T) {
	term := newSim(t, 20, 5)

	w, h := term.Dim()
	assert.Equal(t, 20, w)
	assert.Equal(t, 5, h)

	fg := plane.RGB(0x11, 0x22, 0x33)
	bg := plane.RGB(0xa6, 0xb7, 0xc8)
	child, err := term.Stdplane().NewChild(2, 1, 5, 1)
	require.NoError(t, err)
	child.SetChannels(plane.NewChannels(fg, bg))
	child.SetStyles(plane.StyleBold)
	_, err = child.PutStr(0, 0, "hi")
	require.NoError(t, err)

	require.NoError(t, term.Render())

	c := term.CellAt(2, 1)
	assert.Equal(t, 'h', c.Rune)
	assert.Equal(t, fg, c.Channels.Fg)
	assert.Equal(t, bg, c.Channels.Bg)
	assert.True(t, c.Style.Has(plane.StyleBold))

	c = term.CellAt(0, 0)
	assert.Equal(t, plane.ColorDefault, c.Channels.Bg)
}

func TestGetNBlock(t *testing.T) {
	term := newSim(t, 10, 3)

	_, ok, err := term.GetNBlock()
	require.NoError(t, err)
	assert.False(t, ok)

	term.InjectString("ab")
	term.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got []key.Event
	for len(got) < 3 {
		require.NoError(t, term.InputFD().Poll(ctx))
		ev, ok, err := term.GetNBlock()
		require.NoError(t, err)
		if ok {
			got = append(got, ev)
		}
	}

	assert.Equal(t, []key.Event{key.RuneEvent('a'), key.RuneEvent('b'), key.NamedEvent(key.KeyEnter)}, got)
}

func TestInjectBeyondScreenQueue(t *testing.T) {
	term := newSim(t, 10, 3)

	const line = ":next_page:app_quit:next_page"
	term.InjectString(line)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var got []rune
	for len(got) < len(line) {
		require.NoError(t, term.InputFD().Poll(ctx))
		ev, ok, err := term.GetNBlock()
		require.NoError(t, err)
		if ok {
			got = append(got, ev.Rune)
		}
	}
	assert.Equal(t, line, string(got))
}

func TestInjectAfterStop(t *testing.T) {
	term, err := NewSimulation(10, 3)
	require.NoError(t, err)
	require.NoError(t, term.Stop())

	fd := term.InputFD()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for err == nil {
		err = fd.Poll(ctx)
		fd.pop()
	}
	require.ErrorIs(t, err, ErrInputClosed)

	term.InjectString("more than ten keystrokes")
}

func TestPollCancel(t *testing.T) {
	term := newSim(t, 10, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, term.InputFD().Poll(ctx), context.Canceled)
}

func TestStop(t *testing.T) {
	term, err := NewSimulation(10, 3)
	require.NoError(t, err)

	h := NewHandle(term)
	require.NoError(t, h.With(func(t *Terminal) error { return t.MiceEnable() }))
	require.NoError(t, h.Stop())

	assert.ErrorIs(t, h.Stop(), ErrStopped)
	err = h.With(func(*Terminal) error { return nil })
	assert.ErrorIs(t, err, ErrStopped)
	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, term.Render(), ErrStopped)
	_, _, err = term.GetNBlock()
	assert.ErrorIs(t, err, ErrStopped)

	// The pump ends once the screen is finalized.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	fd := term.InputFD()
	for i := 0; i < 16; i++ {
		if err = fd.Poll(ctx); err != nil {
			break
		}
		fd.pop()
	}
	assert.ErrorIs(t, err, ErrInputClosed)
}
