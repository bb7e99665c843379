package backend

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ravana/internal/input/key"
)

// InputFD signals when terminal input is ready to read.
//
// The screen's event pump feeds a queue; Poll waits for it to become
// non-empty and Terminal.GetNBlock drains it one keystroke at a time.
// Poll never touches the screen, so it is safe to call without the Handle.
type InputFD struct {
	mu     sync.Mutex
	queue  []tcell.Event
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newInputFD() *InputFD {
	return &InputFD{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// pump moves screen events into the queue until the screen is finalized.
func (fd *InputFD) pump(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			fd.close()
			return
		}
		fd.push(ev)
	}
}

func (fd *InputFD) push(ev tcell.Event) {
	fd.mu.Lock()
	fd.queue = append(fd.queue, ev)
	fd.mu.Unlock()
	fd.signal()
}

func (fd *InputFD) signal() {
	select {
	case fd.notify <- struct{}{}:
	default:
	}
}

func (fd *InputFD) pop() (tcell.Event, bool) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	if len(fd.queue) == 0 {
		return nil, false
	}
	ev := fd.queue[0]
	fd.queue[0] = nil
	fd.queue = fd.queue[1:]
	if len(fd.queue) > 0 {
		fd.signal()
	}
	return ev, true
}

func (fd *InputFD) pending() bool {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	return len(fd.queue) > 0
}

func (fd *InputFD) close() {
	fd.once.Do(func() { close(fd.done) })
}

func (fd *InputFD) closed() bool {
	select {
	case <-fd.done:
		return true
	default:
		return false
	}
}

// Poll blocks until input is ready, the input stream ends or ctx is done.
// A ready result may be spurious; GetNBlock then reports nothing pending.
func (fd *InputFD) Poll(ctx context.Context) error {
	if fd.pending() {
		return nil
	}
	select {
	case <-fd.notify:
		return nil
	case <-fd.done:
		if fd.pending() {
			return nil
		}
		return ErrInputClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// namedKeys maps tcell keys that need no modifier handling.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyUp:     key.KeyUp,
	tcell.KeyDown:   key.KeyDown,
	tcell.KeyLeft:   key.KeyLeft,
	tcell.KeyRight:  key.KeyRight,
	tcell.KeyHome:   key.KeyHome,
	tcell.KeyEnd:    key.KeyEnd,
	tcell.KeyPgUp:   key.KeyPageUp,
	tcell.KeyPgDn:   key.KeyPageDown,
	tcell.KeyInsert: key.KeyInsert,
	tcell.KeyDelete: key.KeyDel,
	tcell.KeyF1:     key.KeyF1,
	tcell.KeyF2:     key.KeyF2,
	tcell.KeyF3:     key.KeyF3,
	tcell.KeyF4:     key.KeyF4,
	tcell.KeyF5:     key.KeyF5,
	tcell.KeyF6:     key.KeyF6,
	tcell.KeyF7:     key.KeyF7,
	tcell.KeyF8:     key.KeyF8,
	tcell.KeyF9:     key.KeyF9,
	tcell.KeyF10:    key.KeyF10,
	tcell.KeyF11:    key.KeyF11,
	tcell.KeyF12:    key.KeyF12,
}

// convertKeyEvent converts a tcell key event to a keystroke.
//
// Enter, Tab, Backspace and Escape share codes with Ctrl+M, Ctrl+I,
// Ctrl+H and Ctrl+[ and are matched first.
func convertKeyEvent(e *tcell.EventKey) (key.Event, bool) {
	mods := e.Modifiers()
	out := key.Event{
		Ctrl:  mods&tcell.ModCtrl != 0,
		Alt:   mods&(tcell.ModAlt|tcell.ModMeta) != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	k := e.Key()
	switch {
	case k == tcell.KeyRune:
		out.Rune = e.Rune()
	case k == tcell.KeyEnter:
		out.Key = key.KeyEnter
	case k == tcell.KeyTab:
		out.Key = key.KeyTab
	case k == tcell.KeyBacktab:
		out.Key = key.KeyTab
		out.Shift = true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		out.Key = key.KeyBackspace
	case k == tcell.KeyEscape:
		out.Key = key.KeyEsc
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		out.Rune = 'a' + rune(k-tcell.KeyCtrlA)
		out.Ctrl = true
	case k == tcell.KeyCtrlSpace:
		out.Rune = ' '
		out.Ctrl = true
	default:
		named, ok := namedKeys[k]
		if !ok {
			return key.Event{}, false
		}
		out.Key = named
	}

	return out, true
}
