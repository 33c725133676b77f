package internal

import (
	"io"
	"strings"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/gdamore/tcell/v2"
)

// EventPoller is the part of a tcell screen the keyboard source reads from.
type EventPoller interface {
	PollEvent() tcell.Event
}

// KeyboardSource reads key events from a terminal. Terminals report presses
// only, so every press is followed by a synthetic release on the next call.
type KeyboardSource struct {
	poller   EventPoller
	bindings map[string]constants.VirtualButton
	pending  bool
	resized  func()
}

// NewKeyboardSource binds key names from the mapping. onResize, when set, runs
// on terminal resize events.
func NewKeyboardSource(poller EventPoller, mapping InputMapping, onResize func()) *KeyboardSource {
	return &KeyboardSource{
		poller:   poller,
		bindings: mapping.KeyboardBindings(),
		resized:  onResize,
	}
}

func (s *KeyboardSource) Next() (constants.ButtonMask, error) {
	if s.pending {
		s.pending = false
		return 0, nil
	}

	for {
		ev := s.poller.PollEvent()
		if ev == nil {
			return 0, io.EOF
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return 0, ErrQuitRequested
			}

			button, ok := s.bindings[KeyName(ev)]
			if !ok {
				GetInternalLogger().Debug("Unbound key", "key", ev.Name())
				continue
			}

			s.pending = true
			return button.Bit(), nil

		case *tcell.EventResize:
			if s.resized != nil {
				s.resized()
			}
		}
	}
}

func (s *KeyboardSource) Close() error {
	return nil
}

// KeyName returns the mapping name for a key event: a lower-case special key
// name or the typed character itself.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}
