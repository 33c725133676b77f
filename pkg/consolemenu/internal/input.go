package internal

import (
	"errors"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
)

// ErrQuitRequested is returned by an input source when the user asked to leave
// (Ctrl-C on a keyboard). It ends a session cleanly.
var ErrQuitRequested = errors.New("quit requested")

// InputSource delivers the set of currently pressed buttons.
// Next blocks until that set changes.
type InputSource interface {
	Next() (constants.ButtonMask, error)
	Close() error
}

// ButtonTracker turns successive "currently pressed" masks into the buttons
// that went down since the previous poll.
type ButtonTracker struct {
	previous constants.ButtonMask
}

// Update records mask as the current state and returns the newly pressed buttons.
func (t *ButtonTracker) Update(mask constants.ButtonMask) constants.ButtonMask {
	pressed := mask &^ t.previous
	t.previous = mask
	return pressed
}

// Held returns the mask recorded by the last Update.
func (t *ButtonTracker) Held() constants.ButtonMask {
	return t.previous
}

// Reset forgets the held state.
func (t *ButtonTracker) Reset() {
	t.previous = 0
}
