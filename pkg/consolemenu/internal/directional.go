package internal

import (
	"time"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
)

// DirectionalInput tracks held vertical directions and handles repeat timing.
// Only Up and Down repeat; the view stack has no horizontal navigation.
type DirectionalInput struct {
	held struct {
		up, down bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a repeatable direction.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch button {
	case constants.VirtualButtonUp:
		if held && !d.held.up {
			d.restart()
		}
		d.held.up = held
	case constants.VirtualButtonDown:
		if held && !d.held.down {
			d.restart()
		}
		d.held.down = held
	default:
		return false
	}
	if !held {
		d.hasRepeated = false
	}
	return true
}

// SetHeldMask updates both directions from a mask of currently pressed buttons.
func (d *DirectionalInput) SetHeldMask(mask constants.ButtonMask) {
	d.SetHeld(constants.VirtualButtonUp, mask.Has(constants.VirtualButtonUp))
	d.SetHeld(constants.VirtualButtonDown, mask.Has(constants.VirtualButtonDown))
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.up || d.held.down
}

// HeldButton returns the currently held direction, up taking priority.
// Returns VirtualButtonUnassigned if nothing is held.
func (d *DirectionalInput) HeldButton() constants.VirtualButton {
	if d.held.up {
		return constants.VirtualButtonUp
	}
	if d.held.down {
		return constants.VirtualButtonDown
	}
	return constants.VirtualButtonUnassigned
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the button that should be processed,
// or VirtualButtonUnassigned if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() constants.VirtualButton {
	if !d.IsHeld() {
		d.lastRepeatTime = d.now()
		d.hasRepeated = false
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.now().Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = d.now()
		d.hasRepeated = true
		return d.HeldButton()
	}

	return constants.VirtualButtonUnassigned
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	d.held.up = false
	d.held.down = false
	d.restart()
}

func (d *DirectionalInput) restart() {
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
