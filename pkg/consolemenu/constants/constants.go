// Package constants defines shared constants, types, and configuration values
// used throughout the consolemenu navigation layer.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read during initialization.
const (
	EnvironmentEnvVar     = "ENVIRONMENT"       // DEV enables debug internal logging and keyboard input
	InputCaptureEnvVar    = "INPUT_CAPTURE"     // Run the input mapping capture instead of the menu
	FlipFaceButtonsEnvVar = "FLIP_FACE_BUTTONS" // Use direct face button mapping
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// IsFlipFaceButtons reports whether FLIP_FACE_BUTTONS is set to a truthy value.
func IsFlipFaceButtons() bool {
	switch strings.ToLower(os.Getenv(FlipFaceButtonsEnvVar)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows the same menus to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

// Navigation roles consumed by the view stack.
const (
	ButtonConfirm = VirtualButtonA
	ButtonBack    = VirtualButtonB
)

// AllButtons lists every assignable button in declaration order.
var AllButtons = []VirtualButton{
	VirtualButtonUp,
	VirtualButtonDown,
	VirtualButtonLeft,
	VirtualButtonRight,
	VirtualButtonA,
	VirtualButtonB,
	VirtualButtonX,
	VirtualButtonY,
	VirtualButtonL1,
	VirtualButtonL2,
	VirtualButtonR1,
	VirtualButtonR2,
	VirtualButtonStart,
	VirtualButtonSelect,
	VirtualButtonMenu,
}

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonL2:
		return "L2"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonR2:
		return "R2"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// ButtonFromName resolves a case-insensitive button name as returned by GetName.
func ButtonFromName(name string) (VirtualButton, bool) {
	for _, vb := range AllButtons {
		if strings.EqualFold(vb.GetName(), name) {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// ButtonMask is a set of virtual buttons, one bit per button.
type ButtonMask uint64

// Bit returns the mask bit for a single button.
func (vb VirtualButton) Bit() ButtonMask {
	if vb <= VirtualButtonUnassigned {
		return 0
	}
	return ButtonMask(1) << uint(vb)
}

// MaskOf builds a mask from the given buttons.
func MaskOf(buttons ...VirtualButton) ButtonMask {
	var m ButtonMask
	for _, b := range buttons {
		m |= b.Bit()
	}
	return m
}

// Has reports whether b is in the mask.
func (m ButtonMask) Has(b VirtualButton) bool {
	bit := b.Bit()
	return bit != 0 && m&bit != 0
}

// With returns the mask with b set or cleared.
func (m ButtonMask) With(b VirtualButton, pressed bool) ButtonMask {
	if pressed {
		return m | b.Bit()
	}
	return m &^ b.Bit()
}

// Buttons returns the buttons in the mask in declaration order.
func (m ButtonMask) Buttons() []VirtualButton {
	var out []VirtualButton
	for _, b := range AllButtons {
		if m.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

func (m ButtonMask) String() string {
	buttons := m.Buttons()
	if len(buttons) == 0 {
		return "none"
	}
	names := make([]string, len(buttons))
	for i, b := range buttons {
		names[i] = b.GetName()
	}
	return strings.Join(names, "+")
}

// Attr is a console text attribute.
type Attr int

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << (iota - 1)
	AttrFaint
)

// CursorMarker is drawn at the start of the highlighted row.
const CursorMarker = "> "

// EntryIndent is the left padding of selectable rows, as wide as the cursor marker.
const EntryIndent = "  "

// Default timing constants.
const (
	DefaultInputDelay     = 20 * time.Millisecond  // Debounce delay between accepted presses
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before a direction repeats
	DefaultRepeatInterval = 50 * time.Millisecond  // Time between repeats while held
	DefaultPollInterval   = 16 * time.Millisecond  // Frame time of the session loop
)
