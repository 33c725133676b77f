package internal

import (
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/holoplot/go-evdev"
)

// Key event values reported by the kernel.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// EventReader is the part of an evdev device the sources read from.
type EventReader interface {
	ReadOne() (*evdev.InputEvent, error)
}

// EvdevSource reads a Linux input device such as a handheld's built-in gamepad.
// D-pads reported as hat axes are folded into the same button set.
type EvdevSource struct {
	reader   EventReader
	device   *evdev.InputDevice
	bindings map[evdev.EvCode]constants.VirtualButton
	held     constants.ButtonMask
}

// OpenEvdevSource opens the device at path, e.g. /dev/input/event1.
func OpenEvdevSource(path string, mapping InputMapping) (*EvdevSource, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	name, _ := device.Name()
	GetInternalLogger().Debug("Opened input device", "path", path, "name", name)

	s := NewEvdevSource(device, mapping)
	s.device = device
	return s, nil
}

// NewEvdevSource reads from an already open device.
func NewEvdevSource(reader EventReader, mapping InputMapping) *EvdevSource {
	return &EvdevSource{
		reader:   reader,
		bindings: mapping.EvdevBindings(),
	}
}

func (s *EvdevSource) Next() (constants.ButtonMask, error) {
	for {
		ev, err := s.reader.ReadOne()
		if err != nil {
			return s.held, err
		}

		if next, changed := s.apply(ev); changed {
			return next, nil
		}
	}
}

func (s *EvdevSource) Close() error {
	if s.device == nil {
		return nil
	}
	return s.device.Close()
}

func (s *EvdevSource) apply(ev *evdev.InputEvent) (constants.ButtonMask, bool) {
	before := s.held

	switch ev.Type {
	case evdev.EV_KEY:
		button, ok := s.bindings[ev.Code]
		if !ok {
			return s.held, false
		}
		switch ev.Value {
		case keyPressed:
			s.held = s.held.With(button, true)
		case keyReleased:
			s.held = s.held.With(button, false)
		case keyRepeated:
			// Held directions repeat on the session's own timing.
		}

	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_HAT0Y:
			s.held = s.held.
				With(constants.VirtualButtonUp, ev.Value < 0).
				With(constants.VirtualButtonDown, ev.Value > 0)
		case evdev.ABS_HAT0X:
			s.held = s.held.
				With(constants.VirtualButtonLeft, ev.Value < 0).
				With(constants.VirtualButtonRight, ev.Value > 0)
		}
	}

	return s.held, s.held != before
}
