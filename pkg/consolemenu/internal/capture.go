package internal

import (
	"context"
	"strings"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/holoplot/go-evdev"
)

// CaptureMapping walks through every button, calls prompt, and records the
// first key code pressed on the device. Pressing a code that is already
// captured skips the current button. Keyboard bindings are left at defaults.
func CaptureMapping(ctx context.Context, reader EventReader, prompt func(constants.VirtualButton)) (InputMapping, error) {
	mapping := DefaultInputMapping()
	mapping.Evdev = make(map[string][]int)

	seen := make(map[evdev.EvCode]constants.VirtualButton)

	for _, button := range constants.AllButtons {
		if err := ctx.Err(); err != nil {
			return InputMapping{}, err
		}

		prompt(button)

		code, err := nextKeyDown(ctx, reader)
		if err != nil {
			return InputMapping{}, err
		}

		if owner, dup := seen[code]; dup {
			GetInternalLogger().Info("Skipping button", "button", button.GetName(), "code", int(code), "owner", owner.GetName())
			continue
		}

		seen[code] = button
		name := strings.ToLower(button.GetName())
		mapping.Evdev[name] = append(mapping.Evdev[name], int(code))
		GetInternalLogger().Info("Captured button", "button", button.GetName(), "code", int(code))
	}

	return mapping, nil
}

func nextKeyDown(ctx context.Context, reader EventReader) (evdev.EvCode, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		ev, err := reader.ReadOne()
		if err != nil {
			return 0, err
		}

		if ev.Type == evdev.EV_KEY && ev.Value == keyPressed {
			return ev.Code, nil
		}
	}
}
