package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/BurntSushi/toml"
	"github.com/holoplot/go-evdev"
)

// InputMapping binds virtual buttons to physical keys. Table keys are button
// names as returned by VirtualButton.GetName, case-insensitive.
//
//	flip_face_buttons = false
//
//	[keyboard]
//	up = ["up", "k"]
//
//	[evdev]
//	up = [103, 544]
type InputMapping struct {
	FlipFaceButtons bool                `toml:"flip_face_buttons"`
	Keyboard        map[string][]string `toml:"keyboard"`
	Evdev           map[string][]int    `toml:"evdev"`
}

// DefaultInputMapping covers arrow keys plus vi keys on a keyboard, and the
// d-pad, face and shoulder buttons of a Linux gamepad.
func DefaultInputMapping() InputMapping {
	return InputMapping{
		Keyboard: map[string][]string{
			"up":     {"up", "k"},
			"down":   {"down", "j"},
			"left":   {"left", "h"},
			"right":  {"right", "l"},
			"a":      {"enter", "space", "a"},
			"b":      {"escape", "backspace", "b"},
			"x":      {"x"},
			"y":      {"y"},
			"start":  {"s"},
			"select": {"tab"},
			"menu":   {"m"},
		},
		Evdev: map[string][]int{
			"up":     {int(evdev.KEY_UP), int(evdev.BTN_DPAD_UP)},
			"down":   {int(evdev.KEY_DOWN), int(evdev.BTN_DPAD_DOWN)},
			"left":   {int(evdev.KEY_LEFT), int(evdev.BTN_DPAD_LEFT)},
			"right":  {int(evdev.KEY_RIGHT), int(evdev.BTN_DPAD_RIGHT)},
			"a":      {int(evdev.BTN_EAST)},
			"b":      {int(evdev.BTN_SOUTH)},
			"x":      {int(evdev.BTN_NORTH)},
			"y":      {int(evdev.BTN_WEST)},
			"l1":     {int(evdev.BTN_TL)},
			"l2":     {int(evdev.BTN_TL2)},
			"r1":     {int(evdev.BTN_TR)},
			"r2":     {int(evdev.BTN_TR2)},
			"start":  {int(evdev.BTN_START)},
			"select": {int(evdev.BTN_SELECT)},
			"menu":   {int(evdev.BTN_MODE)},
		},
	}
}

// LoadInputMapping reads a TOML mapping file. Sections missing from the file
// keep their defaults.
func LoadInputMapping(path string) (InputMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InputMapping{}, fmt.Errorf("read input mapping: %w", err)
	}
	return ParseInputMapping(data)
}

// ParseInputMapping decodes a TOML mapping document.
func ParseInputMapping(data []byte) (InputMapping, error) {
	var mapping InputMapping
	md, err := toml.Decode(string(data), &mapping)
	if err != nil {
		return InputMapping{}, fmt.Errorf("decode input mapping: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		GetInternalLogger().Warn("Ignoring unknown input mapping keys", "keys", fmt.Sprint(undecoded))
	}

	defaults := DefaultInputMapping()
	if mapping.Keyboard == nil {
		mapping.Keyboard = defaults.Keyboard
	}
	if mapping.Evdev == nil {
		mapping.Evdev = defaults.Evdev
	}

	if err := mapping.Validate(); err != nil {
		return InputMapping{}, err
	}
	return mapping, nil
}

// Validate rejects unknown button names.
func (m InputMapping) Validate() error {
	for name := range m.Keyboard {
		if _, ok := constants.ButtonFromName(name); !ok {
			return fmt.Errorf("input mapping: unknown keyboard button %q", name)
		}
	}
	for name := range m.Evdev {
		if _, ok := constants.ButtonFromName(name); !ok {
			return fmt.Errorf("input mapping: unknown evdev button %q", name)
		}
	}
	return nil
}

// SaveToTOML writes the mapping, creating parent directories.
func (m InputMapping) SaveToTOML(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(m)
}

// KeyboardBindings resolves key names to buttons. Face buttons are never
// flipped on a keyboard since its keys carry their own labels.
func (m InputMapping) KeyboardBindings() map[string]constants.VirtualButton {
	bindings := make(map[string]constants.VirtualButton)
	for _, name := range sortedNames(m.Keyboard) {
		button, _ := constants.ButtonFromName(name)
		for _, key := range m.Keyboard[name] {
			bindings[strings.ToLower(key)] = button
		}
	}
	return bindings
}

// EvdevBindings resolves key codes to buttons, applying the face button flip.
func (m InputMapping) EvdevBindings() map[evdev.EvCode]constants.VirtualButton {
	bindings := make(map[evdev.EvCode]constants.VirtualButton)
	for _, name := range sortedNames(m.Evdev) {
		button, _ := constants.ButtonFromName(name)
		if m.FlipFaceButtons {
			button = flipFaceButton(button)
		}
		for _, code := range m.Evdev[name] {
			bindings[evdev.EvCode(code)] = button
		}
	}
	return bindings
}

func flipFaceButton(button constants.VirtualButton) constants.VirtualButton {
	switch button {
	case constants.VirtualButtonA:
		return constants.VirtualButtonB
	case constants.VirtualButtonB:
		return constants.VirtualButtonA
	case constants.VirtualButtonX:
		return constants.VirtualButtonY
	case constants.VirtualButtonY:
		return constants.VirtualButtonX
	}
	return button
}

// Later names win on duplicate keys, so iterate in a stable order.
func sortedNames[V any](section map[string]V) []string {
	names := make([]string, 0, len(section))
	for name := range section {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
