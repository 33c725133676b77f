// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import "github.com/BrandonKowalski/consolemenu/pkg/consolemenu"

// Theme returns Cannoli's default colors: white text on black with teal
// inactive entries.
func Theme() consolemenu.Theme {
	return consolemenu.Theme{
		Text:       0xFFFFFF,
		Hint:       0x008080,
		Background: 0x000000,
	}
}
