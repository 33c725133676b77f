package internal

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used by the terminal console.
// Attributes (bold, faint) come from the entry type; colors only tint them.
type Theme struct {
	TextColor       tcell.Color // Default text color
	HintColor       tcell.Color // Inactive entry color
	BackgroundColor tcell.Color // Screen background color
}

var currentTheme = DefaultTheme()

// DefaultTheme uses the terminal's own palette.
func DefaultTheme() Theme {
	return Theme{
		TextColor:       tcell.ColorDefault,
		HintColor:       tcell.ColorDefault,
		BackgroundColor: tcell.ColorDefault,
	}
}

// HexToColor converts 0xRRGGBB into a terminal color.
func HexToColor(hex uint32) tcell.Color {
	return tcell.NewHexColor(int32(hex & 0xFFFFFF))
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}
