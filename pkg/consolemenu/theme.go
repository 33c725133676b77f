package consolemenu

import "github.com/BrandonKowalski/consolemenu/pkg/consolemenu/internal"

// Theme colors the terminal console. Values are 0xRRGGBB.
// Plain mode output is not colored.
type Theme struct {
	Text       uint32
	Hint       uint32 // Inactive entries
	Background uint32
}

func (t Theme) terminalTheme() internal.Theme {
	return internal.Theme{
		TextColor:       internal.HexToColor(t.Text),
		HintColor:       internal.HexToColor(t.Hint),
		BackgroundColor: internal.HexToColor(t.Background),
	}
}
