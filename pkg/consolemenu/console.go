package consolemenu

import "github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"

// Console is the character-grid output a ViewStack draws on.
// Rows and columns are zero-based. Write advances the column; NewLine moves to
// the start of the next row. Nothing is guaranteed visible before Show.
type Console interface {
	Clear()
	MoveCursor(col, row int)
	SetAttr(attr constants.Attr)
	Write(text string)
	NewLine()
	Show() error
}
