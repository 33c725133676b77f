package consolemenu

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestThemeTerminalColors(t *testing.T) {
	theme := Theme{Text: 0xFFFFFF, Hint: 0x008080, Background: 0x000000}.terminalTheme()

	assert.Equal(t, tcell.NewRGBColor(0xFF, 0xFF, 0xFF), theme.TextColor)
	assert.Equal(t, tcell.NewRGBColor(0x00, 0x80, 0x80), theme.HintColor)
	assert.Equal(t, tcell.NewRGBColor(0x00, 0x00, 0x00), theme.BackgroundColor)
}
