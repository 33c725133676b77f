package internal

import (
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TerminalConsole draws onto a tcell screen as a character grid.
// Writes land at an internal cursor that advances by glyph width.
type TerminalConsole struct {
	screen   tcell.Screen
	col, row int
	attr     constants.Attr
	theme    Theme
}

// NewTerminalConsole takes over the controlling terminal.
func NewTerminalConsole() (*TerminalConsole, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	return NewTerminalConsoleWithScreen(screen), nil
}

// NewTerminalConsoleWithScreen wraps an already initialized screen.
func NewTerminalConsoleWithScreen(screen tcell.Screen) *TerminalConsole {
	screen.HideCursor()
	return &TerminalConsole{
		screen: screen,
		theme:  GetTheme(),
	}
}

func (c *TerminalConsole) Screen() tcell.Screen {
	return c.screen
}

func (c *TerminalConsole) Clear() {
	c.screen.SetStyle(tcell.StyleDefault.Background(c.theme.BackgroundColor))
	c.screen.Clear()
	c.col, c.row = 0, 0
}

func (c *TerminalConsole) MoveCursor(col, row int) {
	c.col, c.row = col, row
}

func (c *TerminalConsole) SetAttr(attr constants.Attr) {
	c.attr = attr
}

func (c *TerminalConsole) Write(text string) {
	style := c.styleFor(c.attr)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		c.screen.SetContent(c.col, c.row, r, nil, style)
		c.col += w
	}
}

func (c *TerminalConsole) NewLine() {
	c.col = 0
	c.row++
}

func (c *TerminalConsole) Show() error {
	c.screen.Show()
	return nil
}

func (c *TerminalConsole) Close() error {
	c.screen.Fini()
	return nil
}

// PollEvent blocks until the screen delivers an event, or returns nil after Close.
func (c *TerminalConsole) PollEvent() tcell.Event {
	return c.screen.PollEvent()
}

func (c *TerminalConsole) styleFor(attr constants.Attr) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(c.theme.TextColor).
		Background(c.theme.BackgroundColor)

	if attr&constants.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attr&constants.AttrFaint != 0 {
		style = style.Dim(true).Foreground(c.theme.HintColor)
	}
	return style
}
