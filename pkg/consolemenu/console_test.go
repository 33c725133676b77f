package consolemenu

import (
	"strings"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
)

// gridConsole records writes into a character grid with per-cell attributes.
type gridConsole struct {
	rows     [][]rune
	attrs    [][]constants.Attr
	col, row int
	attr     constants.Attr
	clears   int
	shows    int
}

func newGridConsole() *gridConsole {
	return &gridConsole{}
}

func (g *gridConsole) Clear() {
	g.rows = nil
	g.attrs = nil
	g.col, g.row = 0, 0
	g.clears++
}

func (g *gridConsole) MoveCursor(col, row int) {
	g.col, g.row = col, row
}

func (g *gridConsole) SetAttr(attr constants.Attr) {
	g.attr = attr
}

func (g *gridConsole) Write(text string) {
	for _, r := range text {
		g.set(g.col, g.row, r)
		g.col++
	}
}

func (g *gridConsole) NewLine() {
	g.ensure(0, g.row)
	g.col = 0
	g.row++
}

func (g *gridConsole) Show() error {
	g.shows++
	return nil
}

func (g *gridConsole) ensure(col, row int) {
	for len(g.rows) <= row {
		g.rows = append(g.rows, nil)
		g.attrs = append(g.attrs, nil)
	}
	for len(g.rows[row]) < col {
		g.rows[row] = append(g.rows[row], ' ')
		g.attrs[row] = append(g.attrs[row], constants.AttrNone)
	}
}

func (g *gridConsole) set(col, row int, r rune) {
	g.ensure(col+1, row)
	g.rows[row][col] = r
	g.attrs[row][col] = g.attr
}

// Line returns a row's text with trailing spaces removed.
func (g *gridConsole) Line(row int) string {
	if row >= len(g.rows) {
		return ""
	}
	return strings.TrimRight(string(g.rows[row]), " ")
}

// AttrAt returns the attribute a cell was written with.
func (g *gridConsole) AttrAt(col, row int) constants.Attr {
	if row >= len(g.attrs) || col >= len(g.attrs[row]) {
		return constants.AttrNone
	}
	return g.attrs[row][col]
}

// MarkerRows returns the rows that currently start with the cursor marker.
func (g *gridConsole) MarkerRows() []int {
	var rows []int
	for i := range g.rows {
		if strings.HasPrefix(string(g.rows[i]), constants.CursorMarker) {
			rows = append(rows, i)
		}
	}
	return rows
}
