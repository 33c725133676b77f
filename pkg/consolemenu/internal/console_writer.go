package internal

import (
	"bufio"
	"io"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/muesli/termenv"
)

// WriterConsole emits ANSI sequences to a plain writer. Output is buffered
// until Show so a full render reaches the terminal in one write.
type WriterConsole struct {
	buf  *bufio.Writer
	out  *termenv.Output
	attr constants.Attr
}

// NewWriterConsole wraps w. Without options the color profile is detected from w.
func NewWriterConsole(w io.Writer, opts ...termenv.OutputOption) *WriterConsole {
	if len(opts) == 0 {
		opts = []termenv.OutputOption{termenv.WithProfile(termenv.NewOutput(w).Profile)}
	}

	buf := bufio.NewWriter(w)
	return &WriterConsole{
		buf: buf,
		out: termenv.NewOutput(buf, opts...),
	}
}

func (c *WriterConsole) Clear() {
	c.out.ClearScreen()
}

// MoveCursor takes zero-based coordinates; the terminal counts from one.
func (c *WriterConsole) MoveCursor(col, row int) {
	c.out.MoveCursor(row+1, col+1)
}

func (c *WriterConsole) SetAttr(attr constants.Attr) {
	c.attr = attr
}

func (c *WriterConsole) Write(text string) {
	if text == "" {
		return
	}

	style := c.out.String(text)
	if c.attr&constants.AttrBold != 0 {
		style = style.Bold()
	}
	if c.attr&constants.AttrFaint != 0 {
		style = style.Faint()
	}
	_, _ = c.out.WriteString(style.String())
}

func (c *WriterConsole) NewLine() {
	_, _ = c.out.WriteString("\n")
}

func (c *WriterConsole) Show() error {
	return c.buf.Flush()
}

func (c *WriterConsole) Close() error {
	return c.buf.Flush()
}
