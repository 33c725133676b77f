package consolemenu

import (
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/internal"
)

// ViewStack owns the views pushed so far. The top of the stack is the current
// view; each view records the index of the view that pushed it.
//
// A ViewStack is not safe for concurrent use. Callbacks run on the goroutine
// that called OnInput and may push or unwind.
type ViewStack struct {
	views   []*View
	console Console
}

// NewViewStack creates an empty stack drawing on console. The first view
// pushed becomes the root and is never unwound.
func NewViewStack(console Console) *ViewStack {
	return &ViewStack{
		views:   make([]*View, 0),
		console: console,
	}
}

// Current returns the view on top of the stack, or nil if nothing was pushed.
func (s *ViewStack) Current() *View {
	if len(s.views) == 0 {
		return nil
	}
	return s.views[len(s.views)-1]
}

// Depth returns the number of views on the stack, the root included.
func (s *ViewStack) Depth() int {
	return len(s.views)
}

// IsRoot reports whether the current view is the root view.
func (s *ViewStack) IsRoot() bool {
	return len(s.views) <= 1
}

// Entry returns the entry under the cursor of the current view.
func (s *ViewStack) Entry() (ViewEntry, bool) {
	view := s.Current()
	if view == nil || view.cursorPos < 0 || view.cursorPos >= len(view.entries) {
		return ViewEntry{}, false
	}
	return view.entries[view.cursorPos], true
}

// Push makes view current, links it to the view it replaces, moves its cursor
// to the first selectable entry and renders. The cursor stays at 0 when the
// view has nothing selectable.
func (s *ViewStack) Push(view *View) {
	if view == nil {
		return
	}

	for _, v := range s.views {
		if v == view {
			internal.GetInternalLogger().Warn("Ignoring push of a view already on the stack", "depth", len(s.views))
			return
		}
	}

	view.previous = len(s.views) - 1
	view.cursorPos = 0
	if first := view.firstSelectable(); first >= 0 {
		view.cursorPos = first
	}

	s.views = append(s.views, view)
	internal.GetInternalLogger().Debug("Pushed view", "depth", len(s.views), "entries", len(view.entries))

	s.Render()
}

// Unwind discards the current view and returns to the view that pushed it,
// with that view's cursor where it was left. The root view is never unwound.
func (s *ViewStack) Unwind() {
	if s.IsRoot() {
		return
	}

	top := s.views[len(s.views)-1]
	previous := top.previous

	s.views[len(s.views)-1] = nil
	s.views = s.views[:previous+1]
	top.release()

	internal.GetInternalLogger().Debug("Unwound view", "depth", len(s.views))

	s.Render()
}

// Reset unwinds to the root view in one step.
func (s *ViewStack) Reset() {
	if s.IsRoot() {
		return
	}

	for i := len(s.views) - 1; i > 0; i-- {
		s.views[i].release()
		s.views[i] = nil
	}
	s.views = s.views[:1]

	internal.GetInternalLogger().Debug("Reset to root view")

	s.Render()
}

// MoveCursor moves the cursor of the current view by one selectable entry in
// direction, wrapping at both ends. Directions other than -1 and 1 are ignored,
// as are views with nothing selectable.
func (s *ViewStack) MoveCursor(direction int) {
	if direction != -1 && direction != 1 {
		return
	}

	view := s.Current()
	if view == nil || len(view.entries) == 0 {
		return
	}

	next := view.nextSelectable(direction)
	if next < 0 {
		return
	}

	s.clearCursor()
	view.cursorPos = next
	s.drawCursor()
	s.show()
}

// OnInput performs at most one action for a mask of newly pressed buttons:
// Down, Up, Confirm and Back are checked in that order.
func (s *ViewStack) OnInput(pressed constants.ButtonMask) {
	if s.Current() == nil {
		return
	}

	switch {
	case pressed.Has(constants.VirtualButtonDown):
		s.MoveCursor(1)
	case pressed.Has(constants.VirtualButtonUp):
		s.MoveCursor(-1)
	case pressed.Has(constants.ButtonConfirm):
		s.confirm()
	case pressed.Has(constants.ButtonBack):
		s.Unwind()
	}
}

func (s *ViewStack) confirm() {
	entry, ok := s.Entry()
	if !ok || entry.Type != EntryTypeSelect || entry.OnSelected == nil {
		return
	}
	entry.OnSelected()
}

// Render redraws the current view: entries one per row, then the cursor marker.
func (s *ViewStack) Render() {
	if s.console == nil {
		return
	}

	s.console.Clear()

	view := s.Current()
	if view == nil {
		s.show()
		return
	}

	for _, entry := range view.entries {
		switch entry.Type {
		case EntryTypeHeading:
			s.console.SetAttr(constants.AttrBold)
			s.console.Write(entry.Text)
			s.console.SetAttr(constants.AttrNone)

		case EntryTypeSelectInactive:
			s.console.SetAttr(constants.AttrFaint)
			s.console.Write(constants.EntryIndent + entry.Text)
			s.console.SetAttr(constants.AttrNone)

		case EntryTypeSelect:
			s.console.Write(constants.EntryIndent + entry.Text)
		}
		s.console.NewLine()
	}

	s.drawCursor()
	s.show()
}

func (s *ViewStack) drawCursor() {
	view := s.Current()
	if s.console == nil || view == nil || !view.Selectable() {
		return
	}

	s.console.MoveCursor(0, view.cursorPos)
	s.console.SetAttr(constants.AttrBold)
	s.console.Write(constants.CursorMarker)
	s.console.SetAttr(constants.AttrNone)
}

func (s *ViewStack) clearCursor() {
	view := s.Current()
	if s.console == nil || view == nil {
		return
	}

	s.console.MoveCursor(0, view.cursorPos)
	s.console.SetAttr(constants.AttrNone)
	s.console.Write(constants.EntryIndent)
}

func (s *ViewStack) show() {
	if s.console == nil {
		return
	}
	if err := s.console.Show(); err != nil {
		internal.GetInternalLogger().Error("Failed to show console", "error", err)
	}
}
