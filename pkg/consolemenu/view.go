package consolemenu

// EntryType controls how an entry is drawn and whether the cursor may rest on it.
type EntryType int

const (
	EntryTypeHeading        EntryType = iota // Bold title row, never selectable
	EntryTypeSelect                          // Selectable row
	EntryTypeSelectInactive                  // Dimmed row that is skipped by the cursor
	EntryTypeBlank                           // Empty spacer row
)

func (t EntryType) String() string {
	switch t {
	case EntryTypeHeading:
		return "heading"
	case EntryTypeSelect:
		return "select"
	case EntryTypeSelectInactive:
		return "inactive"
	case EntryTypeBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// ViewEntry is a single line of a View.
type ViewEntry struct {
	Text       string    // Display text
	Type       EntryType // Drawing style and selectability
	OnSelected func()    // Invoked on confirm when Type is EntryTypeSelect
}

// Heading creates a bold title entry.
func Heading(text string) ViewEntry {
	return ViewEntry{Text: text, Type: EntryTypeHeading}
}

// Select creates a selectable entry. onSelected may be nil.
func Select(text string, onSelected func()) ViewEntry {
	return ViewEntry{Text: text, Type: EntryTypeSelect, OnSelected: onSelected}
}

// Inactive creates a dimmed entry that the cursor skips. Its callback, if any,
// is never invoked.
func Inactive(text string) ViewEntry {
	return ViewEntry{Text: text, Type: EntryTypeSelectInactive}
}

// Blank creates an empty spacer row.
func Blank() ViewEntry {
	return ViewEntry{Type: EntryTypeBlank}
}

// View is one menu screen: a fixed list of entries and the cursor over them.
type View struct {
	entries   []ViewEntry
	cursorPos int
	previous  int
}

// NewView copies entries into a new View. The entry list cannot change afterwards.
func NewView(entries ...ViewEntry) *View {
	owned := make([]ViewEntry, len(entries))
	copy(owned, entries)
	return &View{
		entries:  owned,
		previous: -1,
	}
}

// Entries returns a copy of the view's entries.
func (v *View) Entries() []ViewEntry {
	out := make([]ViewEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Len returns the number of entries.
func (v *View) Len() int {
	return len(v.entries)
}

// CursorPos returns the index of the highlighted entry.
func (v *View) CursorPos() int {
	return v.cursorPos
}

// Previous returns the stack index of the view that pushed this one, or -1.
func (v *View) Previous() int {
	return v.previous
}

// Selectable reports whether at least one entry can hold the cursor.
func (v *View) Selectable() bool {
	return v.firstSelectable() >= 0
}

func (v *View) firstSelectable() int {
	for i, entry := range v.entries {
		if entry.Type == EntryTypeSelect {
			return i
		}
	}
	return -1
}

// nextSelectable scans from the cursor in steps of direction, wrapping at both
// ends, and returns the first Select index found or -1 after a full loop.
func (v *View) nextSelectable(direction int) int {
	count := len(v.entries)
	for i := 0; i < count; i++ {
		pos := v.cursorPos + i*direction + direction

		if pos < 0 {
			pos = count + pos
		}
		pos %= count

		if v.entries[pos].Type == EntryTypeSelect {
			return pos
		}
	}
	return -1
}

// release detaches a view removed from the stack. Its entries stay intact so
// the same view can be pushed again.
func (v *View) release() {
	v.previous = -1
}
