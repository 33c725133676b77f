// Package menu builds consolemenu views from declarative TOML definitions.
//
// A definition names a root view and any number of views. Select entries
// either push another view (target) or run a registered callback (action):
//
//	root = "main"
//
//	[[views.main.entries]]
//	type = "heading"
//	text_id = "main_title"
//	text = "Main Menu"
//
//	[[views.main.entries]]
//	type = "select"
//	text = "Settings"
//	target = "settings"
//
//	[[views.main.entries]]
//	type = "select"
//	text = "Quit"
//	action = "quit"
//
// Text is localized through text_id when a localizer is supplied, with text as
// the fallback.
package menu

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu"
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/internal"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// EntryDef describes one entry of a view.
type EntryDef struct {
	Type   string `toml:"type"`    // heading, select, inactive or blank
	Text   string `toml:"text"`    // Display text, also the fallback for TextID
	TextID string `toml:"text_id"` // Message ID looked up in the localizer
	Target string `toml:"target"`  // View pushed when selected
	Action string `toml:"action"`  // Callback run when selected
}

// ViewDef describes one view.
type ViewDef struct {
	Entries []EntryDef `toml:"entries"`
}

// Definition is a parsed menu file.
type Definition struct {
	Root  string             `toml:"root"`
	Views map[string]ViewDef `toml:"views"`
}

// Load reads and validates a menu file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a menu document.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if _, err := toml.Decode(string(data), &def); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks that the root and every target exist, every entry type is
// known, and every view has something to select. All problems are reported.
func (d *Definition) Validate() error {
	var errs []error

	if d.Root == "" {
		errs = append(errs, errors.New("menu: root view not set"))
	} else if _, ok := d.Views[d.Root]; !ok {
		errs = append(errs, fmt.Errorf("menu: root view %q not defined", d.Root))
	}

	for _, name := range d.ViewNames() {
		view := d.Views[name]
		selectable := false

		for i, entry := range view.Entries {
			entryType, err := parseEntryType(entry.Type)
			if err != nil {
				errs = append(errs, fmt.Errorf("menu: view %q entry %d: %w", name, i, err))
				continue
			}

			if entryType == consolemenu.EntryTypeSelect {
				selectable = true
			}

			if entry.Target != "" && entry.Action != "" {
				errs = append(errs, fmt.Errorf("menu: view %q entry %d: target and action are exclusive", name, i))
			}

			if entry.Target != "" {
				if _, ok := d.Views[entry.Target]; !ok {
					errs = append(errs, fmt.Errorf("menu: view %q entry %d: unknown target %q", name, i, entry.Target))
				}
			}
		}

		if !selectable {
			errs = append(errs, fmt.Errorf("menu: view %q has no select entry", name))
		}
	}

	return errors.Join(errs...)
}

// ViewNames returns the defined view names in sorted order.
func (d *Definition) ViewNames() []string {
	names := make([]string, 0, len(d.Views))
	for name := range d.Views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseEntryType(raw string) (consolemenu.EntryType, error) {
	switch raw {
	case "heading":
		return consolemenu.EntryTypeHeading, nil
	case "select":
		return consolemenu.EntryTypeSelect, nil
	case "inactive":
		return consolemenu.EntryTypeSelectInactive, nil
	case "blank", "":
		return consolemenu.EntryTypeBlank, nil
	}
	return 0, fmt.Errorf("unknown entry type %q", raw)
}

// Builder turns view definitions into views bound to a stack.
type Builder struct {
	Definition *Definition
	Stack      *consolemenu.ViewStack
	Actions    map[string]func()
	Localizer  *i18n.Localizer // optional
}

// Root builds the root view.
func (b *Builder) Root() (*consolemenu.View, error) {
	return b.Build(b.Definition.Root)
}

// Build creates a fresh view for name. Views are rebuilt on every push since
// unwinding discards them.
func (b *Builder) Build(name string) (*consolemenu.View, error) {
	def, ok := b.Definition.Views[name]
	if !ok {
		return nil, fmt.Errorf("menu: view %q not defined", name)
	}

	entries := make([]consolemenu.ViewEntry, 0, len(def.Entries))
	for i, entryDef := range def.Entries {
		entry, err := b.entry(entryDef)
		if err != nil {
			return nil, fmt.Errorf("menu: view %q entry %d: %w", name, i, err)
		}
		entries = append(entries, entry)
	}

	return consolemenu.NewView(entries...), nil
}

func (b *Builder) entry(def EntryDef) (consolemenu.ViewEntry, error) {
	entryType, err := parseEntryType(def.Type)
	if err != nil {
		return consolemenu.ViewEntry{}, err
	}

	text := internal.Localize(b.Localizer, def.TextID, def.Text)

	switch entryType {
	case consolemenu.EntryTypeHeading:
		return consolemenu.Heading(text), nil
	case consolemenu.EntryTypeSelectInactive:
		return consolemenu.Inactive(text), nil
	case consolemenu.EntryTypeBlank:
		return consolemenu.Blank(), nil
	}

	switch {
	case def.Target != "":
		return consolemenu.Select(text, b.pushTarget(def.Target)), nil
	case def.Action != "":
		action, ok := b.Actions[def.Action]
		if !ok {
			return consolemenu.ViewEntry{}, fmt.Errorf("unknown action %q", def.Action)
		}
		return consolemenu.Select(text, action), nil
	}
	return consolemenu.Select(text, nil), nil
}

func (b *Builder) pushTarget(target string) func() {
	return func() {
		view, err := b.Build(target)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to build view", "view", target, "error", err)
			return
		}
		b.Stack.Push(view)
	}
}
