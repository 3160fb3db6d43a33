// SPDX-License-Identifier: MPL-2.0

package pathmap

import (
	"maps"
	"slices"
	"strings"

	"github.com/invowk/porter/pkg/types"
)

type (
	// Entry is one name→location pair of a table.
	Entry struct {
		Name     types.ModuleName
		Location types.FilesystemPath
	}

	// Table is an immutable name→location mapping. It is safe for concurrent
	// reads; no method mutates it after Parse returns.
	Table struct {
		entries []Entry
		index   map[types.ModuleName]types.FilesystemPath
	}
)

// Parse builds a Table from a serialized mapping. It fails on the first
// malformed entry; a nil Table is never returned together with a nil error.
func Parse(raw string, opts ...Option) (*Table, error) {
	o := NewOptions(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	kv := string(o.KeyValueSplit)
	t := &Table{index: make(map[types.ModuleName]types.FilesystemPath)}

	for i, entry := range strings.Split(raw, string(o.EntrySplit)) {
		if n := strings.Count(entry, kv); n != 1 {
			return nil, &MalformedEntryError{Index: i, Entry: entry, Separator: o.KeyValueSplit, Count: n}
		}
		namesPart, locPart, _ := strings.Cut(entry, kv)

		if strings.TrimSpace(namesPart) == "" {
			return nil, &EmptyNameError{Index: i, Entry: entry}
		}
		loc := types.FilesystemPath(strings.TrimSpace(locPart))
		if loc.Validate() != nil {
			return nil, &EmptyLocationError{Index: i, Entry: entry}
		}

		names := []string{namesPart}
		if sep, ok := o.NameLists(); ok {
			names = strings.Split(namesPart, string(sep))
		}
		for _, raw := range names {
			name := types.ModuleName(strings.TrimSpace(raw))
			if name == "" {
				return nil, &EmptyNameError{Index: i, Entry: entry}
			}
			if err := name.ValidateFlat(); err != nil {
				return nil, &InvalidNameError{Index: i, Name: name, Cause: err}
			}
			if prev, dup := t.index[name]; dup {
				return nil, &DuplicateNameError{Name: name, First: prev, Second: loc}
			}
			t.index[name] = loc
			t.entries = append(t.entries, Entry{Name: name, Location: loc})
		}
	}

	return t, nil
}

// Lookup returns the location configured for name.
func (t *Table) Lookup(name types.ModuleName) (types.FilesystemPath, bool) {
	if t == nil {
		return "", false
	}
	loc, ok := t.index[name]
	return loc, ok
}

// Has reports whether name is configured.
func (t *Table) Has(name types.ModuleName) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Len returns the number of configured names.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns the configured names in sorted order.
func (t *Table) Names() []types.ModuleName {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.index))
}

// Entries returns the entries in the order they appeared in the source string.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return slices.Clone(t.entries)
}

// Equal reports whether both tables map the same names to the same locations.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t.Len() == 0 {
		return true
	}
	return maps.Equal(t.index, other.index)
}

// Encode serializes the table back into the mapping format. Names sharing a
// location are grouped into one entry, in order of first appearance, so
// Parse(t.Encode(opts...), opts...) yields a table Equal to t.
func (t *Table) Encode(opts ...Option) string {
	o := NewOptions(opts...)
	return Encode(t.Entries(), o)
}

// Encode serializes entries with the given delimiters, grouping names that
// share a location when name lists are on. The caller is responsible for
// entries being valid.
func Encode(entries []Entry, o Options) string {
	sep, grouped := o.NameLists()
	if !grouped {
		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, string(e.Name)+string(o.KeyValueSplit)+string(e.Location))
		}
		return strings.Join(parts, string(o.EntrySplit))
	}

	var order []types.FilesystemPath
	groups := make(map[types.FilesystemPath][]string)
	for _, e := range entries {
		if _, seen := groups[e.Location]; !seen {
			order = append(order, e.Location)
		}
		groups[e.Location] = append(groups[e.Location], string(e.Name))
	}

	parts := make([]string, 0, len(order))
	for _, loc := range order {
		parts = append(parts, strings.Join(groups[loc], string(sep))+string(o.KeyValueSplit)+string(loc))
	}
	return strings.Join(parts, string(o.EntrySplit))
}
