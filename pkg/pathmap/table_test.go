// SPDX-License-Identifier: MPL-2.0

package pathmap

import (
	"errors"
	"slices"
	"testing"

	"github.com/invowk/porter/pkg/types"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		opts []Option
		want map[types.ModuleName]types.FilesystemPath
	}{
		{
			name: "single entry",
			raw:  "spam=/dev/modules",
			want: map[types.ModuleName]types.FilesystemPath{"spam": "/dev/modules"},
		},
		{
			name: "several entries share a directory",
			raw:  "spam=/dev/modules:ham=/dev/modules:shop=/dev/modules",
			want: map[types.ModuleName]types.FilesystemPath{
				"spam": "/dev/modules",
				"ham":  "/dev/modules",
				"shop": "/dev/modules",
			},
		},
		{
			name: "custom delimiters",
			raw:  "a:1|b:2",
			opts: []Option{WithEntrySplit("|"), WithKeyValueSplit(":")},
			want: map[types.ModuleName]types.FilesystemPath{"a": "1", "b": "2"},
		},
		{
			name: "comma entries turn default name lists off",
			raw:  "a=1,b=2",
			opts: []Option{WithEntrySplit(",")},
			want: map[types.ModuleName]types.FilesystemPath{"a": "1", "b": "2"},
		},
		{
			name: "comma key/value turns default name lists off",
			raw:  "a,1:b,2",
			opts: []Option{WithKeyValueSplit(",")},
			want: map[types.ModuleName]types.FilesystemPath{"a": "1", "b": "2"},
		},
		{
			name: "name list",
			raw:  "spam,ham=/dev/modules:shop=/dev/shop",
			want: map[types.ModuleName]types.FilesystemPath{
				"spam": "/dev/modules",
				"ham":  "/dev/modules",
				"shop": "/dev/shop",
			},
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  " spam = /dev/modules ",
			want: map[types.ModuleName]types.FilesystemPath{"spam": "/dev/modules"},
		},
		{
			name: "windows paths with semicolon entries",
			raw:  `spam=C:\dev\modules;ham=D:\shared`,
			opts: []Option{WithEntrySplit(";")},
			want: map[types.ModuleName]types.FilesystemPath{
				"spam": `C:\dev\modules`,
				"ham":  `D:\shared`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Parse(tt.raw, tt.opts...)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.raw, err)
			}
			if table.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", table.Len(), len(tt.want))
			}
			for name, want := range tt.want {
				got, ok := table.Lookup(name)
				if !ok {
					t.Errorf("Lookup(%q) missed", name)
					continue
				}
				if got != want {
					t.Errorf("Lookup(%q) = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		opts    []Option
		wantErr error
	}{
		{"entry without separator", "a=1:b", nil, ErrMalformedEntry},
		{"entry with two separators", "a=1=2", nil, ErrMalformedEntry},
		{"empty input", "", nil, ErrMalformedEntry},
		{"trailing entry delimiter", "a=1:", nil, ErrMalformedEntry},
		{"empty name", "=/dev/modules", nil, ErrEmptyName},
		{"blank name", "   =/dev/modules", nil, ErrEmptyName},
		{"empty name in list", "spam,,ham=/dev/modules", nil, ErrEmptyName},
		{"empty location", "spam=", nil, ErrEmptyLocation},
		{"blank location", "spam=  ", nil, ErrEmptyLocation},
		{"dotted name", "ham.eggs=/dev/modules", nil, ErrInvalidName},
		{"duplicate name", "spam=/a:spam=/b", nil, ErrDuplicateName},
		{"duplicate inside name list", "spam,spam=/a", nil, ErrDuplicateName},
		{"empty delimiter", "a=1", []Option{WithEntrySplit("")}, types.ErrInvalidDelimiter},
		{"equal delimiters", "a=1", []Option{WithEntrySplit("=")}, types.ErrInvalidDelimiter},
		{"explicit name delimiter conflict", "a=1", []Option{WithEntrySplit(","), WithNameSplit(",")}, types.ErrInvalidDelimiter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Parse(tt.raw, tt.opts...)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.raw, table.Names())
			}
			if table != nil {
				t.Errorf("Parse(%q) returned a table alongside error %v", tt.raw, err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr != types.ErrInvalidDelimiter && !errors.Is(err, ErrInvalidMapping) {
				t.Errorf("Parse(%q) error %v does not wrap ErrInvalidMapping", tt.raw, err)
			}
		})
	}
}

func TestParse_MalformedEntryDetail(t *testing.T) {
	t.Parallel()

	_, err := Parse("a=1:b")
	var mErr *MalformedEntryError
	if !errors.As(err, &mErr) {
		t.Fatalf("error = %T, want *MalformedEntryError", err)
	}
	if mErr.Index != 1 || mErr.Entry != "b" || mErr.Count != 0 {
		t.Errorf("MalformedEntryError = %+v, want index 1, entry \"b\", count 0", mErr)
	}
	want := `entry 1 ("b"): expected exactly one "=" separator, found 0`
	if mErr.Error() != want {
		t.Errorf("Error() = %q, want %q", mErr.Error(), want)
	}
}

func TestParse_DuplicateDetail(t *testing.T) {
	t.Parallel()

	_, err := Parse("spam=/a:spam=/b")
	var dErr *DuplicateNameError
	if !errors.As(err, &dErr) {
		t.Fatalf("error = %T, want *DuplicateNameError", err)
	}
	if dErr.Name != "spam" || dErr.First != "/a" || dErr.Second != "/b" {
		t.Errorf("DuplicateNameError = %+v", dErr)
	}
}

func TestTable_Accessors(t *testing.T) {
	t.Parallel()

	table, err := Parse("shop=/dev/shop:spam,ham=/dev/modules")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if got, want := table.Names(), []types.ModuleName{"ham", "shop", "spam"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	wantEntries := []Entry{
		{Name: "shop", Location: "/dev/shop"},
		{Name: "spam", Location: "/dev/modules"},
		{Name: "ham", Location: "/dev/modules"},
	}
	entries := table.Entries()
	if !slices.Equal(entries, wantEntries) {
		t.Errorf("Entries() = %v, want %v", entries, wantEntries)
	}

	// Entries returns a copy.
	entries[0].Location = "/elsewhere"
	if loc, _ := table.Lookup("shop"); loc != "/dev/shop" {
		t.Errorf("table mutated through Entries(): shop -> %q", loc)
	}

	if table.Has("parrot") {
		t.Error("Has(parrot) = true")
	}
	if _, ok := table.Lookup("ham.eggs"); ok {
		t.Error("Lookup of a dotted name hit")
	}
}

func TestTable_NilSafe(t *testing.T) {
	t.Parallel()

	var table *Table
	if table.Len() != 0 || table.Has("spam") || table.Names() != nil || table.Entries() != nil {
		t.Error("nil table accessors should report empty")
	}
}

func TestTable_EncodeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		opts []Option
		want string
	}{
		{
			name: "groups shared locations",
			raw:  "spam=/dev/modules:shop=/dev/shop:ham=/dev/modules",
			want: "spam,ham=/dev/modules:shop=/dev/shop",
		},
		{
			name: "custom delimiters",
			raw:  "a:1|b:2",
			opts: []Option{WithEntrySplit("|"), WithKeyValueSplit(":"), WithNameSplit(";")},
			want: "a:1|b:2",
		},
		{
			name: "name lists off keeps one name per entry",
			raw:  "a=/x,b=/x",
			opts: []Option{WithEntrySplit(",")},
			want: "a=/x,b=/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Parse(tt.raw, tt.opts...)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			encoded := table.Encode(tt.opts...)
			if encoded != tt.want {
				t.Errorf("Encode() = %q, want %q", encoded, tt.want)
			}
			again, err := Parse(encoded, tt.opts...)
			if err != nil {
				t.Fatalf("Parse(Encode()) error: %v", err)
			}
			if !table.Equal(again) {
				t.Errorf("round trip changed table: %v vs %v", table.Entries(), again.Entries())
			}
		})
	}
}
