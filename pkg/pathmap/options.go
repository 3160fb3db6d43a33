// SPDX-License-Identifier: MPL-2.0

package pathmap

import "github.com/invowk/porter/pkg/types"

type (
	// Options controls the delimiters of the mapping format.
	//
	// NameSplit is optional. When it was not set through WithNameSplit and
	// the default "," equals one of the other delimiters, name lists are
	// turned off and every entry carries a single name.
	Options struct {
		EntrySplit    types.Delimiter
		KeyValueSplit types.Delimiter
		NameSplit     types.Delimiter

		nameSplitSet bool
	}

	// Option configures Options.
	Option func(*Options)
)

// DefaultOptions returns the ":" / "=" / "," delimiter set.
func DefaultOptions() Options {
	return Options{
		EntrySplit:    types.DefaultEntrySplit,
		KeyValueSplit: types.DefaultKeyValueSplit,
		NameSplit:     types.DefaultNameSplit,
	}
}

// WithEntrySplit sets the delimiter between entries.
func WithEntrySplit(d types.Delimiter) Option {
	return func(o *Options) { o.EntrySplit = d }
}

// WithKeyValueSplit sets the delimiter between names and location.
func WithKeyValueSplit(d types.Delimiter) Option {
	return func(o *Options) { o.KeyValueSplit = d }
}

// WithNameSplit sets the delimiter between names sharing a location.
func WithNameSplit(d types.Delimiter) Option {
	return func(o *Options) {
		o.NameSplit = d
		o.nameSplitSet = true
	}
}

// NewOptions applies opts to DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NameLists returns the delimiter between names sharing a location, and
// false when name lists are off.
func (o Options) NameLists() (types.Delimiter, bool) {
	if o.NameSplit == "" {
		return "", false
	}
	if !o.nameSplitSet && (o.NameSplit == o.EntrySplit || o.NameSplit == o.KeyValueSplit) {
		return "", false
	}
	return o.NameSplit, true
}

// Validate checks that every delimiter is non-empty and that no two roles
// share a delimiter. A defaulted name delimiter is exempt; see Options.
func (o Options) Validate() error {
	type role struct {
		name  string
		value types.Delimiter
	}
	roles := []role{{"entry", o.EntrySplit}, {"key/value", o.KeyValueSplit}}
	if o.nameSplitSet {
		roles = append(roles, role{"name", o.NameSplit})
	}
	for i, r := range roles {
		if err := r.value.Validate(); err != nil {
			return &types.InvalidDelimiterError{Role: r.name, Value: r.value}
		}
		for _, prev := range roles[:i] {
			if prev.value == r.value {
				return &types.InvalidDelimiterError{Role: r.name, Value: r.value, Conflict: prev.name}
			}
		}
	}
	return nil
}
