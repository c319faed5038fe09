// Package station provides the metadata record for a measurement site.
package station

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Station holds the metadata of a single station.
// The fields are whatever the constructing loader supplies; no schema is
// imposed here.
type Station struct {
	fields map[string]any
}

// New creates a station from a set of named attributes.
// The mapping is copied, so later changes to attrs do not affect the station.
func New(attrs map[string]any) *Station {
	fields := make(map[string]any, len(attrs))
	for k, v := range attrs {
		fields[k] = v
	}
	return &Station{fields: fields}
}

// Get returns the named field.
func (s *Station) Get(name string) (any, bool) {
	v, ok := s.fields[name]
	return v, ok
}

// Fields returns a copy of all fields.
func (s *Station) Fields() map[string]any {
	out := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		out[k] = v
	}
	return out
}

// Keys returns the field names in sorted order.
func (s *Station) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Decode binds the station fields to a typed struct.
// Struct fields are matched by their `station` tag (or name when untagged),
// and numeric strings are converted where the target type asks for it.
func (s *Station) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "station",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create station decoder: %w", err)
	}
	if err := decoder.Decode(s.fields); err != nil {
		return fmt.Errorf("failed to decode station fields: %w", err)
	}
	return nil
}

// String returns a debug representation showing every field.
func (s *Station) String() string {
	return fmt.Sprintf("Station(%v)", s.fields)
}
