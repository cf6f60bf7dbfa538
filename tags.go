// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

// Package metaview normalizes and interprets image metadata tag bags.
//
// The package takes the loosely typed tags produced by an EXIF/XMP decoder
// and derives a stable, presentable data model: resolved tag values, GPS
// coordinates, formatted dates, camera/lens summaries and AI generation
// parameters. All derivation functions are pure and total: absent or
// malformed input degrades to a zero value, never to a panic or an error.
package metaview

import (
	"sort"
	"strconv"
	"strings"
)

// Tag is a single decoded metadata tag.
//
// Decoders that pre-render a human readable form set Description. Value
// holds the raw decoded value: a string, a number, a Rat, or an ordered
// sequence ([]any) of such elements. Plain primitive tags carry only Value.
// A Tag is read-only input; nothing in this package mutates it.
type Tag struct {
	Description string `json:"description,omitempty"`
	Value       any    `json:"value,omitempty"`
}

// Resolve returns the best human readable string for the tag.
//
// Description is preferred when it is non-empty after trimming and passes
// the rejection filter. Otherwise the raw value is used: sequences keep
// only their primitive (string or number) elements, joined with ", ";
// primitives are stringified. The second return value is false when
// nothing resolvable remains.
func (t Tag) Resolve() (string, bool) {
	if s := strings.TrimSpace(t.Description); s != "" && !rejected(s) {
		return s, true
	}

	switch v := t.Value.(type) {
	case nil:
		return "", false
	case []any:
		var parts []string
		for _, el := range v {
			if s, ok := primitiveString(el); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		s := strings.TrimSpace(strings.Join(parts, ", "))
		if s == "" || rejected(s) {
			return "", false
		}
		return s, true
	default:
		s, ok := primitiveString(v)
		if !ok {
			return "", false
		}
		s = strings.TrimSpace(s)
		if s == "" || rejected(s) {
			return "", false
		}
		return s, true
	}
}

// rejected reports whether s is a decoder artifact rather than a value.
// "Unknown" is what some decoders render for unmapped enum values, and
// `""` (a two character string of quotes) is an empty quoted string.
func rejected(s string) bool {
	return s == "Unknown" || s == `""`
}

// primitiveString stringifies v if it is a string or a number.
func primitiveString(v any) (string, bool) {
	switch vv := v.(type) {
	case string:
		return vv, true
	case int:
		return strconv.Itoa(vv), true
	case int8:
		return strconv.FormatInt(int64(vv), 10), true
	case int16:
		return strconv.FormatInt(int64(vv), 10), true
	case int32:
		return strconv.FormatInt(int64(vv), 10), true
	case int64:
		return strconv.FormatInt(vv, 10), true
	case uint:
		return strconv.FormatUint(uint64(vv), 10), true
	case uint8:
		return strconv.FormatUint(uint64(vv), 10), true
	case uint16:
		return strconv.FormatUint(uint64(vv), 10), true
	case uint32:
		return strconv.FormatUint(uint64(vv), 10), true
	case uint64:
		return strconv.FormatUint(vv, 10), true
	case float32:
		return formatFloat(float64(vv)), true
	case float64:
		return formatFloat(vv), true
	default:
		return "", false
	}
}

// Tags is the metadata bag for one loaded file: tag name to Tag, unique
// keys, immutable after decoding. A nil Tags behaves like an empty bag for
// all read operations.
type Tags map[string]Tag

// Resolve resolves the named tag. It is the single choke point for tag
// value access; consumers must not read Description or Value directly.
func (t Tags) Resolve(name string) (string, bool) {
	tag, ok := t[name]
	if !ok {
		return "", false
	}
	return tag.Resolve()
}

// Has reports whether the named tag is present.
func (t Tags) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// IsZero reports whether the bag holds no tags at all. Callers use this to
// surface a "no metadata found" state; the bag itself is not an error.
func (t Tags) IsZero() bool {
	return len(t) == 0
}

// SortedNames returns all tag names in lexical order, for raw views and
// stable JSON dumps.
func (t Tags) SortedNames() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// add stores a tag unless the name is already taken or the tag is empty.
// First writer wins, so EXIF stays authoritative over XMP for names both
// sources emit.
func (t Tags) add(name string, tag Tag) {
	if name == "" || (tag.Value == nil && tag.Description == "") {
		return
	}
	if _, ok := t[name]; ok {
		return
	}
	t[name] = tag
}

// FileInfo carries the file facts some derived fields need. It is a plain
// record so callers are not tied to any particular file handle type.
type FileInfo struct {
	Name string
	// Size in bytes.
	Size int64
	// MIMEType in "category/subtype" form, e.g. "image/jpeg".
	MIMEType string
}

// extension returns the uppercased MIME subtype, e.g. "JPEG".
func (f FileInfo) extension() string {
	_, sub, ok := strings.Cut(f.MIMEType, "/")
	if !ok {
		return ""
	}
	return strings.ToUpper(sub)
}
