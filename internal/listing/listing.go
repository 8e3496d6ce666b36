// Package listing groups the flat field sequence of a browsing reply into
// entries.
package listing

import (
	"path"
	"slices"
	"strings"

	"github.com/mpdsh/mpdsh/internal/pathutil"
	"github.com/mpdsh/mpdsh/internal/protocol"
)

// Type is the kind of object an entry names.
type Type string

const (
	TypeDirectory Type = "directory"
	TypeFile      Type = "file"
	TypePlaylist  Type = "playlist"
)

// IsMarker reports whether key introduces a new entry.
func IsMarker(key string) bool {
	switch Type(key) {
	case TypeDirectory, TypeFile, TypePlaylist:
		return true
	}
	return false
}

// Entry is one directory, file or playlist with the metadata that belongs to it.
type Entry struct {
	Name   string
	Type   Type
	Fields []protocol.Field
}

// Get returns the first metadata value with the given key.
func (e Entry) Get(key string) (string, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Assemble groups fields into entries, in reply order.
//
// The scan runs from the last field to the first: metadata accumulates until
// a type marker closes it out as one entry. Metadata that precedes the first
// marker belongs to no entry and is dropped.
func Assemble(fields []protocol.Field) []Entry {
	var entries []Entry
	var pending []protocol.Field

	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		if !IsMarker(f.Key) {
			pending = append(pending, f)
			continue
		}
		slices.Reverse(pending)
		entries = append(entries, Entry{
			Name:   f.Value,
			Type:   Type(f.Key),
			Fields: pending,
		})
		pending = nil
	}

	slices.Reverse(entries)
	return entries
}

// Names returns the marker values of the given types, in reply order,
// without assembling metadata.
func Names(fields []protocol.Field, types ...Type) []protocol.Field {
	var out []protocol.Field
	for _, f := range fields {
		if slices.Contains(types, Type(f.Key)) {
			out = append(out, f)
		}
	}
	return out
}

// HasWildcard reports whether name is a wildcard pattern.
func HasWildcard(name string) bool {
	for _, c := range name {
		if c == '*' || c == '?' {
			return true
		}
	}
	return false
}

// literalEscaper keeps brackets and backslashes literal, so only * and ?
// are special in a pattern.
var literalEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

// Match reports whether the base name of name matches the wildcard pattern.
// "*" matches any run of characters and "?" any single character.
func Match(pattern, name string) bool {
	_, leaf := pathutil.SplitParent(name)
	ok, err := path.Match(literalEscaper.Replace(pattern), leaf)
	return err == nil && ok
}

// Filter keeps the entries whose base name matches pattern.
func Filter(entries []Entry, pattern string) []Entry {
	var out []Entry
	for _, e := range entries {
		if Match(pattern, e.Name) {
			out = append(out, e)
		}
	}
	return out
}
