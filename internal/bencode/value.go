// Package bencode decodes and encodes the bencoding format used by
// .torrent files and tracker responses.
package bencode

import (
	"sort"
	"strconv"
	"strings"
)

// Value is one node of a decoded bencoding tree. The four concrete types
// are Integer, String, List and Dict; nothing else implements it. Trees
// are built bottom-up by the decoder and never mutated afterwards.
type Value interface {
	// Kind names the variant for diagnostics ("integer", "byte string", ...).
	Kind() string
	// String renders the value as human-readable text. Byte strings are
	// converted lossily, so this is for display only, never for comparison.
	String() string

	bencodeValue()
}

// Integer is a signed bencoded integer.
type Integer int64

// String is a bencoded byte string. It carries raw bytes and is not
// required to be valid UTF-8; .torrent files routinely store binary data
// (piece hashes) in byte strings.
type String []byte

// List is an ordered sequence of values. Element order is significant.
type List []Value

// Dict maps byte-string keys to values. The key type is a Go string so it
// can hold arbitrary bytes while staying usable as a map key; equality is
// byte-exact. Insertion order is not preserved.
type Dict map[string]Value

func (Integer) bencodeValue() {}
func (String) bencodeValue()  {}
func (List) bencodeValue()    {}
func (Dict) bencodeValue()    {}

func (Integer) Kind() string { return "integer" }
func (String) Kind() string  { return "byte string" }
func (List) Kind() string    { return "list" }
func (Dict) Kind() string    { return "dictionary" }

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (s String) String() string {
	return strings.ToValidUTF8(string(s), "�")
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, elem := range l {
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (d Dict) String() string {
	parts := make([]string, 0, len(d))
	for _, key := range d.sortedKeys() {
		parts = append(parts, String(key).String()+": "+d[key].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// sortedKeys returns the keys in byte order so rendering and encoding are
// deterministic regardless of map iteration order.
func (d Dict) sortedKeys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
