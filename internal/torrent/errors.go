package torrent

import (
	"fmt"

	"torrentmeta/internal/bencode"
	"torrentmeta/internal/shared/models"
)

// TypeError reports a value whose variant did not match what the torrent
// shape requires at that position.
type TypeError struct {
	Expected string // a bencode kind name: "integer", "byte string", ...
	Value    bencode.Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("torrent: expected %s, found %s", e.Expected, e.Value.Kind())
}

// MissingKeyError reports a required dictionary key that was absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("torrent: dictionary has no key %q", e.Key)
}

// NotUTF8Error reports a byte string that had to be text but was not
// valid UTF-8.
type NotUTF8Error struct {
	Value bencode.String
}

func (e *NotUTF8Error) Error() string {
	return fmt.Sprintf("torrent: %q is not valid UTF-8", []byte(e.Value))
}

// TimeBoundsError reports a creation date outside the range time.Time can
// represent.
type TimeBoundsError struct {
	Seconds int64
}

func (e *TimeBoundsError) Error() string {
	return fmt.Sprintf("torrent: creation date of %d seconds is outside the representable time range", e.Seconds)
}

// HashLengthError reports a "pieces" byte string whose length is not a
// multiple of the piece hash size.
type HashLengthError struct {
	Length int
}

func (e *HashLengthError) Error() string {
	return fmt.Sprintf("torrent: pieces length %d is not a multiple of %d", e.Length, models.HashSize)
}
