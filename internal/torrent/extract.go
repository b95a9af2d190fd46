// Package torrent projects a decoded bencoding tree into the typed
// metadata record of a .torrent file. It never touches raw bytes; the
// bencode package is the only producer of its input.
package torrent

import (
	"math"
	"time"
	"unicode/utf8"

	"torrentmeta/internal/bencode"
	"torrentmeta/internal/shared/models"
)

// Parse extracts torrent metadata from the top-level dictionary of a
// decoded .torrent file. Every shape violation comes back as one of the
// typed errors in this package.
func Parse(v bencode.Value) (models.Torrent, error) {
	root, err := asDict(v)
	if err != nil {
		return models.Torrent{}, err
	}

	var t models.Torrent

	t.Trackers, err = extractTrackers(root)
	if err != nil {
		return models.Torrent{}, err
	}

	if raw, ok := root["creation date"]; ok {
		t.Creation, err = extractTime(raw)
		if err != nil {
			return models.Torrent{}, err
		}
	}
	if raw, ok := root["comment"]; ok {
		t.Comment, err = asText(raw)
		if err != nil {
			return models.Torrent{}, err
		}
	}
	if raw, ok := root["created by"]; ok {
		t.CreatedBy, err = asText(raw)
		if err != nil {
			return models.Torrent{}, err
		}
	}

	rawInfo, err := requireKey(root, "info")
	if err != nil {
		return models.Torrent{}, err
	}
	info, err := asDict(rawInfo)
	if err != nil {
		return models.Torrent{}, err
	}

	if raw, ok := info["private"]; ok {
		flag, err := asInt(raw)
		if err != nil {
			return models.Torrent{}, err
		}
		t.Private = flag == 1
	}

	t.PieceLength, err = intKey(info, "piece length")
	if err != nil {
		return models.Torrent{}, err
	}
	t.PieceHashes, err = extractPieceHashes(info)
	if err != nil {
		return models.Torrent{}, err
	}
	t.Files, err = extractFiles(info)
	if err != nil {
		return models.Torrent{}, err
	}

	return t, nil
}

// extractTrackers reads "announce-list" as a list of tiers, each a list of
// addresses, with the 0-based tier index as priority. Without an
// announce-list the single "announce" key becomes one tracker at priority
// 0; if that is missing too, the torrent has no way into a swarm and the
// missing key is an error.
func extractTrackers(root bencode.Dict) ([]models.Tracker, error) {
	raw, ok := root["announce-list"]
	if !ok {
		addr, err := requireKey(root, "announce")
		if err != nil {
			return nil, err
		}
		text, err := asText(addr)
		if err != nil {
			return nil, err
		}
		return []models.Tracker{{Tier: 0, Addr: Classify(text)}}, nil
	}

	tiers, err := asList(raw)
	if err != nil {
		return nil, err
	}
	trackers := make([]models.Tracker, 0, len(tiers))
	for i, rawTier := range tiers {
		tier, err := asList(rawTier)
		if err != nil {
			return nil, err
		}
		for _, rawAddr := range tier {
			text, err := asText(rawAddr)
			if err != nil {
				return nil, err
			}
			trackers = append(trackers, models.Tracker{Tier: uint8(i), Addr: Classify(text)})
		}
	}
	return trackers, nil
}

// maxUnixSeconds is the largest epoch offset that fits time.Time, whose
// internal epoch sits 62135596800 seconds before the Unix one.
const maxUnixSeconds = math.MaxInt64 - 62135596800

func extractTime(v bencode.Value) (time.Time, error) {
	seconds, err := asInt(v)
	if err != nil {
		return time.Time{}, err
	}
	if seconds < 0 || seconds > maxUnixSeconds {
		return time.Time{}, &TimeBoundsError{Seconds: seconds}
	}
	return time.Unix(seconds, 0).UTC(), nil
}

// extractPieceHashes splits the "pieces" byte string into consecutive
// 20-byte hashes, in piece order.
func extractPieceHashes(info bencode.Dict) ([]models.Hash, error) {
	raw, err := requireKey(info, "pieces")
	if err != nil {
		return nil, err
	}
	pieces, err := asBytes(raw)
	if err != nil {
		return nil, err
	}
	if len(pieces)%models.HashSize != 0 {
		return nil, &HashLengthError{Length: len(pieces)}
	}
	hashes := make([]models.Hash, 0, len(pieces)/models.HashSize)
	for i := 0; i < len(pieces); i += models.HashSize {
		var h models.Hash
		copy(h[:], pieces[i:i+models.HashSize])
		hashes = append(hashes, h)
	}
	return hashes, nil
}

// extractFiles reads the file list. Without a "files" key the torrent is
// in single-file mode and "name"/"length" on the info dictionary describe
// the only file. With "files", "name" is the shared directory prefix and
// each entry supplies a length and a list of path segments joined under
// that prefix, in list order.
func extractFiles(info bencode.Dict) ([]models.File, error) {
	rawName, err := requireKey(info, "name")
	if err != nil {
		return nil, err
	}
	dir, err := asText(rawName)
	if err != nil {
		return nil, err
	}

	raw, ok := info["files"]
	if !ok {
		length, err := intKey(info, "length")
		if err != nil {
			return nil, err
		}
		return []models.File{{Path: []string{dir}, Length: length}}, nil
	}

	entries, err := asList(raw)
	if err != nil {
		return nil, err
	}
	files := make([]models.File, 0, len(entries))
	for _, rawEntry := range entries {
		entry, err := asDict(rawEntry)
		if err != nil {
			return nil, err
		}
		length, err := intKey(entry, "length")
		if err != nil {
			return nil, err
		}
		rawPath, err := requireKey(entry, "path")
		if err != nil {
			return nil, err
		}
		segments, err := asList(rawPath)
		if err != nil {
			return nil, err
		}
		filePath := make([]string, 0, len(segments)+1)
		filePath = append(filePath, dir)
		for _, rawSegment := range segments {
			segment, err := asText(rawSegment)
			if err != nil {
				return nil, err
			}
			filePath = append(filePath, segment)
		}
		files = append(files, models.File{Path: filePath, Length: length})
	}
	return files, nil
}

func asInt(v bencode.Value) (int64, error) {
	i, ok := v.(bencode.Integer)
	if !ok {
		return 0, &TypeError{Expected: "integer", Value: v}
	}
	return int64(i), nil
}

func asBytes(v bencode.Value) (bencode.String, error) {
	s, ok := v.(bencode.String)
	if !ok {
		return nil, &TypeError{Expected: "byte string", Value: v}
	}
	return s, nil
}

// asText is asBytes plus a UTF-8 validity check, for the fields that are
// text rather than binary.
func asText(v bencode.Value) (string, error) {
	s, err := asBytes(v)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(s) {
		return "", &NotUTF8Error{Value: s}
	}
	return string(s), nil
}

func asList(v bencode.Value) (bencode.List, error) {
	l, ok := v.(bencode.List)
	if !ok {
		return nil, &TypeError{Expected: "list", Value: v}
	}
	return l, nil
}

func asDict(v bencode.Value) (bencode.Dict, error) {
	d, ok := v.(bencode.Dict)
	if !ok {
		return nil, &TypeError{Expected: "dictionary", Value: v}
	}
	return d, nil
}

func requireKey(d bencode.Dict, key string) (bencode.Value, error) {
	v, ok := d[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	return v, nil
}

func intKey(d bencode.Dict, key string) (int64, error) {
	v, err := requireKey(d, key)
	if err != nil {
		return 0, err
	}
	return asInt(v)
}
