package models

import (
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
)

// Proto is the protocol family a tracker address speaks.
type Proto int

const (
	ProtoUnknown Proto = iota
	ProtoUDP
	ProtoHTTP
)

func (p Proto) String() string {
	switch p {
	case ProtoUDP:
		return "udp"
	case ProtoHTTP:
		return "http"
	default:
		return "unknown"
	}
}

// TrackerAddr is a classified tracker location. Addresses stay textual
// because they usually still need DNS resolution. For UDP trackers Addr is
// the part after "udp://"; for HTTP(S) trackers it is the full
// scheme-qualified URL, which is what an HTTP client wants.
type TrackerAddr struct {
	Proto Proto
	Addr  string
}

// Tracker pairs a tracker address with its announce tier. Lower tiers are
// tried first; trackers within one tier have no defined order.
type Tracker struct {
	Tier uint8
	Addr TrackerAddr
}

// HashSize is the length of a SHA-1 piece hash in bytes.
const HashSize = 20

// Hash is the SHA-1 hash of one piece.
type Hash [HashSize]byte

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// File describes one file in the torrent. Path holds the relative path
// segments in order; in multi-file mode the first segment is the torrent's
// directory name.
type File struct {
	Path   []string
	Length int64
}

// RelPath joins the path segments into a slash-separated relative path.
func (f File) RelPath() string {
	return path.Join(f.Path...)
}

// Torrent is the typed projection of a .torrent file's metadata. It is
// built once by the extractor and never mutated.
//
// The piece hash count is deliberately not validated against the file
// lengths; mapping pieces onto files is downstream work.
type Torrent struct {
	Trackers    []Tracker
	Creation    time.Time // zero when the torrent carries no creation date
	Comment     string
	CreatedBy   string
	Private     bool
	PieceLength int64
	PieceHashes []Hash
	Files       []File
}

func (t Torrent) String() string {
	var b strings.Builder
	for _, tr := range t.Trackers {
		fmt.Fprintf(&b, "tracker[%d]\t%s\t%s\n", tr.Tier, tr.Addr.Proto, tr.Addr.Addr)
	}
	if !t.Creation.IsZero() {
		fmt.Fprintf(&b, "created\t%s\n", t.Creation.Format(time.RFC3339))
	}
	if t.Comment != "" {
		fmt.Fprintf(&b, "comment\t%s\n", t.Comment)
	}
	if t.CreatedBy != "" {
		fmt.Fprintf(&b, "created by\t%s\n", t.CreatedBy)
	}
	fmt.Fprintf(&b, "private\t%t\n", t.Private)
	fmt.Fprintf(&b, "piece length\t%d\n", t.PieceLength)
	fmt.Fprintf(&b, "pieces\t%d\n", len(t.PieceHashes))
	for _, f := range t.Files {
		fmt.Fprintf(&b, "file\t%s\t%d bytes\n", f.RelPath(), f.Length)
	}
	return b.String()
}
