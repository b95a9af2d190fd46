package torrent

import (
	"strings"

	"torrentmeta/internal/shared/models"
)

// Classify sorts a tracker address by the protocol it speaks. An address
// containing "udp://" is a UDP tracker and keeps only what follows the
// first occurrence; an address starting with "http://" or "https://" is an
// HTTP tracker and keeps the full URL; anything else (websocket trackers,
// mostly) is Unknown and kept verbatim.
func Classify(addr string) models.TrackerAddr {
	if _, rest, ok := strings.Cut(addr, "udp://"); ok {
		return models.TrackerAddr{Proto: models.ProtoUDP, Addr: rest}
	}
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return models.TrackerAddr{Proto: models.ProtoHTTP, Addr: addr}
	}
	return models.TrackerAddr{Proto: models.ProtoUnknown, Addr: addr}
}
