package torrent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"torrentmeta/internal/shared/models"
)

func TestClassify(t *testing.T) {
	var tests = []struct {
		name     string
		given    string
		expected models.TrackerAddr
	}{
		{
			name:     "udp tracker keeps what follows the scheme",
			given:    "udp://tracker.example:6969",
			expected: models.TrackerAddr{Proto: models.ProtoUDP, Addr: "tracker.example:6969"},
		},
		{
			name:     "udp substring anywhere still classifies as udp",
			given:    "wrapped+udp://tracker.example:6969",
			expected: models.TrackerAddr{Proto: models.ProtoUDP, Addr: "tracker.example:6969"},
		},
		{
			name:     "http tracker keeps the full url",
			given:    "http://tracker.example",
			expected: models.TrackerAddr{Proto: models.ProtoHTTP, Addr: "http://tracker.example"},
		},
		{
			name:     "https tracker keeps the full url",
			given:    "https://secure.example/announce",
			expected: models.TrackerAddr{Proto: models.ProtoHTTP, Addr: "https://secure.example/announce"},
		},
		{
			name:     "anything else is unknown and kept verbatim",
			given:    "ftp://tracker.example",
			expected: models.TrackerAddr{Proto: models.ProtoUnknown, Addr: "ftp://tracker.example"},
		},
		{
			name:     "bare host is unknown",
			given:    "tracker.example:6969",
			expected: models.TrackerAddr{Proto: models.ProtoUnknown, Addr: "tracker.example:6969"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.given))
		})
	}
}
