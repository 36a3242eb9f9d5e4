package docsync

import (
	"encoding/json"
	"io"
	"time"
)

// Summary is the machine-readable result of a sync run.
type Summary struct {
	NeedsUpdate bool     `json:"needs_update"`
	Since       string   `json:"since"`
	Changes     *Changes `json:"changes"`
	Timestamp   string   `json:"timestamp"`
}

// NewSummary builds a Summary; times are formatted as RFC 3339.
func NewSummary(ch *Changes, since, now time.Time) Summary {
	if ch == nil {
		ch = NewChanges()
	}
	return Summary{
		NeedsUpdate: ch.NeedsUpdate(),
		Since:       since.Format(time.RFC3339),
		Changes:     ch,
		Timestamp:   now.Format(time.RFC3339),
	}
}

// WriteSummary writes s as indented JSON.
func WriteSummary(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(s)
}

// Check-only status lines.
const (
	StatusNeedsUpdate = "⚠️  Documentation needs updating"
	StatusUpToDate    = "✅ Documentation is up to date"
)

// StatusLine returns the one-line check-only status for ch.
func StatusLine(ch *Changes) string {
	if ch.NeedsUpdate() {
		return StatusNeedsUpdate
	}
	return StatusUpToDate
}
