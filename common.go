package serialization

import (
	"time"
)

// Wire-level constants shared by every codec. Peers written in other
// ecosystems depend on these exact strings.
const (
	// timestampLayout is the canonical UTC instant format, millisecond
	// precision with a literal trailing Z.
	timestampLayout = "2006-01-02T15:04:05.000Z"

	// sentinelNone stands in for an absent optional field. Decoders treat
	// it exactly like field absence.
	sentinelNone = "NONE"
)

// formatTimestamp renders an instant in the canonical wire form.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// formatOptionalTimestamp renders an instant, or the sentinel when nil.
func formatOptionalTimestamp(t *time.Time) string {
	if t == nil {
		return sentinelNone
	}
	return formatTimestamp(*t)
}

// parseTimestamp parses the canonical wire form, rejecting any other
// layout. The result is always UTC.
func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
