package serialization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00.000Z", formatTimestamp(unixEpoch()))
	assert.Equal(t, "1970-01-01T00:01:00.000Z", formatTimestamp(unixEpoch().Add(time.Minute)))
}

func TestFormatTimestampConvertsToUTC(t *testing.T) {
	sydney := time.FixedZone("AEST", 10*60*60)
	local := time.Date(1970, 1, 1, 10, 0, 0, 0, sydney)
	assert.Equal(t, "1970-01-01T00:00:00.000Z", formatTimestamp(local))
}

func TestFormatOptionalTimestamp(t *testing.T) {
	assert.Equal(t, "NONE", formatOptionalTimestamp(nil))
	assert.Equal(t, "1970-01-01T00:00:00.000Z", formatOptionalTimestamp(timePtr(unixEpoch())))
}

func TestParseTimestamp(t *testing.T) {
	parsed, err := parseTimestamp("1970-01-01T00:01:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, unixEpoch().Add(time.Minute), parsed)
}

func TestParseTimestampRejectsOtherLayouts(t *testing.T) {
	for _, value := range []string{
		"",
		"NONE",
		"1970-01-01",
		"1970-01-01T00:00:00Z",
		"1970-01-01T00:00:00.000+00:00",
		"1970-01-01 00:00:00.000Z",
	} {
		_, err := parseTimestamp(value)
		assert.Error(t, err, "value %q", value)
	}
}
