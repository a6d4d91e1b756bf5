package service

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIdentifierService_Format(t *testing.T) {
	svc := NewIdentifierService()

	assert.Regexp(t, `^TRX-\d{13}-[0-9a-z]{13}$`, svc.TrxID())
	assert.Regexp(t, `^EXT-\d{13}-[0-9a-z]{13}$`, svc.ExternalID())
}

func TestIdentifierService_UsesClockMillis(t *testing.T) {
	now := time.UnixMilli(1714532400123)
	svc := NewIdentifierServiceWith(fixedClock(now), bytes.NewReader(bytes.Repeat([]byte{1}, 64)))

	id := svc.ExternalID()

	assert.Equal(t, "EXT-1714532400123-1111111111111", id)
}

func TestIdentifierService_RejectsBiasedBytes(t *testing.T) {
	// 252..255 must be skipped; 36 maps to "0", 37 to "1".
	src := append(bytes.Repeat([]byte{255}, 26), bytes.Repeat([]byte{36, 37}, 13)...)
	svc := NewIdentifierServiceWith(fixedClock(time.UnixMilli(1)), bytes.NewReader(src))

	id := svc.TrxID()

	assert.Equal(t, "TRX-1-0101010101010", id)
}

func TestIdentifierService_RandomFailureFallsBack(t *testing.T) {
	svc := NewIdentifierServiceWith(fixedClock(time.Unix(1714532400, 5)), failingReader{})

	id := svc.TrxID()

	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "TRX", parts[0])
	assert.Len(t, parts[2], 13)
}

func TestIdentifierService_Distinct(t *testing.T) {
	svc := NewIdentifierService()
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		id := svc.TrxID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestIdentifierService_TimestampFixedOffset(t *testing.T) {
	// 03:00 UTC is 10:00 in Jakarta regardless of the host zone.
	now := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)
	svc := NewIdentifierServiceWith(fixedClock(now), nil)

	assert.Equal(t, "2024-05-01T10:00:00+07:00", svc.Timestamp())

	parsed, err := time.Parse(time.RFC3339, svc.Timestamp())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(now), "rendered timestamp must denote the same instant")
}

func TestIdentifierService_Expiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)
	svc := NewIdentifierServiceWith(fixedClock(now), nil)

	assert.Equal(t, "2024-05-03T03:30:00+07:00", svc.Expiry(24))
	assert.Equal(t, "2024-05-02T03:30:00+07:00", svc.Expiry(0))
}
