package docsync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/docguard/internal/testutil"
)

func TestParseTimestamp(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, loc)},
		{in: "2024-03-01T10:30:00", want: time.Date(2024, 3, 1, 10, 30, 0, 0, loc)},
		{in: "2024-03-01T10:30", want: time.Date(2024, 3, 1, 10, 30, 0, 0, loc)},
		{in: "2024-03-01 10:30:15", want: time.Date(2024, 3, 1, 10, 30, 15, 0, loc)},
		{in: "2024-03-01T10:30:00.250000", want: time.Date(2024, 3, 1, 10, 30, 0, 250000000, loc)},
		{in: "2024-03-01T10:30:00Z", want: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{in: "2024-03-01T10:30:00+05:00", want: time.Date(2024, 3, 1, 5, 30, 0, 0, time.UTC)},
		{in: "  2024-03-01\n", want: time.Date(2024, 3, 1, 0, 0, 0, 0, loc)},
		{in: "yesterday", wantErr: true},
		{in: "2024-13-01", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in, loc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSince)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDefaultBaseline(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), DefaultBaseline(now, 7))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), DefaultBaseline(now, 0))
}

func TestResolveBaseline(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	dir := t.TempDir()

	sentinel := filepath.Join(dir, "good-sync")
	require.NoError(t, os.WriteFile(sentinel, []byte("2024-02-01T08:00:00\n"), 0600))
	malformed := filepath.Join(dir, "bad-sync")
	require.NoError(t, os.WriteFile(malformed, []byte("not a date"), 0600))

	t.Run("flag wins", func(t *testing.T) {
		b, err := ResolveBaseline(BaselineOptions{Since: "2024-01-15", SentinelPath: sentinel, Now: now})
		require.NoError(t, err)
		assert.Equal(t, SourceFlag, b.Source)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), b.Time)
	})

	t.Run("malformed flag is an error", func(t *testing.T) {
		_, err := ResolveBaseline(BaselineOptions{Since: "15/01/2024", SentinelPath: sentinel, Now: now})
		assert.ErrorIs(t, err, ErrInvalidSince)
	})

	t.Run("sentinel", func(t *testing.T) {
		b, err := ResolveBaseline(BaselineOptions{SentinelPath: sentinel, Now: now})
		require.NoError(t, err)
		assert.Equal(t, SourceSentinel, b.Source)
		assert.Equal(t, time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC), b.Time)
	})

	t.Run("missing sentinel", func(t *testing.T) {
		b, err := ResolveBaseline(BaselineOptions{SentinelPath: filepath.Join(dir, "missing"), Now: now})
		require.NoError(t, err)
		assert.Equal(t, SourceDefault, b.Source)
		assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), b.Time)
	})

	t.Run("malformed sentinel falls back and logs", func(t *testing.T) {
		logger, logs := testutil.NewCaptureLogger()
		b, err := ResolveBaseline(BaselineOptions{SentinelPath: malformed, Now: now, LookbackDays: 2, Logger: logger})
		require.NoError(t, err)
		assert.Equal(t, SourceDefault, b.Source)
		assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), b.Time)
		assert.Contains(t, logs.String(), "ignoring malformed sync sentinel")
	})
}
