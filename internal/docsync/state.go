package docsync

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// DefaultSentinelFile holds the time of the last documentation sync.
const DefaultSentinelFile = ".last-doc-sync"

// DefaultLookbackDays is used when neither a flag nor the sentinel gives a baseline.
const DefaultLookbackDays = 7

// ErrInvalidSince is returned for a malformed --since value.
var ErrInvalidSince = errors.New("invalid date format")

// timestampLayouts are the accepted ISO-8601 forms, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 date or timestamp. Values without a zone
// are interpreted in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", ErrInvalidSince, s)
}

// DefaultBaseline returns the start of now's day minus days.
func DefaultBaseline(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -days)
}

// BaselineSource names where a baseline came from.
type BaselineSource string

// Baseline sources in precedence order.
const (
	SourceFlag     BaselineSource = "flag"
	SourceSentinel BaselineSource = "sentinel"
	SourceDefault  BaselineSource = "default"
)

// Baseline is the time changes are listed from.
type Baseline struct {
	Time   time.Time
	Source BaselineSource
}

// BaselineOptions configures ResolveBaseline.
type BaselineOptions struct {
	Since        string // explicit --since value; empty when unset
	SentinelPath string // absolute path of the sentinel file
	LookbackDays int
	Now          time.Time
	Logger       *slog.Logger
}

// ResolveBaseline picks the baseline: explicit value, then the sentinel
// file, then the default lookback. A malformed explicit value is an error;
// a missing or malformed sentinel falls back to the default.
func ResolveBaseline(opts BaselineOptions) (Baseline, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	days := opts.LookbackDays
	if days <= 0 {
		days = DefaultLookbackDays
	}

	if opts.Since != "" {
		t, err := ParseTimestamp(opts.Since, now.Location())
		if err != nil {
			return Baseline{}, err
		}
		return Baseline{Time: t, Source: SourceFlag}, nil
	}

	if opts.SentinelPath != "" {
		data, err := os.ReadFile(opts.SentinelPath)
		switch {
		case err == nil:
			t, perr := ParseTimestamp(string(data), now.Location())
			if perr == nil {
				return Baseline{Time: t, Source: SourceSentinel}, nil
			}
			logger.Warn("ignoring malformed sync sentinel", "path", opts.SentinelPath, "error", perr)
		case errors.Is(err, os.ErrNotExist):
			logger.Debug("no sync sentinel", "path", opts.SentinelPath)
		default:
			logger.Warn("cannot read sync sentinel", "path", opts.SentinelPath, "error", err)
		}
	}

	return Baseline{Time: DefaultBaseline(now, days), Source: SourceDefault}, nil
}
