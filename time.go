package main

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// Offset of the local zone every date string is assumed to be in.
	localOffset = 8 * time.Hour

	// Layout used to parse date strings. The offset is appended to the
	// query before parsing. One-digit month, day and clock fields are
	// accepted.
	parseLayout = "2006-1-2 15:4:5 -0700"

	midnightSuffix = " 00:00:00"
	utcSuffix      = " +0000"
)

// MillisMode selects how a 13-digit query is split into seconds and
// a sub-second part.
type MillisMode string

const (
	// MillisSlice takes digits [0,10) as seconds and digits [11,13) as
	// nanoseconds, skipping the digit at index 10.
	MillisSlice MillisMode = "slice"

	// MillisArithmetic treats the whole query as milliseconds.
	MillisArithmetic MillisMode = "arithmetic"
)

// ParseError is returned when a date string can't be parsed.
type ParseError struct {
	Query string
	Err   error
}

func (e *ParseError) Error() string {
	return "failed to parse date " + strconv.Quote(e.Query) + ": " + e.Err.Error()
}

// Cause returns the underlying time.Parse error.
func (e *ParseError) Cause() error {
	return e.Err
}

func parseSeconds(s string) (time.Time, error) {
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to parse seconds timestamp %q", s)
	}
	// The millisecond representation must fit in int64 too.
	if secs > math.MaxInt64/1000 || secs < math.MinInt64/1000 {
		return time.Time{}, errors.Errorf("seconds timestamp %q is out of range", s)
	}

	return time.Unix(secs, 0).UTC(), nil
}

func parseMillis(s string, mode MillisMode) (time.Time, error) {
	switch mode {
	case MillisArithmetic:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "failed to parse milliseconds timestamp %q", s)
		}

		return time.Unix(v/1e3, (v%1e3)*int64(time.Millisecond)).UTC(), nil

	case MillisSlice, "":
		if len(s) < 13 {
			return time.Time{}, errors.Errorf("milliseconds timestamp %q is too short", s)
		}
		secs, err := strconv.ParseInt(s[0:10], 10, 64)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "failed to parse seconds part of %q", s)
		}
		nsecs, ok := atoi(s[11:13])
		if !ok {
			return time.Time{}, errors.Errorf("failed to parse sub-second part of %q", s)
		}

		return time.Unix(secs, int64(nsecs)).UTC(), nil

	default:
		return time.Time{}, errors.Errorf("unknown milliseconds mode %q", mode)
	}
}

// isDateOnly reports whether s carries a date without a clock.
func isDateOnly(s string) bool {
	return strings.Contains(s, "-") && !strings.Contains(s, ":")
}

// parseDateString parses s as a date or date-time in the zone that is
// offset hours east of UTC and returns the instant in UTC.
func parseDateString(s string, offset time.Duration) (time.Time, error) {
	full := s
	if isDateOnly(full) {
		full += midnightSuffix
	}
	full += utcSuffix

	t, err := time.Parse(parseLayout, full)
	if err != nil {
		return time.Time{}, &ParseError{Query: s, Err: err}
	}

	return t.Add(-offset).UTC(), nil
}
