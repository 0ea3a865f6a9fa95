package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/ssgreg/logf"
)

// ErrUnsupportedLength is returned in strict mode for a numeric query
// whose length has no entry in the length policy.
var ErrUnsupportedLength = errors.New("unsupported timestamp length")

// strategy names a way of turning a query into an instant.
type strategy int

const (
	strategyEpoch strategy = iota
	strategySeconds
	strategyMillis
	strategyDate
)

func (s strategy) String() string {
	switch s {
	case strategyEpoch:
		return "epoch"
	case strategySeconds:
		return "seconds"
	case strategyMillis:
		return "milliseconds"
	case strategyDate:
		return "date"
	default:
		return "unknown"
	}
}

// lengthPolicy maps the length of a numeric query to its strategy.
var lengthPolicy = map[int]strategy{
	9:  strategySeconds,
	13: strategyMillis,
}

// fallbackStrategy is used for numeric queries of any other length
// unless the converter is strict.
const fallbackStrategy = strategySeconds

// epoch is the instant used for an empty query and as a fallback for
// unparsable dates.
var epoch = time.Unix(0, 0).UTC()

// Converter turns queries into instants.
type Converter struct {
	// Strict turns the length fallback and the date fallback into errors.
	Strict bool

	// MillisMode selects the 13-digit interpretation.
	MillisMode MillisMode

	// Offset of the zone date strings are written in.
	Offset time.Duration

	Logger *logf.Logger
}

// classify picks the strategy for q.
func (c Converter) classify(q string) (strategy, error) {
	switch {
	case len(q) == 0:
		return strategyEpoch, nil
	case isDigits(q):
		if s, ok := lengthPolicy[len(q)]; ok {
			return s, nil
		}
		if c.Strict {
			return 0, errors.Wrapf(ErrUnsupportedLength, "%d digits in %q", len(q), q)
		}

		return fallbackStrategy, nil
	default:
		return strategyDate, nil
	}
}

// Convert returns the instant denoted by q, always in UTC.
//
// A date string that fails to parse yields the epoch and a logged
// warning, unless the converter is strict.
func (c Converter) Convert(q string) (time.Time, error) {
	s, err := c.classify(q)
	if err != nil {
		return time.Time{}, err
	}
	if c.Logger != nil {
		c.Logger.Debug("query classified", logf.String("query", q), logf.String("strategy", s.String()))
	}

	switch s {
	case strategySeconds:
		return parseSeconds(q)
	case strategyMillis:
		return parseMillis(q, c.MillisMode)
	case strategyDate:
		t, err := parseDateString(q, c.Offset)
		if err == nil {
			return t, nil
		}
		if c.Strict {
			return time.Time{}, err
		}
		if c.Logger != nil {
			c.Logger.Warn("parse failed, using epoch", logf.String("query", q), logf.Error(err))
		}

		return epoch, nil
	default:
		return epoch, nil
	}
}
