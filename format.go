package main

import (
	"strconv"
	"time"

	"github.com/ssgreg/logf"
	"github.com/ssgreg/logftext"
)

const (
	// Layout of both civil time representations.
	outputLayout = "2006-01-02 15:04:05"

	labelMillis = "timestamp (milliseconds)"
	labelLocal  = "UTC+8"
	labelUTC    = "UTC"
)

// Pair is a single labeled representation of an instant.
type Pair struct {
	Label string
	Value string
}

// Formatter projects an instant into its displayed representations.
type Formatter struct {
	Layout string
	Offset time.Duration
}

// Format returns the millisecond timestamp, the local and the UTC
// representations of t, in that order.
func (f Formatter) Format(t time.Time) []Pair {
	t = t.UTC()
	local := t.In(time.FixedZone(labelLocal, int(f.Offset/time.Second)))

	return []Pair{
		{Label: labelMillis, Value: strconv.FormatInt(t.UnixMilli(), 10)},
		{Label: labelLocal, Value: local.Format(f.Layout)},
		{Label: labelUTC, Value: t.Format(f.Layout)},
	}
}

// appendText renders pairs as colored 'label=value' lines.
func appendText(buf *logf.Buffer, eseq logftext.EscapeSequence, pairs []Pair) {
	for _, p := range pairs {
		eseq.At(buf, logftext.EscGreen, func() {
			buf.AppendString(p.Label)
		})
		eseq.At(buf, logftext.EscBrightBlack, func() {
			buf.AppendByte('=')
		})
		eseq.At(buf, logftext.EscBrightWhite, func() {
			buf.AppendString(p.Value)
		})
		buf.AppendByte('\n')
	}
}
