package main

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/ssgreg/logf"
	"github.com/ssgreg/logftext"
)

func BenchmarkConvertDate(b *testing.B) {
	c := Converter{MillisMode: MillisSlice, Offset: localOffset}
	for i := 0; i < b.N; i++ {
		_, _ = c.Convert(goldenDateTime)
	}
}

func BenchmarkConvertMillis(b *testing.B) {
	c := Converter{MillisMode: MillisSlice, Offset: localOffset}
	for i := 0; i < b.N; i++ {
		_, _ = c.Convert(goldenMillis)
	}
}

func BenchmarkFormatText(b *testing.B) {
	eseq := logftext.EscapeSequence{NoColor: true}
	buf := logf.NewBufferWithCapacity(4096)
	ts := time.Unix(1664861094, 0)

	for i := 0; i < b.N; i++ {
		buf.Reset()
		appendText(buf, eseq, defaultFormatter.Format(ts))
	}
}

func BenchmarkWriteAlfred(b *testing.B) {
	pairs := defaultFormatter.Format(time.Unix(1664861094, 0))
	for i := 0; i < b.N; i++ {
		_ = writeAlfred(ioutil.Discard, pairs)
	}
}
