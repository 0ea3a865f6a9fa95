package main

import (
	"io"

	"github.com/ssgreg/logf"
	"github.com/ssgreg/logftext"
)

// newLogger returns a logger writing text entries to w. The returned
// function flushes pending entries and must be called before exit.
func newLogger(w io.Writer, level logf.Level) (*logf.Logger, func()) {
	appender := logf.NewWriteAppender(w, logftext.NewEncoder.Default())
	writer, closeWriter := logf.NewChannelWriter(logf.ChannelWriterConfig{
		Appender: appender,
	})

	return logf.NewLogger(level, writer), func() {
		closeWriter()
	}
}
