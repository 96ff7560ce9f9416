package handle

import (
	"io"
	"log"
)

// Logger is a single-line diagnostic sink.
type Logger interface {
	Log(message string)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(message string)

func (f LoggerFunc) Log(message string) {
	f(message)
}

// Discard drops every message.
var Discard Logger = LoggerFunc(func(string) {})

type stdLogger struct {
	logger *log.Logger
}

// NewLogger returns a Logger writing timestamped lines to w.
func NewLogger(w io.Writer, prefix string) Logger {
	return &stdLogger{logger: log.New(w, prefix, log.LstdFlags)}
}

func (l *stdLogger) Log(message string) {
	l.logger.Println(message)
}
