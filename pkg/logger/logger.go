package logger

import (
	"io"
	"log"
	"os"
)

// InitLogger returns the application logger, writing to stdout with the
// given prefix.
func InitLogger(prefix string) *log.Logger {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return log.New(os.Stdout, prefix, log.LstdFlags)
}

// Discard returns a logger that drops everything, for library defaults.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
