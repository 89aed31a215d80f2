// Package logger writes levelled, colour-tagged log lines of the form
// "[PREFIX] [LEVEL] message".
package logger

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/beka-birhanu/mazesolver/config"
)

var ErrNilWriter = errors.New("logger needs a writer")

const (
	levelInfo    = "INFO"
	levelWarning = "WARNING"
	levelError   = "ERROR"
)

// Logger is safe for concurrent use.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger that tags every line with prefix, drawn in color.
// An empty color writes plain lines.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: strings.ToUpper(prefix),
		color:  color,
		out:    log.New(w, "", 0),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(levelInfo, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(levelWarning, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(levelError, msg)
}

func (l *Logger) write(level, msg string) {
	line := "[" + l.prefix + "] [" + level + "] " + msg
	if l.color != "" {
		line = l.color + line + config.ColorReset
	}
	l.out.Print(line)
}
