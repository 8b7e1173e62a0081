package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

func New() Logger { return &stdLogger{l: log.Default()} }

// NewWriter logs to w; tests pass a buffer or io.Discard.
func NewWriter(w io.Writer) Logger { return &stdLogger{l: log.New(w, "", log.LstdFlags)} }

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Warnf(format string, v ...any)  { s.l.Printf("[WARN] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
