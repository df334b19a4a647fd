// logutil.go - Logger-Konfiguration fuer bpe
//
// Enthaelt:
// - LevelTrace: Log-Level unterhalb von DEBUG
// - NewLogger: Text-Handler mit gekuerzten Source-Pfaden
// - Trace: Logging auf TRACE-Level
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
)

// LevelTrace ist ausfuehrlicher als slog.LevelDebug (BPE_DEBUG=2)
const LevelTrace slog.Level = -8

// NewLogger erstellt einen Text-Logger, der auf w schreibt
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if attr.Value.Any().(slog.Level) == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

// Trace loggt msg auf TRACE-Level ueber den Default-Logger
func Trace(msg string, args ...any) {
	slog.Log(context.TODO(), LevelTrace, msg, args...)
}
