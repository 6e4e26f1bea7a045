package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewConsoleLogger returns a debug-level logger that writes colorized lines to the given writer.
func NewConsoleLogger(w io.Writer, noColor bool) Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.StampMilli,
		NoColor:    noColor,
	})
	return SlogLogger(slog.New(handler))
}
