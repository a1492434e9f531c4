package errors

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
)

// LogHandler is a Handler that logs errors through slog.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose adds the reporting call stack to each record.
	Verbose bool
}

// HandleError logs a CollectionError at error level.
func (h *LogHandler) HandleError(err *CollectionError) {
	if err == nil {
		return
	}
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Section != "" {
		attrs = append(attrs, slog.String("section", err.Section))
	}
	if err.Item != "" {
		attrs = append(attrs, slog.String("item", err.Item))
	}
	if err.Err != nil {
		attrs = append(attrs, slog.String("error", err.Err.Error()))
	}
	if h.Verbose {
		attrs = append(attrs, slog.String("stack", CaptureStack()))
	}
	logger.LogAttrs(context.Background(), slog.LevelError, "collectionkit error", attrs...)
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
