// Package writer emits decoded records in caller-facing formats: aligned text
// columns, CSV, or name="value" tag lines. Writers consume the shared Record
// template during iteration and copy whatever they need before the next
// decode, so they compose directly with rbf.Reader.
package writer

import (
	"fmt"
	"io"

	rbf "github.com/reoring/rbf"
)

// Writer emits one decoded record per Write call. Close flushes buffered
// output; it does not close the underlying io.Writer.
type Writer interface {
	Write(rec *rbf.Record) error
	Close() error
}

// New builds a writer for the named format: "text", "csv" or "tag".
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case "text":
		return NewText(w), nil
	case "csv":
		return NewCSV(w), nil
	case "tag":
		return NewTag(w), nil
	default:
		return nil, fmt.Errorf("writer: %q is not a valid output format", format)
	}
}

// cellSize returns the display width of a field column: the larger of the
// declared length and the name length, so headers and values line up.
func cellSize(f *rbf.Field) int {
	if len(f.Name) > f.Length {
		return len(f.Name)
	}
	return f.Length
}
