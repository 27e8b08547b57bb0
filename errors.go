package rbf

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Layout construction.
	CodeUnknownFieldType = "unknown_field_type"
	CodeEmptyRecordName  = "empty_record_name"
	CodeDuplicateRecord  = "duplicate_record"
	CodeUnknownFieldRef  = "unknown_field_ref"
	CodeLayoutSyntax     = "layout_syntax"
	// Runtime.
	CodeSourceUnavailable = "source_unavailable"
	CodeUnknownRecord     = "unknown_record"
	// Caller misuse.
	CodeFieldNotFound   = "field_not_found"
	CodeIndexOutOfRange = "index_out_of_range"
	CodeFilterSyntax    = "filter_syntax"
)

// Issue represents a single layout or decode problem.
type Issue struct {
	Code    string // One of the codes listed above.
	Record  string // Record-type key, when known.
	Field   string // Field name, when known.
	Line    int64  // 1-based input line number (0 when not line-related).
	Message string
	Cause   error // Optional: underlying error.
}

// Error renders the issue as "code record/field: message (line N)".
func (it Issue) Error() string {
	b := &strings.Builder{}
	b.WriteString(it.Code)
	if it.Record != "" || it.Field != "" {
		fmt.Fprintf(b, " %s", it.Record)
		if it.Field != "" {
			fmt.Fprintf(b, "/%s", it.Field)
		}
	}
	if it.Message != "" {
		fmt.Fprintf(b, ": %s", it.Message)
	}
	if it.Line > 0 {
		fmt.Fprintf(b, " (line %d)", it.Line)
	}
	return b.String()
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (it Issue) Unwrap() error { return it.Cause }

// Issues is a collection of layout problems that implements error. Layout
// construction collects every problem it finds rather than stopping at the
// first one.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Error())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally. A single
// Issue is promoted to a one-element slice.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var it Issue
	if errors.As(err, &it) {
		return Issues{it}, true
	}
	return nil, false
}

// IsCode reports whether err carries an Issue with the given code.
func IsCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
