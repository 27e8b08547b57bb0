package writer

import (
	"bufio"
	"fmt"
	"io"

	rbf "github.com/reoring/rbf"
)

// Tag writes one record per line as space-separated name="value" pairs.
type Tag struct {
	bw *bufio.Writer
}

// NewTag returns a tag writer over w.
func NewTag(w io.Writer) *Tag {
	return &Tag{bw: bufio.NewWriter(w)}
}

func (t *Tag) Write(rec *rbf.Record) error {
	for i, f := range rec.Fields() {
		if i > 0 {
			t.bw.WriteByte(' ')
		}
		fmt.Fprintf(t.bw, "%s=%q", f.Name, f.Value)
	}
	return t.bw.WriteByte('\n')
}

func (t *Tag) Close() error { return t.bw.Flush() }
