package writer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	rbf "github.com/reoring/rbf"
)

// Text writes records as aligned columns separated by "|". A header line of
// field names is emitted whenever the record type changes from the previous
// write.
type Text struct {
	bw       *bufio.Writer
	lastName string
}

// NewText returns a text writer over w.
func NewText(w io.Writer) *Text {
	return &Text{bw: bufio.NewWriter(w)}
}

func (t *Text) Write(rec *rbf.Record) error {
	if t.lastName != rec.Name {
		t.bw.WriteByte('\n')
		if err := t.writeRow(rec, func(f *rbf.Field) string { return f.Name }); err != nil {
			return err
		}
		t.lastName = rec.Name
	}
	return t.writeRow(rec, func(f *rbf.Field) string { return f.Value })
}

func (t *Text) writeRow(rec *rbf.Record, cell func(*rbf.Field) string) error {
	cells := make([]string, 0, rec.Count())
	for _, f := range rec.Fields() {
		cells = append(cells, fmt.Sprintf("%-*s ", cellSize(f), cell(f)))
	}
	t.bw.WriteString(strings.Join(cells, "|"))
	return t.bw.WriteByte('\n')
}

func (t *Text) Close() error { return t.bw.Flush() }
