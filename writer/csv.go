package writer

import (
	"encoding/csv"
	"io"

	rbf "github.com/reoring/rbf"
)

// CSV writes one record per row, decoded values only, separated by ';' like
// the interchange tools this format came from.
type CSV struct {
	cw *csv.Writer
}

// NewCSV returns a CSV writer over w.
func NewCSV(w io.Writer) *CSV {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	return &CSV{cw: cw}
}

func (c *CSV) Write(rec *rbf.Record) error {
	return c.cw.Write(rec.Values())
}

func (c *CSV) Close() error {
	c.cw.Flush()
	return c.cw.Error()
}
