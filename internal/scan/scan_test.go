package scan_test

import (
	"strings"
	"testing"

	"github.com/reoring/rbf/internal/scan"
)

func TestScanner_LinesAndCounters(t *testing.T) {
	in := "one\ntwo\r\nthree"
	s := scan.New(strings.NewReader(in))

	want := []string{"one", "two", "three"}
	for i, w := range want {
		if !s.Scan() {
			t.Fatalf("Scan %d returned false: %v", i, s.Err())
		}
		if s.Text() != w {
			t.Fatalf("line %d = %q, want %q", i, s.Text(), w)
		}
		if s.Line() != int64(i+1) {
			t.Fatalf("line number = %d, want %d", s.Line(), i+1)
		}
	}
	if s.Scan() {
		t.Fatalf("Scan past end returned true")
	}
	if s.Err() != nil {
		t.Fatalf("Err after clean end: %v", s.Err())
	}
	if s.Bytes() != int64(len(in)) {
		t.Fatalf("bytes = %d, want %d (terminators included)", s.Bytes(), len(in))
	}
}

func TestScanner_EmptyInput(t *testing.T) {
	s := scan.New(strings.NewReader(""))
	if s.Scan() {
		t.Fatalf("Scan on empty input returned true")
	}
	if s.Err() != nil || s.Line() != 0 || s.Bytes() != 0 {
		t.Fatalf("unexpected state: err=%v line=%d bytes=%d", s.Err(), s.Line(), s.Bytes())
	}
}

func TestScanner_BlankLines(t *testing.T) {
	s := scan.New(strings.NewReader("\n\n"))
	n := 0
	for s.Scan() {
		if s.Text() != "" {
			t.Fatalf("blank line = %q", s.Text())
		}
		n++
	}
	if n != 2 {
		t.Fatalf("scanned %d blank lines, want 2", n)
	}
}

type failingReader struct{ after int }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.after <= 0 {
		return 0, errBoom
	}
	n := r.after
	if n > len(p) {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		p[i] = 'x'
	}
	r.after -= n
	return n, nil
}

var errBoom = &scanError{"boom"}

type scanError struct{ msg string }

func (e *scanError) Error() string { return e.msg }

func TestScanner_ReadError(t *testing.T) {
	s := scan.New(&failingReader{after: 2})
	if s.Scan() {
		t.Fatalf("expected failure before a full line")
	}
	if s.Err() == nil {
		t.Fatalf("expected read error")
	}
}
