// Package scan reads a byte stream line by line while tracking consumed bytes
// and line numbers. It backs the public Reader; the root package only exposes
// the aggregated counters.
package scan

import (
	"bufio"
	"io"
	"strings"
)

// Scanner yields one line per Scan call, with the trailing LF (and CR, for
// CRLF input) removed. Byte counters include the stripped terminators so they
// reflect actual input consumption.
type Scanner struct {
	br    *bufio.Reader
	text  string
	line  int64
	bytes int64
	err   error
	done  bool
}

// New wraps r. The reader is buffered internally; callers should not read from
// r once scanning has started.
func New(r io.Reader) *Scanner {
	return &Scanner{br: bufio.NewReader(r)}
}

// Scan advances to the next line. It returns false at end of input or on read
// error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	raw, err := s.br.ReadString('\n')
	if err != nil && err != io.EOF {
		s.err = err
		s.done = true
		return false
	}
	if raw == "" && err == io.EOF {
		s.done = true
		return false
	}
	if err == io.EOF {
		s.done = true
	}
	s.bytes += int64(len(raw))
	s.line++
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	s.text = raw
	return true
}

// Text returns the current line without its terminator.
func (s *Scanner) Text() string { return s.text }

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int64 { return s.line }

// Bytes returns the total number of input bytes consumed so far.
func (s *Scanner) Bytes() int64 { return s.bytes }

// Err returns the first read error, nil at clean end of input.
func (s *Scanner) Err() error { return s.err }
