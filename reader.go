package rbf

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/reoring/rbf/internal/scan"
)

// ReadOpt bundles reading options.
type ReadOpt struct {
	// Strict makes a line whose key is absent from the layout a fatal error
	// instead of a skipped line.
	Strict bool
	// Ignore drops matching lines before classification (comment or banner
	// lines, typically).
	Ignore *regexp.Regexp
	// IssueSink receives one unknown_record issue per skipped line. If nil,
	// skips are only counted.
	IssueSink func(Issue)
}

// Stats aggregates the Reader's input counters.
type Stats struct {
	Lines   int64 // lines read, including skipped and ignored ones
	Bytes   int64 // input bytes consumed, terminators included
	Skipped int64 // lines whose key was absent from the layout
}

// Reader streams a line-oriented input source through a Layout: each line is
// classified by the caller-supplied Classifier, looked up in the layout, and
// decoded into the matching Record template. Iteration follows the scanner
// idiom:
//
//	for rd.Next() {
//		rec := rd.Record()
//		...
//	}
//	if err := rd.Err(); err != nil { ... }
//
// Aliasing contract: the Record returned for a given record-type key is the
// layout's shared template, the same pointer on every matching line, with each
// decode overwriting the previous line's field values. This avoids per-line
// allocation; callers that retain values across Next calls must copy them
// first (Record.Snapshot). For the same reason, two Readers must not share one
// Layout concurrently unless serialized.
type Reader struct {
	layout   *Layout
	classify Classifier
	sc       *scan.Scanner
	opt      ReadOpt

	rec     *Record
	skipped int64
	err     error
	closer  io.Closer
}

// NewReader decodes from r against layout. The layout must outlive the
// reader; classify must be non-nil.
func NewReader(r io.Reader, layout *Layout, classify Classifier, opt ReadOpt) *Reader {
	return &Reader{
		layout:   layout,
		classify: classify,
		sc:       scan.New(r),
		opt:      opt,
	}
}

// Open opens the named record-based file and returns a Reader over it. Files
// ending in ".gz" are decompressed transparently. Failure to open (or to read
// the gzip header) reports source_unavailable. The caller owns the returned
// Reader and must Close it.
func Open(path string, layout *Layout, classify Classifier, opt ReadOpt) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Issue{Code: CodeSourceUnavailable, Message: "cannot open " + quoted(path), Cause: err}
	}
	var src io.Reader = f
	closer := io.Closer(f)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, Issue{Code: CodeSourceUnavailable, Message: "cannot read gzip header of " + quoted(path), Cause: err}
		}
		src = gz
		closer = multiCloser{gz, f}
	}
	rd := NewReader(src, layout, classify, opt)
	rd.closer = closer
	return rd, nil
}

// Next advances to the next decodable line. Lines matching the Ignore pattern
// are dropped; lines whose key is unknown are skipped (or fatal under Strict).
// It returns false at end of input or on error.
func (rd *Reader) Next() bool {
	if rd.err != nil {
		return false
	}
	for rd.sc.Scan() {
		line := rd.sc.Text()
		if rd.opt.Ignore != nil && rd.opt.Ignore.MatchString(line) {
			continue
		}
		key := rd.classify(line)
		rec, ok := rd.layout.records[key]
		if !ok {
			rd.skipped++
			it := Issue{Code: CodeUnknownRecord, Record: key, Line: rd.sc.Line(), Message: "no matching record in layout, line skipped"}
			if rd.opt.Strict {
				rd.err = it
				return false
			}
			if rd.opt.IssueSink != nil {
				rd.opt.IssueSink(it)
			}
			continue
		}
		rec.Decode(line)
		rd.rec = rec
		return true
	}
	if err := rd.sc.Err(); err != nil {
		rd.err = Issue{Code: CodeSourceUnavailable, Line: rd.sc.Line(), Message: "read failed", Cause: err}
	}
	return false
}

// Record returns the template decoded by the last successful Next. See the
// aliasing contract in the Reader documentation.
func (rd *Reader) Record() *Record { return rd.rec }

// Err returns the first fatal error; nil after a clean end of input.
func (rd *Reader) Err() error { return rd.err }

// Stats returns the current input counters.
func (rd *Reader) Stats() Stats {
	return Stats{Lines: rd.sc.Line(), Bytes: rd.sc.Bytes(), Skipped: rd.skipped}
}

// Close releases the underlying source when the Reader owns one (Open);
// it is a no-op for NewReader.
func (rd *Reader) Close() error {
	if rd.closer == nil {
		return nil
	}
	return rd.closer.Close()
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
