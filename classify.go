package rbf

// Classifier maps a raw line to its record-type key. The typical real-world
// form is a fixed-offset substring of the line, e.g. the first 4 characters.
type Classifier func(line string) string

// ClassifyPrefix classifies by the first n characters of the line. A line
// shorter than n classifies as itself.
func ClassifyPrefix(n int) Classifier {
	return func(line string) string {
		if len(line) < n {
			return line
		}
		return line[:n]
	}
}

// ClassifyRange classifies by the half-open character range [lo, hi) of the
// line, clamped to the line length.
func ClassifyRange(lo, hi int) Classifier {
	return func(line string) string {
		if lo >= len(line) || lo >= hi {
			return ""
		}
		if hi > len(line) {
			hi = len(line)
		}
		return line[lo:hi]
	}
}

// ClassifyConstant classifies every line as the same key, for single-record
// files.
func ClassifyConstant(key string) Classifier {
	return func(string) string { return key }
}
