package rbf

// Package rbf decodes fixed-width, line-oriented record-based files into
// typed, named fields, driven by an externally supplied layout.
//
// - A Layout maps record-type keys to Record templates (built once from a Definition)
// - A Record is an ordered list of fixed-length Fields with computed offsets
// - A Reader streams lines, classifies each one, and decodes it into the matching template
// - Errors are reported as Issues (code, record, field, line)
//
// Design policy:
// - Keep only public APIs in the root package; put line-scanning detail under internal/.
// - Place layout-file parsing under layoutfile/, output formats under writer/,
//   record filtering under filter/, and the CLI under cmd/urr.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	def, err := layoutfile.Load("world_data.xml")
//	layout, err := rbf.Build(def)
//	rd, err := rbf.Open("world_data.txt", layout, rbf.ClassifyPrefix(4), rbf.ReadOpt{})
//	defer rd.Close()
//	for rd.Next() {
//		rec := rd.Record()
//		fmt.Println(strings.Join(rec.Values(), ";"))
//	}
//	err = rd.Err()
//
// The Record returned for a given key is a shared template, overwritten in
// place on every matching line; see Reader for the aliasing contract.
