package rbf

import (
	"fmt"
	"strings"
)

// Record is an ordered, named collection of Fields describing (and holding)
// one decoded line. Field positions are computed as fields are appended; the
// same field name may appear several times within one record.
//
// A Record owned by a Layout is a shared template: Decode overwrites its
// Field values in place. Use Snapshot to retain values across decodes.
type Record struct {
	Name        string
	Description string
	// Length is the sum of all field lengths. It grows as fields are appended
	// and never shrinks, even when fields are later removed.
	Length int

	fields []*Field
	// byName maps a field name to the ordered positions of matching fields in
	// the current field sequence, so duplicate names stay addressable without
	// copying fields out of the single source of truth.
	byName map[string][]int
}

// NewRecord fails with an empty_record_name issue when name is empty.
func NewRecord(name, description string) (*Record, error) {
	if name == "" {
		return nil, Issue{Code: CodeEmptyRecordName, Message: "record name must not be empty"}
	}
	return &Record{
		Name:        name,
		Description: description,
		byName:      make(map[string][]int),
	}, nil
}

// Append adds a field at the end of the record and assigns its position:
// index, offset (sum of preceding lengths) and bounds. Positions are assigned
// exactly once and never change afterwards.
func (r *Record) Append(f *Field) {
	f.Index = len(r.fields)
	f.Offset = r.Length
	f.Lower = f.Offset
	f.Upper = f.Offset + f.Length

	r.fields = append(r.fields, f)
	r.byName[f.Name] = append(r.byName[f.Name], len(r.fields)-1)
	r.Length += f.Length
}

// Decode slices line into every field of the record, in append order. The line
// is first normalized to exactly Length characters: shorter lines are
// right-padded with blanks, longer ones truncated. Both cases are lossy by
// design for malformed input, not errors.
func (r *Record) Decode(line string) {
	if len(line) > r.Length {
		line = line[:r.Length]
	} else if len(line) < r.Length {
		line = line + strings.Repeat(" ", r.Length-len(line))
	}
	for _, f := range r.fields {
		f.Decode(line[f.Lower:f.Upper])
	}
}

// Encode concatenates the current raw values in append order. The result has
// length Length only while every field still holds a raw value of its declared
// length; that is the caller's responsibility, not enforced here.
func (r *Record) Encode() string {
	b := &strings.Builder{}
	b.Grow(r.Length)
	for _, f := range r.fields {
		b.WriteString(f.Raw)
	}
	return b.String()
}

// Count returns the number of fields in the record.
func (r *Record) Count() int { return len(r.fields) }

// Fields returns the field sequence in append order. The slice is shared with
// the record; callers must not grow or reorder it.
func (r *Record) Fields() []*Field { return r.fields }

// At returns the i-th field, failing with index_out_of_range when i is outside
// [0, Count).
func (r *Record) At(i int) (*Field, error) {
	if i < 0 || i >= len(r.fields) {
		return nil, Issue{Code: CodeIndexOutOfRange, Record: r.Name, Message: fmt.Sprintf("field index %d outside [0,%d)", i, len(r.fields))}
	}
	return r.fields[i], nil
}

// ByName returns all fields named name, in append order; nil when none match.
func (r *Record) ByName(name string) []*Field {
	idx := r.byName[name]
	if len(idx) == 0 {
		return nil
	}
	out := make([]*Field, len(idx))
	for i, j := range idx {
		out[i] = r.fields[j]
	}
	return out
}

// FirstValue returns the decoded value of the first field named name, failing
// with field_not_found when the record has no such field.
func (r *Record) FirstValue(name string) (string, error) {
	idx := r.byName[name]
	if len(idx) == 0 {
		return "", Issue{Code: CodeFieldNotFound, Record: r.Name, Field: name, Message: "no field with that name"}
	}
	return r.fields[idx[0]].Value, nil
}

// Contains reports whether the record has at least one field named name.
func (r *Record) Contains(name string) bool { return len(r.byName[name]) > 0 }

// Names returns the field names in append order.
func (r *Record) Names() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Values returns the decoded (normalized) field values in append order.
func (r *Record) Values() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Value
	}
	return out
}

// RawValues returns the verbatim field values in append order.
func (r *Record) RawValues() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Raw
	}
	return out
}

// DecodedField is a value copy of one field's decode result.
type DecodedField struct {
	Name  string
	Value string
	Raw   string
}

// Snapshot copies the current decode result out of the shared template so the
// caller can retain it across Reader iterations without holding the template.
func (r *Record) Snapshot() []DecodedField {
	out := make([]DecodedField, len(r.fields))
	for i, f := range r.fields {
		out[i] = DecodedField{Name: f.Name, Value: f.Value, Raw: f.Raw}
	}
	return out
}

// Delete removes every field whose name is listed. Remaining fields keep their
// original index, offset and bounds, and the record Length is unchanged, so
// subsequent decodes still slice the surviving fields from their original
// positions (removal without reindex).
func (r *Record) Delete(names ...string) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	r.filter(func(f *Field) bool { return !drop[f.Name] })
}

// Keep removes every field whose name is not listed.
func (r *Record) Keep(names ...string) {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	r.filter(func(f *Field) bool { return keep[f.Name] })
}

func (r *Record) filter(pred func(*Field) bool) {
	kept := r.fields[:0]
	for _, f := range r.fields {
		if pred(f) {
			kept = append(kept, f)
		}
	}
	r.fields = kept
	// byName indexes positions in the current sequence, so rebuild it.
	r.byName = make(map[string][]int, len(r.fields))
	for i, f := range r.fields {
		r.byName[f.Name] = append(r.byName[f.Name], i)
	}
}
