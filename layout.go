package rbf

import "strings"

// TypeSpec declares one field-type nickname and its kind description, e.g.
// {"A/N", "string"} or {"SN", "overpunch"}.
type TypeSpec struct {
	Name        string
	Description string
}

// FieldSpec declares one fixed-length field of a record. Type refers to a
// TypeSpec by nickname.
type FieldSpec struct {
	Name        string
	Description string
	Type        string
	Length      int
}

// RecordSpec declares one record type and its ordered field list.
type RecordSpec struct {
	Name        string
	Description string
	Fields      []FieldSpec
}

// Definition is the already-parsed form of a layout file: a field-type table
// plus ordered record specs. How it was produced (XML, YAML, JSON, literal Go)
// is the layoutfile package's concern, not this package's.
type Definition struct {
	Name        string
	Description string
	Types       []TypeSpec
	Records     []RecordSpec
}

// Layout is the schema for an entire record-based file: one Record template
// per record-type key. It is built once and structurally read-only afterwards;
// only the templates' field values change, one decode at a time.
type Layout struct {
	Name        string
	Description string

	records map[string]*Record
	keys    []string // definition order
}

// Build assembles a Layout from a Definition, in definition order. Every
// construction problem is collected: a duplicate record key fails with
// duplicate_record, a field referencing an unknown type nickname with
// unknown_field_ref, an invalid type description with unknown_field_type, an
// empty record name with empty_record_name. The returned error is an Issues
// slice holding all of them.
func Build(def Definition) (*Layout, error) {
	var iss Issues

	types := make(map[string]*FieldType, len(def.Types))
	for _, ts := range def.Types {
		ft, err := NewFieldType(ts.Name, ts.Description)
		if err != nil {
			iss = AppendIssues(iss, err.(Issue))
			continue
		}
		types[ts.Name] = ft
	}

	l := &Layout{
		Name:        def.Name,
		Description: def.Description,
		records:     make(map[string]*Record, len(def.Records)),
	}
	for _, rs := range def.Records {
		rec, err := NewRecord(rs.Name, rs.Description)
		if err != nil {
			iss = AppendIssues(iss, err.(Issue))
			continue
		}
		if _, dup := l.records[rs.Name]; dup {
			iss = AppendIssues(iss, Issue{Code: CodeDuplicateRecord, Record: rs.Name, Message: "record key declared twice"})
			continue
		}
		for _, fs := range rs.Fields {
			ft, ok := types[fs.Type]
			if !ok {
				iss = AppendIssues(iss, Issue{Code: CodeUnknownFieldRef, Record: rs.Name, Field: fs.Name, Message: "no field type " + quoted(fs.Type)})
				continue
			}
			rec.Append(NewField(fs.Name, fs.Description, ft, fs.Length))
		}
		l.records[rs.Name] = rec
		l.keys = append(l.keys, rs.Name)
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return l, nil
}

// Get returns the Record template for key, failing with unknown_record when
// the layout has no such record type.
func (l *Layout) Get(key string) (*Record, error) {
	rec, ok := l.records[key]
	if !ok {
		return nil, Issue{Code: CodeUnknownRecord, Record: key, Message: "record key not found in layout " + quoted(l.Name)}
	}
	return rec, nil
}

// Contains reports whether the layout knows the record-type key.
func (l *Layout) Contains(key string) bool {
	_, ok := l.records[key]
	return ok
}

// ContainsField reports whether any record of the layout has a field named
// name. Record filters use this to validate their field references.
func (l *Layout) ContainsField(name string) bool {
	for _, rec := range l.records {
		if rec.Contains(name) {
			return true
		}
	}
	return false
}

// Len returns the number of record types.
func (l *Layout) Len() int { return len(l.records) }

// Keys returns the record-type keys in definition order.
func (l *Layout) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Keep drops every record type whose key is not listed.
func (l *Layout) Keep(keys ...string) {
	keep := make(map[string]bool, len(keys))
	for _, k := range keys {
		keep[k] = true
	}
	l.filter(func(k string) bool { return keep[k] })
}

// Delete drops every record type whose key is listed.
func (l *Layout) Delete(keys ...string) {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	l.filter(func(k string) bool { return !drop[k] })
}

// Prune removes the named fields from every record of the layout.
func (l *Layout) Prune(fieldNames ...string) {
	for _, rec := range l.records {
		rec.Delete(fieldNames...)
	}
}

// Simplify keeps only the listed records and fields. Each entry has the form
// "RECORD:F1,F2,F3"; records not listed are dropped, and each listed record
// keeps only its listed fields.
func (l *Layout) Simplify(entries []string) error {
	var keys []string
	for _, e := range entries {
		key, fields, ok := strings.Cut(e, ":")
		if !ok {
			return Issue{Code: CodeLayoutSyntax, Message: "simplify entry " + quoted(e) + " is not of the form RECORD:F1,F2"}
		}
		key = strings.TrimSpace(key)
		rec, err := l.Get(key)
		if err != nil {
			return err
		}
		var names []string
		for _, n := range strings.Split(fields, ",") {
			names = append(names, strings.TrimSpace(n))
		}
		rec.Keep(names...)
		keys = append(keys, key)
	}
	l.Keep(keys...)
	return nil
}

func (l *Layout) filter(pred func(string) bool) {
	kept := l.keys[:0]
	for _, k := range l.keys {
		if pred(k) {
			kept = append(kept, k)
		} else {
			delete(l.records, k)
		}
	}
	l.keys = kept
}
