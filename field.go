package rbf

import "strings"

// Field is a named, typed, fixed-length slot within a Record. If a record maps
// to one line of text, a field is a fixed-length substring of that line.
//
// Index, Offset, Lower and Upper are assigned exactly once, by Record.Append;
// they are meaningless on a free-standing Field. Raw and Value are overwritten
// on every decode of the owning line.
type Field struct {
	Name        string
	Description string
	Type        *FieldType // shared with sibling fields of the same type nickname
	Length      int

	// Position within the owning record, set by Record.Append.
	Index  int
	Offset int
	Lower  int // = Offset
	Upper  int // = Offset + Length

	Raw   string // last decoded slice, verbatim
	Value string // last decoded slice, blank-trimmed and kind-normalized
}

// NewField builds a field of the given fixed length. Position members stay
// zero until the field is appended to a Record.
func NewField(name, description string, ft *FieldType, length int) *Field {
	return &Field{Name: name, Description: description, Type: ft, Length: length}
}

// Decode stores slice verbatim in Raw and its normalized form in Value:
// leading and trailing ASCII blanks are trimmed, and overpunch fields
// additionally have their trailing sign symbol translated to a digit.
// Raw is never overpunch-translated.
func (f *Field) Decode(slice string) {
	f.Raw = slice
	v := strings.Trim(slice, " ")
	if f.Type != nil && f.Type.Kind == KindOverpunch {
		v = Overpunch(v)
	}
	f.Value = v
}

// Equal reports structural equality of the declaration (name, description,
// type, length); decoded values and positions are not compared.
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Name == other.Name &&
		f.Description == other.Description &&
		f.Length == other.Length &&
		f.Type.Equal(other.Type)
}
