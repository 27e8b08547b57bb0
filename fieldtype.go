package rbf

// Kind enumerates the atomic data kinds a field can carry. Even though a
// record-based file is nothing but text, individual fields represent
// numerical, date or signed-numeric data; the kind only drives value
// normalization during decode, never rejection of malformed content.
type Kind int

const (
	KindString Kind = iota
	KindDecimal
	KindInteger
	KindDate
	KindOverpunch
	KindVoid
)

// String returns the layout-file spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindDecimal:
		return "decimal"
	case KindInteger:
		return "integer"
	case KindDate:
		return "date"
	case KindOverpunch:
		return "overpunch"
	case KindVoid:
		return ""
	default:
		return "unknown"
	}
}

// FieldType pairs a layout-local nickname (e.g. "A/N", "N") with one of the
// closed kinds. Immutable once constructed; Field values share one FieldType
// per type nickname.
type FieldType struct {
	Name        string
	Description string
	Kind        Kind
}

// NewFieldType derives the kind from the description by exact match. An empty
// description maps to KindVoid; any other unrecognized description fails with
// an unknown_field_type issue.
func NewFieldType(name, description string) (*FieldType, error) {
	var k Kind
	switch description {
	case "string":
		k = KindString
	case "decimal":
		k = KindDecimal
	case "integer":
		k = KindInteger
	case "date":
		k = KindDate
	case "overpunch":
		k = KindOverpunch
	case "":
		k = KindVoid
	default:
		return nil, Issue{Code: CodeUnknownFieldType, Field: name, Message: "unknown field type description " + quoted(description)}
	}
	return &FieldType{Name: name, Description: description, Kind: k}, nil
}

// Equal reports structural equality.
func (ft *FieldType) Equal(other *FieldType) bool {
	if ft == nil || other == nil {
		return ft == other
	}
	return ft.Name == other.Name && ft.Description == other.Description && ft.Kind == other.Kind
}

func quoted(s string) string { return "<" + s + ">" }
