package filter_test

import (
	"strings"
	"testing"

	rbf "github.com/reoring/rbf"
	"github.com/reoring/rbf/filter"
)

func cityRecord(t *testing.T) *rbf.Record {
	t.Helper()
	str, _ := rbf.NewFieldType("A/N", "string")
	num, _ := rbf.NewFieldType("N", "integer")

	rec, err := rbf.NewRecord("CITY", "one city")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	rec.Append(rbf.NewField("NAME", "city name", str, 15))
	rec.Append(rbf.NewField("POPULATION", "inhabitants", num, 10))
	return rec
}

func decode(t *testing.T, rec *rbf.Record, name, pop string) {
	t.Helper()
	line := name + strings.Repeat(" ", 15-len(name)) + pop + strings.Repeat(" ", 10-len(pop))
	rec.Decode(line)
}

func TestParseCondition(t *testing.T) {
	c, err := filter.ParseCondition("  NAME   =   Lhasa ")
	if err != nil {
		t.Fatalf("ParseCondition: %v", err)
	}
	if c.Name != "NAME" || c.Op != filter.OpEqual || c.Operand != "Lhasa" {
		t.Fatalf("condition = %+v", c)
	}
	if c.String() != "NAME=Lhasa" {
		t.Fatalf("String() = %q", c.String())
	}

	if _, err := filter.ParseCondition("NAME # Lhasa"); !rbf.IsCode(err, rbf.CodeFilterSyntax) {
		t.Fatalf("expected %s, got %v", rbf.CodeFilterSyntax, err)
	}
	if _, err := filter.NewCondition("NAME", "~", "("); !rbf.IsCode(err, rbf.CodeFilterSyntax) {
		t.Fatalf("expected %s for bad pattern, got %v", rbf.CodeFilterSyntax, err)
	}
}

func TestParse_AllOperators(t *testing.T) {
	rf, err := filter.Parse("F1 = 10;F2 != 20; F3 ~ ^#;F4 !~ x$;F5 < 3;F6 > 4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rf.Conditions) != 6 {
		t.Fatalf("conditions = %d, want 6", len(rf.Conditions))
	}
	want := []filter.Op{filter.OpEqual, filter.OpNotEqual, filter.OpSimilar, filter.OpNotSimilar, filter.OpLess, filter.OpGreater}
	for i, c := range rf.Conditions {
		if c.Op != want[i] {
			t.Fatalf("condition %d op = %v, want %v", i, c.Op, want[i])
		}
	}
}

func TestCondition_NumericVsString(t *testing.T) {
	rec := cityRecord(t)
	decode(t, rec, "Lhasa", "2620000")

	cases := []struct {
		expr string
		want bool
	}{
		{"POPULATION > 1000000", true},
		{"POPULATION < 1000000", false},
		{"POPULATION = 2620000", true},
		{"POPULATION != 2620000", false},
		{"NAME = Lhasa", true},
		{"NAME != Lhasa", false},
		{"NAME ~ ^Lh", true},
		{"NAME !~ ^Lh", false},
		// lexicographic comparison for string fields
		{"NAME < M", true},
		{"NAME > M", false},
	}
	for _, c := range cases {
		rf, err := filter.Parse(c.expr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.expr, err)
		}
		if got := rf.Match(rec); got != c.want {
			t.Errorf("Match(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestRecordFilter_MissingFieldIsSkipped(t *testing.T) {
	rec := cityRecord(t)
	decode(t, rec, "Lhasa", "2620000")

	rf, _ := filter.Parse("ALTITUDE > 3000;NAME = Lhasa")
	if !rf.Match(rec) {
		t.Fatalf("condition on a field the record lacks must not veto the match")
	}
}

func TestRecordFilter_Check(t *testing.T) {
	layout, err := rbf.Build(rbf.Definition{
		Types: []rbf.TypeSpec{{Name: "A/N", Description: "string"}},
		Records: []rbf.RecordSpec{
			{Name: "CITY", Fields: []rbf.FieldSpec{{Name: "NAME", Type: "A/N", Length: 15}}},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rf, _ := filter.Parse("NAME = Lhasa")
	if err := rf.Check(layout); err != nil {
		t.Fatalf("Check: %v", err)
	}

	rf, _ = filter.Parse("ALTITUDE > 3000")
	if err := rf.Check(layout); !rbf.IsCode(err, rbf.CodeFieldNotFound) {
		t.Fatalf("expected %s, got %v", rbf.CodeFieldNotFound, err)
	}
}

func TestRecordFilter_DuplicateNameAnyMatch(t *testing.T) {
	str, _ := rbf.NewFieldType("A/N", "string")
	rec, _ := rbf.NewRecord("REC", "")
	rec.Append(rbf.NewField("TAG", "", str, 3))
	rec.Append(rbf.NewField("TAG", "", str, 3))
	rec.Decode("AAABBB")

	rf, _ := filter.Parse("TAG = BBB")
	if !rf.Match(rec) {
		t.Fatalf("any duplicate may satisfy the condition")
	}
	rf, _ = filter.Parse("TAG = CCC")
	if rf.Match(rec) {
		t.Fatalf("no duplicate matches CCC")
	}
}
