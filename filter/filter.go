// Package filter selects decoded records by conditions on their field values,
// e.g. "POPULATION > 1000000;NAME ~ ^China". A record filter is a
// semicolon-separated conjunction of field conditions; each condition names a
// field, an operator and an operand (a regular expression for ~ and !~).
package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	rbf "github.com/reoring/rbf"
)

// Op enumerates the condition operators.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpSimilar
	OpNotSimilar
	OpLess
	OpGreater
)

// ParseOp converts the textual operator, failing with filter_syntax on
// anything outside {=, !=, ~, !~, <, >}.
func ParseOp(s string) (Op, error) {
	switch strings.TrimSpace(s) {
	case "=":
		return OpEqual, nil
	case "!=":
		return OpNotEqual, nil
	case "~":
		return OpSimilar, nil
	case "!~":
		return OpNotSimilar, nil
	case "<":
		return OpLess, nil
	case ">":
		return OpGreater, nil
	default:
		return 0, rbf.Issue{Code: rbf.CodeFilterSyntax, Message: fmt.Sprintf("%q is not a field condition operator", s)}
	}
}

// Condition is one field condition of a record filter.
type Condition struct {
	Name    string
	Op      Op
	Operand string

	opText string
	re     *regexp.Regexp // compiled for ~ and !~
}

var exprRe = regexp.MustCompile(`^\s*(\w+)\s+(=|!=|~|!~|<|>)\s+(.+)$`)

// NewCondition builds a condition from its parts; name, operator and operand
// are blank-trimmed. The operand of ~ and !~ must be a valid regular
// expression.
func NewCondition(name, op, operand string) (Condition, error) {
	o, err := ParseOp(op)
	if err != nil {
		return Condition{}, err
	}
	c := Condition{
		Name:    strings.TrimSpace(name),
		Op:      o,
		Operand: strings.TrimSpace(operand),
		opText:  strings.TrimSpace(op),
	}
	if o == OpSimilar || o == OpNotSimilar {
		re, err := regexp.Compile(c.Operand)
		if err != nil {
			return Condition{}, rbf.Issue{Code: rbf.CodeFilterSyntax, Field: c.Name, Message: fmt.Sprintf("bad condition pattern %q", c.Operand), Cause: err}
		}
		c.re = re
	}
	return c, nil
}

// ParseCondition parses one condition of the form "NAME op OPERAND".
func ParseCondition(expr string) (Condition, error) {
	sub := exprRe.FindStringSubmatch(expr)
	if sub == nil {
		return Condition{}, rbf.Issue{Code: rbf.CodeFilterSyntax, Message: fmt.Sprintf("no operator found in condition %q", expr)}
	}
	return NewCondition(sub[1], sub[2], sub[3])
}

// Match evaluates the condition against one field's decoded value. Comparison
// is numeric when the field kind is numeric (integer, decimal, overpunch) and
// both sides parse as numbers, lexicographic otherwise.
func (c Condition) Match(f *rbf.Field) bool {
	v := f.Value
	switch c.Op {
	case OpSimilar:
		return c.re.MatchString(v)
	case OpNotSimilar:
		return !c.re.MatchString(v)
	}
	if numericKind(f) {
		a, errA := strconv.ParseFloat(v, 64)
		b, errB := strconv.ParseFloat(c.Operand, 64)
		if errA == nil && errB == nil {
			switch c.Op {
			case OpEqual:
				return a == b
			case OpNotEqual:
				return a != b
			case OpLess:
				return a < b
			case OpGreater:
				return a > b
			}
		}
	}
	switch c.Op {
	case OpEqual:
		return v == c.Operand
	case OpNotEqual:
		return v != c.Operand
	case OpLess:
		return v < c.Operand
	case OpGreater:
		return v > c.Operand
	}
	return false
}

// String renders the condition back as "NAME op OPERAND" without padding.
func (c Condition) String() string { return c.Name + c.opText + c.Operand }

func numericKind(f *rbf.Field) bool {
	if f.Type == nil {
		return false
	}
	switch f.Type.Kind {
	case rbf.KindInteger, rbf.KindDecimal, rbf.KindOverpunch:
		return true
	default:
		return false
	}
}

// RecordFilter is a conjunction of field conditions.
type RecordFilter struct {
	Conditions []Condition
}

// conditionDelimiter separates conditions within one filter expression.
const conditionDelimiter = ";"

// Parse parses a record filter such as "F1 = 10;F2 != 20;F3 ~ ^#".
func Parse(expr string) (RecordFilter, error) {
	var rf RecordFilter
	for _, part := range strings.Split(expr, conditionDelimiter) {
		c, err := ParseCondition(part)
		if err != nil {
			return RecordFilter{}, err
		}
		rf.Conditions = append(rf.Conditions, c)
	}
	return rf, nil
}

// Check verifies that every condition references a field present somewhere in
// the layout, failing with field_not_found otherwise.
func (rf RecordFilter) Check(l *rbf.Layout) error {
	for _, c := range rf.Conditions {
		if !l.ContainsField(c.Name) {
			return rbf.Issue{Code: rbf.CodeFieldNotFound, Field: c.Name, Message: "filter references a field absent from the layout"}
		}
	}
	return nil
}

// Match reports whether the record satisfies every condition. A condition on a
// field the record does not carry is skipped; when the record has several
// fields with the condition's name, any matching one satisfies it.
func (rf RecordFilter) Match(rec *rbf.Record) bool {
	for _, c := range rf.Conditions {
		fields := rec.ByName(c.Name)
		if fields == nil {
			continue
		}
		any := false
		for _, f := range fields {
			if c.Match(f) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}
