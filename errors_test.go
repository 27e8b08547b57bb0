package rbf_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	rbf "github.com/reoring/rbf"
)

func TestIssue_ErrorRendering(t *testing.T) {
	it := rbf.Issue{Code: rbf.CodeUnknownRecord, Record: "XXXX", Line: 3, Message: "no matching record in layout, line skipped"}
	s := it.Error()
	for _, part := range []string{"unknown_record", "XXXX", "line 3"} {
		if !strings.Contains(s, part) {
			t.Fatalf("error %q missing %q", s, part)
		}
	}
}

func TestIssue_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("disk gone")
	it := rbf.Issue{Code: rbf.CodeSourceUnavailable, Cause: cause}
	if !errors.Is(it, cause) {
		t.Fatalf("errors.Is should reach the cause")
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := rbf.Issues{
		{Code: rbf.CodeUnknownFieldType},
		{Code: rbf.CodeDuplicateRecord},
		{Code: rbf.CodeUnknownFieldRef},
		{Code: rbf.CodeEmptyRecordName},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty summary")
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("summary %q should count the overflow", s)
	}
}

func TestAsIssues_PromotesSingleIssue(t *testing.T) {
	var err error = rbf.Issue{Code: rbf.CodeFieldNotFound}
	iss, ok := rbf.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != rbf.CodeFieldNotFound {
		t.Fatalf("AsIssues = %v, %v", iss, ok)
	}

	wrapped := fmt.Errorf("lookup failed: %w", err)
	if !rbf.IsCode(wrapped, rbf.CodeFieldNotFound) {
		t.Fatalf("IsCode should see through wrapping")
	}
	if _, ok := rbf.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors are not Issues")
	}
	if _, ok := rbf.AsIssues(nil); ok {
		t.Fatalf("nil is not Issues")
	}
}
