package rbf_test

import (
	"testing"

	rbf "github.com/reoring/rbf"
)

func TestClassifyPrefix(t *testing.T) {
	c := rbf.ClassifyPrefix(4)
	if got := c("CONTAsia"); got != "CONT" {
		t.Fatalf("prefix = %q", got)
	}
	if got := c("AB"); got != "AB" {
		t.Fatalf("short line = %q, want the line itself", got)
	}
}

func TestClassifyRange(t *testing.T) {
	c := rbf.ClassifyRange(2, 6)
	if got := c("01XX02AAAA"); got != "XX02" {
		t.Fatalf("range = %q", got)
	}
	if got := c("0"); got != "" {
		t.Fatalf("out-of-range line = %q, want empty", got)
	}
	if got := c("01XX"); got != "XX" {
		t.Fatalf("clamped range = %q", got)
	}
}

func TestClassifyConstant(t *testing.T) {
	c := rbf.ClassifyConstant("ONLY")
	if got := c("whatever the line holds"); got != "ONLY" {
		t.Fatalf("constant = %q", got)
	}
}
