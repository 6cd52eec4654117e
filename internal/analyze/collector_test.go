package analyze_test

import (
	"testing"

	"pystyle/internal/analyze"
	"pystyle/internal/parser"
	"pystyle/internal/source"
)

func collectSource(t *testing.T, input string) *analyze.Attributes {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.py", []byte(input)))
	module, err := parser.Parse(file)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return analyze.Collect(module)
}

func expectStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestVariablesPerLine(t *testing.T) {
	src := "x = 1\n" +
		"a, b = 1, 2\n" +
		"total += 3\n" +
		"untouched_line = x\n"
	attrs := collectSource(t, src)

	expectStrings(t, attrs.Variables(1), []string{"x"})
	expectStrings(t, attrs.Variables(2), []string{"a", "b"})
	expectStrings(t, attrs.Variables(3), []string{"total"})
	expectStrings(t, attrs.Variables(4), []string{"untouched_line"})
	expectStrings(t, attrs.Variables(5), nil)
}

func TestVariablesFromLoopsAndWith(t *testing.T) {
	src := "for i, item in enumerate(xs):\n" +
		"    pass\n" +
		"with open(p) as fh:\n" +
		"    pass\n"
	attrs := collectSource(t, src)
	expectStrings(t, attrs.Variables(1), []string{"i", "item"})
	expectStrings(t, attrs.Variables(3), []string{"fh"})
}

func TestParametersAttachToDefLine(t *testing.T) {
	src := "def outer(a, b):\n" +
		"    def inner(c):\n" +
		"        pass\n"
	attrs := collectSource(t, src)
	expectStrings(t, attrs.Parameters(1), []string{"a", "b"})
	expectStrings(t, attrs.Parameters(2), []string{"c"})
	expectStrings(t, attrs.Parameters(3), nil)
}

func TestDefaultConstantFlags(t *testing.T) {
	attrs := collectSource(t, "def f(a, b=1, c=[]):\n    pass\n")

	expectStrings(t, attrs.Parameters(1), []string{"a", "b", "c"})

	flags := attrs.DefaultConstants(1)
	if len(flags) != 2 {
		t.Fatalf("got %d flags %v, want 2", len(flags), flags)
	}
	if !flags[0] || flags[1] {
		t.Errorf("flags = %v, want [true false]", flags)
	}
}

func TestMethodVariablesInsideClass(t *testing.T) {
	src := "class C:\n" +
		"    attr = 1\n" +
		"    def m(self):\n" +
		"        local = 2\n"
	attrs := collectSource(t, src)
	expectStrings(t, attrs.Variables(2), []string{"attr"})
	expectStrings(t, attrs.Parameters(3), []string{"self"})
	expectStrings(t, attrs.Variables(4), []string{"local"})
}
