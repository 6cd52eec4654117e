package diag_test

import (
	"testing"

	"pystyle/internal/diag"
)

func TestCodeID(t *testing.T) {
	cases := []struct {
		code diag.Code
		want string
	}{
		{diag.LineTooLong, "S001"},
		{diag.TooManyBlankLines, "S006"},
		{diag.MutableDefault, "S012"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestCodeTitles(t *testing.T) {
	cases := []struct {
		code diag.Code
		want string
	}{
		{diag.LineTooLong, "Too long"},
		{diag.BadIndentation, "Indentation is not a multiple of four"},
		{diag.UnnecessarySemicolon, "Unnecessary semicolon"},
		{diag.InlineCommentSpacing, "At least two spaces before inline comment required"},
		{diag.TodoComment, "TODO found"},
		{diag.TooManyBlankLines, "More than two blank lines used before this line"},
		{diag.ConstructionSpacing, "Too many spaces after construction_name (def or class)"},
		{diag.MutableDefault, "Default argument value is mutable"},
	}
	for _, tc := range cases {
		if got := tc.code.Title(); got != tc.want {
			t.Errorf("%s title = %q, want %q", tc.code.ID(), got, tc.want)
		}
	}
}

func TestBagCapacity(t *testing.T) {
	bag := diag.NewBag(2)
	for i := 0; i < 5; i++ {
		added := bag.Add(diag.Diagnostic{Code: diag.LineTooLong, Line: uint32(i + 1)})
		if want := i < 2; added != want {
			t.Errorf("Add %d returned %v, want %v", i, added, want)
		}
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
	if bag.Cap() != 2 {
		t.Errorf("Cap = %d, want 2", bag.Cap())
	}
}

func TestBagPreservesOrder(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Code: diag.TodoComment, Line: 3})
	bag.Add(diag.Diagnostic{Code: diag.LineTooLong, Line: 1})

	items := bag.Items()
	if items[0].Line != 3 || items[1].Line != 1 {
		t.Errorf("bag reordered diagnostics: %v", items)
	}
}

func TestHasErrors(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning})
	if bag.HasErrors() {
		t.Error("warnings alone should not count as errors")
	}
	if !bag.HasAny() {
		t.Error("HasAny should be true")
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevError})
	if !bag.HasErrors() {
		t.Error("HasErrors should be true after an error")
	}
}
