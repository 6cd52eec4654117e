package parser_test

import (
	"errors"
	"testing"

	"pystyle/internal/ast"
	"pystyle/internal/parser"
	"pystyle/internal/source"
)

func parseSource(t *testing.T, input string) *ast.Module {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.py", []byte(input)))
	module, err := parser.Parse(file)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return module
}

func parseFails(t *testing.T, input string) error {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.py", []byte(input)))
	_, err := parser.Parse(file)
	if err == nil {
		t.Fatalf("expected parse error, got none")
	}
	return err
}

// firstOf walks the module and returns the first statement of type T.
func firstOf[T ast.Stmt](t *testing.T, module *ast.Module) T {
	t.Helper()
	var found T
	ok := false
	ast.Walk(module.Body, func(s ast.Stmt) {
		if ok {
			return
		}
		if v, isT := s.(T); isT {
			found = v
			ok = true
		}
	})
	if !ok {
		t.Fatalf("no %T in module", found)
	}
	return found
}

func TestFuncDefBasics(t *testing.T) {
	fn := firstOf[*ast.FuncDef](t, parseSource(t, "def greet(name, count=1):\n    pass\n"))
	if fn.Name != "greet" || fn.Line != 1 {
		t.Errorf("got name %q line %d", fn.Name, fn.Line)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if fn.Params[0].Name != "name" || fn.Params[0].Default != nil {
		t.Errorf("param 0: %+v", fn.Params[0])
	}
	if fn.Params[1].Name != "count" || !ast.IsConstant(fn.Params[1].Default) {
		t.Errorf("param 1: %+v", fn.Params[1])
	}
}

func TestFuncDefDefaults(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		constant bool
	}{
		{"int", "def f(a=1):\n    pass\n", true},
		{"string", "def f(a='x'):\n    pass\n", true},
		{"none", "def f(a=None):\n    pass\n", true},
		{"true", "def f(a=True):\n    pass\n", true},
		{"list", "def f(a=[]):\n    pass\n", false},
		{"dict", "def f(a={}):\n    pass\n", false},
		{"call", "def f(a=list()):\n    pass\n", false},
		{"negative", "def f(a=-1):\n    pass\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fn := firstOf[*ast.FuncDef](t, parseSource(t, tc.src))
			if got := ast.IsConstant(fn.Params[0].Default); got != tc.constant {
				t.Errorf("IsConstant = %v, want %v", got, tc.constant)
			}
		})
	}
}

func TestParamsStopAtStar(t *testing.T) {
	fn := firstOf[*ast.FuncDef](t, parseSource(t, "def f(a, b, *args, kw=1, **extra):\n    pass\n"))
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params %v, want 2", len(fn.Params), fn.Params)
	}
	if fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Errorf("params: %+v", fn.Params)
	}
}

func TestParamsWithAnnotations(t *testing.T) {
	fn := firstOf[*ast.FuncDef](t, parseSource(t, "def f(a: int, b: dict[str, int] = {}) -> None:\n    pass\n"))
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if ast.IsConstant(fn.Params[1].Default) {
		t.Errorf("dict default classified as constant")
	}
}

func TestMultiLineHeaderKeepsDefLine(t *testing.T) {
	src := "def f(first,\n      second):\n    pass\n"
	fn := firstOf[*ast.FuncDef](t, parseSource(t, src))
	if fn.Line != 1 {
		t.Errorf("def line = %d, want 1", fn.Line)
	}
	if len(fn.Params) != 2 {
		t.Errorf("got %d params, want 2", len(fn.Params))
	}
}

func TestClassDef(t *testing.T) {
	cls := firstOf[*ast.ClassDef](t, parseSource(t, "class Thing(Base, metaclass=Meta):\n    x = 1\n"))
	if cls.Name != "Thing" || cls.Line != 1 {
		t.Errorf("got name %q line %d", cls.Name, cls.Line)
	}
	if len(cls.Body) != 1 {
		t.Fatalf("got %d body stmts, want 1", len(cls.Body))
	}
}

func TestAssignTargets(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		targets []string
	}{
		{"simple", "x = 1\n", []string{"x"}},
		{"chained", "a = b = 1\n", []string{"a", "b"}},
		{"tuple", "a, b = 1, 2\n", []string{"a", "b"}},
		{"parenthesized", "(a, b) = pair\n", []string{"a", "b"}},
		{"annotated", "x: int = 1\n", []string{"x"}},
		{"subscript skipped", "d[k] = 1\n", nil},
		{"attribute skipped", "obj.attr = 1\n", nil},
		{"mixed tuple", "a, d[k] = 1, 2\n", []string{"a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			module := parseSource(t, tc.src)
			var got []string
			ast.Walk(module.Body, func(s ast.Stmt) {
				if a, ok := s.(*ast.Assign); ok {
					got = append(got, a.Targets...)
				}
			})
			if len(got) != len(tc.targets) {
				t.Fatalf("targets = %v, want %v", got, tc.targets)
			}
			for i := range tc.targets {
				if got[i] != tc.targets[i] {
					t.Errorf("target %d = %q, want %q", i, got[i], tc.targets[i])
				}
			}
		})
	}
}

func TestBareAnnotationBindsName(t *testing.T) {
	a := firstOf[*ast.Assign](t, parseSource(t, "flag: bool\n"))
	if a.Line != 1 || len(a.Targets) != 1 || a.Targets[0] != "flag" {
		t.Errorf("got %+v", a)
	}

	// A slice assignment is not an annotation: the ':' sits behind '['.
	module := parseSource(t, "d[1:2] = x\n")
	count := 0
	ast.Walk(module.Body, func(ast.Stmt) { count++ })
	if count != 0 {
		t.Errorf("got %d statements, want none", count)
	}
}

func TestWalrusBindings(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		target string
	}{
		{"if condition", "if (n := read()):\n    pass\n", "n"},
		{"while condition", "while (chunk := more()):\n    pass\n", "chunk"},
		{"expression statement", "print(total := compute())\n", "total"},
		{"for iterable", "for x in (data := load()):\n    pass\n", "data"},
		{"with item", "with open(path := pick()) as f:\n    pass\n", "path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := firstOf[*ast.Assign](t, parseSource(t, tc.src))
			if a.Line != 1 || len(a.Targets) != 1 || a.Targets[0] != tc.target {
				t.Errorf("got %+v, want target %q on line 1", a, tc.target)
			}
		})
	}
}

// TestWalrusLineInMultiLineHeader checks that each ':=' target binds on the
// physical line of its own identifier, not on the header's first line.
func TestWalrusLineInMultiLineHeader(t *testing.T) {
	src := "if (first := f()\n        and (second := g())):\n    pass\n"
	module := parseSource(t, src)

	lines := map[string]uint32{}
	ast.Walk(module.Body, func(s ast.Stmt) {
		if a, ok := s.(*ast.Assign); ok && len(a.Targets) == 1 {
			lines[a.Targets[0]] = a.Line
		}
	})
	if lines["first"] != 1 || lines["second"] != 2 {
		t.Errorf("binding lines = %v, want first:1 second:2", lines)
	}
}

func TestAugAssign(t *testing.T) {
	aug := firstOf[*ast.AugAssign](t, parseSource(t, "total += 1\n"))
	if aug.Target != "total" {
		t.Errorf("target = %q, want total", aug.Target)
	}
}

func TestForTargets(t *testing.T) {
	fr := firstOf[*ast.For](t, parseSource(t, "for k, v in items:\n    pass\n"))
	if len(fr.Targets) != 2 || fr.Targets[0] != "k" || fr.Targets[1] != "v" {
		t.Errorf("targets = %v", fr.Targets)
	}
}

func TestWithTargets(t *testing.T) {
	w := firstOf[*ast.With](t, parseSource(t, "with open(a) as f, open(b) as g:\n    pass\n"))
	if len(w.Targets) != 2 || w.Targets[0] != "f" || w.Targets[1] != "g" {
		t.Errorf("targets = %v", w.Targets)
	}

	w = firstOf[*ast.With](t, parseSource(t, "with lock:\n    pass\n"))
	if len(w.Targets) != 0 {
		t.Errorf("targets = %v, want none", w.Targets)
	}
}

func TestNestedSuitesAreEntered(t *testing.T) {
	src := "class Outer:\n" +
		"    def method(self, arg):\n" +
		"        if arg:\n" +
		"            local = 1\n"
	module := parseSource(t, src)

	fn := firstOf[*ast.FuncDef](t, module)
	if fn.Line != 2 || len(fn.Params) != 2 {
		t.Errorf("method: line %d params %v", fn.Line, fn.Params)
	}
	assign := firstOf[*ast.Assign](t, module)
	if assign.Line != 4 || assign.Targets[0] != "local" {
		t.Errorf("assign: line %d targets %v", assign.Line, assign.Targets)
	}
}

func TestSemicolonSeparatedStatements(t *testing.T) {
	module := parseSource(t, "a = 1; b = 2;\n")
	var targets []string
	ast.Walk(module.Body, func(s ast.Stmt) {
		if a, ok := s.(*ast.Assign); ok {
			targets = append(targets, a.Targets...)
		}
	})
	if len(targets) != 2 || targets[0] != "a" || targets[1] != "b" {
		t.Errorf("targets = %v", targets)
	}
}

func TestUnmodeledStatementsAreOpaque(t *testing.T) {
	src := "import os\n" +
		"print(x)\n" +
		"return_value = compute(1, 2)\n" +
		"del x\n"
	module := parseSource(t, src)
	count := 0
	ast.Walk(module.Body, func(ast.Stmt) { count++ })
	if count != 1 {
		t.Errorf("got %d statements, want only the assignment", count)
	}
}

func TestAsyncDef(t *testing.T) {
	fn := firstOf[*ast.FuncDef](t, parseSource(t, "async def fetch(url):\n    pass\n"))
	if fn.Name != "fetch" || len(fn.Params) != 1 {
		t.Errorf("got %+v", fn)
	}
}

func TestInlineSuite(t *testing.T) {
	fn := firstOf[*ast.FuncDef](t, parseSource(t, "def f(): x = 1\n"))
	if len(fn.Body) != 1 {
		t.Fatalf("got %d body stmts, want 1", len(fn.Body))
	}
	if a, ok := fn.Body[0].(*ast.Assign); !ok || a.Targets[0] != "x" {
		t.Errorf("body[0] = %+v", fn.Body[0])
	}
}

func TestMalformedHeadersFailParsing(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"def without name", "def (a):\n    pass\n"},
		{"def without colon", "def f(a)\n"},
		{"class without name", "class :\n    pass\n"},
		{"lexer error propagates", "s = 'open\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parseFails(t, tc.src)
		})
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	err := parseFails(t, "x = 1\ndef (a):\n    pass\n")
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *parser.Error, got %T", err)
	}
	if perr.Line != 2 {
		t.Errorf("error line = %d, want 2", perr.Line)
	}
	if perr.Path != "test.py" {
		t.Errorf("error path = %q", perr.Path)
	}
}
