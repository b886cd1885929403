package forge

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFunctionNames(t *testing.T) {
	src := "package demo\n\nfunc Greet() {}\n\nfunc Farewell() {}\n"
	items, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"Greet", "Farewell"}
	got := items.Names()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParseMethodCompositeKey(t *testing.T) {
	src := `package demo

type Widget struct{}

func (w *Widget) Render() string { return "" }

func (w Widget) Name() string { return "widget" }
`
	items, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, want := range []string{"Widget", "Widget.Render", "Widget.Name"} {
		if _, ok := items.Find(want); !ok {
			t.Fatalf("expected item %q, names=%v", want, items.Names())
		}
	}
}

func TestParseConsolidatesImports(t *testing.T) {
	src := `package demo

import "fmt"

import "os"

func UseBoth() {
	fmt.Println(os.Args)
}
`
	items, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	imp, ok := items.Find("imports")
	if !ok {
		t.Fatalf("expected a single synthetic 'imports' item, names=%v", items.Names())
	}
	if !strings.Contains(imp.Body, "fmt") || !strings.Contains(imp.Body, "os") {
		t.Fatalf("expected both imports folded into one body, got %q", imp.Body)
	}
}

func TestParseDuplicateNameDiagnostic(t *testing.T) {
	src := "package demo\n\nfunc Dup() {}\n\nfunc Dup() { _ = 1 }\n"
	items, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(items.Diagnostics) == 0 {
		t.Fatalf("expected a duplicate-name diagnostic")
	}
	if _, ok := items.Find("Dup"); !ok {
		t.Fatalf("first occurrence of Dup should still be findable")
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("package demo\nfunc {{{")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}
