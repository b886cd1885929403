package forge

import (
	"strings"
	"testing"
)

func TestRenderStringAppliesSprigHelpers(t *testing.T) {
	out, err := RenderString("t", "package demo\n\nfunc {{ .name | title }}() {}\n", Context{"name": "greet"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "func Greet") {
		t.Fatalf("expected sprig's title func applied, got %q", out)
	}
}

func TestRenderStringIteration(t *testing.T) {
	tmpl := "package demo\n{{ range .names }}\nfunc {{ . }}() {}\n{{ end }}\n"
	out, err := RenderString("t", tmpl, Context{"names": []string{"A", "B"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "func A") || !strings.Contains(out, "func B") {
		t.Fatalf("expected both functions rendered, got %q", out)
	}
}

func TestRenderStringBadTemplateSyntax(t *testing.T) {
	_, err := RenderString("t", "{{ .unterminated", Context{})
	if err == nil {
		t.Fatalf("expected a template error")
	}
	if _, ok := err.(*TemplateError); !ok {
		t.Fatalf("expected *TemplateError, got %T", err)
	}
}
