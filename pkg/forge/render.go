package forge

import (
	"bytes"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Context is the JSON-decoded mapping made available to a template (§6).
type Context map[string]any

// RenderFile reads the template at path and renders it against ctx.
func RenderFile(path string, ctx Context) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &InputIOError{Path: path, Err: err}
	}
	return RenderString(path, string(data), ctx)
}

// RenderString renders text (named for error reporting) against ctx using
// text/template with sprig's helper function set.
func RenderString(name, text string, ctx Context) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", &TemplateError{Path: name, Err: err}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", &TemplateError{Path: name, Err: err}
	}
	return buf.String(), nil
}
