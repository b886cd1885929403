package forge

import (
	"fmt"
	"go/format"
	"strings"
)

// Print emits canonical source text for an item list (§4.5). Import items
// are always emitted first regardless of their position in Items, since Go
// requires all imports to precede other top-level declarations — a
// constraint the abstract merge ordering policy (§4.4) doesn't know about.
func Print(items *ItemList) (string, error) {
	pkg := items.Package
	if pkg == "" {
		pkg = "main"
	}

	ordered := make([]*Item, 0, len(items.Items))
	for _, it := range items.Items {
		if it.Kind == KindImport {
			ordered = append(ordered, it)
		}
	}
	for _, it := range items.Items {
		if it.Kind != KindImport {
			ordered = append(ordered, it)
		}
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	for i, it := range ordered {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(strings.TrimRight(it.Body, "\n"))
		buf.WriteString("\n")
	}

	out, err := format.Source([]byte(buf.String()))
	if err != nil {
		return "", &ParseError{Err: fmt.Errorf("formatting merged output: %w", err)}
	}
	return string(out), nil
}

// canonicalForm is the gofmt'd, whitespace-trimmed form of an item's body,
// used by the differ and merger to decide canonical equality (§I2).
func canonicalForm(it *Item) (string, error) {
	out, err := gofmtSource(it.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func gofmtSource(src string) (string, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// canonicalEqual reports whether two items are equal by canonical printed
// form. Falls back to a raw body comparison if either side doesn't parse
// standalone (e.g. a grouped decl fragment) rather than failing the whole
// diff over a formatting quirk.
func canonicalEqual(a, b *Item) bool {
	ca, errA := canonicalForm(a)
	cb, errB := canonicalForm(b)
	if errA != nil || errB != nil {
		return strings.TrimSpace(a.Body) == strings.TrimSpace(b.Body)
	}
	return ca == cb
}
