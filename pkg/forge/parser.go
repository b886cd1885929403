package forge

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// ParseError wraps a failure to parse Go source into an item list (§7).
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parsing source: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse parses Go source text into an item list (§4.1).
func Parse(text string) (*ItemList, error) {
	return ParseNamed("", text)
}

// ParseNamed is Parse with a path attached to any resulting ParseError, so
// callers operating on real files get a useful diagnostic.
func ParseNamed(path, text string) (*ItemList, error) {
	fset := token.NewFileSet()
	filename := path
	if filename == "" {
		filename = "<generated>"
	}
	file, err := parser.ParseFile(fset, filename, text, parser.ParseComments)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	list := &ItemList{Package: file.Name.Name}
	seen := map[string]bool{}
	for _, decl := range file.Decls {
		for _, it := range itemsFromDecl(fset, text, decl) {
			if n, ok := it.Name(); ok {
				if seen[n] {
					list.Diagnostics = append(list.Diagnostics, fmt.Sprintf(
						"duplicate declaration name %q; only the first occurrence participates in diff/merge", n))
					it.name, it.hasName = "", false
				} else {
					seen[n] = true
				}
			}
			list.Items = append(list.Items, it)
		}
	}

	consolidateImports(list)
	return list, nil
}

// consolidateImports folds every import GenDecl in the file into a single
// synthetic named item. Go requires all imports to precede other top-level
// declarations, so leaving them opaque (per §4.2's general rule for
// unnamed items) would let a regenerated import block duplicate or
// misorder against the existing one; naming it "imports" lets it
// participate in diff/merge like any other declaration.
func consolidateImports(list *ItemList) {
	var bodies []string
	kept := list.Items[:0:0]
	for _, it := range list.Items {
		if it.Kind == KindImport {
			bodies = append(bodies, it.Body)
			continue
		}
		kept = append(kept, it)
	}
	if len(bodies) == 0 {
		list.Items = kept
		return
	}
	merged := &Item{
		Kind:    KindImport,
		name:    "imports",
		hasName: true,
		Body:    strings.Join(bodies, "\n"),
	}
	list.Items = append([]*Item{merged}, kept...)
}

func itemsFromDecl(fset *token.FileSet, text string, decl ast.Decl) []*Item {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		kind := KindFunction
		name := d.Name.Name
		if d.Recv != nil && len(d.Recv.List) > 0 {
			kind = KindImplBlock
			name = recvTypeName(d.Recv.List[0].Type) + "." + d.Name.Name
		}
		start := d.Pos()
		if d.Doc != nil {
			start = d.Doc.Pos()
		}
		body := sourceSlice(fset, text, start, d.End())
		return []*Item{{Kind: kind, name: name, hasName: true, Body: body, Decl: d}}

	case *ast.GenDecl:
		start := d.Pos()
		if d.Doc != nil {
			start = d.Doc.Pos()
		}
		body := sourceSlice(fset, text, start, d.End())

		switch {
		case d.Tok == token.IMPORT:
			return []*Item{{Kind: KindImport, Body: body, Decl: d}}

		case d.Tok == token.TYPE && len(d.Specs) == 1:
			ts := d.Specs[0].(*ast.TypeSpec)
			kind := KindTypeAlias
			switch ts.Type.(type) {
			case *ast.StructType:
				kind = KindStruct
			case *ast.InterfaceType:
				kind = KindInterface
			}
			return []*Item{{Kind: kind, name: ts.Name.Name, hasName: true, Body: body, Decl: d}}

		case d.Tok == token.CONST && len(d.Specs) == 1 && len(d.Specs[0].(*ast.ValueSpec).Names) == 1:
			vs := d.Specs[0].(*ast.ValueSpec)
			return []*Item{{Kind: KindConst, name: vs.Names[0].Name, hasName: true, Body: body, Decl: d}}

		case d.Tok == token.VAR && len(d.Specs) == 1 && len(d.Specs[0].(*ast.ValueSpec).Names) == 1:
			vs := d.Specs[0].(*ast.ValueSpec)
			return []*Item{{Kind: KindVar, name: vs.Names[0].Name, hasName: true, Body: body, Decl: d}}

		default:
			// Grouped multi-spec decl (e.g. `const ( A = iota; B )`) or a
			// multi-name var/const spec: no single identifier to key on.
			return []*Item{{Kind: KindOther, Body: body, Decl: d}}
		}

	default:
		body := sourceSlice(fset, text, decl.Pos(), decl.End())
		return []*Item{{Kind: KindOther, Body: body, Decl: decl}}
	}
}

func recvTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return recvTypeName(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return recvTypeName(t.X)
	case *ast.IndexListExpr:
		return recvTypeName(t.X)
	default:
		return "?"
	}
}

func sourceSlice(fset *token.FileSet, text string, start, end token.Pos) string {
	startOff := fset.Position(start).Offset
	endOff := fset.Position(end).Offset
	return text[startOff:endOff]
}
