package forge

import "go/ast"

// Kind tags the syntactic category of a top-level declaration.
type Kind int

const (
	KindFunction Kind = iota
	KindStruct
	KindInterface
	KindTypeAlias
	KindConst
	KindVar
	KindImport
	KindImplBlock
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindTypeAlias:
		return "type-alias"
	case KindConst:
		return "const"
	case KindVar:
		return "var"
	case KindImport:
		return "import"
	case KindImplBlock:
		return "impl-block"
	default:
		return "other"
	}
}

// Item is a single top-level declaration, as parsed from source (§3).
//
// Name is empty and HasName false for declarations with no single
// identifier to key on — grouped multi-spec const/var/type blocks and
// multi-name const/var specs — and for any later declaration reusing a
// name already seen in the same file (see ParseNamed). Import
// declarations are the one exception: Go requires all imports to precede
// other declarations, so the parser collapses them into one synthetic
// item named "imports" rather than leaving them opaque (see parser.go).
type Item struct {
	Kind    Kind
	name    string
	hasName bool
	Body    string
	Decl    ast.Decl
}

func (it *Item) Name() (string, bool) { return it.name, it.hasName }

// ItemList is an ordered sequence of Items parsed from a single file.
type ItemList struct {
	Package     string
	Items       []*Item
	Diagnostics []string
}

// Names returns the identifiers of every named item, in list order.
func (l *ItemList) Names() []string {
	names := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		if n, ok := it.Name(); ok {
			names = append(names, n)
		}
	}
	return names
}

// Find returns the first item with the given name.
func (l *ItemList) Find(name string) (*Item, bool) {
	for _, it := range l.Items {
		if n, ok := it.Name(); ok && n == name {
			return it, true
		}
	}
	return nil, false
}
