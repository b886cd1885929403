package forge

import (
	"fmt"
	"strings"

	"github.com/starkandwayne/goutils/ansi"
)

// Strategy selects how the merger resolves a patch operation against a
// base item that has diverged from what the patch expects (§3).
type Strategy int

const (
	PreferManual Strategy = iota
	PreferTemplate
	FailOnConflict
)

func (s Strategy) String() string {
	switch s {
	case PreferManual:
		return "manual"
	case PreferTemplate:
		return "template"
	case FailOnConflict:
		return "fail"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name from the CLI or config file.
// Unlike the tool this was distilled from — which silently fell back to
// PreferManual on any unrecognized string — forge rejects unknown
// strategies outright (§6, §9).
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return PreferManual, nil
	case "template":
		return PreferTemplate, nil
	case "fail":
		return FailOnConflict, nil
	default:
		return 0, fmt.Errorf("unknown merge strategy %q (want one of: manual, template, fail)", s)
	}
}

// Conflict is one entry in a merge's conflict list (§3, §7). It is data,
// not an error, until FailOnConflict promotes the list into one.
type Conflict struct {
	Name    string
	Message string
}

func (c Conflict) String() string { return c.Message }

// MergeResult is the outcome of a merge: the merged item list plus any
// conflicts raised along the way.
type MergeResult struct {
	Items     *ItemList
	Conflicts []Conflict
}

// Merge folds patch into base under strategy, per the §4.4 operation
// table. generated supplies the unnamed items of the newly rendered
// stream (imports aside, which the parser already names — see
// consolidateImports) so they can be appended to output per §4.2's
// unnamed-item rule; pass nil if there is no newly rendered stream to
// draw from.
func Merge(base, generated *ItemList, patch *Patch, strategy Strategy) *MergeResult {
	live := map[string]*Item{}
	var order []string
	for _, it := range base.Items {
		if n, ok := it.Name(); ok {
			live[n] = it
			order = append(order, n)
		}
	}

	result := &MergeResult{Items: &ItemList{Package: base.Package}}
	appendItem := func(it *Item) { result.Items.Items = append(result.Items.Items, it) }
	drop := func(name string) { delete(live, name) }
	conflict := func(name, msg string) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Name:    name,
			Message: ansi.Sprintf("@y{%s}: %s", name, msg),
		})
	}

	for _, op := range patch.Ops {
		baseItem, hasBase := live[op.Name]

		switch op.Kind {
		case OpInsert:
			if !hasBase {
				appendItem(op.New)
				continue
			}
			switch strategy {
			case PreferTemplate:
				appendItem(op.New)
				drop(op.Name)
			case PreferManual:
				appendItem(baseItem)
				drop(op.Name)
				conflict(op.Name, "a manually-added item already exists under this name; kept the manual version")
			case FailOnConflict:
				drop(op.Name)
				conflict(op.Name, "a manually-added item already exists under this name")
			}

		case OpDelete:
			if !hasBase {
				continue
			}
			switch strategy {
			case PreferTemplate:
				drop(op.Name)
			case PreferManual:
				appendItem(baseItem)
				drop(op.Name)
				conflict(op.Name, "no longer generated by the template, but has manual edits; kept it")
			case FailOnConflict:
				drop(op.Name)
				conflict(op.Name, "no longer generated by the template, but has manual edits")
			}

		case OpModify:
			if !hasBase {
				appendItem(op.New)
				continue
			}
			if canonicalEqual(baseItem, op.Old) {
				appendItem(op.New)
				drop(op.Name)
				continue
			}
			switch strategy {
			case PreferTemplate:
				appendItem(op.New)
				drop(op.Name)
				conflict(op.Name, "has manual edits; overridden by the template update")
			case PreferManual:
				appendItem(baseItem)
				drop(op.Name)
				conflict(op.Name, "has manual edits; template update skipped")
			case FailOnConflict:
				drop(op.Name)
				conflict(op.Name, "has manual edits conflicting with the template update")
			}

		case OpKeep:
			if hasBase {
				appendItem(baseItem)
				drop(op.Name)
			}
		}
	}

	// Residual named items: manual additions the patch never mentioned.
	for _, n := range order {
		if it, stillLive := live[n]; stillLive {
			appendItem(it)
			delete(live, n)
		}
	}

	// Unnamed base items pass through untouched (§4.2).
	for _, it := range base.Items {
		if _, ok := it.Name(); !ok {
			appendItem(it)
		}
	}

	// Unnamed items newly introduced by the generated stream are appended
	// too, per §4.2's "appearing in a newly rendered stream" clause.
	if generated != nil {
		for _, it := range generated.Items {
			if _, ok := it.Name(); !ok {
				appendItem(it)
			}
		}
	}

	return result
}
