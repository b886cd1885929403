package forge

import "testing"

func mustParse(t *testing.T, src string) *ItemList {
	t.Helper()
	items, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return items
}

func TestDiffInsertDeleteModifyKeep(t *testing.T) {
	oldSrc := "package demo\n\nfunc Keep() {}\n\nfunc Gone() {}\n\nfunc Changed() int { return 1 }\n"
	newSrc := "package demo\n\nfunc Keep() {}\n\nfunc Changed() int { return 2 }\n\nfunc Fresh() {}\n"

	patch := Diff(mustParse(t, oldSrc), mustParse(t, newSrc))

	kinds := map[string]OpKind{}
	for _, op := range patch.Ops {
		kinds[op.Name] = op.Kind
	}
	want := map[string]OpKind{"Keep": OpKeep, "Changed": OpModify, "Fresh": OpInsert, "Gone": OpDelete}
	for name, wantKind := range want {
		if got, ok := kinds[name]; !ok || got != wantKind {
			t.Fatalf("op for %s = %v, want %v", name, got, wantKind)
		}
	}
}

func TestDiffOrdering(t *testing.T) {
	old := mustParse(t, "package demo\n\nfunc A() {}\n\nfunc B() {}\n")
	next := mustParse(t, "package demo\n\nfunc B() {}\n\nfunc C() {}\n")
	patch := Diff(old, next)

	var order []string
	for _, op := range patch.Ops {
		order = append(order, op.Name)
	}
	want := []string{"B", "C", "A"}
	if len(order) != len(want) {
		t.Fatalf("got %v want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v want %v", order, want)
		}
	}
}

func TestDiffEmptyIsIdempotent(t *testing.T) {
	src := "package demo\n\nfunc A() {}\n"
	patch := Diff(mustParse(t, src), mustParse(t, src))
	if !patch.IsEmpty() {
		t.Fatalf("expected empty patch for identical input, got %+v", patch.Ops)
	}
}

func TestDiffInsertWhenOldEmpty(t *testing.T) {
	patch := Diff(&ItemList{}, mustParse(t, "package demo\n\nfunc A() {}\n"))
	if len(patch.Ops) != 1 || patch.Ops[0].Kind != OpInsert {
		t.Fatalf("expected a single Insert op, got %+v", patch.Ops)
	}
}
