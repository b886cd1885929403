package forge

// Diff computes the patch transforming old into new, per the §4.3
// procedure: walk new in order, matching against old by name; named items
// in old left unmatched become Delete ops, appended after the walk in
// old's order. Unnamed items are invisible to the differ (§4.2) — the
// merger handles their passthrough separately.
func Diff(old, new *ItemList) *Patch {
	oldIndex := map[string]*Item{}
	var oldOrder []string
	for _, it := range old.Items {
		n, ok := it.Name()
		if !ok {
			continue
		}
		if _, exists := oldIndex[n]; exists {
			continue
		}
		oldIndex[n] = it
		oldOrder = append(oldOrder, n)
	}

	consumed := map[string]bool{}
	patch := &Patch{}
	for _, it := range new.Items {
		n, ok := it.Name()
		if !ok {
			continue
		}
		if oldItem, found := oldIndex[n]; found {
			consumed[n] = true
			if canonicalEqual(oldItem, it) {
				patch.Ops = append(patch.Ops, Op{Kind: OpKeep, Name: n, Old: oldItem, New: it})
			} else {
				patch.Ops = append(patch.Ops, Op{Kind: OpModify, Name: n, Old: oldItem, New: it})
			}
		} else {
			patch.Ops = append(patch.Ops, Op{Kind: OpInsert, Name: n, New: it})
		}
	}

	for _, n := range oldOrder {
		if !consumed[n] {
			patch.Ops = append(patch.Ops, Op{Kind: OpDelete, Name: n, Old: oldIndex[n]})
		}
	}

	return patch
}
