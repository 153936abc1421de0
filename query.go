package depot

// Select plans one pass of a over w and returns the selected entities in
// ascending order. The pass's side effects are applied before it returns:
// consumed components are removed from, and produced components attached to,
// every selected entity.
func Select(w *World, a *Archetype) []Entity {
	includes := w.intersect(&a.include, a.weak)
	if len(includes) == 0 {
		return nil
	}
	excludes := w.intersect(&a.exclude, a.weak)
	selected := Difference(includes, excludes)

	for _, c := range a.consume.order {
		sto := w.storage(c)
		for _, id := range selected {
			sto.Remove(id)
		}
	}
	for _, c := range a.produce.order {
		sto := w.storage(c)
		for _, id := range selected {
			sto.UpdateZero(id)
		}
	}
	return selected
}

// Count reports how many entities a pass of a would select without running
// the pass or its side effects.
func Count(w *World, a *Archetype) int {
	includes := w.intersect(&a.include, a.weak)
	if len(includes) == 0 {
		return 0
	}
	return len(Difference(includes, w.intersect(&a.exclude, a.weak)))
}

func (w *World) intersect(set *typeSet, weak bool) []Entity {
	if len(set.order) == 0 {
		return nil
	}
	seqs := make([][]Entity, len(set.order))
	for i, c := range set.order {
		seqs[i] = w.storage(c).Identifiers(weak)
	}
	return Intersect(seqs...)
}
