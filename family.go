package depot

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// EntitySet is an unordered set of entities.
type EntitySet map[Entity]struct{}

func (s EntitySet) Add(id Entity)    { s[id] = struct{}{} }
func (s EntitySet) Remove(id Entity) { delete(s, id) }
func (s EntitySet) Len() int         { return len(s) }

func (s EntitySet) Has(id Entity) bool {
	_, ok := s[id]
	return ok
}

// Sorted lists the members in ascending order.
func (s EntitySet) Sorted() []Entity {
	return slices.Sorted(maps.Keys(s))
}

// Family places an entity in a forest. It is kept consistent by SetParent;
// write Parent through SetParent only.
type Family struct {
	Self     Entity
	Parent   Entity
	Root     Entity
	Children EntitySet
	// Siblings are the parent's children minus Self.
	Siblings EntitySet
}

type FamilyCycleError struct {
	Entity, Parent Entity
}

func (e FamilyCycleError) Error() string {
	return fmt.Sprintf("entity %d cannot become a child of its descendant %d", e.Entity, e.Parent)
}

// AdoptFamily gives id a Family, as its own root, unless it already has one.
func AdoptFamily(w *World, id Entity) *Family {
	if ok, f := GetSafe[Family](w, id); ok {
		return f
	}
	Update(w, id, Family{
		Self:     id,
		Root:     id,
		Children: EntitySet{},
		Siblings: EntitySet{},
	})
	return Get[Family](w, id)
}

// UpdateFamily makes sure id and parent both carry a Family and hangs id
// under parent. A Null parent makes id a root.
func UpdateFamily(w *World, id, parent Entity) {
	AdoptFamily(w, id)
	if parent.Valid() {
		AdoptFamily(w, parent)
	}
	SetParent(w, id, parent)
}

// CreateChild creates an entity and hangs it under parent.
func (w *World) CreateChild(parent Entity) Entity {
	id := w.Create()
	UpdateFamily(w, id, parent)
	return id
}

// SetParent moves id under parent, or makes it a root for Null, and fixes up
// children, siblings and roots of everything affected. Both id and a valid
// parent must already carry a Family. Making an entity the child of its own
// descendant panics with FamilyCycleError.
func SetParent(w *World, id, parent Entity) {
	self := Get[Family](w, id)
	old := self.Parent
	if old == parent {
		return
	}
	if parent == id || (parent.Valid() && isDescendant(w, id, parent)) {
		panic(FamilyCycleError{Entity: id, Parent: parent})
	}

	oldRoot := id
	if old.Valid() {
		oldFamily := Get[Family](w, old)
		oldRoot = oldFamily.Root
		oldFamily.Children.Remove(id)
		for sibling := range self.Siblings {
			Get[Family](w, sibling).Siblings.Remove(id)
		}
		clear(self.Siblings)
	}

	self.Parent = parent
	newRoot := id
	if parent.Valid() {
		parentFamily := Get[Family](w, parent)
		newRoot = parentFamily.Root
		for child := range parentFamily.Children {
			Get[Family](w, child).Siblings.Add(id)
			self.Siblings.Add(child)
		}
		parentFamily.Children.Add(id)
	}

	if oldRoot == newRoot {
		return
	}
	self.Root = newRoot
	for d := range Descendants(w, id) {
		Get[Family](w, d).Root = newRoot
	}
}

// Descendants walks the strict descendants of id breadth first, visiting
// each generation in ascending id order.
func Descendants(w *World, id Entity) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		ok, f := GetSafe[Family](w, id)
		if !ok {
			return
		}
		queue := f.Children.Sorted()
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			if !yield(next) {
				return
			}
			queue = append(queue, Get[Family](w, next).Children.Sorted()...)
		}
	}
}

func isDescendant(w *World, ancestor, id Entity) bool {
	for d := range Descendants(w, ancestor) {
		if d == id {
			return true
		}
	}
	return false
}

// DestroyTree detaches id from its parent and destroys it together with all
// of its descendants.
func DestroyTree(w *World, id Entity) {
	if !id.Valid() {
		return
	}
	if !Has[Family](w, id) {
		w.Destroy(id)
		return
	}
	SetParent(w, id, Null)
	doomed := append([]Entity{id}, iter_util.Collect(Descendants(w, id))...)
	// Nothing outside the subtree links into it anymore.
	for _, d := range doomed {
		Remove[Family](w, d)
	}
	for _, d := range doomed {
		w.Destroy(d)
	}
}

var familyComponent = TypeOf[Family]()

func (w *World) unlinkFamily(id Entity) {
	sto, ok := w.lookup(familyComponent)
	if !ok || !sto.Contains(id) {
		return
	}
	SetParent(w, id, Null)
	for _, child := range Get[Family](w, id).Children.Sorted() {
		SetParent(w, child, Null)
	}
}
