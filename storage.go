package depot

import "slices"

var _ Storage = &sparseSet[int]{}

type slotID uint64

// Strength tags a binding. Weak bindings still resolve through Get but are
// left out of default enumeration.
type Strength uint8

const (
	Strong Strength = iota
	Weak
)

func (s Strength) String() string {
	if s == Weak {
		return "weak"
	}
	return "strong"
}

type binding struct {
	slot     slotID
	strength Strength
}

// sparseSet stores the values of one component type. Entities are bound to
// slots rather than dense positions, so several entities can share one value
// and compaction on removal never has to touch the bindings.
type sparseSet[T any] struct {
	component Component

	dense  []T
	owners []slotID // owners[i] is the slot living at dense[i]

	positions map[slotID]int
	refs      map[slotID]int
	bindings  map[Entity]binding
	nextSlot  slotID
}

func newSparseSet[T any](c Component) *sparseSet[T] {
	return &sparseSet[T]{
		component: c,
		positions: make(map[slotID]int),
		refs:      make(map[slotID]int),
		bindings:  make(map[Entity]binding),
	}
}

func (s *sparseSet[T]) Component() Component {
	return s.component
}

// Update overwrites the value id is bound to, which is visible through every
// alias of that slot, or binds id to a fresh slot holding value.
func (s *sparseSet[T]) Update(id Entity, value T) {
	if b, ok := s.bindings[id]; ok {
		s.dense[s.positions[b.slot]] = value
		return
	}
	s.insert(id, value)
}

func (s *sparseSet[T]) UpdateZero(id Entity) {
	var zero T
	s.Update(id, zero)
}

func (s *sparseSet[T]) insert(id Entity, value T) {
	slot := s.nextSlot
	s.nextSlot++
	s.positions[slot] = len(s.dense)
	s.dense = append(s.dense, value)
	s.owners = append(s.owners, slot)
	s.refs[slot] = 1
	s.bindings[id] = binding{slot: slot, strength: Strong}
}

func (s *sparseSet[T]) Remove(id Entity) {
	b, ok := s.bindings[id]
	if !ok {
		return
	}
	delete(s.bindings, id)
	s.release(b.slot)
}

// release drops one reference to slot and swap-erases its value once nothing
// is bound to it anymore.
func (s *sparseSet[T]) release(slot slotID) {
	s.refs[slot]--
	if s.refs[slot] > 0 {
		return
	}
	delete(s.refs, slot)

	pos := s.positions[slot]
	last := len(s.dense) - 1
	if pos != last {
		moved := s.owners[last]
		s.dense[pos] = s.dense[last]
		s.owners[pos] = moved
		s.positions[moved] = pos
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	delete(s.positions, slot)
}

func (s *sparseSet[T]) Contains(id Entity) bool {
	_, ok := s.bindings[id]
	return ok
}

// Size counts bound ids; aliases of one slot count individually.
func (s *sparseSet[T]) Size() int {
	return len(s.bindings)
}

// Slots is the number of distinct values held, i.e. the dense length.
func (s *sparseSet[T]) Slots() int {
	return len(s.dense)
}

func (s *sparseSet[T]) Strength(id Entity) (Strength, bool) {
	b, ok := s.bindings[id]
	return b.strength, ok
}

// Identifiers returns the bound ids in ascending order. Weak bindings are
// only listed when weak is set.
func (s *sparseSet[T]) Identifiers(weak bool) []Entity {
	ids := make([]Entity, 0, len(s.bindings))
	for id, b := range s.bindings {
		if b.strength == Weak && !weak {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Get returns a pointer to the value id is bound to. The pointer is only good
// until the next insert or removal on this storage. Get panics if id is
// unbound.
func (s *sparseSet[T]) Get(id Entity) *T {
	b, ok := s.bindings[id]
	if !ok {
		panic(ComponentNotFoundError{Component: s.component, Entity: id})
	}
	return &s.dense[s.positions[b.slot]]
}

func (s *sparseSet[T]) Lookup(id Entity) (*T, bool) {
	b, ok := s.bindings[id]
	if !ok {
		return nil, false
	}
	return &s.dense[s.positions[b.slot]], true
}

// Copy gives dst its own slot holding a copy of src's value. Whatever dst was
// bound to before is released.
func (s *sparseSet[T]) Copy(src, dst Entity) {
	if src == dst {
		return
	}
	b, ok := s.bindings[src]
	if !ok {
		return
	}
	value := s.dense[s.positions[b.slot]]
	s.Remove(dst)
	s.insert(dst, value)
}

// Move hands src's binding over to dst without touching the value.
func (s *sparseSet[T]) Move(src, dst Entity) {
	if src == dst {
		return
	}
	b, ok := s.bindings[src]
	if !ok {
		return
	}
	s.Remove(dst)
	delete(s.bindings, src)
	s.bindings[dst] = b
}

// Swap exchanges the bindings of src and dst. If only one side is bound it
// degrades to a move towards the unbound side.
func (s *sparseSet[T]) Swap(src, dst Entity) {
	bs, srcBound := s.bindings[src]
	bd, dstBound := s.bindings[dst]
	switch {
	case !srcBound:
		s.Move(dst, src)
	case !dstBound:
		s.Move(src, dst)
	default:
		s.bindings[src], s.bindings[dst] = bd, bs
	}
}

// Bind makes src an alias of dst's value. A previous binding of src is
// released first. Weak aliases are hidden from default enumeration.
func (s *sparseSet[T]) Bind(src, dst Entity, weak bool) {
	if src == dst {
		return
	}
	if _, ok := s.bindings[dst]; !ok {
		return
	}
	s.Remove(src)
	// dst still holds its slot, so the lookup after the removal is safe.
	b := s.bindings[dst]
	strength := Strong
	if weak {
		strength = Weak
	}
	s.refs[b.slot]++
	s.bindings[src] = binding{slot: b.slot, strength: strength}
}

func (s *sparseSet[T]) Clear() {
	clear(s.dense)
	s.dense = s.dense[:0]
	s.owners = s.owners[:0]
	clear(s.positions)
	clear(s.refs)
	clear(s.bindings)
}
