package depot

import "reflect"

var entityType = reflect.TypeFor[Entity]()

func typedStorage[T any](w *World) *sparseSet[T] {
	return w.storage(TypeOf[T]()).(*sparseSet[T])
}

func mustHandle[T any](ids ...Entity) {
	for _, id := range ids {
		if !id.Valid() {
			panic(NullEntityError{Component: TypeOf[T]()})
		}
	}
}

// Update sets id's T to value. Entities aliasing the same value see the
// change too.
func Update[T any](w *World, id Entity, value T) {
	mustHandle[T](id)
	typedStorage[T](w).Update(id, value)
}

// Tag sets id's T to the zero value.
func Tag[T any](w *World, id Entity) {
	var zero T
	Update(w, id, zero)
}

// Remove detaches T from id. Removing the Entity component destroys id.
func Remove[T any](w *World, id Entity) {
	if !id.Valid() {
		return
	}
	if reflect.TypeFor[T]() == entityType {
		w.Destroy(id)
		return
	}
	typedStorage[T](w).Remove(id)
}

func Has[T any](w *World, id Entity) bool {
	if !id.Valid() {
		return false
	}
	return typedStorage[T](w).Contains(id)
}

// Get returns a pointer to id's T. It panics if id has no T; check with Has
// or reach id through a cursor whose archetype requires T. The pointer is
// invalidated by the next insert or removal of any T.
func Get[T any](w *World, id Entity) *T {
	mustHandle[T](id)
	return typedStorage[T](w).Get(id)
}

// GetSafe is Get for callers that would rather check than panic.
func GetSafe[T any](w *World, id Entity) (bool, *T) {
	if !id.Valid() {
		return false, nil
	}
	v, ok := typedStorage[T](w).Lookup(id)
	return ok, v
}

// Copy gives dst its own copy of src's T.
func Copy[T any](w *World, src, dst Entity) {
	mustHandle[T](src, dst)
	typedStorage[T](w).Copy(src, dst)
}

// Move hands src's T over to dst; src no longer has one.
func Move[T any](w *World, src, dst Entity) {
	mustHandle[T](src, dst)
	typedStorage[T](w).Move(src, dst)
}

func Swap[T any](w *World, src, dst Entity) {
	mustHandle[T](src, dst)
	typedStorage[T](w).Swap(src, dst)
}

// Bind makes src share dst's T value.
func Bind[T any](w *World, src, dst Entity) {
	mustHandle[T](src, dst)
	typedStorage[T](w).Bind(src, dst, false)
}

// BindWeak is Bind, but src stays hidden from passes that do not ask for
// weak bindings.
func BindWeak[T any](w *World, src, dst Entity) {
	mustHandle[T](src, dst)
	typedStorage[T](w).Bind(src, dst, true)
}

// Clear removes T from every entity.
func Clear[T any](w *World) {
	typedStorage[T](w).Clear()
}

// Any reports whether some entity has T.
func Any[T any](w *World) bool {
	return typedStorage[T](w).Size() > 0
}

// Size counts the entities holding T, aliases included.
func Size[T any](w *World) int {
	return typedStorage[T](w).Size()
}

func mustHandles(c Component, ids ...Entity) {
	for _, id := range ids {
		if !id.Valid() {
			panic(NullEntityError{Component: c.descriptor()})
		}
	}
}

// CopyAll is Copy for each of cs.
func CopyAll(w *World, src, dst Entity, cs ...Component) {
	for _, c := range cs {
		mustHandles(c, src, dst)
		w.storage(c).Copy(src, dst)
	}
}

// MoveAll is Move for each of cs.
func MoveAll(w *World, src, dst Entity, cs ...Component) {
	for _, c := range cs {
		mustHandles(c, src, dst)
		w.storage(c).Move(src, dst)
	}
}

// SwapAll is Swap for each of cs.
func SwapAll(w *World, src, dst Entity, cs ...Component) {
	for _, c := range cs {
		mustHandles(c, src, dst)
		w.storage(c).Swap(src, dst)
	}
}

// BindAll is Bind for each of cs.
func BindAll(w *World, src, dst Entity, cs ...Component) {
	for _, c := range cs {
		mustHandles(c, src, dst)
		w.storage(c).Bind(src, dst, false)
	}
}
