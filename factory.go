package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld(opts ...WorldOption) *World {
	return newWorld(opts...)
}

// NewArchetype composes clauses into one declaration.
func (f factory) NewArchetype(parts ...*Archetype) *Archetype {
	return newArchetype(parts...)
}

func (f factory) NewCursor(a *Archetype, w *World) *Cursor {
	return newCursor(a, w)
}

// NewGenerator returns a fresh counter whose first id is 1.
func (f factory) NewGenerator() *Counter {
	return NewCounter()
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		Component: TypeOf[T](),
	}
}

func FactoryNewCache[K comparable, T any](cap int) Cache[K, T] {
	return &SimpleCache[K, T]{
		itemIndices: make(map[K]int),
		maxCapacity: cap,
	}
}
