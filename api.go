package depot

import "iter"

// Storage is the type-erased contract every per-type component storage
// satisfies. The World only talks to storages through it; typed access goes
// through the generic package functions.
type Storage interface {
	Component() Component
	Contains(Entity) bool
	Size() int
	Slots() int
	Identifiers(weak bool) []Entity
	Strength(Entity) (Strength, bool)
	UpdateZero(Entity)
	Remove(Entity)
	Copy(src, dst Entity)
	Move(src, dst Entity)
	Swap(src, dst Entity)
	Bind(src, dst Entity, weak bool)
	Clear()
}

// Generator hands out entity ids. Implementations must be safe for
// concurrent use; no ordering between callers is implied.
type Generator interface {
	Next() Entity
}

// Logger captures structured log output from a World.
type Logger interface {
	With(key string, value any) Logger
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type iCursor interface {
	Entities() iter.Seq2[int, Entity]
	Next() bool
	Entity() Entity
}

type Cache[K comparable, T any] interface {
	GetIndex(K) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(K, T) (int, error)
	Len() int
	Clear()
}

// Cursor walks the entities selected by one pass of an Archetype. The
// selection, and the archetype's consume/produce side effects, happen when a
// pass starts; a finished or abandoned pass resets the cursor so the next
// call starts a fresh one.
type Cursor struct {
	archetype *Archetype
	world     *World

	selected    []Entity
	entityIndex int

	initialized bool
}

// AccessibleComponent pairs a component descriptor with typed access to its
// values.
type AccessibleComponent[T any] struct {
	Component
}

type SimpleCache[K comparable, T any] struct {
	items       []T
	itemIndices map[K]int
	maxCapacity int
}
