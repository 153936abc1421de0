package depot

import "sync/atomic"

var _ Generator = &Counter{}

// Entity identifies a thing in the world. It carries no data of its own;
// components are attached through per-type storages. The zero value is Null.
type Entity uint64

// Null is the absent entity.
const Null Entity = 0

// Valid reports whether e refers to an entity.
func (e Entity) Valid() bool {
	return e != Null
}

// Counter is the default Generator: a single atomic increment. The first id
// handed out is 1 so that Null never collides with a live entity.
type Counter struct {
	last atomic.Uint64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Next() Entity {
	return Entity(c.last.Add(1))
}

// Reset rewinds the counter so the next id is start+1. Meant for tests.
func (c *Counter) Reset(start uint64) {
	c.last.Store(start)
}
