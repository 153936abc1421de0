package depot

import "iter"

var _ iCursor = &Cursor{}

func newCursor(a *Archetype, w *World) *Cursor {
	return &Cursor{
		archetype: a,
		world:     w,
	}
}

// Next advances to the next selected entity, starting a new pass if none is
// running. It returns false, and resets the cursor, once the pass is done.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.entityIndex < len(c.selected) {
		c.entityIndex++
		return true
	}
	c.Reset()
	return false
}

// Entities runs one full pass as a range-over-func sequence. Breaking out of
// the loop ends the pass.
func (c *Cursor) Entities() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		c.initialize()
		defer c.Reset()
		for c.entityIndex < len(c.selected) {
			c.entityIndex++
			if !yield(c.entityIndex-1, c.selected[c.entityIndex-1]) {
				return
			}
		}
	}
}

// Entity is the entity the cursor currently points at.
func (c *Cursor) Entity() Entity {
	if c.entityIndex == 0 || c.entityIndex > len(c.selected) {
		return Null
	}
	return c.selected[c.entityIndex-1]
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.selected = Select(c.world, c.archetype)
	c.entityIndex = 0
	c.world.lock()
	c.initialized = true
}

// Reset abandons the running pass, if any, and applies operations queued
// during it.
func (c *Cursor) Reset() {
	wasInitialized := c.initialized
	c.entityIndex = 0
	c.selected = nil
	c.initialized = false
	if wasInitialized {
		c.world.unlock()
	}
}

func (c *Cursor) Remaining() int {
	return len(c.selected) - c.entityIndex
}

// TotalMatched starts a pass if none is running and reports its size.
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.selected)
}
