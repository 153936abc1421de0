package depot

// GetFromCursor resolves the value for the entity at the cursor position.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	return c.storage(cursor.world).Get(cursor.Entity())
}

// GetFromCursorSafe is GetFromCursor reporting absence instead of panicking,
// for components the cursor's archetype does not require.
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	v, ok := c.storage(cursor.world).Lookup(cursor.Entity())
	return ok, v
}

// CheckCursor reports whether the entity at the cursor position has T.
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	return c.storage(cursor.world).Contains(cursor.Entity())
}

// GetFromEntity resolves the value for id.
func (c AccessibleComponent[T]) GetFromEntity(w *World, id Entity) *T {
	mustHandle[T](id)
	return c.storage(w).Get(id)
}

func (c AccessibleComponent[T]) storage(w *World) *sparseSet[T] {
	return w.storage(c.descriptor()).(*sparseSet[T])
}

// descriptor resolves T's descriptor for a zero AccessibleComponent, so one
// declared without FactoryNewComponent still works in archetypes.
func (c AccessibleComponent[T]) descriptor() *componentType {
	if c.Component == nil {
		return TypeOf[T]().descriptor()
	}
	return c.Component.descriptor()
}
