/*
Package depot provides the data layer of an Entity-Component-System: a mapping
from opaque entity ids to typed component values, and a small query algebra
over it.

Each component type gets its own sparse-set storage, created the first time
the type is used. Values live in a dense slice; entities bind to slots that
point into it, so several entities can share one value (Bind) and removals
compact the slice without touching unrelated bindings.

Core Concepts:

  - Entity: an opaque 64-bit id. Null (0) means no entity. Ids are never reused.
  - Component: any Go type attached to entities through its storage.
  - Archetype: a declaration built from Iterate, Require, Exclude, Consume,
    Produce and Calculate clauses.
  - Cursor: runs passes of an archetype over a World.
  - Family: a parent/children/siblings/root component kept consistent by SetParent.

Basic Usage:

	world := depot.Factory.NewWorld()

	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()
	frozen := depot.FactoryNewComponent[Frozen]()

	e := world.Create()
	depot.Update(world, e, Position{})
	depot.Update(world, e, Velocity{X: 1, Y: 2})

	movers := depot.Factory.NewArchetype(
		depot.Iterate(position, velocity),
		depot.Exclude(frozen),
	)
	cursor := depot.Factory.NewCursor(movers, world)
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Consume and Produce make passes one-shot: Consume(Dirty) handles every dirty
entity once and strips the tag, Produce(Seen) handles every entity once and
tags it so later passes skip it.

Worlds log at debug level through github.com/TheBitDrifter/bark by default;
call bark.Wake before creating a World to choose the handler and level, or
pass WithLogger.

Nothing here is safe for concurrent use except id generation.
*/
package depot
