package depot

import "github.com/TheBitDrifter/bark"

type operationType int

const (
	opAddComponent operationType = iota
	opRemoveComponent
)

type operation struct {
	typ    operationType
	entity Entity
	comp   Component
}

// opQueue holds structural changes requested while a cursor pass is live.
// Component operations run before destroys; operations on an entity that is
// already queued for destruction are dropped.
type opQueue struct {
	componentOps   []operation
	destroyOps     []Entity
	pendingDestroy map[Entity]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
	}
}

func (q *opQueue) empty() bool {
	return len(q.componentOps) == 0 && len(q.destroyOps) == 0
}

func (q *opQueue) enqueueDestroy(ids []Entity) {
	for _, id := range ids {
		if !id.Valid() {
			continue
		}
		if _, queued := q.pendingDestroy[id]; queued {
			continue
		}
		q.pendingDestroy[id] = struct{}{}
		q.destroyOps = append(q.destroyOps, id)
	}
}

func (q *opQueue) enqueueComponentOp(typ operationType, id Entity, c Component) {
	if _, doomed := q.pendingDestroy[id]; doomed {
		return
	}
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: id,
		comp:   c,
	})
}

func (w *World) processOperationQueue() {
	q := &w.opQueue
	if q.empty() {
		return
	}
	w.logger.Debug("applying queued operations",
		bark.KeyOperation, "flush",
		"component_ops", len(q.componentOps),
		"destroy_ops", len(q.destroyOps),
	)

	for _, op := range q.componentOps {
		if _, doomed := q.pendingDestroy[op.entity]; doomed {
			continue
		}
		sto := w.storage(op.comp)
		switch op.typ {
		case opAddComponent:
			sto.UpdateZero(op.entity)
		case opRemoveComponent:
			sto.Remove(op.entity)
		}
	}
	for _, id := range q.destroyOps {
		w.Destroy(id)
	}

	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
}

// EnqueueDestroy destroys ids now, or once the running cursor pass ends.
func (w *World) EnqueueDestroy(ids ...Entity) {
	if !w.Locked() {
		for _, id := range ids {
			w.Destroy(id)
		}
		return
	}
	w.opQueue.enqueueDestroy(ids)
}

// EnqueueTag attaches a zero T to id now, or once the running cursor pass
// ends. A Null id is refused with a traced NullEntityError.
func EnqueueTag[T any](w *World, id Entity) error {
	if !id.Valid() {
		return bark.AddTrace(NullEntityError{Component: TypeOf[T]()})
	}
	if !w.Locked() {
		Tag[T](w, id)
		return nil
	}
	w.opQueue.enqueueComponentOp(opAddComponent, id, TypeOf[T]())
	return nil
}

// EnqueueRemove detaches T from id now, or once the running cursor pass ends.
func EnqueueRemove[T any](w *World, id Entity) {
	if !w.Locked() {
		Remove[T](w, id)
		return
	}
	if !id.Valid() {
		return
	}
	if TypeOf[T]().Type() == entityType {
		w.opQueue.enqueueDestroy([]Entity{id})
		return
	}
	w.opQueue.enqueueComponentOp(opRemoveComponent, id, TypeOf[T]())
}
