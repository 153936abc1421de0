package depot

// World owns one storage per component type, created the first time a type
// is referenced, and hands out entity ids from its Generator.
//
// A World is not safe for concurrent use.
type World struct {
	generator Generator
	logger    Logger

	storages map[uint32]Storage
	order    []Storage

	locks   int
	opQueue opQueue
}

type WorldOption func(*World)

// WithGenerator gives the world its own id source.
func WithGenerator(g Generator) WorldOption {
	return func(w *World) {
		if g != nil {
			w.generator = g
		}
	}
}

// WithLogger overrides Config's logger for this world.
func WithLogger(l Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

func newWorld(opts ...WorldOption) *World {
	w := &World{
		generator: Config.defaultGenerator(),
		logger:    Config.defaultLogger(),
		storages:  make(map[uint32]Storage),
		opQueue:   newOpQueue(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Create returns a new entity. Its only component is the Entity liveness
// tag, keyed by itself.
func (w *World) Create() Entity {
	id := w.generator.Next()
	Update(w, id, id)
	return id
}

// Alive reports whether id was created and not destroyed.
func (w *World) Alive(id Entity) bool {
	return Has[Entity](w, id)
}

// Destroy removes id from every storage of the world. An entity in a family
// tree is unlinked first: it leaves its parent and its children become roots.
func (w *World) Destroy(id Entity) {
	if !id.Valid() {
		return
	}
	w.unlinkFamily(id)
	for _, sto := range w.order {
		sto.Remove(id)
	}
	w.logger.Debug("entity destroyed", "entity", id)
}

// Storage returns the storage for c, creating it if needed.
func (w *World) Storage(c Component) Storage {
	return w.storage(c)
}

// Storages is the number of component storages created so far.
func (w *World) Storages() int {
	return len(w.order)
}

func (w *World) storage(c Component) Storage {
	d := c.descriptor()
	if sto, ok := w.storages[d.bit]; ok {
		return sto
	}
	sto := d.newStorage()
	w.storages[d.bit] = sto
	w.order = append(w.order, sto)
	w.logger.Debug("storage created", "type", d.Name(), "bit", d.bit)
	return sto
}

// lookup returns the storage for c without creating it.
func (w *World) lookup(c Component) (Storage, bool) {
	sto, ok := w.storages[c.descriptor().bit]
	return sto, ok
}

// Reset clears every storage. It fails while a cursor pass is live.
func (w *World) Reset() error {
	if w.Locked() {
		return LockedWorldError{}
	}
	for _, sto := range w.order {
		sto.Clear()
	}
	return nil
}

// Locked reports whether a cursor pass is in progress.
func (w *World) Locked() bool {
	return w.locks > 0
}

func (w *World) lock() {
	w.locks++
}

func (w *World) unlock() {
	if w.locks == 0 {
		return
	}
	w.locks--
	if w.locks == 0 {
		w.processOperationQueue()
	}
}
