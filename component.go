package depot

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// MaxComponents is the number of distinct component types a process can
// register: the width of the masks archetypes are built from, 64 by default
// and 256, 512 or 1024 under the m256, m512 and m1024 build tags.
const MaxComponents = mask.MaxBits

var _ Component = &componentType{}

// Component describes one Go type used as a component. There is exactly one
// descriptor per type for the life of the process, so descriptors can be
// compared with ==.
type Component interface {
	// Element is the table element type backing this component's row index.
	Element() table.ElementType
	// Type is the Go type of the component value.
	Type() reflect.Type
	// Bit is the row index assigned by the component schema; archetype masks
	// are keyed by it.
	Bit() uint32
	Name() string

	descriptor() *componentType
	newStorage() Storage
}

type componentType struct {
	elem    table.ElementType
	rtype   reflect.Type
	bit     uint32
	factory func(*componentType) Storage
}

func (c *componentType) Element() table.ElementType { return c.elem }
func (c *componentType) Type() reflect.Type         { return c.rtype }
func (c *componentType) Bit() uint32                { return c.bit }
func (c *componentType) Name() string               { return c.rtype.String() }
func (c *componentType) newStorage() Storage        { return c.factory(c) }
func (c *componentType) descriptor() *componentType { return c }

func (c *componentType) String() string {
	return c.Name()
}

// componentRegistry hands out descriptors. It is the only piece of shared
// state besides the id generator that may be touched from several goroutines,
// typically from package-level var blocks.
type componentRegistry struct {
	mu     sync.Mutex
	schema table.Schema
	cache  Cache[reflect.Type, *componentType]
}

var components = &componentRegistry{
	schema: table.Factory.NewSchema(),
	cache:  FactoryNewCache[reflect.Type, *componentType](MaxComponents),
}

// TypeOf returns the descriptor for T, registering T on first use. It panics
// with CacheCapacityError once the component masks are full.
func TypeOf[T any]() Component {
	rtype := reflect.TypeFor[T]()

	components.mu.Lock()
	defer components.mu.Unlock()

	if idx, ok := components.cache.GetIndex(rtype); ok {
		return *components.cache.GetItem(idx)
	}

	elem := table.FactoryNewElementType[T]()
	components.schema.Register(elem)
	ct, err := components.register(&componentType{
		elem:  elem,
		rtype: rtype,
		bit:   components.schema.RowIndexFor(elem),
		factory: func(c *componentType) Storage {
			return newSparseSet[T](c)
		},
	})
	if err != nil {
		panic(err)
	}
	return ct
}

// register caches ct. Row indexes are handed out by table for the whole
// process, so a bit past the mask width is refused even while the cache
// still has room.
func (r *componentRegistry) register(ct *componentType) (*componentType, error) {
	if ct.bit >= MaxComponents {
		return nil, CacheCapacityError{Capacity: MaxComponents}
	}
	if _, err := r.cache.Register(ct.rtype, ct); err != nil {
		return nil, err
	}
	return ct, nil
}
