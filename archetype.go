package depot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/TheBitDrifter/mask"
)

// typeSet is an ordered set of components: order follows first insertion,
// membership is answered by the mask.
type typeSet struct {
	order []Component
	bits  mask.Mask
}

func (s *typeSet) add(cs ...Component) {
	for _, c := range cs {
		if c == nil {
			continue
		}
		d := c.descriptor()
		if d == nil || s.has(d) {
			continue
		}
		s.order = append(s.order, d)
		s.bits.Mark(d.Bit())
	}
}

func (s *typeSet) has(c Component) bool {
	var m mask.Mask
	m.Mark(c.Bit())
	return s.bits.ContainsAll(m)
}

func (s *typeSet) components() []Component {
	return slices.Clone(s.order)
}

// Archetype declares one query pass: which components to expose, which an
// entity must or must not have, and which tags the pass strips or attaches.
// Every clause constructor returns an Archetype; composing them with
// NewArchetype or With unions the five sets pairwise, keeping first
// occurrence order.
//
// Multi-component exclusion is conjunctive: Exclude(A, B) removes only
// entities that have both A and B.
type Archetype struct {
	iterate typeSet
	include typeSet
	exclude typeSet
	consume typeSet
	produce typeSet
	weak    bool
}

// Iterate exposes the given components per element and requires them.
func Iterate(cs ...Component) *Archetype {
	a := &Archetype{}
	a.iterate.add(cs...)
	a.include.add(cs...)
	return a
}

// Require filters on the given components without exposing them.
func Require(cs ...Component) *Archetype {
	a := &Archetype{}
	a.include.add(cs...)
	return a
}

// Exclude drops entities holding all of the given components.
func Exclude(cs ...Component) *Archetype {
	a := &Archetype{}
	a.exclude.add(cs...)
	return a
}

// Consume requires the given tags and removes them from every selected
// entity, so a repeat pass finds nothing until someone sets them again.
func Consume(cs ...Component) *Archetype {
	a := &Archetype{}
	a.include.add(cs...)
	a.consume.add(cs...)
	return a
}

// Produce skips entities already holding the given tags and attaches them,
// zero valued, to every selected entity.
func Produce(cs ...Component) *Archetype {
	a := &Archetype{}
	a.exclude.add(cs...)
	a.produce.add(cs...)
	return a
}

// Calculate is Produce that also exposes the freshly attached components, so
// a pass can fill in a value once and keep it.
func Calculate(cs ...Component) *Archetype {
	a := &Archetype{}
	a.iterate.add(cs...)
	a.exclude.add(cs...)
	a.produce.add(cs...)
	return a
}

// IncludeWeak makes the pass enumerate weak bindings too.
func IncludeWeak() *Archetype {
	return &Archetype{weak: true}
}

func newArchetype(parts ...*Archetype) *Archetype {
	a := &Archetype{}
	for _, p := range parts {
		a.union(p)
	}
	return a
}

func (a *Archetype) union(o *Archetype) {
	if o == nil {
		return
	}
	a.iterate.add(o.iterate.order...)
	a.include.add(o.include.order...)
	a.exclude.add(o.exclude.order...)
	a.consume.add(o.consume.order...)
	a.produce.add(o.produce.order...)
	a.weak = a.weak || o.weak
}

// With returns a new archetype composed of a and parts; a is left untouched.
func (a *Archetype) With(parts ...*Archetype) *Archetype {
	return newArchetype(append([]*Archetype{a}, parts...)...)
}

func (a *Archetype) Iterates() []Component { return a.iterate.components() }
func (a *Archetype) Includes() []Component { return a.include.components() }
func (a *Archetype) Excludes() []Component { return a.exclude.components() }
func (a *Archetype) Consumes() []Component { return a.consume.components() }
func (a *Archetype) Produces() []Component { return a.produce.components() }
func (a *Archetype) Weak() bool            { return a.weak }

// Contradictory reports whether no entity can ever be selected: either
// nothing is required, or every excluded component is also required.
func (a *Archetype) Contradictory() bool {
	if len(a.include.order) == 0 {
		return true
	}
	if len(a.exclude.order) == 0 {
		return false
	}
	return a.include.bits.ContainsAll(a.exclude.bits)
}

// Validate returns a ContradictoryArchetypeError for archetypes that can
// never match.
func (a *Archetype) Validate() error {
	if a.Contradictory() {
		return ContradictoryArchetypeError{Archetype: a}
	}
	return nil
}

func (a *Archetype) String() string {
	var b strings.Builder
	b.WriteString("Archetype{")
	sets := []struct {
		name string
		set  *typeSet
	}{
		{"iterate", &a.iterate},
		{"include", &a.include},
		{"exclude", &a.exclude},
		{"consume", &a.consume},
		{"produce", &a.produce},
	}
	first := true
	for _, s := range sets {
		if len(s.set.order) == 0 {
			continue
		}
		if !first {
			b.WriteString(" ")
		}
		first = false
		names := make([]string, len(s.set.order))
		for i, c := range s.set.order {
			names[i] = c.Name()
		}
		fmt.Fprintf(&b, "%s=[%s]", s.name, strings.Join(names, " "))
	}
	if a.weak {
		b.WriteString(" weak")
	}
	b.WriteString("}")
	return b.String()
}
