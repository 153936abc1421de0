package depot

import "fmt"

type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is currently locked by an active cursor"
}

type NullEntityError struct {
	Component Component
}

func (e NullEntityError) Error() string {
	if e.Component == nil {
		return "null entity used as a handle"
	}
	return fmt.Sprintf("null entity used as a handle for component %s", e.Component.Name())
}

type ComponentNotFoundError struct {
	Component Component
	Entity    Entity
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity %d: %s", e.Entity, e.Component.Name())
}

type ContradictoryArchetypeError struct {
	Archetype *Archetype
}

func (e ContradictoryArchetypeError) Error() string {
	return fmt.Sprintf("archetype can never match: %v", e.Archetype)
}
