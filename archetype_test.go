package depot

import (
	"errors"
	"testing"
)

func names(cs []Component) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}
	return out
}

func equalNames(t *testing.T, label string, got []Component, want ...Component) {
	t.Helper()
	g, w := names(got), names(want)
	if len(g) != len(w) {
		t.Errorf("%s = %v, want %v", label, g, w)
		return
	}
	for i := range g {
		if g[i] != w[i] {
			t.Errorf("%s = %v, want %v", label, g, w)
			return
		}
	}
}

func TestClauseContributions(t *testing.T) {
	pos, rot := positionComp, quaternionComp

	tests := []struct {
		name    string
		clause  *Archetype
		iterate []Component
		include []Component
		exclude []Component
		consume []Component
		produce []Component
	}{
		{"iterate", Iterate(pos, rot), []Component{pos, rot}, []Component{pos, rot}, nil, nil, nil},
		{"require", Require(pos), nil, []Component{pos}, nil, nil, nil},
		{"exclude", Exclude(pos), nil, nil, []Component{pos}, nil, nil},
		{"consume", Consume(pos), nil, []Component{pos}, nil, []Component{pos}, nil},
		{"produce", Produce(pos), nil, nil, []Component{pos}, nil, []Component{pos}},
		{"calculate", Calculate(pos), []Component{pos}, nil, []Component{pos}, nil, []Component{pos}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equalNames(t, "Iterates", tt.clause.Iterates(), tt.iterate...)
			equalNames(t, "Includes", tt.clause.Includes(), tt.include...)
			equalNames(t, "Excludes", tt.clause.Excludes(), tt.exclude...)
			equalNames(t, "Consumes", tt.clause.Consumes(), tt.consume...)
			equalNames(t, "Produces", tt.clause.Produces(), tt.produce...)
		})
	}
}

func TestArchetypeComposition(t *testing.T) {
	pos, rot, a, b := positionComp, quaternionComp, flagAComp, flagBComp

	t.Run("first occurrence order, duplicates collapsed", func(t *testing.T) {
		got := Factory.NewArchetype(
			Iterate(rot, pos),
			Require(pos, a),
			Iterate(rot),
			Consume(b, a),
		)
		equalNames(t, "Iterates", got.Iterates(), rot, pos)
		equalNames(t, "Includes", got.Includes(), rot, pos, a, b)
		equalNames(t, "Consumes", got.Consumes(), b, a)
	})

	t.Run("duplicates inside one clause", func(t *testing.T) {
		equalNames(t, "Includes", Require(a, a, pos, a).Includes(), a, pos)
	})

	t.Run("With leaves the receiver untouched", func(t *testing.T) {
		base := Iterate(pos)
		composed := base.With(Exclude(a), IncludeWeak())
		if len(base.Excludes()) != 0 || base.Weak() {
			t.Error("With modified its receiver")
		}
		if !composed.Weak() {
			t.Error("IncludeWeak was lost in composition")
		}
		equalNames(t, "Excludes", composed.Excludes(), a)
	})

	t.Run("descriptors from any source compare equal", func(t *testing.T) {
		got := Factory.NewArchetype(Require(TypeOf[Position]()), Require(pos))
		if n := len(got.Includes()); n != 1 {
			t.Errorf("Includes has %d entries, want 1", n)
		}
	})
}

func TestArchetypeContradictory(t *testing.T) {
	pos, rot, a := positionComp, quaternionComp, flagAComp

	tests := []struct {
		name string
		arch *Archetype
		want bool
	}{
		{"empty", Factory.NewArchetype(), true},
		{"exclude only", Exclude(a), true},
		{"produce only", Produce(a), true},
		{"plain", Iterate(pos, rot), false},
		{"disjoint exclude", Iterate(pos).With(Exclude(a)), false},
		{"exclude required", Iterate(pos).With(Exclude(pos)), true},
		{"exclude pair both required", Iterate(pos, rot).With(Exclude(pos, rot)), true},
		{"exclude pair partly required", Iterate(pos).With(Exclude(pos, a)), false},
		{"consume and produce same tag", Consume(a).With(Produce(a)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arch.Contradictory(); got != tt.want {
				t.Errorf("Contradictory() = %v, want %v", got, tt.want)
			}
			err := tt.arch.Validate()
			var cErr ContradictoryArchetypeError
			if tt.want != errors.As(err, &cErr) {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestArchetypeString(t *testing.T) {
	a := Iterate(positionComp).With(Consume(flagAComp), IncludeWeak())
	want := "Archetype{iterate=[depot.Position] include=[depot.Position depot.FlagA] consume=[depot.FlagA] weak}"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
