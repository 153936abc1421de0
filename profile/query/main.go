// Profiling:
// go build ./profile/query
// ./query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.pprof

package main

import (
	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type moved struct{}

func main() {
	rounds := 20
	iters := 200
	entities := 1000
	bark.Wake(bark.Config{Environment: "production", Level: bark.LevelInfo})
	log := bark.For("profile")
	log.Info("profiling query passes", "rounds", rounds, "iters", iters, "entities", entities)
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	pos := depot.FactoryNewComponent[position]()
	vel := depot.FactoryNewComponent[velocity]()
	tag := depot.FactoryNewComponent[moved]()

	for range rounds {
		w := depot.Factory.NewWorld()
		movers := depot.Factory.NewArchetype(
			depot.Iterate(pos, vel),
			depot.Produce(tag),
		)
		cursor := depot.Factory.NewCursor(movers, w)

		for range iters {
			created := make([]depot.Entity, 0, numEntities)
			for range numEntities {
				e := w.Create()
				depot.Update(w, e, position{})
				depot.Update(w, e, velocity{X: 1, Y: 1})
				created = append(created, e)
			}
			for cursor.Next() {
				p := pos.GetFromCursor(cursor)
				v := vel.GetFromCursor(cursor)
				p.X += v.X
				p.Y += v.Y
			}
			for _, e := range created {
				w.Destroy(e)
			}
		}
	}
}
