package asteroids

// Snapshot is a serializable view of the whole simulation.
type Snapshot struct {
	Phase    string           `yaml:"phase"`
	Score    int              `yaml:"score"`
	Time     float64          `yaml:"time"`
	Ticks    uint64           `yaml:"ticks"`
	Entities []EntitySnapshot `yaml:"entities"`
}

// EntitySnapshot is one entity inside a Snapshot.
type EntitySnapshot struct {
	ID     EntityID `yaml:"id"`
	Kind   string   `yaml:"kind"`
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	VX     float64  `yaml:"vx"`
	VY     float64  `yaml:"vy"`
	Radius float64  `yaml:"radius"`
}

// Snapshot captures the current state, entities in ascending id order.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    g.phase.String(),
		Score:    g.score,
		Time:     g.clock.Now(),
		Ticks:    g.clock.Ticks(),
		Entities: make([]EntitySnapshot, 0, g.store.Len()),
	}
	for e := range g.store.All() {
		snap.Entities = append(snap.Entities, EntitySnapshot{
			ID:     e.ID,
			Kind:   e.Kind.String(),
			X:      e.Pos.X,
			Y:      e.Pos.Y,
			VX:     e.Vel.X,
			VY:     e.Vel.Y,
			Radius: e.Radius,
		})
	}
	return snap
}
