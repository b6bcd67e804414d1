package asteroids

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Store owns every live entity.
// Entities are kept sorted by id, which is also spawn order.
// The store must not be mutated while one of its sequences is being ranged over.
type Store struct {
	clock    *Clock
	entities []Entity
	lastID   EntityID
}

// NewStore creates an empty store. The clock stamps spawn times and may be nil.
func NewStore(clock *Clock) *Store {
	return &Store{
		clock:    clock,
		entities: make([]Entity, 0, 32),
	}
}

// Spawn adds a new live entity and returns its id.
func (s *Store) Spawn(kind Kind, pos, vel core.Vec2, radius float64) EntityID {
	s.lastID++
	e := Entity{
		ID:     s.lastID,
		Kind:   kind,
		Pos:    pos,
		Vel:    vel,
		Radius: radius,
		Alive:  true,
	}
	if s.clock != nil {
		e.SpawnedAt = s.clock.Now()
	}
	s.entities = append(s.entities, e)
	return e.ID
}

func (s *Store) index(id EntityID) (int, bool) {
	return slices.BinarySearchFunc(s.entities, id, func(e Entity, id EntityID) int {
		return cmp.Compare(e.ID, id)
	})
}

// Remove deletes an entity. Removing an unknown id is a no-op.
func (s *Store) Remove(id EntityID) {
	if i, ok := s.index(id); ok {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// Get returns a copy of the entity with the given id.
func (s *Store) Get(id EntityID) (Entity, error) {
	i, ok := s.index(id)
	if !ok {
		return Entity{}, fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}
	return s.entities[i], nil
}

// Has reports whether id refers to a live entity.
func (s *Store) Has(id EntityID) bool {
	_, ok := s.index(id)
	return ok
}

// SetPosition moves an entity.
func (s *Store) SetPosition(id EntityID, pos core.Vec2) error {
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("set position of entity %d: %w", id, ErrNotFound)
	}
	s.entities[i].Pos = pos
	return nil
}

// SetVelocity changes an entity's velocity.
func (s *Store) SetVelocity(id EntityID, vel core.Vec2) error {
	i, ok := s.index(id)
	if !ok {
		return fmt.Errorf("set velocity of entity %d: %w", id, ErrNotFound)
	}
	s.entities[i].Vel = vel
	return nil
}

// All yields every live entity in ascending id order.
// Each call to the returned sequence starts over from the first entity.
func (s *Store) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range s.entities {
			if !yield(e) {
				return
			}
		}
	}
}

// OfKind yields the live entities of one kind in ascending id order.
func (s *Store) OfKind(kind Kind) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range s.entities {
			if e.Kind == kind && !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// Count returns the number of live entities of one kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Clear removes every entity. Ids keep counting from where they were.
func (s *Store) Clear() {
	clear(s.entities)
	s.entities = s.entities[:0]
}

// integrate advances every entity by vel*dt.
func (s *Store) integrate(dt float64) {
	for i := range s.entities {
		e := &s.entities[i]
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	}
}
