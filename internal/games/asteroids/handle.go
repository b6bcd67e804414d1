package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Handle refers to an entity by id. It stays valid after the entity is
// removed; its accessors then return ErrNotFound and IsAlive reports false.
// The zero Handle is never alive.
type Handle struct {
	store *Store
	id    EntityID
}

// ID returns the referenced entity id.
func (h Handle) ID() EntityID {
	return h.id
}

// Entity returns a copy of the referenced entity.
func (h Handle) Entity() (Entity, error) {
	if h.store == nil {
		return Entity{}, fmt.Errorf("entity %d: %w", h.id, ErrNotFound)
	}
	return h.store.Get(h.id)
}

// Position returns the entity's current position.
func (h Handle) Position() (core.Vec2, error) {
	e, err := h.Entity()
	return e.Pos, err
}

// Velocity returns the entity's current velocity.
func (h Handle) Velocity() (core.Vec2, error) {
	e, err := h.Entity()
	return e.Vel, err
}

// SetPosition moves the entity.
func (h Handle) SetPosition(pos core.Vec2) error {
	if h.store == nil {
		return fmt.Errorf("set position of entity %d: %w", h.id, ErrNotFound)
	}
	return h.store.SetPosition(h.id, pos)
}

// SetVelocity changes the entity's velocity.
func (h Handle) SetVelocity(vel core.Vec2) error {
	if h.store == nil {
		return fmt.Errorf("set velocity of entity %d: %w", h.id, ErrNotFound)
	}
	return h.store.SetVelocity(h.id, vel)
}

// IsAlive reports whether the entity is still in the store.
func (h Handle) IsAlive() bool {
	return h.store != nil && h.store.Has(h.id)
}
