package asteroids

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestClockAdvance(t *testing.T) {
	var c Clock
	c.Advance(0.5)
	c.Advance(0.25)
	c.Advance(0)
	c.Advance(-1)

	if c.Now() != 0.75 {
		t.Errorf("Now() = %v, expected 0.75", c.Now())
	}
	if c.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", c.Ticks())
	}

	c.Reset()
	if c.Now() != 0 || c.Ticks() != 0 {
		t.Errorf("after Reset() got %v/%d, expected 0/0", c.Now(), c.Ticks())
	}
}

func TestStoreSpawnGet(t *testing.T) {
	clock := &Clock{}
	clock.Advance(2)
	s := NewStore(clock)

	id := s.Spawn(KindAsteroid, core.V(1, 2), core.V(0, -5), 1)
	e, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get(%d) error = %v", id, err)
	}
	if e.Kind != KindAsteroid || e.Pos != core.V(1, 2) || e.Vel != core.V(0, -5) || e.Radius != 1 {
		t.Errorf("Get() = %+v, fields do not match spawn", e)
	}
	if !e.Alive {
		t.Error("spawned entity should be alive")
	}
	if e.SpawnedAt != 2 {
		t.Errorf("SpawnedAt = %v, expected 2", e.SpawnedAt)
	}
}

func TestStoreRemoveIdempotent(t *testing.T) {
	s := NewStore(nil)
	a := s.Spawn(KindLaser, core.V(0, 0), core.V(0, 8), 0.5)
	b := s.Spawn(KindLaser, core.V(1, 0), core.V(0, 8), 0.5)

	s.Remove(a)
	s.Remove(a)     // already removed
	s.Remove(12345) // never existed

	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if _, err := s.Get(a); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(removed) error = %v, expected ErrNotFound", err)
	}
	if !s.Has(b) {
		t.Error("untouched entity should still be present")
	}
}

func TestStoreIDsNeverReused(t *testing.T) {
	s := NewStore(nil)
	seen := make(map[EntityID]bool)

	for range 3 {
		id := s.Spawn(KindAsteroid, core.Vec2{}, core.Vec2{}, 1)
		seen[id] = true
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, expected 0", s.Len())
	}

	for range 3 {
		id := s.Spawn(KindAsteroid, core.Vec2{}, core.Vec2{}, 1)
		if seen[id] {
			t.Errorf("id %d reused after Clear", id)
		}
		seen[id] = true
	}
}

func TestStoreAllOrderedAndRestartable(t *testing.T) {
	s := NewStore(nil)
	var want []EntityID
	for i := range 5 {
		want = append(want, s.Spawn(KindAsteroid, core.V(float64(i), 0), core.Vec2{}, 1))
	}
	s.Remove(want[2])
	want = slices.Delete(want, 2, 3)

	seq := s.All()
	collect := func() []EntityID {
		var ids []EntityID
		for e := range seq {
			ids = append(ids, e.ID)
		}
		return ids
	}

	first := collect()
	second := collect()
	if !slices.Equal(first, want) {
		t.Errorf("All() = %v, expected %v", first, want)
	}
	if !slices.Equal(first, second) {
		t.Errorf("All() not restartable: %v then %v", first, second)
	}

	// Early exit
	n := 0
	for range s.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("early break yielded %d entities, expected 1", n)
	}
}

func TestStoreOfKindAndCount(t *testing.T) {
	s := NewStore(nil)
	s.Spawn(KindShip, core.Vec2{}, core.Vec2{}, 1)
	s.Spawn(KindLaser, core.Vec2{}, core.Vec2{}, 1)
	s.Spawn(KindAsteroid, core.Vec2{}, core.Vec2{}, 1)
	s.Spawn(KindAsteroid, core.Vec2{}, core.Vec2{}, 1)

	if got := s.Count(KindAsteroid); got != 2 {
		t.Errorf("Count(asteroid) = %d, expected 2", got)
	}
	for e := range s.OfKind(KindLaser) {
		if e.Kind != KindLaser {
			t.Errorf("OfKind(laser) yielded %v", e.Kind)
		}
	}
}

func TestStoreSettersNotFound(t *testing.T) {
	s := NewStore(nil)
	if err := s.SetPosition(99, core.Vec2{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetPosition() error = %v, expected ErrNotFound", err)
	}
	if err := s.SetVelocity(99, core.Vec2{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetVelocity() error = %v, expected ErrNotFound", err)
	}
}

func TestStoreIntegrate(t *testing.T) {
	s := NewStore(nil)
	id := s.Spawn(KindAsteroid, core.V(1, 1), core.V(2, -4), 1)
	s.integrate(0.5)

	e, _ := s.Get(id)
	if e.Pos != core.V(2, -1) {
		t.Errorf("after integrate(0.5) Pos = %v, expected (2, -1)", e.Pos)
	}
}

func TestHandleZeroValue(t *testing.T) {
	var h Handle
	if h.IsAlive() {
		t.Error("zero Handle should not be alive")
	}
	if _, err := h.Position(); !errors.Is(err, ErrNotFound) {
		t.Errorf("zero Handle Position() error = %v, expected ErrNotFound", err)
	}
	if err := h.SetVelocity(core.V(1, 1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("zero Handle SetVelocity() error = %v, expected ErrNotFound", err)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindShip, "ship"},
		{KindLaser, "laser"},
		{KindAsteroid, "asteroid"},
		{Kind(0), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}
