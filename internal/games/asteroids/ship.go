package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Ship is the player's entity.
type Ship struct {
	Handle
	game *Game
}

// SpawnLaser fires a laser straight up from the ship's current position.
func (s Ship) SpawnLaser() (Handle, error) {
	if s.game == nil {
		return Handle{}, fmt.Errorf("spawn laser: %w", ErrNotFound)
	}
	pos, err := s.Position()
	if err != nil {
		return Handle{}, fmt.Errorf("spawn laser: %w", err)
	}
	cfg := s.game.cfg.Laser
	id := s.store.Spawn(KindLaser, pos, core.V(0, cfg.Speed), cfg.Radius)
	s.game.stats.LasersFired++
	return Handle{store: s.store, id: id}, nil
}
