// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
)

// MovementSystem walks enemies along their routes.
type MovementSystem struct {
	world    *entity.World
	settings *config.Settings
}

func NewMovementSystem(world *entity.World, settings *config.Settings) *MovementSystem {
	return &MovementSystem{world: world, settings: settings}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, e := range s.world.Enemies {
		e.Update(deltaTime, s.world.Enemies, s.settings.TileSize)
	}
}
