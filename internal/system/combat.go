// internal/system/combat.go
package system

import (
	"go-tower-sim/internal/entity"
)

// CombatSystem lets every tower pick a target and fire.
type CombatSystem struct {
	world *entity.World
}

func NewCombatSystem(world *entity.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// Update runs the towers in placement order. New projectiles are returned
// rather than added so they do not move during the tick that created them.
func (s *CombatSystem) Update(now float64) []*entity.Projectile {
	var fired []*entity.Projectile
	for _, tower := range s.world.Towers {
		if p := tower.Update(now, s.world.Enemies); p != nil {
			fired = append(fired, p)
		}
	}
	return fired
}
