// internal/system/projectile.go
package system

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
)

// ProjectileSystem moves projectiles and resolves their hits.
type ProjectileSystem struct {
	world    *entity.World
	settings *config.Settings
}

func NewProjectileSystem(world *entity.World, settings *config.Settings) *ProjectileSystem {
	return &ProjectileSystem{world: world, settings: settings}
}

// Update advances every projectile, then drops the inactive ones.
// Only impacts that resolved are returned.
func (s *ProjectileSystem) Update(deltaTime float64) []entity.Impact {
	var impacts []entity.Impact
	for _, p := range s.world.Projectiles {
		impact := p.Update(deltaTime, s.world.Enemies, s.settings.HitRadius)
		if impact.Resolved {
			impacts = append(impacts, impact)
		}
	}
	s.world.PruneProjectiles()
	return impacts
}
