// internal/entity/targeting.go
package entity

import "go-tower-sim/pkg/utils"

// SelectTarget picks the live enemy within rng of pos that is furthest along
// its route. Ties go to the enemy seen first.
func SelectTarget(pos utils.Vec2, rng float64, enemies []*Enemy) *Enemy {
	var best *Enemy
	for _, e := range enemies {
		if !e.Targetable() {
			continue
		}
		if utils.Dist(pos, e.Pos) > rng {
			continue
		}
		if best == nil || e.Progress > best.Progress {
			best = e
		}
	}
	return best
}
