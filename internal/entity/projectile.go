// internal/entity/projectile.go
package entity

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/utils"
)

// Projectile flies toward one enemy and resolves once.
type Projectile struct {
	ID           ID
	TowerID      ID
	Target       *Enemy
	Pos          utils.Vec2
	Damage       int
	DamageType   defs.DamageType
	Speed        float64
	SplashRadius float64
	Active       bool
}

// Hit is damage dealt to one enemy by a resolved projectile.
type Hit struct {
	Enemy  *Enemy
	Damage int
	Splash bool
}

// Impact describes what a projectile did this update.
type Impact struct {
	Resolved bool
	At       utils.Vec2
	Hits     []Hit
}

// Update moves the projectile and resolves it within hitRadius of its target.
// A projectile whose target is gone deactivates without effect. enemies is
// scanned for splash victims.
func (p *Projectile) Update(dt float64, enemies []*Enemy, hitRadius float64) Impact {
	if !p.Active {
		return Impact{}
	}
	if p.Target == nil || !p.Target.Targetable() {
		p.Active = false
		return Impact{}
	}

	p.Pos, _ = utils.MoveTowards(p.Pos, p.Target.Pos, p.Speed*dt)
	if utils.Dist(p.Pos, p.Target.Pos) > hitRadius {
		return Impact{}
	}
	return p.resolve(enemies)
}

func (p *Projectile) resolve(enemies []*Enemy) Impact {
	p.Active = false
	target := p.Target
	impact := Impact{Resolved: true, At: target.Pos}

	primary := defs.ResolveDamage(p.DamageType, p.Damage, target.Kind)
	impact.Hits = append(impact.Hits, Hit{Enemy: target, Damage: target.ApplyDamage(primary)})

	if p.SplashRadius > 0 {
		splash := primary / 2
		for _, e := range enemies {
			if e == target || !e.Targetable() {
				continue
			}
			if utils.Dist(impact.At, e.Pos) > p.SplashRadius {
				continue
			}
			impact.Hits = append(impact.Hits, Hit{Enemy: e, Damage: e.ApplyDamage(splash), Splash: true})
		}
	}
	return impact
}
