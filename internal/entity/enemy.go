// internal/entity/enemy.go
package entity

import (
	"math"

	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/gridmap"
	"go-tower-sim/pkg/utils"
)

// Enemy walks a route from spawn to goal.
type Enemy struct {
	ID        ID
	Kind      defs.EnemyKind
	Health    int
	MaxHealth int
	Speed     float64
	Reward    int
	Progress  float64 // 0 at spawn, 1 at goal
	Pos       utils.Vec2
	Route     *gridmap.Route

	RallyBoost   float64 // knights only; speed multiplier next to a faster ally
	CurrentSpeed float64 // effective speed of the last update
	Removed      bool
	Def          defs.EnemyDefinition
}

// NewEnemy creates an enemy at the start of route.
func NewEnemy(def defs.EnemyDefinition, route *gridmap.Route, rallyBoost float64) *Enemy {
	e := &Enemy{
		Kind:         def.ID,
		Health:       def.Health,
		MaxHealth:    def.Health,
		Speed:        def.Speed,
		Reward:       def.Reward,
		Route:        route,
		CurrentSpeed: def.Speed,
		Def:          def,
	}
	if def.ID == defs.EnemyKnight {
		e.RallyBoost = rallyBoost
	}
	if route != nil {
		e.Pos = route.Start()
	}
	return e
}

func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Targetable is true for enemies still on the field and alive.
func (e *Enemy) Targetable() bool {
	return !e.Removed && e.Health > 0
}

// AtGoal reports whether the enemy reached the end of its route.
func (e *Enemy) AtGoal() bool {
	return e.Progress >= 1
}

// ApplyDamage lowers health, never below zero, and returns the amount applied.
func (e *Enemy) ApplyDamage(amount int) int {
	if amount <= 0 || e.Health <= 0 {
		return 0
	}
	if amount > e.Health {
		amount = e.Health
	}
	e.Health -= amount
	return amount
}

// Update advances the enemy along its route. Dead enemies and enemies
// without a route stay put. others is only read.
func (e *Enemy) Update(dt float64, others []*Enemy, tileSize float64) {
	if !e.Alive() || e.Route == nil || e.AtGoal() {
		return
	}
	e.CurrentSpeed = e.effectiveSpeed(others, tileSize)

	length := e.Route.Length()
	if length <= 0 {
		e.Progress = 1
	} else {
		e.Progress = math.Min(1, e.Progress+e.CurrentSpeed*dt/length)
	}
	e.Pos = e.Route.PositionAt(e.Progress)
}

// effectiveSpeed applies the rally boost: a knight next to a faster live ally
// speeds up, but never past that ally.
func (e *Enemy) effectiveSpeed(others []*Enemy, tileSize float64) float64 {
	if e.RallyBoost <= 1 {
		return e.Speed
	}
	fastest := 0.0
	for _, o := range others {
		if o == e || !o.Targetable() || o.Speed <= e.Speed {
			continue
		}
		if utils.Dist(e.Pos, o.Pos) > tileSize {
			continue
		}
		fastest = math.Max(fastest, o.Speed)
	}
	if fastest == 0 {
		return e.Speed
	}
	return math.Min(e.Speed*e.RallyBoost, fastest)
}
