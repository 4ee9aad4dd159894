// internal/app/queries.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/pkg/gridmap"
)

// Grid returns a copy of the current map.
func (g *Game) Grid() *gridmap.Grid { return g.grid.Clone() }

// Route returns the current route; nil when the map has none.
func (g *Game) Route() *gridmap.Route { return g.grid.Route() }

// RouteErr explains a missing route.
func (g *Game) RouteErr() error { return g.grid.RouteErr() }

func (g *Game) Settings() *config.Settings { return g.settings }

// Towers returns copies of the placed towers.
func (g *Game) Towers() []entity.Tower {
	out := make([]entity.Tower, len(g.world.Towers))
	for i, t := range g.world.Towers {
		out[i] = *t
	}
	return out
}

// Enemies returns copies of the enemies on the field.
func (g *Game) Enemies() []entity.Enemy {
	out := make([]entity.Enemy, len(g.world.Enemies))
	for i, e := range g.world.Enemies {
		out[i] = *e
	}
	return out
}

// Projectiles returns copies of the projectiles in flight.
func (g *Game) Projectiles() []entity.Projectile {
	out := make([]entity.Projectile, len(g.world.Projectiles))
	for i, p := range g.world.Projectiles {
		out[i] = *p
	}
	return out
}

func (g *Game) Gold() int              { return g.gold }
func (g *Game) Lives() int             { return g.lives }
func (g *Game) Wave() int              { return g.wave }
func (g *Game) Phase() component.Phase { return g.StateSystem.Current() }
func (g *Game) IsGameOver() bool       { return g.StateSystem.Current() == component.PhaseGameOver }
func (g *Game) IsPaused() bool         { return g.paused }
func (g *Game) SpeedMultiplier() int   { return g.speedMultiplier }
func (g *Game) Clock() float64         { return g.clock }
func (g *Game) Stats() Stats           { return g.stats }

// CooldownRemaining is the time left before the next wave auto-starts.
func (g *Game) CooldownRemaining() float64 { return g.StateSystem.CooldownRemaining() }

// PendingSpawns is the number of enemies still queued in the current wave.
func (g *Game) PendingSpawns() int { return g.WaveSystem.PendingSpawns() }
