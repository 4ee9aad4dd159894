// internal/interfaces/game.go
package interfaces

import (
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/snapshot"
	"go-tower-sim/pkg/gridmap"
)

// Simulation is the surface drivers and viewers use. They mutate through
// the actions between ticks and read through the queries.
type Simulation interface {
	Tick(deltaTime float64)
	Reset()

	PlaceTower(kind defs.TowerKind, x, y int) (entity.Tower, error)
	SellTower(px, py float64) int
	UpgradeTower(x, y int) error
	SelectTowerAt(x, y int) bool
	StartNextWave() error
	SetPaused(paused bool)
	SetSpeedMultiplier(k int) error
	SetTileType(x, y int, t gridmap.TileType) error

	Settings() *config.Settings
	Grid() *gridmap.Grid
	RouteErr() error
	Towers() []entity.Tower
	Enemies() []entity.Enemy
	Projectiles() []entity.Projectile
	Gold() int
	Lives() int
	Wave() int
	Phase() component.Phase
	IsGameOver() bool
	IsPaused() bool
	SpeedMultiplier() int
	CooldownRemaining() float64
	PendingSpawns() int
	Stats() app.Stats

	Snapshot() *snapshot.State
	Events() *event.Dispatcher
}

var _ Simulation = (*app.Game)(nil)
