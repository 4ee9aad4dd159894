// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/system"
	"go-tower-sim/pkg/gridmap"
)

var (
	ErrGameOver         = errors.New("game is over")
	ErrNoRoute          = system.ErrNoRoute
	ErrWaveInProgress   = errors.New("a wave is already in progress")
	ErrUnknownTowerKind = errors.New("unknown tower kind")
	ErrInsufficientGold = errors.New("not enough gold")
	ErrTileOccupied     = errors.New("tile already has a tower")
	ErrNotBuildable     = errors.New("tile is not buildable")
	ErrNoTower          = errors.New("no tower there")
	ErrMaxLevel         = entity.ErrMaxLevel
	ErrInvalidSpeed     = errors.New("speed multiplier must be 1 or 2")
)

// Stats are running totals for overlays.
type Stats struct {
	Kills       int
	Breaches    int
	ShotsFired  int
	DamageDealt int
	GoldEarned  int
}

// Game is the simulation controller. It owns all mutable state; drivers call
// Tick at a fixed rate and use the entry points below between ticks.
type Game struct {
	SessionID uuid.UUID

	settings *config.Settings
	initial  *gridmap.Grid // map as loaded, for Reset
	grid     *gridmap.Grid
	world    *entity.World

	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher

	logger *log.Logger

	gold  int
	lives int
	wave  int
	clock float64

	paused          bool
	speedMultiplier int
	stats           Stats
}

// NewGame builds a game on the given map layout. A layout without a usable
// route is accepted; waves are refused until the map is fixed.
func NewGame(settings *config.Settings, layout []string) (*Game, error) {
	if settings == nil {
		return nil, errors.New("settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	grid, err := gridmap.Parse(layout, settings.TileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map layout: %w", err)
	}

	g := &Game{
		settings:        settings,
		initial:         grid.Clone(),
		EventDispatcher: event.NewDispatcher(),
	}
	g.init(grid, uuid.New())
	if err := grid.RouteErr(); err != nil {
		g.logger.Printf("Map has no route: %v", err)
	}
	return g, nil
}

func (g *Game) init(grid *gridmap.Grid, session uuid.UUID) {
	g.SessionID = session
	g.grid = grid
	g.world = entity.NewWorld()
	g.CombatSystem = system.NewCombatSystem(g.world)
	g.ProjectileSystem = system.NewProjectileSystem(g.world, g.settings)
	g.MovementSystem = system.NewMovementSystem(g.world, g.settings)
	g.WaveSystem = system.NewWaveSystem(g.world, g.settings)
	g.StateSystem = system.NewStateSystem()
	g.SetLogger(log.New(os.Stderr, fmt.Sprintf("[towersim %s] ", session.String()[:8]), log.LstdFlags))

	g.gold = g.settings.StartingGold
	g.lives = g.settings.StartingLives
	g.wave = 0
	g.clock = 0
	g.paused = false
	g.speedMultiplier = 1
	g.stats = Stats{}
}

// SetLogger replaces the game's logger.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
	g.WaveSystem.SetLogger(l)
}

// Events returns the dispatcher listeners subscribe to.
func (g *Game) Events() *event.Dispatcher {
	return g.EventDispatcher
}

// Reset starts over on the original map with the same settings. Listeners
// stay subscribed.
func (g *Game) Reset() {
	g.world.Clear()
	logger := g.logger
	g.init(g.initial.Clone(), uuid.New())
	g.SetLogger(logger)
	g.logger.Printf("Game reset, session %s", g.SessionID)
}

// Tick advances the simulation by deltaTime, repeated once per speed step.
// Paused and finished games ignore it.
func (g *Game) Tick(deltaTime float64) {
	if g.paused || g.IsGameOver() || deltaTime <= 0 {
		return
	}
	for i := 0; i < g.speedMultiplier; i++ {
		g.step(deltaTime)
		if g.IsGameOver() {
			return
		}
	}
}

// step is one fixed update: towers, projectiles, enemies, cleanup, waves.
func (g *Game) step(dt float64) {
	g.clock += dt

	fired := g.CombatSystem.Update(g.clock)
	g.stats.ShotsFired += len(fired)

	for _, impact := range g.ProjectileSystem.Update(dt) {
		for _, hit := range impact.Hits {
			g.stats.DamageDealt += hit.Damage
		}
	}
	for _, p := range fired {
		g.world.AddProjectile(p)
	}

	g.MovementSystem.Update(dt)

	g.cleanupEnemies()
	if g.IsGameOver() {
		return
	}
	g.updateWave(dt)
}

// cleanupEnemies removes dead and breached enemies. Health is checked first,
// so an enemy killed on the same tick it reaches the goal counts as a kill.
func (g *Game) cleanupEnemies() {
	var events []event.Event
	g.world.RemoveEnemies(func(e *entity.Enemy) bool {
		switch {
		case !e.Alive():
			g.gold += e.Reward
			g.stats.Kills++
			g.stats.GoldEarned += e.Reward
			events = append(events, event.Event{Type: event.EnemyKilled, Data: event.EnemyData{
				EnemyID: uint64(e.ID), Kind: string(e.Kind), Gold: e.Reward, Lives: g.lives,
			}})
			return true
		case e.AtGoal():
			if g.lives > 0 {
				g.lives--
			}
			g.stats.Breaches++
			events = append(events, event.Event{Type: event.EnemyBreached, Data: event.EnemyData{
				EnemyID: uint64(e.ID), Kind: string(e.Kind), Lives: g.lives,
			}})
			return true
		}
		return false
	})
	for _, ev := range events {
		g.EventDispatcher.Dispatch(ev)
	}
	if g.lives <= 0 && !g.IsGameOver() {
		g.endGame()
	}
}

func (g *Game) endGame() {
	if err := g.StateSystem.Transition(component.PhaseGameOver); err != nil {
		g.logger.Printf("Error: %v", err)
		return
	}
	g.logger.Printf("Game over on wave %d (%d kills)", g.wave, g.stats.Kills)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{Wave: g.wave}})
}

// updateWave runs the spawn queue and the wave lifecycle.
func (g *Game) updateWave(dt float64) {
	switch g.StateSystem.Current() {
	case component.PhaseSpawning, component.PhaseDraining:
		if g.StateSystem.Current() == component.PhaseSpawning {
			for _, e := range g.WaveSystem.Update(dt, g.grid.Route()) {
				g.EventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
					EnemyID: uint64(e.ID), Kind: string(e.Kind),
				}})
			}
			if g.WaveSystem.Drained() {
				g.transition(component.PhaseDraining)
			}
		}
		if g.StateSystem.Current() == component.PhaseDraining && len(g.world.Enemies) == 0 {
			g.completeWave()
		}
	case component.PhaseBetweenWaves:
		if !g.StateSystem.Update(dt) {
			return
		}
		if err := g.beginWave(); err != nil {
			g.logger.Printf("Cannot start wave %d: %v", g.wave+1, err)
			g.transition(component.PhaseIdle)
			g.dispatchRouteInvalid()
		}
	}
}

func (g *Game) completeWave() {
	if err := g.StateSystem.SwitchToBetweenWaves(g.settings.WaveCooldown); err != nil {
		g.logger.Printf("Error: %v", err)
		return
	}
	g.gold += g.settings.WaveBonusGold
	g.stats.GoldEarned += g.settings.WaveBonusGold
	g.logger.Printf("Wave %d completed, +%d gold", g.wave, g.settings.WaveBonusGold)

	total := 0
	if w := g.WaveSystem.Current(); w != nil {
		total = w.Total
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveData{
		Wave: g.wave, Enemies: total, Bonus: g.settings.WaveBonusGold,
	}})
}

// beginWave queues the next wave. The wave counter only moves on success.
func (g *Game) beginWave() error {
	if !g.grid.HasRoute() {
		return fmt.Errorf("%w: %w", ErrNoRoute, g.grid.RouteErr())
	}
	route := g.grid.Route()
	next := g.wave + 1
	w, err := g.WaveSystem.Start(next, route)
	if err != nil {
		return err
	}
	if err := g.StateSystem.Transition(component.PhaseSpawning); err != nil {
		return err
	}
	g.wave = next
	g.logger.Printf("Wave %d started with %d enemies", next, w.Total)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: next, Enemies: w.Total}})
	return nil
}

// StartNextWave begins the next wave now. From the inter-wave cooldown it
// skips the rest of the cooldown.
func (g *Game) StartNextWave() error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if g.StateSystem.Current().WaveActive() {
		return ErrWaveInProgress
	}
	if err := g.beginWave(); err != nil {
		g.logger.Printf("Cannot start wave %d: %v", g.wave+1, err)
		if errors.Is(err, ErrNoRoute) {
			g.dispatchRouteInvalid()
		}
		return err
	}
	return nil
}

func (g *Game) transition(to component.Phase) {
	if err := g.StateSystem.Transition(to); err != nil {
		g.logger.Printf("Error: %v", err)
	}
}

func (g *Game) dispatchRouteInvalid() {
	g.EventDispatcher.Dispatch(event.Event{Type: event.RouteInvalid, Data: event.RouteData{Err: g.grid.RouteErr()}})
}

// SetPaused freezes or resumes the simulation. Queries keep working.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// SetSpeedMultiplier selects 1x or 2x simulation speed.
func (g *Game) SetSpeedMultiplier(k int) error {
	if k != 1 && k != 2 {
		return ErrInvalidSpeed
	}
	g.speedMultiplier = k
	return nil
}

// SetTileType edits the map and recomputes the route when needed. Enemies
// already walking keep the route they spawned on.
func (g *Game) SetTileType(x, y int, t gridmap.TileType) error {
	changed, err := g.grid.SetTile(x, y, t)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if route := g.grid.Route(); route != nil {
		g.EventDispatcher.Dispatch(event.Event{Type: event.RouteChanged, Data: event.RouteData{
			Waypoints: route.Len(), Length: route.Length(),
		}})
		return nil
	}
	g.logger.Printf("Route invalid after editing (%d,%d): %v", x, y, g.grid.RouteErr())
	g.dispatchRouteInvalid()
	return nil
}
