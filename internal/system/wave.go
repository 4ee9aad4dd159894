// internal/system/wave.go
package system

import (
	"errors"
	"log"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/gridmap"
)

var ErrNoRoute = errors.New("no valid route from spawn to goal")

// spawnEpsilon absorbs rounding in the accumulated spawn timer.
const spawnEpsilon = 1e-9

// WaveSystem builds waves and releases their enemies over time.
type WaveSystem struct {
	world    *entity.World
	settings *config.Settings
	wave     *component.Wave
	logger   *log.Logger
}

func NewWaveSystem(world *entity.World, settings *config.Settings) *WaveSystem {
	return &WaveSystem{world: world, settings: settings, logger: log.Default()}
}

// SetLogger routes the system's messages to l.
func (s *WaveSystem) SetLogger(l *log.Logger) {
	s.logger = l
}

// Composition returns the goblin and knight counts of wave number.
func (s *WaveSystem) Composition(number int) (goblins, knights int) {
	total := s.settings.EnemiesPerGroup * (1 + number/3)
	goblins = total * s.settings.GoblinPercent / 100
	return goblins, total - goblins
}

// Start queues the enemies of wave number in a seeded shuffled order.
// The first enemy is released on the next Update.
func (s *WaveSystem) Start(number int, route *gridmap.Route) (*component.Wave, error) {
	if route == nil {
		return nil, ErrNoRoute
	}
	goblins, knights := s.Composition(number)
	pending := make([]defs.EnemyKind, 0, goblins+knights)
	for i := 0; i < goblins; i++ {
		pending = append(pending, defs.EnemyGoblin)
	}
	for i := 0; i < knights; i++ {
		pending = append(pending, defs.EnemyKnight)
	}
	rng := utils.NewPRNGService(s.settings.Seed + int64(number))
	rng.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })

	s.wave = &component.Wave{
		Number:        number,
		Total:         len(pending),
		Pending:       pending,
		SpawnTimer:    s.settings.SpawnInterval,
		SpawnInterval: s.settings.SpawnInterval,
	}
	s.logger.Printf("Wave %d queued: %d goblins, %d knights", number, goblins, knights)
	return s.wave, nil
}

// Update advances the spawn timer and releases every enemy that is due onto
// route. Spawning holds while route is nil.
func (s *WaveSystem) Update(deltaTime float64, route *gridmap.Route) []*entity.Enemy {
	w := s.wave
	if w == nil || w.Drained() {
		return nil
	}
	if route == nil {
		return nil
	}
	w.SpawnTimer += deltaTime

	var spawned []*entity.Enemy
	for !w.Drained() && w.SpawnTimer+spawnEpsilon >= w.SpawnInterval {
		kind := w.Pending[0]
		w.Pending = w.Pending[1:]
		w.SpawnTimer -= w.SpawnInterval

		def, ok := s.settings.Enemies[kind]
		if !ok {
			s.logger.Printf("Error: enemy definition not found for %s", kind)
			continue
		}
		e := entity.NewEnemy(def, route, s.settings.KnightRallyBoost)
		s.world.AddEnemy(e)
		spawned = append(spawned, e)
	}
	return spawned
}

// Current returns the wave in progress, nil before the first wave.
func (s *WaveSystem) Current() *component.Wave {
	return s.wave
}

// SetCurrent replaces the wave state, used when restoring a snapshot.
func (s *WaveSystem) SetCurrent(w *component.Wave) {
	s.wave = w
}

// Drained reports whether the current wave has no enemies left to release.
func (s *WaveSystem) Drained() bool {
	return s.wave == nil || s.wave.Drained()
}

// PendingSpawns is the number of queued enemies.
func (s *WaveSystem) PendingSpawns() int {
	if s.wave == nil {
		return 0
	}
	return len(s.wave.Pending)
}
