// internal/app/snapshot.go
package app

import (
	"fmt"

	"github.com/google/uuid"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/snapshot"
	"go-tower-sim/pkg/utils"
)

// Snapshot captures the whole simulation as plain records.
func (g *Game) Snapshot() *snapshot.State {
	s := &snapshot.State{
		Version:   snapshot.Version,
		SessionID: g.SessionID.String(),
		Layout:    g.grid.Layout(),
		Gold:      g.gold,
		Lives:     g.lives,
		Wave:      g.wave,
		Phase:     g.StateSystem.Current().String(),
		Cooldown:  g.StateSystem.CooldownRemaining(),
		Clock:     g.clock,
		Paused:    g.paused,
		Speed:     g.speedMultiplier,
		NextID:    uint64(g.world.NextID),
		Stats: snapshot.StatsRecord{
			Kills:       g.stats.Kills,
			Breaches:    g.stats.Breaches,
			ShotsFired:  g.stats.ShotsFired,
			DamageDealt: g.stats.DamageDealt,
			GoldEarned:  g.stats.GoldEarned,
		},
	}
	for _, t := range g.world.Towers {
		s.Towers = append(s.Towers, snapshot.TowerRecord{
			ID:        uint64(t.ID),
			Kind:      string(t.Kind),
			TileX:     t.TileX,
			TileY:     t.TileY,
			Level:     t.Level,
			LastFired: t.LastFired,
			HasFired:  t.HasFired,
			Selected:  t.Selected,
		})
	}
	for _, e := range g.world.Enemies {
		s.Enemies = append(s.Enemies, snapshot.EnemyRecord{
			ID:        uint64(e.ID),
			Kind:      string(e.Kind),
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Speed:     e.Speed,
			Reward:    e.Reward,
			Progress:  e.Progress,
		})
	}
	for _, p := range g.world.Projectiles {
		rec := snapshot.ProjectileRecord{
			ID:           uint64(p.ID),
			TowerID:      uint64(p.TowerID),
			X:            p.Pos.X,
			Y:            p.Pos.Y,
			Damage:       p.Damage,
			DamageType:   string(p.DamageType),
			Speed:        p.Speed,
			SplashRadius: p.SplashRadius,
		}
		if p.Target != nil {
			rec.TargetID = uint64(p.Target.ID)
		}
		s.Projectiles = append(s.Projectiles, rec)
	}
	if w := g.WaveSystem.Current(); w != nil {
		rec := &snapshot.WaveRecord{
			Number:        w.Number,
			Total:         w.Total,
			Pending:       make([]string, len(w.Pending)),
			SpawnTimer:    w.SpawnTimer,
			SpawnInterval: w.SpawnInterval,
		}
		for i, k := range w.Pending {
			rec.Pending[i] = string(k)
		}
		s.CurrentWave = rec
	}
	return s
}

// Restore rebuilds a game from a snapshot. Enemies are put back on the
// route of the restored map at their recorded progress.
func Restore(settings *config.Settings, s *snapshot.State) (*Game, error) {
	if s == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	g, err := NewGame(settings, s.Layout)
	if err != nil {
		return nil, err
	}
	if id, err := uuid.Parse(s.SessionID); err == nil {
		g.SessionID = id
	}

	phase, ok := component.ParsePhase(s.Phase)
	if !ok {
		return nil, fmt.Errorf("unknown phase %q in snapshot", s.Phase)
	}
	if s.Speed == 1 || s.Speed == 2 {
		g.speedMultiplier = s.Speed
	}
	g.gold, g.lives, g.wave = s.Gold, s.Lives, s.Wave
	g.clock, g.paused = s.Clock, s.Paused
	g.StateSystem.Restore(phase, s.Cooldown)
	g.stats = Stats{
		Kills:       s.Stats.Kills,
		Breaches:    s.Stats.Breaches,
		ShotsFired:  s.Stats.ShotsFired,
		DamageDealt: s.Stats.DamageDealt,
		GoldEarned:  s.Stats.GoldEarned,
	}

	maxID := entity.ID(0)
	track := func(id entity.ID) {
		if id > maxID {
			maxID = id
		}
	}

	for _, rec := range s.Towers {
		def, ok := settings.Towers[defs.TowerKind(rec.Kind)]
		if !ok {
			return nil, fmt.Errorf("snapshot tower %d: %w %q", rec.ID, ErrUnknownTowerKind, rec.Kind)
		}
		if !g.grid.CanPlaceTower(rec.TileX, rec.TileY) {
			return nil, fmt.Errorf("snapshot tower %d: %w at (%d,%d)", rec.ID, ErrNotBuildable, rec.TileX, rec.TileY)
		}
		t := entity.NewTower(def, rec.TileX, rec.TileY, g.grid.TileCenter(rec.TileX, rec.TileY), settings)
		t.ID = entity.ID(rec.ID)
		t.Level = max(1, min(rec.Level, settings.MaxTowerLevel))
		t.LastFired, t.HasFired, t.Selected = rec.LastFired, rec.HasFired, rec.Selected
		g.world.AddTower(t)
		g.grid.SetOccupied(rec.TileX, rec.TileY, true)
		track(t.ID)
	}

	route := g.grid.Route()
	for _, rec := range s.Enemies {
		def, ok := settings.Enemies[defs.EnemyKind(rec.Kind)]
		if !ok {
			return nil, fmt.Errorf("snapshot enemy %d: unknown kind %q", rec.ID, rec.Kind)
		}
		e := entity.NewEnemy(def, route, settings.KnightRallyBoost)
		e.ID = entity.ID(rec.ID)
		e.Health, e.MaxHealth = rec.Health, rec.MaxHealth
		e.Speed, e.CurrentSpeed, e.Reward = rec.Speed, rec.Speed, rec.Reward
		e.Progress = utils.Clamp01(rec.Progress)
		if route != nil {
			e.Pos = route.PositionAt(e.Progress)
		}
		g.world.AddEnemy(e)
		track(e.ID)
	}

	for _, rec := range s.Projectiles {
		target := g.world.EnemyByID(entity.ID(rec.TargetID))
		if target == nil {
			continue
		}
		p := &entity.Projectile{
			ID:           entity.ID(rec.ID),
			TowerID:      entity.ID(rec.TowerID),
			Target:       target,
			Pos:          utils.Vec2{X: rec.X, Y: rec.Y},
			Damage:       rec.Damage,
			DamageType:   defs.DamageType(rec.DamageType),
			Speed:        rec.Speed,
			SplashRadius: rec.SplashRadius,
			Active:       true,
		}
		g.world.AddProjectile(p)
		track(p.ID)
	}

	if rec := s.CurrentWave; rec != nil {
		w := &component.Wave{
			Number:        rec.Number,
			Total:         rec.Total,
			Pending:       make([]defs.EnemyKind, len(rec.Pending)),
			SpawnTimer:    rec.SpawnTimer,
			SpawnInterval: rec.SpawnInterval,
		}
		for i, k := range rec.Pending {
			w.Pending[i] = defs.EnemyKind(k)
		}
		g.WaveSystem.SetCurrent(w)
	}

	g.world.NextID = max(entity.ID(s.NextID), maxID+1)
	g.logger.Printf("Restored session %s at wave %d (%s)", g.SessionID, g.wave, phase)
	return g, nil
}
