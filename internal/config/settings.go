// internal/config/settings.go
package config

import (
	"errors"
	"fmt"

	"go-tower-sim/internal/defs"
)

// Defaults for Settings.
const (
	DefaultTileSize          = 32.0
	DefaultStartingGold      = 100
	DefaultStartingLives     = 20
	DefaultEnemiesPerGroup   = 5
	DefaultGoblinPercent     = 70
	DefaultSpawnInterval     = 0.8 // seconds
	DefaultWaveCooldown      = 5.0 // seconds
	DefaultWaveBonusGold     = 25
	DefaultSellRefund        = 0.75
	DefaultUpgradeCostFactor = 0.6
	DefaultDamageStep        = 0.5
	DefaultMaxTowerLevel     = 2
	DefaultProjectileSpeed   = 300.0 // pixels per second
	DefaultHitRadius         = 8.0
	DefaultKnightRallyBoost  = 1.25
	DefaultSeed              = 1
	DefaultTickRate          = 60
)

// Settings is the immutable configuration of one simulation.
// Build it once, then pass the pointer around; nothing mutates it afterwards.
type Settings struct {
	TileSize float64

	StartingGold  int
	StartingLives int

	EnemiesPerGroup int
	GoblinPercent   int
	SpawnInterval   float64
	WaveCooldown    float64
	WaveBonusGold   int

	SellRefund        float64
	UpgradeCostFactor float64
	DamageStep        float64
	MaxTowerLevel     int

	ProjectileSpeed  float64
	HitRadius        float64
	KnightRallyBoost float64

	Seed     int64
	TickRate int

	Towers  map[defs.TowerKind]defs.TowerDefinition
	Enemies map[defs.EnemyKind]defs.EnemyDefinition
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		TileSize:          DefaultTileSize,
		StartingGold:      DefaultStartingGold,
		StartingLives:     DefaultStartingLives,
		EnemiesPerGroup:   DefaultEnemiesPerGroup,
		GoblinPercent:     DefaultGoblinPercent,
		SpawnInterval:     DefaultSpawnInterval,
		WaveCooldown:      DefaultWaveCooldown,
		WaveBonusGold:     DefaultWaveBonusGold,
		SellRefund:        DefaultSellRefund,
		UpgradeCostFactor: DefaultUpgradeCostFactor,
		DamageStep:        DefaultDamageStep,
		MaxTowerLevel:     DefaultMaxTowerLevel,
		ProjectileSpeed:   DefaultProjectileSpeed,
		HitRadius:         DefaultHitRadius,
		KnightRallyBoost:  DefaultKnightRallyBoost,
		Seed:              DefaultSeed,
		TickRate:          DefaultTickRate,
		Towers:            defs.DefaultTowers(),
		Enemies:           defs.DefaultEnemies(),
	}
}

// TickDelta is the fixed step length for drivers.
func (s *Settings) TickDelta() float64 {
	return 1.0 / float64(s.TickRate)
}

// RangeStep is the per-level range growth, half of the damage growth.
func (s *Settings) RangeStep() float64 {
	return s.DamageStep / 2
}

// Validate reports every inconsistent value, joined.
func (s *Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(s.TileSize > 0, "tile size must be positive, got %v", s.TileSize)
	check(s.StartingGold >= 0, "starting gold must not be negative, got %d", s.StartingGold)
	check(s.StartingLives > 0, "starting lives must be positive, got %d", s.StartingLives)
	check(s.EnemiesPerGroup > 0, "enemies per group must be positive, got %d", s.EnemiesPerGroup)
	check(s.GoblinPercent >= 0 && s.GoblinPercent <= 100, "goblin percent must be in [0,100], got %d", s.GoblinPercent)
	check(s.SpawnInterval > 0, "spawn interval must be positive, got %v", s.SpawnInterval)
	check(s.WaveCooldown >= 0, "wave cooldown must not be negative, got %v", s.WaveCooldown)
	check(s.SellRefund >= 0 && s.SellRefund <= 1, "sell refund must be in [0,1], got %v", s.SellRefund)
	check(s.UpgradeCostFactor >= 0, "upgrade cost factor must not be negative, got %v", s.UpgradeCostFactor)
	check(s.DamageStep >= 0, "damage step must not be negative, got %v", s.DamageStep)
	check(s.MaxTowerLevel >= 1, "max tower level must be at least 1, got %d", s.MaxTowerLevel)
	check(s.ProjectileSpeed > 0, "projectile speed must be positive, got %v", s.ProjectileSpeed)
	check(s.HitRadius > 0, "hit radius must be positive, got %v", s.HitRadius)
	check(s.KnightRallyBoost >= 1, "knight rally boost must be at least 1, got %v", s.KnightRallyBoost)
	check(s.TickRate > 0, "tick rate must be positive, got %d", s.TickRate)

	for _, kind := range defs.TowerKinds {
		def, ok := s.Towers[kind]
		if !ok {
			errs = append(errs, fmt.Errorf("missing tower definition %s", kind))
			continue
		}
		if err := def.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, kind := range defs.EnemyKinds {
		def, ok := s.Enemies[kind]
		if !ok {
			errs = append(errs, fmt.Errorf("missing enemy definition %s", kind))
			continue
		}
		if err := def.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithDefinitions returns a copy of s whose tower and enemy tables are
// overridden by the given entries. Kinds not present keep their current values.
func (s *Settings) WithDefinitions(towers map[defs.TowerKind]defs.TowerDefinition, enemies map[defs.EnemyKind]defs.EnemyDefinition) *Settings {
	c := *s
	c.Towers = make(map[defs.TowerKind]defs.TowerDefinition, len(s.Towers))
	for k, v := range s.Towers {
		c.Towers[k] = v
	}
	for k, v := range towers {
		c.Towers[k] = v
	}
	c.Enemies = make(map[defs.EnemyKind]defs.EnemyDefinition, len(s.Enemies))
	for k, v := range s.Enemies {
		c.Enemies[k] = v
	}
	for k, v := range enemies {
		c.Enemies[k] = v
	}
	return &c
}
