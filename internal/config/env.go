// internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"go-tower-sim/internal/defs"
)

// EnvPrefix is prepended to every variable Load understands.
const EnvPrefix = "TOWERSIM_"

type envVar struct {
	name  string
	apply func(s *Settings, value string) error
}

func intVar(name string, field func(*Settings) *int) envVar {
	return envVar{name, func(s *Settings, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(s) = n
		return nil
	}}
}

func floatVar(name string, field func(*Settings) *float64) envVar {
	return envVar{name, func(s *Settings, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(s) = f
		return nil
	}}
}

var envVars = []envVar{
	floatVar("TILE_SIZE", func(s *Settings) *float64 { return &s.TileSize }),
	intVar("STARTING_GOLD", func(s *Settings) *int { return &s.StartingGold }),
	intVar("STARTING_LIVES", func(s *Settings) *int { return &s.StartingLives }),
	intVar("ENEMIES_PER_GROUP", func(s *Settings) *int { return &s.EnemiesPerGroup }),
	intVar("GOBLIN_PERCENT", func(s *Settings) *int { return &s.GoblinPercent }),
	floatVar("SPAWN_INTERVAL", func(s *Settings) *float64 { return &s.SpawnInterval }),
	floatVar("WAVE_COOLDOWN", func(s *Settings) *float64 { return &s.WaveCooldown }),
	intVar("WAVE_BONUS_GOLD", func(s *Settings) *int { return &s.WaveBonusGold }),
	floatVar("SELL_REFUND", func(s *Settings) *float64 { return &s.SellRefund }),
	floatVar("UPGRADE_COST_FACTOR", func(s *Settings) *float64 { return &s.UpgradeCostFactor }),
	floatVar("DAMAGE_STEP", func(s *Settings) *float64 { return &s.DamageStep }),
	intVar("MAX_TOWER_LEVEL", func(s *Settings) *int { return &s.MaxTowerLevel }),
	floatVar("PROJECTILE_SPEED", func(s *Settings) *float64 { return &s.ProjectileSpeed }),
	floatVar("HIT_RADIUS", func(s *Settings) *float64 { return &s.HitRadius }),
	floatVar("KNIGHT_RALLY_BOOST", func(s *Settings) *float64 { return &s.KnightRallyBoost }),
	intVar("TICK_RATE", func(s *Settings) *int { return &s.TickRate }),
	{"SEED", func(s *Settings, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		s.Seed = n
		return nil
	}},
}

// Load builds Settings from the defaults, then the given .env files, then the
// process environment. Missing env files are skipped. TOWERSIM_TOWERS_FILE
// and TOWERSIM_ENEMIES_FILE point at JSON definition tables.
func Load(envFiles ...string) (*Settings, error) {
	fileVars := map[string]string{}
	for _, path := range envFiles {
		vars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		for k, v := range vars {
			fileVars[k] = v
		}
	}
	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			return v, true
		}
		v, ok := fileVars[EnvPrefix+name]
		return v, ok
	}

	s := Default()
	for _, ev := range envVars {
		v, ok := lookup(ev.name)
		if !ok || v == "" {
			continue
		}
		if err := ev.apply(s, v); err != nil {
			return nil, fmt.Errorf("failed to parse %s%s=%q: %w", EnvPrefix, ev.name, v, err)
		}
	}

	var towers map[defs.TowerKind]defs.TowerDefinition
	if path, ok := lookup("TOWERS_FILE"); ok && path != "" {
		lib, err := defs.LoadTowerDefinitions(path)
		if err != nil {
			return nil, err
		}
		towers = lib
	}
	var enemies map[defs.EnemyKind]defs.EnemyDefinition
	if path, ok := lookup("ENEMIES_FILE"); ok && path != "" {
		lib, err := defs.LoadEnemyDefinitions(path)
		if err != nil {
			return nil, err
		}
		enemies = lib
	}
	if towers != nil || enemies != nil {
		s = s.WithDefinitions(towers, enemies)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
