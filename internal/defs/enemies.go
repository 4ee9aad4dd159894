// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      EnemyKind `json:"id"`
	Name    string    `json:"name"`
	Health  int       `json:"health"`
	Speed   float64   `json:"speed"` // pixels per second
	Reward  int       `json:"reward"`
	Visuals Visuals   `json:"visuals"`
}

func (d EnemyDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("enemy definition without id")
	case d.Health <= 0:
		return fmt.Errorf("enemy %s: health must be positive", d.ID)
	case d.Speed < 0:
		return fmt.Errorf("enemy %s: negative speed", d.ID)
	case d.Reward < 0:
		return fmt.Errorf("enemy %s: negative reward", d.ID)
	}
	return nil
}

// DefaultEnemies returns the built-in enemy library.
func DefaultEnemies() map[EnemyKind]EnemyDefinition {
	return map[EnemyKind]EnemyDefinition{
		EnemyGoblin: {
			ID: EnemyGoblin, Name: "Goblin",
			Health: 30, Speed: 60, Reward: 5,
			Visuals: Visuals{Color: color.RGBA{120, 200, 80, 255}, RadiusFactor: 0.25},
		},
		EnemyKnight: {
			ID: EnemyKnight, Name: "Knight",
			Health: 80, Speed: 35, Reward: 12,
			Visuals: Visuals{Color: color.RGBA{170, 170, 190, 255}, RadiusFactor: 0.32},
		},
	}
}
