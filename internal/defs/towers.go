// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           TowerKind  `json:"id"`
	Name         string     `json:"name"`
	Damage       int        `json:"damage"`
	Range        float64    `json:"range"`         // pixels
	FireInterval float64    `json:"fire_interval"` // seconds between shots
	Cost         int        `json:"cost"`
	DamageType   DamageType `json:"damage_type"`
	SplashRadius float64    `json:"splash_radius,omitempty"` // 0 = single target
	Visuals      Visuals    `json:"visuals"`
}

// Visuals contains parameters for rendering a tower or an enemy.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// Validate checks that the definition can be used by the simulation.
func (d TowerDefinition) Validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("tower definition without id")
	case d.Damage <= 0:
		return fmt.Errorf("tower %s: damage must be positive", d.ID)
	case d.Range <= 0:
		return fmt.Errorf("tower %s: range must be positive", d.ID)
	case d.FireInterval <= 0:
		return fmt.Errorf("tower %s: fire interval must be positive", d.ID)
	case d.Cost < 0:
		return fmt.Errorf("tower %s: negative cost", d.ID)
	case d.SplashRadius < 0:
		return fmt.Errorf("tower %s: negative splash radius", d.ID)
	}
	if _, ok := damageModifiers[d.DamageType]; !ok {
		return fmt.Errorf("tower %s: unknown damage type %q", d.ID, d.DamageType)
	}
	return nil
}

// DefaultTowers returns the built-in tower library.
func DefaultTowers() map[TowerKind]TowerDefinition {
	return map[TowerKind]TowerDefinition{
		TowerArcher: {
			ID: TowerArcher, Name: "Archer Tower",
			Damage: 10, Range: 120, FireInterval: 0.8, Cost: 50,
			DamageType: DamageArrow,
			Visuals:    Visuals{Color: color.RGBA{50, 205, 50, 255}, RadiusFactor: 0.35},
		},
		TowerArtillery: {
			ID: TowerArtillery, Name: "Artillery Tower",
			Damage: 25, Range: 100, FireInterval: 2.0, Cost: 100,
			DamageType: DamageExplosive, SplashRadius: 60,
			Visuals: Visuals{Color: color.RGBA{255, 140, 0, 255}, RadiusFactor: 0.42},
		},
		TowerMage: {
			ID: TowerMage, Name: "Mage Tower",
			Damage: 18, Range: 110, FireInterval: 1.2, Cost: 80,
			DamageType: DamageMagic,
			Visuals:    Visuals{Color: color.RGBA{180, 50, 230, 255}, RadiusFactor: 0.38},
		},
	}
}
