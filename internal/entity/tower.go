// internal/entity/tower.go
package entity

import (
	"errors"
	"math"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/utils"
)

var ErrMaxLevel = errors.New("tower is already at max level")

// fireEpsilon absorbs rounding in the accumulated clock.
const fireEpsilon = 1e-9

// Tower is a placed tower. Stats come from its definition scaled by level.
type Tower struct {
	ID           ID
	Kind         defs.TowerKind
	TileX, TileY int
	Pos          utils.Vec2
	Level        int
	LastFired    float64
	HasFired     bool
	Selected     bool
	Def          defs.TowerDefinition
	settings     *config.Settings
}

// NewTower creates a level 1 tower on tile x,y centred at pos.
func NewTower(def defs.TowerDefinition, x, y int, pos utils.Vec2, settings *config.Settings) *Tower {
	return &Tower{
		Kind:     def.ID,
		TileX:    x,
		TileY:    y,
		Pos:      pos,
		Level:    1,
		Def:      def,
		settings: settings,
	}
}

// Damage is the base damage scaled by DamageStep per level above 1.
func (t *Tower) Damage() int {
	scale := 1 + t.settings.DamageStep*float64(t.Level-1)
	return int(math.Floor(float64(t.Def.Damage)*scale + fireEpsilon))
}

// Range grows at half the damage rate.
func (t *Tower) Range() float64 {
	return t.Def.Range * (1 + t.settings.RangeStep()*float64(t.Level-1))
}

func (t *Tower) FireInterval() float64       { return t.Def.FireInterval }
func (t *Tower) DamageType() defs.DamageType { return t.Def.DamageType }
func (t *Tower) SplashRadius() float64       { return t.Def.SplashRadius }
func (t *Tower) MaxLevel() bool              { return t.Level >= t.settings.MaxTowerLevel }

// Ready reports whether the fire interval has elapsed at time now.
func (t *Tower) Ready(now float64) bool {
	return !t.HasFired || now-t.LastFired+fireEpsilon >= t.Def.FireInterval
}

// Update fires at the best target when the tower is ready. The returned
// projectile has no ID yet; the world assigns one when it is added.
func (t *Tower) Update(now float64, enemies []*Enemy) *Projectile {
	if !t.Ready(now) {
		return nil
	}
	target := SelectTarget(t.Pos, t.Range(), enemies)
	if target == nil {
		return nil
	}
	t.LastFired = now
	t.HasFired = true
	return &Projectile{
		TowerID:      t.ID,
		Target:       target,
		Pos:          t.Pos,
		Damage:       t.Damage(),
		DamageType:   t.Def.DamageType,
		Speed:        t.settings.ProjectileSpeed,
		SplashRadius: t.Def.SplashRadius,
		Active:       true,
	}
}

func (t *Tower) Upgrade() error {
	if t.MaxLevel() {
		return ErrMaxLevel
	}
	t.Level++
	return nil
}

// UpgradeCost is the gold needed for the next level.
func (t *Tower) UpgradeCost() int {
	return int(math.Floor(t.settings.UpgradeCostFactor*float64(t.Def.Cost) + fireEpsilon))
}

// RefundValue is what selling returns: a fixed share of the base cost.
func (t *Tower) RefundValue() int {
	return int(math.Floor(t.settings.SellRefund*float64(t.Def.Cost) + fireEpsilon))
}
