// internal/defs/damage.go
package defs

import "math"

// damageModifiers is the damage-type effectiveness table.
// Explosive stays neutral against every enemy kind.
var damageModifiers = map[DamageType]map[EnemyKind]float64{
	DamageArrow:     {EnemyGoblin: 1.5, EnemyKnight: 0.6},
	DamageMagic:     {EnemyGoblin: 0.75, EnemyKnight: 1.5},
	DamageExplosive: {EnemyGoblin: 1.0, EnemyKnight: 1.0},
}

// DamageModifier returns the multiplier of dt against target; unknown pairs are neutral.
func DamageModifier(dt DamageType, target EnemyKind) float64 {
	if m, ok := damageModifiers[dt][target]; ok {
		return m
	}
	return 1.0
}

// ResolveDamage converts a base damage into the health loss of target.
func ResolveDamage(dt DamageType, base int, target EnemyKind) int {
	if base <= 0 {
		return 0
	}
	// epsilon keeps products like 10*0.6 from flooring to 5
	return int(math.Floor(float64(base)*DamageModifier(dt, target) + 1e-9))
}
