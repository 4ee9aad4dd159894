// internal/defs/types.go
package defs

// DamageType defines the type of damage a projectile deals.
type DamageType string

const (
	DamageArrow     DamageType = "ARROW"
	DamageMagic     DamageType = "MAGIC"
	DamageExplosive DamageType = "EXPLOSIVE"
)

// TowerKind identifies one of the fixed tower variants.
type TowerKind string

const (
	TowerArcher    TowerKind = "ARCHER"
	TowerArtillery TowerKind = "ARTILLERY"
	TowerMage      TowerKind = "MAGE"
)

// TowerKinds lists the tower variants in shop order.
var TowerKinds = []TowerKind{TowerArcher, TowerArtillery, TowerMage}

// EnemyKind identifies one of the fixed enemy variants.
type EnemyKind string

const (
	EnemyGoblin EnemyKind = "GOBLIN"
	EnemyKnight EnemyKind = "KNIGHT"
)

// EnemyKinds lists the enemy variants.
var EnemyKinds = []EnemyKind{EnemyGoblin, EnemyKnight}
