package defs

import "testing"

func TestResolveDamage(t *testing.T) {
	tests := []struct {
		dt     DamageType
		base   int
		target EnemyKind
		want   int
	}{
		{DamageArrow, 10, EnemyGoblin, 15},
		{DamageArrow, 10, EnemyKnight, 6},
		{DamageExplosive, 10, EnemyGoblin, 10},
		{DamageExplosive, 10, EnemyKnight, 10},
		{DamageMagic, 10, EnemyGoblin, 7},
		{DamageMagic, 10, EnemyKnight, 15},
		{DamageArrow, 7, EnemyKnight, 4},
		{DamageMagic, 18, EnemyKnight, 27},
		{DamageArrow, 0, EnemyGoblin, 0},
		{DamageArrow, -5, EnemyGoblin, 0},
	}
	for _, tc := range tests {
		if got := ResolveDamage(tc.dt, tc.base, tc.target); got != tc.want {
			t.Errorf("ResolveDamage(%s, %d, %s) = %d, want %d", tc.dt, tc.base, tc.target, got, tc.want)
		}
	}
}

func TestResolveDamageIsPure(t *testing.T) {
	first := ResolveDamage(DamageMagic, 33, EnemyKnight)
	for i := 0; i < 10; i++ {
		if got := ResolveDamage(DamageMagic, 33, EnemyKnight); got != first {
			t.Fatalf("Expected %d on every call, got %d", first, got)
		}
	}
}

func TestDamageModifierUnknown(t *testing.T) {
	if m := DamageModifier("FIRE", EnemyGoblin); m != 1.0 {
		t.Errorf("Expected neutral modifier for unknown type, got %v", m)
	}
	if m := DamageModifier(DamageArrow, "DRAGON"); m != 1.0 {
		t.Errorf("Expected neutral modifier for unknown enemy, got %v", m)
	}
}

func TestDefaultDefinitionsValid(t *testing.T) {
	towers := DefaultTowers()
	for _, kind := range TowerKinds {
		def, ok := towers[kind]
		if !ok {
			t.Fatalf("Expected default definition for %s", kind)
		}
		if err := def.Validate(); err != nil {
			t.Errorf("default tower %s invalid: %v", kind, err)
		}
	}
	if towers[TowerArcher].Cost != 50 {
		t.Errorf("Expected archer cost 50, got %d", towers[TowerArcher].Cost)
	}
	if towers[TowerArtillery].SplashRadius <= 0 {
		t.Errorf("Expected artillery to splash")
	}

	enemies := DefaultEnemies()
	for _, kind := range EnemyKinds {
		if err := enemies[kind].Validate(); err != nil {
			t.Errorf("default enemy %s invalid: %v", kind, err)
		}
	}
}
