// internal/entity/world.go
package entity

// ID identifies a tower, enemy or projectile within one World.
type ID uint64

// World holds every live entity in insertion order. Slices rather than maps
// keep iteration (and therefore targeting ties) deterministic.
type World struct {
	NextID      ID
	Towers      []*Tower
	Enemies     []*Enemy
	Projectiles []*Projectile
}

func NewWorld() *World {
	return &World{NextID: 1}
}

// NewEntity reserves the next ID.
func (w *World) NewEntity() ID {
	id := w.NextID
	w.NextID++
	return id
}

// AddTower registers t, assigning an ID when it has none.
func (w *World) AddTower(t *Tower) {
	if t.ID == 0 {
		t.ID = w.NewEntity()
	}
	w.Towers = append(w.Towers, t)
}

// TowerAt returns the tower standing on tile x,y.
func (w *World) TowerAt(x, y int) *Tower {
	for _, t := range w.Towers {
		if t.TileX == x && t.TileY == y {
			return t
		}
	}
	return nil
}

func (w *World) TowerByID(id ID) *Tower {
	for _, t := range w.Towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RemoveTower deletes the tower with the given ID and returns it.
func (w *World) RemoveTower(id ID) *Tower {
	for i, t := range w.Towers {
		if t.ID == id {
			w.Towers = append(w.Towers[:i], w.Towers[i+1:]...)
			return t
		}
	}
	return nil
}

// AddEnemy registers e, assigning an ID when it has none.
func (w *World) AddEnemy(e *Enemy) {
	if e.ID == 0 {
		e.ID = w.NewEntity()
	}
	w.Enemies = append(w.Enemies, e)
}

func (w *World) EnemyByID(id ID) *Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// RemoveEnemies drops every enemy for which remove returns true, preserving
// the order of the rest. Removed enemies are flagged so projectiles still
// aiming at them give up.
func (w *World) RemoveEnemies(remove func(*Enemy) bool) {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if remove(e) {
			e.Removed = true
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
}

// AddProjectile registers p, assigning an ID when it has none.
func (w *World) AddProjectile(p *Projectile) {
	if p.ID == 0 {
		p.ID = w.NewEntity()
	}
	w.Projectiles = append(w.Projectiles, p)
}

// PruneProjectiles drops inactive projectiles.
func (w *World) PruneProjectiles() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = kept
}

// Clear removes every entity. IDs keep counting.
func (w *World) Clear() {
	for _, e := range w.Enemies {
		e.Removed = true
	}
	w.Towers = nil
	w.Enemies = nil
	w.Projectiles = nil
}
