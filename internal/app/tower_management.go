// internal/app/tower_management.go
package app

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/pkg/gridmap"
)

// PlaceTower buys a tower of kind and puts it on tile x,y.
// It returns a copy of the new tower; on failure gold and entities are
// left untouched.
func (g *Game) PlaceTower(kind defs.TowerKind, x, y int) (entity.Tower, error) {
	if g.IsGameOver() {
		return entity.Tower{}, ErrGameOver
	}
	def, ok := g.settings.Towers[kind]
	if !ok {
		return entity.Tower{}, ErrUnknownTowerKind
	}
	tile, ok := g.grid.Tile(x, y)
	if !ok {
		return entity.Tower{}, ErrNotBuildable
	}
	if tile.Occupied {
		return entity.Tower{}, ErrTileOccupied
	}
	if tile.Type != gridmap.TileBuildable {
		return entity.Tower{}, ErrNotBuildable
	}
	if g.gold < def.Cost {
		return entity.Tower{}, ErrInsufficientGold
	}

	g.gold -= def.Cost
	tower := entity.NewTower(def, x, y, g.grid.TileCenter(x, y), g.settings)
	g.world.AddTower(tower)
	g.grid.SetOccupied(x, y, true)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: towerData(tower, def.Cost)})
	return *tower, nil
}

// SellTower removes the tower under pixel px,py and returns the refund,
// 0 when there is no tower.
func (g *Game) SellTower(px, py float64) int {
	if g.IsGameOver() {
		return 0
	}
	x, y, ok := g.grid.PixelToTile(px, py)
	if !ok {
		return 0
	}
	tower := g.world.TowerAt(x, y)
	if tower == nil {
		return 0
	}

	refund := tower.RefundValue()
	g.world.RemoveTower(tower.ID)
	g.grid.SetOccupied(x, y, false)
	g.gold += refund

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: towerData(tower, refund)})
	return refund
}

// UpgradeTower raises the level of the tower on tile x,y.
func (g *Game) UpgradeTower(x, y int) error {
	tower := g.world.TowerAt(x, y)
	if tower == nil {
		return ErrNoTower
	}
	return g.upgrade(tower)
}

// UpgradeTowerByID raises the level of the tower with the given ID.
func (g *Game) UpgradeTowerByID(id entity.ID) error {
	tower := g.world.TowerByID(id)
	if tower == nil {
		return ErrNoTower
	}
	return g.upgrade(tower)
}

func (g *Game) upgrade(tower *entity.Tower) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if tower.MaxLevel() {
		return ErrMaxLevel
	}
	cost := tower.UpgradeCost()
	if g.gold < cost {
		return ErrInsufficientGold
	}
	if err := tower.Upgrade(); err != nil {
		return err
	}
	g.gold -= cost

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: towerData(tower, cost)})
	return nil
}

// SelectTowerAt marks the tower on tile x,y as selected and clears every
// other selection. It reports whether a tower was found.
func (g *Game) SelectTowerAt(x, y int) bool {
	found := false
	for _, t := range g.world.Towers {
		t.Selected = t.TileX == x && t.TileY == y
		found = found || t.Selected
	}
	return found
}

func towerData(t *entity.Tower, gold int) event.TowerData {
	return event.TowerData{
		TowerID: uint64(t.ID),
		Kind:    string(t.Kind),
		TileX:   t.TileX,
		TileY:   t.TileY,
		Level:   t.Level,
		Gold:    gold,
	}
}
