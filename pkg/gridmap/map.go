// pkg/gridmap/map.go
package gridmap

import (
	"errors"
	"fmt"
	"strings"

	"go-tower-sim/pkg/utils"
)

var (
	ErrOutOfBounds  = errors.New("tile out of bounds")
	ErrTileOccupied = errors.New("tile is occupied by a tower")
	ErrInvalidTile  = errors.New("invalid tile type")
)

// Grid owns the tile layout and the enemy route derived from it.
type Grid struct {
	Width    int
	Height   int
	TileSize float64

	tiles    []Tile
	spawn    *[2]int
	goal     *[2]int
	route    *Route
	routeErr error
}

// New creates a width×height grid of buildable tiles. There is no spawn or
// goal yet, so the route starts out as "none".
func New(width, height int, tileSize float64) *Grid {
	g := &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		tiles:    make([]Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[y*width+x] = Tile{X: x, Y: y, Type: TileBuildable}
		}
	}
	g.routeErr = ErrNoSpawn
	return g
}

// Parse builds a grid from rows of layout characters (see tileRunes) and
// computes the initial route. A missing route is not a parse error; it is
// reported through RouteErr.
func Parse(layout []string, tileSize float64) (*Grid, error) {
	if len(layout) == 0 {
		return nil, errors.New("empty layout")
	}
	width := len([]rune(layout[0]))
	if width == 0 {
		return nil, errors.New("empty layout row")
	}
	g := New(width, len(layout), tileSize)
	for y, row := range layout {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d: width %d, expected %d", y, len(runes), width)
		}
		for x, r := range runes {
			t, ok := tileRunes[r]
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown tile %q", y, x, r)
			}
			switch t {
			case TileSpawn:
				if g.spawn != nil {
					return nil, fmt.Errorf("row %d col %d: second spawn tile", y, x)
				}
				g.spawn = &[2]int{x, y}
			case TileGoal:
				if g.goal != nil {
					return nil, fmt.Errorf("row %d col %d: second goal tile", y, x)
				}
				g.goal = &[2]int{x, y}
			}
			g.tiles[y*width+x].Type = t
		}
	}
	g.ComputeRoute()
	return g, nil
}

// Layout renders the grid back into layout rows.
func (g *Grid) Layout() []string {
	rows := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		var b strings.Builder
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.tiles[y*g.Width+x].Type.Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

// Clone returns a deep copy of the grid; the route is shared since it is immutable.
func (g *Grid) Clone() *Grid {
	c := *g
	c.tiles = append([]Tile(nil), g.tiles...)
	if g.spawn != nil {
		s := *g.spawn
		c.spawn = &s
	}
	if g.goal != nil {
		gl := *g.goal
		c.goal = &gl
	}
	return &c
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Tile returns the tile at x,y.
func (g *Grid) Tile(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.tiles[y*g.Width+x], true
}

// Tiles returns a row-major copy of all tiles for renderers.
func (g *Grid) Tiles() []Tile {
	return append([]Tile(nil), g.tiles...)
}

// Spawn returns the spawn tile coordinates.
func (g *Grid) Spawn() (x, y int, ok bool) {
	if g.spawn == nil {
		return 0, 0, false
	}
	return g.spawn[0], g.spawn[1], true
}

// Goal returns the goal tile coordinates.
func (g *Grid) Goal() (x, y int, ok bool) {
	if g.goal == nil {
		return 0, 0, false
	}
	return g.goal[0], g.goal[1], true
}

// Route returns the current route, nil when there is none.
func (g *Grid) Route() *Route {
	return g.route
}

// RouteErr explains why there is no route; nil when a route exists.
func (g *Grid) RouteErr() error {
	return g.routeErr
}

func (g *Grid) HasRoute() bool {
	return g.route != nil
}

// TileCenter returns the pixel centre of tile x,y.
func (g *Grid) TileCenter(x, y int) utils.Vec2 {
	return utils.Vec2{
		X: (float64(x) + 0.5) * g.TileSize,
		Y: (float64(y) + 0.5) * g.TileSize,
	}
}

// PixelToTile converts pixel coordinates to the tile under them.
func (g *Grid) PixelToTile(px, py float64) (x, y int, ok bool) {
	if px < 0 || py < 0 || g.TileSize <= 0 {
		return 0, 0, false
	}
	x, y = int(px/g.TileSize), int(py/g.TileSize)
	return x, y, g.InBounds(x, y)
}

// CanPlaceTower is true only for free buildable tiles.
func (g *Grid) CanPlaceTower(x, y int) bool {
	t, ok := g.Tile(x, y)
	return ok && t.Type == TileBuildable && !t.Occupied
}

// SetOccupied marks or clears a tower on the tile.
func (g *Grid) SetOccupied(x, y int, occupied bool) {
	if g.InBounds(x, y) {
		g.tiles[y*g.Width+x].Occupied = occupied
	}
}

// SetTile changes a tile type. Placing a spawn or goal clears the previous
// one back to buildable. The route is recomputed when the change touches
// spawn, goal or traversability; the first return value reports that.
// Setting the type a tile already has is a no-op.
func (g *Grid) SetTile(x, y int, t TileType) (bool, error) {
	if !t.Valid() {
		return false, ErrInvalidTile
	}
	if !g.InBounds(x, y) {
		return false, ErrOutOfBounds
	}
	idx := y*g.Width + x
	old := g.tiles[idx].Type
	if old == t {
		return false, nil
	}
	if g.tiles[idx].Occupied && t != TileBuildable {
		return false, ErrTileOccupied
	}

	if old == TileSpawn {
		g.spawn = nil
	}
	if old == TileGoal {
		g.goal = nil
	}
	switch t {
	case TileSpawn:
		if g.spawn != nil {
			g.tiles[g.spawn[1]*g.Width+g.spawn[0]].Type = TileBuildable
		}
		g.spawn = &[2]int{x, y}
	case TileGoal:
		if g.goal != nil {
			g.tiles[g.goal[1]*g.Width+g.goal[0]].Type = TileBuildable
		}
		g.goal = &[2]int{x, y}
	}
	g.tiles[idx].Type = t

	if old.Traversable() == t.Traversable() && old != TileSpawn && old != TileGoal && t != TileSpawn && t != TileGoal {
		return false, nil
	}
	g.ComputeRoute()
	return true, nil
}
