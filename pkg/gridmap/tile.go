// pkg/gridmap/tile.go
package gridmap

import "fmt"

// TileType is the terrain kind of a single grid cell.
type TileType uint8

const (
	TileBuildable TileType = iota
	TileObstacle
	TileRoute
	TileSpawn
	TileGoal
	TileDecoration
)

var tileNames = [...]string{
	TileBuildable:  "buildable",
	TileObstacle:   "obstacle",
	TileRoute:      "route",
	TileSpawn:      "spawn",
	TileGoal:       "goal",
	TileDecoration: "decoration",
}

func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// Valid reports whether t is one of the known tile types.
func (t TileType) Valid() bool {
	return int(t) < len(tileNames)
}

// Traversable reports whether enemies may walk over the tile.
func (t TileType) Traversable() bool {
	return t == TileRoute || t == TileSpawn || t == TileGoal
}

// layout characters used by Parse and Layout
var tileRunes = map[rune]TileType{
	'.': TileBuildable,
	'#': TileObstacle,
	'=': TileRoute,
	'S': TileSpawn,
	'G': TileGoal,
	'~': TileDecoration,
}

// Rune returns the layout character of t.
func (t TileType) Rune() rune {
	for r, tt := range tileRunes {
		if tt == t {
			return r
		}
	}
	return '?'
}

// ParseTileType converts a name ("route") or a layout rune ("=") to a TileType.
func ParseTileType(s string) (TileType, error) {
	for i, name := range tileNames {
		if name == s {
			return TileType(i), nil
		}
	}
	if r := []rune(s); len(r) == 1 {
		if t, ok := tileRunes[r[0]]; ok {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tile type %q", s)
}

// Tile is one grid cell.
type Tile struct {
	X, Y     int
	Type     TileType
	Occupied bool // a tower stands here
}
