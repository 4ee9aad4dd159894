// pkg/render/color.go
package render

import (
	"image/color"

	"go-tower-sim/pkg/gridmap"
)

// MapColors holds the colors of the static map layer.
type MapColors struct {
	BackgroundColor color.RGBA
	BuildableColor  color.RGBA
	ObstacleColor   color.RGBA
	RouteColor      color.RGBA
	SpawnColor      color.RGBA
	GoalColor       color.RGBA
	DecorationColor color.RGBA
	RouteLineColor  color.RGBA
	StrokeWidth     float32
}

// TileColor returns the fill of a tile type.
func (c *MapColors) TileColor(t gridmap.TileType) color.RGBA {
	switch t {
	case gridmap.TileObstacle:
		return c.ObstacleColor
	case gridmap.TileRoute:
		return c.RouteColor
	case gridmap.TileSpawn:
		return c.SpawnColor
	case gridmap.TileGoal:
		return c.GoalColor
	case gridmap.TileDecoration:
		return c.DecorationColor
	}
	return c.BuildableColor
}

// EntityColors holds the colors for dynamic entities and overlays.
type EntityColors struct {
	TowerStroke      color.RGBA
	Range            color.RGBA
	Projectile       color.RGBA
	HealthBar        color.RGBA
	HealthBack       color.RGBA
	TowerStrokeSize  float32
	ProjectileRadius float32
	HealthBarHeight  float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
