// pkg/render/grid_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/pkg/gridmap"
)

// Frame is everything the renderer reads for one frame.
type Frame struct {
	Grid        *gridmap.Grid
	Towers      []entity.Tower
	Enemies     []entity.Enemy
	Projectiles []entity.Projectile
}

// GridRenderer draws a square-tile map with its towers, enemies and
// projectiles. The static tile layer is cached and redrawn only when the
// layout changes.
type GridRenderer struct {
	offsetY  float64
	colors   *MapColors
	entities *EntityColors
	face     font.Face

	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	mapImage *ebiten.Image
	mapKey   string
}

// NewGridRenderer draws the map offsetY pixels below the top of the screen.
func NewGridRenderer(offsetY float64, colors *MapColors, entities *EntityColors, face font.Face) *GridRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &GridRenderer{
		offsetY:  offsetY,
		colors:   colors,
		entities: entities,
		face:     face,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 8),
	}
}

// RenderMapImage redraws the cached tile layer for grid.
func (r *GridRenderer) RenderMapImage(grid *gridmap.Grid) {
	w := int(float64(grid.Width) * grid.TileSize)
	h := int(float64(grid.Height) * grid.TileSize)
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(w, h)
	}
	r.mapImage.Fill(r.colors.BackgroundColor)

	size := float32(grid.TileSize)
	for _, t := range grid.Tiles() {
		x, y := float32(t.X)*size, float32(t.Y)*size
		vector.DrawFilledRect(r.mapImage, x+1, y+1, size-2, size-2, r.colors.TileColor(t.Type), false)
	}

	if route := grid.Route(); route != nil {
		pts := route.Waypoints()
		for i := 1; i < len(pts); i++ {
			vector.StrokeLine(r.mapImage,
				float32(pts[i-1].X), float32(pts[i-1].Y), float32(pts[i].X), float32(pts[i].Y),
				r.colors.StrokeWidth, r.colors.RouteLineColor, true)
		}
	}
	r.mapKey = strings.Join(grid.Layout(), "\n")
}

func (r *GridRenderer) Draw(screen *ebiten.Image, f Frame) {
	if key := strings.Join(f.Grid.Layout(), "\n"); r.mapImage == nil || key != r.mapKey {
		r.RenderMapImage(f.Grid)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, r.offsetY)
	screen.DrawImage(r.mapImage, op)

	for i := range f.Towers {
		r.drawTower(screen, &f.Towers[i], f.Grid.TileSize)
	}
	for i := range f.Enemies {
		r.drawEnemy(screen, &f.Enemies[i], f.Grid.TileSize)
	}
	for _, p := range f.Projectiles {
		x, y := r.toScreen(p.Pos.X, p.Pos.Y)
		radius := r.entities.ProjectileRadius
		if p.SplashRadius > 0 {
			radius *= 1.6
		}
		vector.DrawFilledCircle(screen, x, y, radius, r.entities.Projectile, true)
	}
}

func (r *GridRenderer) toScreen(x, y float64) (float32, float32) {
	return float32(x), float32(y + r.offsetY)
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, t *entity.Tower, tileSize float64) {
	x, y := r.toScreen(t.Pos.X, t.Pos.Y)
	radius := float32(tileSize * t.Def.Visuals.RadiusFactor)

	if t.Selected {
		vector.StrokeCircle(screen, x, y, float32(t.Range()), 1, r.entities.Range, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, t.Def.Visuals.Color, true)
	vector.StrokeCircle(screen, x, y, radius, r.entities.TowerStrokeSize, r.entities.TowerStroke, true)

	if t.Level > 1 {
		label := fmt.Sprintf("%d", t.Level)
		b := text.BoundString(r.face, label)
		text.Draw(screen, label, r.face, int(x)-b.Dx()/2, int(y)+b.Dy()/2, DarkenColor(t.Def.Visuals.Color))
	}
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, e *entity.Enemy, tileSize float64) {
	x, y := r.toScreen(e.Pos.X, e.Pos.Y)
	radius := float32(tileSize * e.Def.Visuals.RadiusFactor)

	if e.Kind == defs.EnemyKnight {
		r.drawDiamond(screen, x, y, radius*1.2, e.Def.Visuals.Color)
	} else {
		vector.DrawFilledCircle(screen, x, y, radius, e.Def.Visuals.Color, true)
	}

	// health bar above the body
	w := float32(tileSize) * 0.6
	bh := r.entities.HealthBarHeight
	top := y - radius - 2*bh
	ratio := float32(e.Health) / float32(max(e.MaxHealth, 1))
	vector.DrawFilledRect(screen, x-w/2, top, w, bh, r.entities.HealthBack, false)
	vector.DrawFilledRect(screen, x-w/2, top, w*ratio, bh, r.entities.HealthBar, false)
}

func (r *GridRenderer) drawDiamond(target *ebiten.Image, x, y, size float32, c color.RGBA) {
	path := vector.Path{}
	for i := 0; i < 4; i++ {
		angle := math.Pi / 2 * float64(i)
		px := x + size*float32(math.Cos(angle))
		py := y + size*float32(math.Sin(angle))
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	r.fillPath(target, &path, c)
}

// fillPath fills path with a solid color.
func (r *GridRenderer) fillPath(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// TileAt converts a screen position to the tile under it.
func (r *GridRenderer) TileAt(grid *gridmap.Grid, sx, sy int) (x, y int, ok bool) {
	return grid.PixelToTile(float64(sx), float64(sy)-r.offsetY)
}

// MapPoint converts a screen position to map pixels.
func (r *GridRenderer) MapPoint(sx, sy int) (float64, float64) {
	return float64(sx), float64(sy) - r.offsetY
}
