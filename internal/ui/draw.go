// internal/ui/draw.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// fillPolygon fills the closed polygon through pts.
func fillPolygon(screen *ebiten.Image, c color.RGBA, pts ...[2]float32) {
	var path vector.Path
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p[0], p[1])
		} else {
			path.LineTo(p[0], p[1])
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokePolygon outlines the closed polygon through pts.
func strokePolygon(screen *ebiten.Image, width float32, c color.Color, pts ...[2]float32) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], width, c, true)
	}
}
