// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect      image.Rectangle
	Text      string
	Color     color.RGBA
	TextColor color.Color
	Disabled  bool
}

// Contains reports whether screen point x,y is on an enabled button.
func (b *Button) Contains(x, y int) bool {
	return !b.Disabled && image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.Color
	if b.Disabled {
		bg = color.RGBA{R: bg.R / 3, G: bg.G / 3, B: bg.B / 3, A: bg.A}
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.White, true)

	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}
