// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton shows two bars while running and a play triangle while paused.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// SetPaused updates the icon; a change starts the click pulse.
func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastToggleTime = time.Now()
	}
	b.IsPaused = paused
}

// Contains is a circular hit test around the icon.
func (b *PauseButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2.25
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastToggleTime).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if b.IsPaused {
		tri := [][2]float32{{b.X - s, b.Y - s*1.2}, {b.X + s, b.Y}, {b.X - s, b.Y + s*1.2}}
		fillPolygon(screen, b.PlayColor, tri...)
		strokePolygon(screen, 1, color.White, tri...)
		return
	}
	barW := s * 0.6
	for _, x := range []float32{b.X - s, b.X + s - barW} {
		vector.DrawFilledRect(screen, x, b.Y-s*1.2, barW, s*2.4, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-s*1.2, barW, s*2.4, 1, color.White, true)
	}
}
