// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton is a double arrow whose color shows the speed multiplier.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA // index 0 for 1x, 1 for 2x
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// SetMultiplier selects the color for speed k.
func (b *SpeedButton) SetMultiplier(k int) {
	state := min(max(k-1, 0), len(b.StateColors)-1)
	if state != b.CurrentState {
		b.LastClickTime = time.Now()
	}
	b.CurrentState = state
}

// Contains uses a circle; the arrow shape is too thin to hit reliably.
func (b *SpeedButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	size := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))
	c := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, shift := range []float32{0, offset} {
		tri := [][2]float32{
			{b.X - width + shift, b.Y - height/2},
			{b.X + shift, b.Y},
			{b.X - width + shift, b.Y + height/2},
		}
		fillPolygon(screen, c, tri...)
		strokePolygon(screen, 1, color.White, tri...)
	}
}
