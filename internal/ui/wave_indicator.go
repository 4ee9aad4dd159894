// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current wave number in Roman numerals.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	MilestoneColor   color.RGBA // every tenth wave
	OutlineColor     color.RGBA
	OutlineThickness int
}

func NewWaveIndicator(x, y int, c, milestone color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            c,
		MilestoneColor:   milestone,
		OutlineColor:     color.RGBA{0, 0, 0, 255},
		OutlineThickness: 1,
	}
}

// ToRoman converts a positive integer to Roman numerals; 0 and below give "".
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int, face font.Face) {
	label := ToRoman(wave)
	if label == "" {
		return
	}
	c := i.Color
	if wave%10 == 0 {
		c = i.MilestoneColor
	}

	x := i.X - text.BoundString(face, label).Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, c)
}
