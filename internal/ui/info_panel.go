// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tower-sim/internal/entity"
)

const (
	panelHeight    = 64
	panelMargin    = 4
	animationSpeed = 8.0
	lineHeight     = 16
	buttonWidth    = 110
	buttonHeight   = 22
)

// PanelAction is what a click on the panel asks for.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
)

// InfoPanel slides up from the bottom of the screen with the selected
// tower's stats and upgrade/sell buttons.
type InfoPanel struct {
	IsVisible bool
	TowerID   entity.ID

	UpgradeButton Button
	SellButton    Button

	face          font.Face
	width, bottom int
	currentY      float64
	targetY       float64
}

// NewInfoPanel creates a hidden panel for a screen width wide whose bottom
// edge is at y = bottom.
func NewInfoPanel(face font.Face, width, bottom int) *InfoPanel {
	return &InfoPanel{
		face:     face,
		width:    width,
		bottom:   bottom,
		currentY: float64(bottom),
		targetY:  float64(bottom),
		UpgradeButton: Button{
			Text: "Upgrade", Color: color.RGBA{R: 40, G: 120, B: 60, A: 255}, TextColor: color.White,
		},
		SellButton: Button{
			Text: "Sell", Color: color.RGBA{R: 150, G: 110, B: 20, A: 255}, TextColor: color.White,
		},
	}
}

func (p *InfoPanel) SetTarget(id entity.ID) {
	p.TowerID = id
	p.IsVisible = true
	p.targetY = float64(p.bottom - panelHeight)
}

func (p *InfoPanel) Hide() {
	p.targetY = float64(p.bottom)
}

// Update animates the slide.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= float64(p.bottom) {
		p.IsVisible = false
		p.TowerID = 0
	}
}

// Contains reports whether x,y is on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && y >= int(p.currentY) && y < p.bottom && x >= 0 && x < p.width
}

// Click returns the action of the button under x,y.
func (p *InfoPanel) Click(x, y int) PanelAction {
	if !p.IsVisible {
		return PanelNone
	}
	switch {
	case p.UpgradeButton.Contains(x, y):
		return PanelUpgrade
	case p.SellButton.Contains(x, y):
		return PanelSell
	}
	return PanelNone
}

// Draw shows tower, which may be nil once the tower is gone.
func (p *InfoPanel) Draw(screen *ebiten.Image, tower *entity.Tower) {
	if !p.IsVisible {
		return
	}
	rect := image.Rect(panelMargin, int(p.currentY)+panelMargin, p.width-panelMargin, int(p.currentY)+panelHeight-panelMargin)
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 25, G: 35, B: 45, A: 230}, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	if tower == nil {
		return
	}
	tx, ty := rect.Min.X+10, rect.Min.Y+lineHeight
	text.Draw(screen, fmt.Sprintf("%s  level %d", tower.Def.Name, tower.Level), p.face, tx, ty, color.White)
	text.Draw(screen, fmt.Sprintf("damage %d %s  range %.0f  every %.1fs",
		tower.Damage(), tower.DamageType(), tower.Range(), tower.FireInterval()), p.face, tx, ty+lineHeight, color.White)

	by := rect.Max.Y - buttonHeight - 6
	p.SellButton.Rect = image.Rect(rect.Max.X-buttonWidth-10, by, rect.Max.X-10, by+buttonHeight)
	p.SellButton.Text = fmt.Sprintf("Sell +%d", tower.RefundValue())
	p.SellButton.Draw(screen, p.face)

	p.UpgradeButton.Rect = image.Rect(rect.Max.X-2*buttonWidth-20, by, rect.Max.X-buttonWidth-20, by+buttonHeight)
	p.UpgradeButton.Disabled = tower.MaxLevel()
	p.UpgradeButton.Text = "Max level"
	if !tower.MaxLevel() {
		p.UpgradeButton.Text = fmt.Sprintf("Upgrade -%d", tower.UpgradeCost())
	}
	p.UpgradeButton.Draw(screen, p.face)
}
