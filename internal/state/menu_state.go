// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-tower-sim/internal/config"
)

var menuLines = []string{
	"TOWER SIM",
	"",
	"left click: build / select    right click: sell",
	"middle click: toggle route tile",
	"1-3: tower kind    U: upgrade    N: next wave",
	"P: pause    F: speed    F5: save",
	"",
	"press SPACE to start",
}

// MenuState is the title screen.
type MenuState struct {
	sm   *StateMachine
	play *PlayState
}

func NewMenuState(sm *StateMachine, play *PlayState) *MenuState {
	return &MenuState{sm: sm, play: play}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.play)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	y := h/2 - len(menuLines)*16/2
	for _, line := range menuLines {
		b := text.BoundString(m.play.face, line)
		text.Draw(screen, line, m.play.face, (w-b.Dx())/2, y, color.White)
		y += 16
	}
}

func (m *MenuState) Exit() {}
