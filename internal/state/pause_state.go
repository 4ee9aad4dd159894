// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tower-sim/internal/config"
)

// PauseState freezes the simulation and draws the last frame under an overlay.
type PauseState struct {
	sm   *StateMachine
	play *PlayState
}

func NewPauseState(sm *StateMachine, play *PlayState) *PauseState {
	return &PauseState{sm: sm, play: play}
}

func (s *PauseState) Enter() {
	s.play.game.SetPaused(true)
	s.play.pauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.play.pauseButton.Contains(x, y)
	}
	if unpause {
		s.sm.SetState(s.play)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(config.HUDHeight), float32(w), float32(h-config.HUDHeight), config.OverlayColor, false)
	label := "PAUSED"
	b := text.BoundString(s.play.face, label)
	text.Draw(screen, label, s.play.face, (w-b.Dx())/2, h/2, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.play.game.SetPaused(false)
	s.play.pauseButton.SetPaused(false)
}
