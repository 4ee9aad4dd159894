// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tower-sim/internal/config"
)

// GameOverState shows the final wave until the player restarts.
type GameOverState struct {
	sm   *StateMachine
	play *PlayState
}

func NewGameOverState(sm *StateMachine, play *PlayState) *GameOverState {
	return &GameOverState{sm: sm, play: play}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.play.game.Reset()
		s.sm.SetState(s.play)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(config.HUDHeight), float32(w), float32(h-config.HUDHeight), config.OverlayColor, false)
	st := s.play.game.Stats()
	title := fmt.Sprintf("GAME OVER on wave %d", s.play.game.Wave())
	b := text.BoundString(s.play.face, title)
	text.Draw(screen, title, s.play.face, (w-b.Dx())/2, h/2-18, config.GameOverColor)
	for i, line := range []string{
		fmt.Sprintf("%d kills, %d gold earned", st.Kills, st.GoldEarned),
		"press R to restart",
	} {
		b := text.BoundString(s.play.face, line)
		text.Draw(screen, line, s.play.face, (w-b.Dx())/2, h/2+i*18, config.TextLightColor)
	}
}

func (s *GameOverState) Exit() {}
