// internal/state/play_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/snapshot"
	"go-tower-sim/internal/ui"
	"go-tower-sim/pkg/gridmap"
	"go-tower-sim/pkg/render"
)

const statusDuration = 3.0 // seconds

// PlayState runs the simulation at its fixed tick rate and turns mouse and
// keyboard input into game actions.
type PlayState struct {
	sm       *StateMachine
	game     interfaces.Simulation
	renderer *render.GridRenderer
	face     font.Face
	savePath string

	pauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	waveIndicator *ui.WaveIndicator
	infoPanel     *ui.InfoPanel

	kind        defs.TowerKind
	accumulator float64
	lastClick   time.Time
	status      string
	statusTTL   float64
	width       int
}

// NewPlayState lays out the HUD for the game's map. savePath is where F5
// writes snapshots; empty disables saving.
func NewPlayState(sm *StateMachine, game interfaces.Simulation, renderer *render.GridRenderer, face font.Face, savePath string) *PlayState {
	w, h := ScreenSize(game.Grid())
	btn := float32(config.ButtonSize)
	return &PlayState{
		sm:            sm,
		game:          game,
		renderer:      renderer,
		face:          face,
		savePath:      savePath,
		pauseButton:   ui.NewPauseButton(float32(w)-btn*2.5, float32(config.HUDHeight)/2, btn, config.PausedColor, config.PlayButtonColor),
		speedButton:   ui.NewSpeedButton(float32(w)-btn*6, float32(config.HUDHeight)/2, btn, config.SpeedColors),
		waveIndicator: ui.NewWaveIndicator(12, 22, config.WaveColor, config.MilestoneColor),
		infoPanel:     ui.NewInfoPanel(face, w, h),
		kind:          defs.TowerArcher,
		width:         w,
	}
}

// ScreenSize is the window size needed for grid plus the HUD.
func ScreenSize(grid *gridmap.Grid) (width, height int) {
	return int(float64(grid.Width) * grid.TileSize), int(float64(grid.Height)*grid.TileSize) + config.HUDHeight
}

func (p *PlayState) Enter() {
	p.accumulator = 0
	p.pauseButton.SetPaused(p.game.IsPaused())
	p.speedButton.SetMultiplier(p.game.SpeedMultiplier())
}

// Exit drops the partial step so time spent in other screens is not replayed.
func (p *PlayState) Exit() {
	p.accumulator = 0
}

func (p *PlayState) Update(deltaTime float64) {
	if p.statusTTL > 0 {
		p.statusTTL -= deltaTime
		if p.statusTTL <= 0 {
			p.status = ""
		}
	}

	if p.handleKeys() || p.handleMouse() {
		return
	}

	step := p.game.Settings().TickDelta()
	p.accumulator += deltaTime
	for p.accumulator >= step {
		p.game.Tick(step)
		p.accumulator -= step
	}
	p.infoPanel.Update()

	if p.game.IsGameOver() {
		p.infoPanel.Hide()
		p.sm.SetState(NewGameOverState(p.sm, p))
	}
}

// handleKeys returns true when the state changed.
func (p *PlayState) handleKeys() bool {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) && i < len(defs.TowerKinds) {
			p.kind = defs.TowerKinds[i]
			p.setStatus(fmt.Sprintf("building %s", p.kind))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if t := p.selected(); t != nil {
			p.upgrade(t)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		p.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		p.toggleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(NewPauseState(p.sm, p))
		return true
	}
	return false
}

// handleMouse returns true when the state changed.
func (p *PlayState) handleMouse() bool {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(p.lastClick) < config.ClickCooldown*time.Millisecond {
			return false
		}
		p.lastClick = time.Now()

		switch {
		case p.pauseButton.Contains(x, y):
			p.sm.SetState(NewPauseState(p.sm, p))
			return true
		case p.speedButton.Contains(x, y):
			p.toggleSpeed()
		case p.infoPanel.Contains(x, y):
			p.panelClick(x, y)
		case y >= config.HUDHeight:
			p.mapClick(x, y)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && y >= config.HUDHeight {
		px, py := p.renderer.MapPoint(x, y)
		if refund := p.game.SellTower(px, py); refund > 0 {
			p.infoPanel.Hide()
			p.setStatus(fmt.Sprintf("sold for %d", refund))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) && y >= config.HUDHeight {
		p.toggleRouteTile(x, y)
	}
	return false
}

func (p *PlayState) mapClick(x, y int) {
	grid := p.game.Grid()
	tx, ty, ok := p.renderer.TileAt(grid, x, y)
	if !ok {
		return
	}
	if p.game.SelectTowerAt(tx, ty) {
		if t := p.selected(); t != nil {
			p.infoPanel.SetTarget(t.ID)
		}
		return
	}
	tower, err := p.game.PlaceTower(p.kind, tx, ty)
	if err != nil {
		p.infoPanel.Hide()
		p.setStatus(fmt.Sprintf("cannot build: %v", err))
		return
	}
	p.game.SelectTowerAt(tx, ty)
	p.infoPanel.SetTarget(tower.ID)
}

func (p *PlayState) panelClick(x, y int) {
	t := p.selected()
	if t == nil {
		return
	}
	switch p.infoPanel.Click(x, y) {
	case ui.PanelUpgrade:
		p.upgrade(t)
	case ui.PanelSell:
		if refund := p.game.SellTower(t.Pos.X, t.Pos.Y); refund > 0 {
			p.setStatus(fmt.Sprintf("sold for %d", refund))
		}
		p.infoPanel.Hide()
	}
}

// toggleRouteTile flips a free tile between buildable ground and route.
func (p *PlayState) toggleRouteTile(x, y int) {
	grid := p.game.Grid()
	tx, ty, ok := p.renderer.TileAt(grid, x, y)
	if !ok {
		return
	}
	tile, _ := grid.Tile(tx, ty)
	next := gridmap.TileRoute
	switch tile.Type {
	case gridmap.TileBuildable:
	case gridmap.TileRoute:
		next = gridmap.TileBuildable
	default:
		return
	}
	if err := p.game.SetTileType(tx, ty, next); err != nil {
		p.setStatus(fmt.Sprintf("cannot edit tile: %v", err))
		return
	}
	if err := p.game.RouteErr(); err != nil {
		p.setStatus(fmt.Sprintf("no route: %v", err))
	}
}

func (p *PlayState) upgrade(t *entity.Tower) {
	if err := p.game.UpgradeTower(t.TileX, t.TileY); err != nil {
		p.setStatus(fmt.Sprintf("cannot upgrade: %v", err))
	}
}

func (p *PlayState) startWave() {
	if err := p.game.StartNextWave(); err != nil {
		p.setStatus(fmt.Sprintf("cannot start wave: %v", err))
	}
}

func (p *PlayState) toggleSpeed() {
	if err := p.game.SetSpeedMultiplier(3 - p.game.SpeedMultiplier()); err != nil {
		log.Printf("speed change failed: %v", err)
		return
	}
	p.speedButton.SetMultiplier(p.game.SpeedMultiplier())
}

func (p *PlayState) save() {
	if p.savePath == "" {
		p.setStatus("saving disabled")
		return
	}
	if err := snapshot.SaveFile(p.savePath, p.game.Snapshot()); err != nil {
		log.Printf("save failed: %v", err)
		p.setStatus("save failed")
		return
	}
	p.setStatus(fmt.Sprintf("saved to %s", p.savePath))
}

func (p *PlayState) setStatus(s string) {
	p.status = s
	p.statusTTL = statusDuration
}

// selected returns a copy of the selected tower, or nil.
func (p *PlayState) selected() *entity.Tower {
	for _, t := range p.game.Towers() {
		if t.Selected {
			return &t
		}
	}
	return nil
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	p.renderer.Draw(screen, render.Frame{
		Grid:        p.game.Grid(),
		Towers:      p.game.Towers(),
		Enemies:     p.game.Enemies(),
		Projectiles: p.game.Projectiles(),
	})
	p.drawHUD(screen)

	var shown *entity.Tower
	if t := p.selected(); t != nil && t.ID == p.infoPanel.TowerID {
		shown = t
	}
	p.infoPanel.Draw(screen, shown)
}

func (p *PlayState) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.width), float32(config.HUDHeight), config.HUDColor, false)
	p.waveIndicator.Draw(screen, p.game.Wave(), p.face)

	def := p.game.Settings().Towers[p.kind]
	line1 := fmt.Sprintf("Gold %d   Lives %d   %s", p.game.Gold(), p.game.Lives(), p.game.Phase())
	if cd := p.game.CooldownRemaining(); cd > 0 {
		line1 += fmt.Sprintf("   next wave in %.1fs", cd)
	}
	line2 := fmt.Sprintf("Build [%d] %s %dg   enemies %d (+%d)",
		indexOf(p.kind)+1, def.Name, def.Cost, len(p.game.Enemies()), p.game.PendingSpawns())

	text.Draw(screen, line1, p.face, 120, 20, config.TextLightColor)
	text.Draw(screen, line2, p.face, 120, 38, config.TextLightColor)

	switch {
	case p.game.RouteErr() != nil:
		text.Draw(screen, "No route: "+p.game.RouteErr().Error(), p.face, 120, 58, config.GameOverColor)
	case p.status != "":
		text.Draw(screen, p.status, p.face, 120, 58, config.TextLightColor)
	}

	p.speedButton.Draw(screen)
	p.pauseButton.Draw(screen)
}

func indexOf(kind defs.TowerKind) int {
	for i, k := range defs.TowerKinds {
		if k == kind {
			return i
		}
	}
	return 0
}
