// internal/tui/view.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/pkg/gridmap"
)

var (
	mapBorder    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(30).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	tileStyle = map[gridmap.TileType]lipgloss.Style{
		gridmap.TileBuildable:  dimStyle,
		gridmap.TileObstacle:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		gridmap.TileRoute:      lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		gridmap.TileSpawn:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		gridmap.TileGoal:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		gridmap.TileDecoration: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	}

	towerGlyph = map[defs.TowerKind]rune{
		defs.TowerArcher:    'A',
		defs.TowerArtillery: 'R',
		defs.TowerMage:      'M',
	}
	towerStyle = map[defs.TowerKind]lipgloss.Style{
		defs.TowerArcher:    lipgloss.NewStyle().Foreground(lipgloss.Color("219")),
		defs.TowerArtillery: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		defs.TowerMage:      lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	}
	enemyGlyph = map[defs.EnemyKind]rune{
		defs.EnemyGoblin: 'g',
		defs.EnemyKnight: 'k',
	}

	enemyHealthy = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	enemyHurt    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	enemyDying   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	shotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

type cell struct {
	glyph rune
	style lipgloss.Style
}

func (m Model) View() string {
	grid := m.game.Grid()

	cells := make([][]cell, grid.Height)
	for y := range cells {
		cells[y] = make([]cell, grid.Width)
	}
	for _, t := range grid.Tiles() {
		cells[t.Y][t.X] = cell{t.Type.Rune(), tileStyle[t.Type]}
	}
	for _, t := range m.game.Towers() {
		cells[t.TileY][t.TileX] = cell{towerGlyph[t.Kind], towerStyle[t.Kind]}
	}
	for _, p := range m.game.Projectiles() {
		if x, y, ok := grid.PixelToTile(p.Pos.X, p.Pos.Y); ok {
			cells[y][x] = cell{'*', shotStyle}
		}
	}
	for _, e := range m.game.Enemies() {
		if x, y, ok := grid.PixelToTile(e.Pos.X, e.Pos.Y); ok {
			cells[y][x] = cell{enemyGlyph[e.Kind], healthStyle(e)}
		}
	}

	rows := make([]string, grid.Height)
	for y, row := range cells {
		var b strings.Builder
		for x, c := range row {
			s := c.style
			if x == m.cursorX && y == m.cursorY {
				s = cursorStyle
			}
			b.WriteString(s.Render(string(c.glyph)))
		}
		rows[y] = b.String()
	}
	mapView := mapBorder.Render(strings.Join(rows, "\n"))

	ui := lipgloss.JoinHorizontal(lipgloss.Top, mapView, sidebarStyle.Render(strings.Join(m.sidebar(), "\n")))
	return lipgloss.JoinVertical(lipgloss.Left, ui, m.footer())
}

func healthStyle(e entity.Enemy) lipgloss.Style {
	ratio := float64(e.Health) / float64(max(e.MaxHealth, 1))
	switch {
	case ratio > 0.7:
		return enemyHealthy
	case ratio > 0.3:
		return enemyHurt
	}
	return enemyDying
}

func (m Model) sidebar() []string {
	g := m.game
	settings := g.Settings()

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Wave %d  %s", g.Wave(), g.Phase())),
		fmt.Sprintf("Gold:    %d", g.Gold()),
		fmt.Sprintf("Lives:   %d", g.Lives()),
		fmt.Sprintf("Enemies: %d (+%d queued)", len(g.Enemies()), g.PendingSpawns()),
	}
	if cd := g.CooldownRemaining(); cd > 0 {
		lines = append(lines, fmt.Sprintf("Next wave in %.1fs", cd))
	}
	if err := g.RouteErr(); err != nil {
		lines = append(lines, warnStyle.Render("No route: "+err.Error()))
	}

	def := settings.Towers[m.kind]
	lines = append(lines, "", fmt.Sprintf("Build: %s (%dg)", def.Name, def.Cost))
	for _, t := range g.Towers() {
		if !t.Selected {
			continue
		}
		lines = append(lines,
			fmt.Sprintf("%s L%d  dmg %d  rng %.0f", t.Def.Name, t.Level, t.Damage(), t.Range()),
		)
		if t.MaxLevel() {
			lines = append(lines, "max level")
		} else {
			lines = append(lines, fmt.Sprintf("upgrade %dg, sell %dg", t.UpgradeCost(), t.RefundValue()))
		}
	}

	st := g.Stats()
	lines = append(lines, "", fmt.Sprintf("Kills %d  Breaches %d", st.Kills, st.Breaches), "")
	lines = append(lines, m.log.lines...)
	return lines
}

func (m Model) footer() string {
	footer := fmt.Sprintf("%dx | arrows move, 1-3 kind, enter build, x sell, u upgrade, n wave, p pause, f speed, s save, r restart, q quit",
		m.game.SpeedMultiplier())
	if m.game.IsPaused() {
		footer = "PAUSED | " + footer
	}
	if m.game.IsGameOver() {
		footer = warnStyle.Render(fmt.Sprintf("GAME OVER on wave %d, press r to restart", m.game.Wave())) + "\n" + footer
	}
	if m.status != "" {
		footer = m.status + "\n" + footer
	}
	return footer
}
