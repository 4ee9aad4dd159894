// internal/tui/model.go
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/snapshot"
)

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model drives a simulation from the terminal: one fixed Tick per tickMsg,
// a tile cursor for building, and single-key commands.
type Model struct {
	game     interfaces.Simulation
	savePath string
	tickDur  time.Duration

	cursorX, cursorY int
	kind             defs.TowerKind
	status           string
	log              *eventLog

	width, height int
}

// NewModel subscribes to game events and places the cursor on the map origin.
// savePath is where the s key writes snapshots; empty disables saving.
func NewModel(game interfaces.Simulation, savePath string) Model {
	l := &eventLog{}
	game.Events().SubscribeAll(l)
	return Model{
		game:     game,
		savePath: savePath,
		tickDur:  time.Second / time.Duration(game.Settings().TickRate),
		kind:     defs.TowerArcher,
		log:      l,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickDur)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.Tick(m.game.Settings().TickDelta())
		return m, tickCmd(m.tickDur)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "1", "2", "3":
		m.kind = defs.TowerKinds[key[0]-'1']
		m.status = fmt.Sprintf("building %s", m.kind)
	case "enter", "b":
		if _, err := m.game.PlaceTower(m.kind, m.cursorX, m.cursorY); err != nil {
			m.status = fmt.Sprintf("cannot build: %v", err)
		} else {
			m.status = ""
			m.game.SelectTowerAt(m.cursorX, m.cursorY)
		}
	case "x":
		size := m.game.Settings().TileSize
		if refund := m.game.SellTower((float64(m.cursorX)+0.5)*size, (float64(m.cursorY)+0.5)*size); refund == 0 {
			m.status = "nothing to sell"
		} else {
			m.status = ""
		}
	case "u":
		if err := m.game.UpgradeTower(m.cursorX, m.cursorY); err != nil {
			m.status = fmt.Sprintf("cannot upgrade: %v", err)
		} else {
			m.status = ""
		}
	case "n":
		if err := m.game.StartNextWave(); err != nil {
			m.status = fmt.Sprintf("cannot start wave: %v", err)
		} else {
			m.status = ""
		}
	case " ", "p":
		m.game.SetPaused(!m.game.IsPaused())
	case "f":
		m.game.SetSpeedMultiplier(3 - m.game.SpeedMultiplier())
	case "s":
		m.save()
	case "r":
		m.game.Reset()
		m.status = "new game"
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	g := m.game.Grid()
	m.cursorX = min(max(m.cursorX+dx, 0), g.Width-1)
	m.cursorY = min(max(m.cursorY+dy, 0), g.Height-1)
	m.game.SelectTowerAt(m.cursorX, m.cursorY)
}

func (m *Model) save() {
	if m.savePath == "" {
		m.status = "saving disabled"
		return
	}
	if err := snapshot.SaveFile(m.savePath, m.game.Snapshot()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved to %s", m.savePath)
}

// Cursor returns the tile under the build cursor.
func (m Model) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// Status is the result line of the last command.
func (m Model) Status() string {
	return m.status
}
