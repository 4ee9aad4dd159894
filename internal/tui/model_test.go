package tui

import (
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/snapshot"
)

func newTestModel(t *testing.T, savePath string) (Model, *app.Game) {
	t.Helper()
	g, err := app.NewGame(config.Default(), config.DefaultLayout)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.SetLogger(log.New(io.Discard, "", 0))
	return NewModel(g, savePath), g
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestCursorStaysOnMap(t *testing.T) {
	m, _ := newTestModel(t, "")
	m = send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	if x, y := m.Cursor(); x != 0 || y != 0 {
		t.Errorf("Expected cursor clamped at (0,0), got (%d,%d)", x, y)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, runes("l"))
	if x, y := m.Cursor(); x != 1 || y != 2 {
		t.Errorf("Expected cursor at (1,2), got (%d,%d)", x, y)
	}
}

func TestBuildSellUpgrade(t *testing.T) {
	m, g := newTestModel(t, "")
	// (1,2) is buildable in the default layout
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(g.Towers()) != 1 || g.Gold() != 50 {
		t.Fatalf("Expected one archer and 50 gold, got %d towers and %d gold", len(g.Towers()), g.Gold())
	}
	if !g.Towers()[0].Selected {
		t.Errorf("Expected the new tower to be selected")
	}

	m = send(m, runes("u"))
	if g.Towers()[0].Level != 2 || g.Gold() != 20 {
		t.Errorf("Expected level 2 and 20 gold, got %d and %d", g.Towers()[0].Level, g.Gold())
	}

	m = send(m, runes("x"))
	if len(g.Towers()) != 0 || g.Gold() != 57 {
		t.Errorf("Expected tower sold for 37, got %d towers and %d gold", len(g.Towers()), g.Gold())
	}
	m = send(m, runes("x"))
	if m.Status() != "nothing to sell" {
		t.Errorf("Expected status for empty sell, got %q", m.Status())
	}
}

func TestSelectKindAndBuildErrors(t *testing.T) {
	m, g := newTestModel(t, "")
	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	m = send(m, runes("3"), runes("b"))
	if len(g.Towers()) != 1 || g.Towers()[0].Kind != defs.TowerMage {
		t.Fatalf("Expected a mage, got %v", g.Towers())
	}

	m = send(m, runes("2"), runes("b"))
	if !strings.HasPrefix(m.Status(), "cannot build") {
		t.Errorf("Expected a build error on an occupied tile, got %q", m.Status())
	}
	if g.Gold() != 20 {
		t.Errorf("Expected gold unchanged at 20, got %d", g.Gold())
	}
}

func TestWavePauseSpeed(t *testing.T) {
	m, g := newTestModel(t, "")

	m = send(m, runes("n"))
	if g.Wave() != 1 || g.Phase() != component.PhaseSpawning {
		t.Fatalf("Expected wave 1 spawning, got %d %s", g.Wave(), g.Phase())
	}
	m = send(m, runes("n"))
	if !strings.HasPrefix(m.Status(), "cannot start wave") {
		t.Errorf("Expected refusal during a wave, got %q", m.Status())
	}

	m = send(m, tickMsg(time.Now()))
	if len(g.Enemies()) != 1 {
		t.Errorf("Expected first enemy after one tick, got %d", len(g.Enemies()))
	}

	m = send(m, runes("p"))
	clock := g.Clock()
	m = send(m, tickMsg(time.Now()))
	if !g.IsPaused() || g.Clock() != clock {
		t.Errorf("Expected paused game to hold the clock")
	}
	m = send(m, runes("p"), runes("f"))
	if g.IsPaused() || g.SpeedMultiplier() != 2 {
		t.Errorf("Expected running at 2x, got paused=%v speed=%d", g.IsPaused(), g.SpeedMultiplier())
	}
	m = send(m, runes("f"))
	if g.SpeedMultiplier() != 1 {
		t.Errorf("Expected speed back to 1x, got %d", g.SpeedMultiplier())
	}

	send(m, runes("r"))
	if g.Wave() != 0 || len(g.Enemies()) != 0 {
		t.Errorf("Expected a fresh game after restart, got wave %d", g.Wave())
	}
}

func TestSaveWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.sav")
	m, g := newTestModel(t, path)
	m = send(m, runes("n"), tickMsg(time.Now()), runes("s"))

	st, err := snapshot.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v (status %q)", err, m.Status())
	}
	if st.Wave != 1 || st.SessionID != g.SessionID.String() {
		t.Errorf("Expected wave 1 of session %s, got %d of %s", g.SessionID, st.Wave, st.SessionID)
	}

	m2, _ := newTestModel(t, "")
	m2 = send(m2, runes("s"))
	if m2.Status() != "saving disabled" {
		t.Errorf("Expected saving disabled without a path, got %q", m2.Status())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "")
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Expected tea.QuitMsg")
	}
}

func TestViewShowsState(t *testing.T) {
	m, _ := newTestModel(t, "")
	m = send(m, runes("n"), tickMsg(time.Now()))
	out := m.View()
	for _, want := range []string{"Wave 1", "Gold:", "wave 1: 5 enemies"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestEventLogKeepsLastLines(t *testing.T) {
	l := &eventLog{}
	for i := 0; i < maxLogLines+3; i++ {
		l.add(strings.Repeat("x", i+1))
	}
	if len(l.lines) != maxLogLines {
		t.Fatalf("Expected %d lines, got %d", maxLogLines, len(l.lines))
	}
	if l.lines[0] != strings.Repeat("x", 4) {
		t.Errorf("Expected oldest lines dropped, got %q first", l.lines[0])
	}
}
