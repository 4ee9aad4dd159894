// internal/tui/log.go
package tui

import (
	"fmt"

	"go-tower-sim/internal/event"
)

const maxLogLines = 8

// eventLog keeps the last few simulation events as text for the sidebar.
type eventLog struct {
	lines []string
}

func (l *eventLog) OnEvent(e event.Event) {
	l.add(describe(e))
}

func (l *eventLog) add(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > maxLogLines {
		l.lines = l.lines[len(l.lines)-maxLogLines:]
	}
}

func describe(e event.Event) string {
	switch d := e.Data.(type) {
	case event.TowerData:
		switch e.Type {
		case event.TowerSold:
			return fmt.Sprintf("sold %s +%dg", d.Kind, d.Gold)
		case event.TowerUpgraded:
			return fmt.Sprintf("%s -> L%d -%dg", d.Kind, d.Level, d.Gold)
		}
		return fmt.Sprintf("%s at %d,%d -%dg", d.Kind, d.TileX, d.TileY, d.Gold)
	case event.EnemyData:
		switch e.Type {
		case event.EnemyKilled:
			return fmt.Sprintf("%s #%d killed +%dg", d.Kind, d.EnemyID, d.Gold)
		case event.EnemyBreached:
			return fmt.Sprintf("%s #%d breached, %d lives", d.Kind, d.EnemyID, d.Lives)
		}
		return fmt.Sprintf("%s #%d spawned", d.Kind, d.EnemyID)
	case event.WaveData:
		switch e.Type {
		case event.WaveStarted:
			return fmt.Sprintf("wave %d: %d enemies", d.Wave, d.Enemies)
		case event.WaveCompleted:
			return fmt.Sprintf("wave %d cleared +%dg", d.Wave, d.Bonus)
		}
		return fmt.Sprintf("game over on wave %d", d.Wave)
	case event.RouteData:
		if d.Err != nil {
			return fmt.Sprintf("route invalid: %v", d.Err)
		}
		return fmt.Sprintf("route: %d points, %.0fpx", d.Waypoints, d.Length)
	}
	return string(e.Type)
}
