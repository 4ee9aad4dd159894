// internal/component/wave.go
package component

import "go-tower-sim/internal/defs"

// Wave is the spawn state of the wave in progress.
type Wave struct {
	Number        int
	Total         int
	Pending       []defs.EnemyKind // FIFO, front spawns next
	SpawnTimer    float64
	SpawnInterval float64
}

// Drained reports whether every enemy of the wave has been released.
func (w *Wave) Drained() bool {
	return len(w.Pending) == 0
}
