// internal/component/game_state.go
package component

// Phase is the wave lifecycle state of a game.
type Phase int

const (
	PhaseIdle         Phase = iota // no wave running, waiting for StartNextWave
	PhaseSpawning                  // pending queue still releasing enemies
	PhaseDraining                  // queue empty, enemies still on the field
	PhaseBetweenWaves              // cooldown before the next wave
	PhaseGameOver                  // terminal
)

var phaseNames = [...]string{"Idle", "Spawning", "Draining", "BetweenWaves", "GameOver"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// WaveActive is true while enemies of the current wave are still coming or alive.
func (p Phase) WaveActive() bool {
	return p == PhaseSpawning || p == PhaseDraining
}

// ParsePhase is the inverse of String.
func ParsePhase(s string) (Phase, bool) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), true
		}
	}
	return PhaseIdle, false
}
