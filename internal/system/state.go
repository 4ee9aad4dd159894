// internal/system/state.go
package system

import (
	"fmt"

	"go-tower-sim/internal/component"
)

// validTransitions is the wave lifecycle. GameOver is reachable from any
// phase and handled separately.
var validTransitions = map[component.Phase][]component.Phase{
	component.PhaseIdle:         {component.PhaseSpawning},
	component.PhaseSpawning:     {component.PhaseDraining},
	component.PhaseDraining:     {component.PhaseBetweenWaves},
	component.PhaseBetweenWaves: {component.PhaseSpawning, component.PhaseIdle},
}

// StateSystem owns the phase and the inter-wave cooldown.
type StateSystem struct {
	phase    component.Phase
	cooldown float64
}

func NewStateSystem() *StateSystem {
	return &StateSystem{phase: component.PhaseIdle}
}

func (s *StateSystem) Current() component.Phase {
	return s.phase
}

// CanTransition reports whether the lifecycle allows from -> to.
func (s *StateSystem) CanTransition(from, to component.Phase) bool {
	if from == component.PhaseGameOver {
		return false
	}
	if to == component.PhaseGameOver {
		return true
	}
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Transition moves to phase to, or fails without changing anything.
func (s *StateSystem) Transition(to component.Phase) error {
	if !s.CanTransition(s.phase, to) {
		return fmt.Errorf("invalid phase transition %s -> %s", s.phase, to)
	}
	s.phase = to
	if to != component.PhaseBetweenWaves {
		s.cooldown = 0
	}
	return nil
}

// SwitchToBetweenWaves starts the cooldown.
func (s *StateSystem) SwitchToBetweenWaves(cooldown float64) error {
	if err := s.Transition(component.PhaseBetweenWaves); err != nil {
		return err
	}
	s.cooldown = cooldown
	return nil
}

// Update counts the cooldown down and reports when it has run out.
func (s *StateSystem) Update(deltaTime float64) bool {
	if s.phase != component.PhaseBetweenWaves {
		return false
	}
	s.cooldown -= deltaTime
	if s.cooldown <= spawnEpsilon {
		s.cooldown = 0
		return true
	}
	return false
}

func (s *StateSystem) CooldownRemaining() float64 {
	return s.cooldown
}

// Restore sets phase and cooldown directly, bypassing the lifecycle.
func (s *StateSystem) Restore(phase component.Phase, cooldown float64) {
	s.phase = phase
	s.cooldown = cooldown
}

// Reset returns to Idle.
func (s *StateSystem) Reset() {
	s.phase = component.PhaseIdle
	s.cooldown = 0
}
