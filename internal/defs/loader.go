// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a tower configuration file and returns the library keyed by kind.
func LoadTowerDefinitions(path string) (map[TowerKind]TowerDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	library := make(map[TowerKind]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("invalid tower definition in %s: %w", path, err)
		}
		library[def.ID] = def
	}

	return library, nil
}

// LoadEnemyDefinitions reads an enemy configuration file and returns the library keyed by kind.
func LoadEnemyDefinitions(path string) (map[EnemyKind]EnemyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[EnemyKind]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("invalid enemy definition in %s: %w", path, err)
		}
		library[def.ID] = def
	}

	return library, nil
}
