// internal/snapshot/records.go
package snapshot

// Version is bumped whenever a record changes incompatibly.
const Version = 1

// State is a full simulation snapshot as plain data.
type State struct {
	Version   int      `json:"version" msgpack:"version"`
	SessionID string   `json:"session_id" msgpack:"session_id"`
	Layout    []string `json:"layout" msgpack:"layout"`

	Gold     int     `json:"gold" msgpack:"gold"`
	Lives    int     `json:"lives" msgpack:"lives"`
	Wave     int     `json:"wave" msgpack:"wave"`
	Phase    string  `json:"phase" msgpack:"phase"`
	Cooldown float64 `json:"cooldown" msgpack:"cooldown"`
	Clock    float64 `json:"clock" msgpack:"clock"`
	Paused   bool    `json:"paused" msgpack:"paused"`
	Speed    int     `json:"speed" msgpack:"speed"`
	NextID   uint64  `json:"next_id" msgpack:"next_id"`

	Towers      []TowerRecord      `json:"towers" msgpack:"towers"`
	Enemies     []EnemyRecord      `json:"enemies" msgpack:"enemies"`
	Projectiles []ProjectileRecord `json:"projectiles" msgpack:"projectiles"`
	CurrentWave *WaveRecord        `json:"current_wave,omitempty" msgpack:"current_wave,omitempty"`
	Stats       StatsRecord        `json:"stats" msgpack:"stats"`
}

type TowerRecord struct {
	ID        uint64  `json:"id" msgpack:"id"`
	Kind      string  `json:"kind" msgpack:"kind"`
	TileX     int     `json:"tile_x" msgpack:"tile_x"`
	TileY     int     `json:"tile_y" msgpack:"tile_y"`
	Level     int     `json:"level" msgpack:"level"`
	LastFired float64 `json:"last_fired" msgpack:"last_fired"`
	HasFired  bool    `json:"has_fired" msgpack:"has_fired"`
	Selected  bool    `json:"selected,omitempty" msgpack:"selected,omitempty"`
}

type EnemyRecord struct {
	ID        uint64  `json:"id" msgpack:"id"`
	Kind      string  `json:"kind" msgpack:"kind"`
	Health    int     `json:"health" msgpack:"health"`
	MaxHealth int     `json:"max_health" msgpack:"max_health"`
	Speed     float64 `json:"speed" msgpack:"speed"`
	Reward    int     `json:"reward" msgpack:"reward"`
	Progress  float64 `json:"progress" msgpack:"progress"`
}

type ProjectileRecord struct {
	ID           uint64  `json:"id" msgpack:"id"`
	TowerID      uint64  `json:"tower_id" msgpack:"tower_id"`
	TargetID     uint64  `json:"target_id" msgpack:"target_id"`
	X            float64 `json:"x" msgpack:"x"`
	Y            float64 `json:"y" msgpack:"y"`
	Damage       int     `json:"damage" msgpack:"damage"`
	DamageType   string  `json:"damage_type" msgpack:"damage_type"`
	Speed        float64 `json:"speed" msgpack:"speed"`
	SplashRadius float64 `json:"splash_radius,omitempty" msgpack:"splash_radius,omitempty"`
}

type WaveRecord struct {
	Number        int      `json:"number" msgpack:"number"`
	Total         int      `json:"total" msgpack:"total"`
	Pending       []string `json:"pending" msgpack:"pending"`
	SpawnTimer    float64  `json:"spawn_timer" msgpack:"spawn_timer"`
	SpawnInterval float64  `json:"spawn_interval" msgpack:"spawn_interval"`
}

type StatsRecord struct {
	Kills       int `json:"kills" msgpack:"kills"`
	Breaches    int `json:"breaches" msgpack:"breaches"`
	ShotsFired  int `json:"shots_fired" msgpack:"shots_fired"`
	DamageDealt int `json:"damage_dealt" msgpack:"damage_dealt"`
	GoldEarned  int `json:"gold_earned" msgpack:"gold_earned"`
}
