// internal/event/types.go
package event

const (
	TowerPlaced   EventType = "TowerPlaced"   // TowerData
	TowerSold     EventType = "TowerSold"     // TowerData, Gold = refund
	TowerUpgraded EventType = "TowerUpgraded" // TowerData, Gold = cost
	WaveStarted   EventType = "WaveStarted"   // WaveData
	WaveCompleted EventType = "WaveCompleted" // WaveData, Bonus set
	EnemySpawned  EventType = "EnemySpawned"  // EnemyData
	EnemyKilled   EventType = "EnemyKilled"   // EnemyData, Gold = reward
	EnemyBreached EventType = "EnemyBreached" // EnemyData, Lives = remaining
	RouteChanged  EventType = "RouteChanged"  // RouteData
	RouteInvalid  EventType = "RouteInvalid"  // RouteData with Err
	GameOver      EventType = "GameOver"      // WaveData
)

type TowerData struct {
	TowerID uint64
	Kind    string
	TileX   int
	TileY   int
	Level   int
	Gold    int
}

type EnemyData struct {
	EnemyID uint64
	Kind    string
	Gold    int
	Lives   int
}

type WaveData struct {
	Wave    int
	Enemies int
	Bonus   int
}

type RouteData struct {
	Waypoints int
	Length    float64
	Err       error
}
