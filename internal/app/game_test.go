package app

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math"
	"strings"
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/pkg/gridmap"
)

// 128px straight route on row 0, buildable row below
var testLayout = []string{
	"S===G",
	".....",
}

func newTestGame(t *testing.T, s *config.Settings, layout ...string) *Game {
	t.Helper()
	if s == nil {
		s = config.Default()
	}
	if len(layout) == 0 {
		layout = testLayout
	}
	g, err := NewGame(s, layout)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.SetLogger(log.New(io.Discard, "", 0))
	return g
}

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(g *Game) *recorder {
	r := &recorder{}
	g.Events().SubscribeAll(r)
	return r
}

// addEnemy puts an enemy of kind on the current route at progress.
func addEnemy(g *Game, kind defs.EnemyKind, progress float64) *entity.Enemy {
	route := g.grid.Route()
	e := entity.NewEnemy(g.settings.Enemies[kind], route, g.settings.KnightRallyBoost)
	e.Progress = progress
	e.Pos = route.PositionAt(progress)
	g.world.AddEnemy(e)
	return e
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, nil)
	if g.Gold() != 100 || g.Lives() != 20 || g.Wave() != 0 {
		t.Errorf("Expected 100 gold, 20 lives, wave 0, got %d, %d, %d", g.Gold(), g.Lives(), g.Wave())
	}
	if g.Phase() != component.PhaseIdle {
		t.Errorf("Expected Idle, got %s", g.Phase())
	}
	if g.Route() == nil || g.Route().Length() != 128 {
		t.Errorf("Expected a 128px route, got %v", g.Route())
	}
}

func TestNewGameRejectsBadInput(t *testing.T) {
	if _, err := NewGame(nil, testLayout); err == nil {
		t.Errorf("Expected error for nil settings")
	}
	bad := config.Default()
	bad.TickRate = 0
	if _, err := NewGame(bad, testLayout); err == nil {
		t.Errorf("Expected error for invalid settings")
	}
	if _, err := NewGame(config.Default(), []string{"S=?=G"}); err == nil {
		t.Errorf("Expected error for unparsable layout")
	}
}

func TestPlaceTower(t *testing.T) {
	g := newTestGame(t, nil)
	r := listen(g)

	tower, err := g.PlaceTower(defs.TowerArcher, 1, 1)
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if g.Gold() != 50 {
		t.Errorf("Expected 50 gold, got %d", g.Gold())
	}
	if len(g.Towers()) != 1 || tower.Level != 1 {
		t.Errorf("Expected one level 1 tower, got %d towers", len(g.Towers()))
	}
	tower.Level = 5
	tower.Selected = true
	if live := g.Towers()[0]; live.Level != 1 || live.Selected {
		t.Errorf("Expected the returned tower to be a copy, got level %d selected=%v in the game", live.Level, live.Selected)
	}
	if r.count(event.TowerPlaced) != 1 {
		t.Errorf("Expected one TowerPlaced event, got %d", r.count(event.TowerPlaced))
	}

	if _, err := g.PlaceTower(defs.TowerArcher, 1, 1); !errors.Is(err, ErrTileOccupied) {
		t.Errorf("Expected ErrTileOccupied, got %v", err)
	}
	if g.Gold() != 50 || len(g.Towers()) != 1 {
		t.Errorf("Expected failed placement to change nothing, got %d gold, %d towers", g.Gold(), len(g.Towers()))
	}
}

func TestPlaceTowerErrors(t *testing.T) {
	tests := []struct {
		name string
		kind defs.TowerKind
		x, y int
		want error
	}{
		{"route tile", defs.TowerArcher, 1, 0, ErrNotBuildable},
		{"spawn tile", defs.TowerArcher, 0, 0, ErrNotBuildable},
		{"out of bounds", defs.TowerArcher, 9, 9, ErrNotBuildable},
		{"unknown kind", defs.TowerKind("CATAPULT"), 1, 1, ErrUnknownTowerKind},
		{"too expensive", defs.TowerArtillery, 1, 1, ErrInsufficientGold},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := config.Default()
			s.StartingGold = 60
			g := newTestGame(t, s)
			if _, err := g.PlaceTower(tc.kind, tc.x, tc.y); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
			if g.Gold() != 60 {
				t.Errorf("Expected gold unchanged, got %d", g.Gold())
			}
		})
	}
}

func TestSellTower(t *testing.T) {
	g := newTestGame(t, nil)
	if _, err := g.PlaceTower(defs.TowerArcher, 1, 1); err != nil {
		t.Fatal(err)
	}

	if refund := g.SellTower(48, 48); refund != 37 {
		t.Errorf("Expected refund floor(0.75*50) = 37, got %d", refund)
	}
	if g.Gold() != 87 || len(g.Towers()) != 0 {
		t.Errorf("Expected 87 gold and no towers, got %d and %d", g.Gold(), len(g.Towers()))
	}
	if refund := g.SellTower(48, 48); refund != 0 {
		t.Errorf("Expected second sell to return 0, got %d", refund)
	}
	if refund := g.SellTower(-5, 900); refund != 0 {
		t.Errorf("Expected sell outside the map to return 0, got %d", refund)
	}

	// the tile is free again
	if _, err := g.PlaceTower(defs.TowerArcher, 1, 1); err != nil {
		t.Errorf("Expected tile to be buildable after selling, got %v", err)
	}
}

func TestUpgradeTower(t *testing.T) {
	g := newTestGame(t, nil)
	tower, err := g.PlaceTower(defs.TowerArcher, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.UpgradeTower(1, 1); err != nil {
		t.Fatalf("UpgradeTower: %v", err)
	}
	if lvl := g.Towers()[0].Level; g.Gold() != 20 || lvl != 2 {
		t.Errorf("Expected 20 gold and level 2, got %d and %d", g.Gold(), lvl)
	}
	if err := g.UpgradeTowerByID(tower.ID); !errors.Is(err, ErrMaxLevel) {
		t.Errorf("Expected ErrMaxLevel, got %v", err)
	}
	if err := g.UpgradeTower(3, 1); !errors.Is(err, ErrNoTower) {
		t.Errorf("Expected ErrNoTower, got %v", err)
	}
	// selling refunds the base cost only
	if refund := g.SellTower(48, 48); refund != 37 {
		t.Errorf("Expected refund 37 for upgraded tower, got %d", refund)
	}
}

func TestUpgradeTowerInsufficientGold(t *testing.T) {
	s := config.Default()
	s.StartingGold = 60
	g := newTestGame(t, s)
	if _, err := g.PlaceTower(defs.TowerArcher, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.UpgradeTower(1, 1); !errors.Is(err, ErrInsufficientGold) {
		t.Errorf("Expected ErrInsufficientGold, got %v", err)
	}
	if g.Gold() != 10 {
		t.Errorf("Expected gold unchanged at 10, got %d", g.Gold())
	}
}

func TestSelectTowerAt(t *testing.T) {
	g := newTestGame(t, nil)
	g.PlaceTower(defs.TowerArcher, 1, 1)
	if !g.SelectTowerAt(1, 1) {
		t.Fatalf("Expected tower at (1,1) to be selected")
	}
	if !g.Towers()[0].Selected {
		t.Errorf("Expected Selected flag set")
	}
	if g.SelectTowerAt(2, 1) {
		t.Errorf("Expected no tower at (2,1)")
	}
	if g.Towers()[0].Selected {
		t.Errorf("Expected selection cleared")
	}
}

func TestKillBeatsBreach(t *testing.T) {
	g := newTestGame(t, nil)
	r := listen(g)

	e := addEnemy(g, defs.EnemyGoblin, 0.999)
	e.Health = 10
	g.world.AddProjectile(&entity.Projectile{
		Target:     e,
		Pos:        e.Pos,
		Damage:     10,
		DamageType: defs.DamageExplosive,
		Speed:      g.settings.ProjectileSpeed,
		Active:     true,
	})

	g.Tick(0.1)

	if g.Lives() != 20 {
		t.Errorf("Expected no life lost, got %d lives", g.Lives())
	}
	if g.Gold() != 105 {
		t.Errorf("Expected kill reward, got %d gold", g.Gold())
	}
	if r.count(event.EnemyKilled) != 1 || r.count(event.EnemyBreached) != 0 {
		t.Errorf("Expected one kill and no breach, got %d and %d", r.count(event.EnemyKilled), r.count(event.EnemyBreached))
	}
	if len(g.Enemies()) != 0 || len(g.Projectiles()) != 0 {
		t.Errorf("Expected field cleared, got %d enemies, %d projectiles", len(g.Enemies()), len(g.Projectiles()))
	}
	if st := g.Stats(); st.Kills != 1 || st.DamageDealt != 10 {
		t.Errorf("Expected 1 kill and 10 damage, got %+v", st)
	}
}

func TestBreachCostsOneLife(t *testing.T) {
	g := newTestGame(t, nil)
	addEnemy(g, defs.EnemyGoblin, 0.999)
	addEnemy(g, defs.EnemyKnight, 0.2)

	g.Tick(0.1)

	if g.Lives() != 19 {
		t.Errorf("Expected 19 lives, got %d", g.Lives())
	}
	if g.Gold() != 100 {
		t.Errorf("Expected no gold for a breach, got %d", g.Gold())
	}
	if len(g.Enemies()) != 1 || g.Enemies()[0].Kind != defs.EnemyKnight {
		t.Errorf("Expected only the knight left, got %v", g.Enemies())
	}
}

func TestGameOver(t *testing.T) {
	s := config.Default()
	s.StartingLives = 1
	g := newTestGame(t, s)
	r := listen(g)
	addEnemy(g, defs.EnemyGoblin, 0.999)

	g.Tick(0.1)

	if !g.IsGameOver() || g.Lives() != 0 {
		t.Fatalf("Expected game over with 0 lives, got %s with %d", g.Phase(), g.Lives())
	}
	if r.count(event.GameOver) != 1 {
		t.Errorf("Expected one GameOver event, got %d", r.count(event.GameOver))
	}

	clock := g.Clock()
	g.Tick(0.1)
	if g.Clock() != clock {
		t.Errorf("Expected no ticks after game over, clock moved to %v", g.Clock())
	}
	if _, err := g.PlaceTower(defs.TowerArcher, 1, 1); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver from PlaceTower, got %v", err)
	}
	if err := g.StartNextWave(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Expected ErrGameOver from StartNextWave, got %v", err)
	}
}

func TestWaveSpawnsAtStart(t *testing.T) {
	s := config.Default()
	s.SpawnInterval = 0.001
	g := newTestGame(t, s)
	g.wave = 2

	if err := g.StartNextWave(); err != nil {
		t.Fatalf("StartNextWave: %v", err)
	}
	if g.Wave() != 3 || g.Phase() != component.PhaseSpawning {
		t.Fatalf("Expected wave 3 spawning, got %d %s", g.Wave(), g.Phase())
	}
	if err := g.StartNextWave(); !errors.Is(err, ErrWaveInProgress) {
		t.Errorf("Expected ErrWaveInProgress, got %v", err)
	}

	g.Tick(1.0 / 60)

	// 5 * (1 + 3/3) = 10, 70% goblins
	goblins, knights := 0, 0
	for _, e := range g.Enemies() {
		switch e.Kind {
		case defs.EnemyGoblin:
			goblins++
		case defs.EnemyKnight:
			knights++
		}
		if e.Progress != 0 || e.Pos != g.Route().Start() {
			t.Errorf("Expected enemy %d at spawn with progress 0, got %v at %v", e.ID, e.Progress, e.Pos)
		}
	}
	if goblins != 7 || knights != 3 {
		t.Errorf("Expected 7 goblins and 3 knights, got %d and %d", goblins, knights)
	}
	if g.PendingSpawns() != 0 || g.Phase() != component.PhaseDraining {
		t.Errorf("Expected drained queue, got %d pending in %s", g.PendingSpawns(), g.Phase())
	}
}

func TestWaveLifecycle(t *testing.T) {
	s := config.Default()
	s.EnemiesPerGroup = 1
	s.GoblinPercent = 100
	s.WaveCooldown = 0.5
	g := newTestGame(t, s)
	r := listen(g)

	if err := g.StartNextWave(); err != nil {
		t.Fatal(err)
	}
	g.Tick(0.1)
	if len(g.Enemies()) != 1 || g.Phase() != component.PhaseDraining {
		t.Fatalf("Expected one enemy while draining, got %d in %s", len(g.Enemies()), g.Phase())
	}

	g.world.Enemies[0].Health = 0
	g.Tick(0.1)

	if g.Phase() != component.PhaseBetweenWaves {
		t.Fatalf("Expected BetweenWaves, got %s", g.Phase())
	}
	if g.Gold() != 130 {
		t.Errorf("Expected 100 + 5 reward + 25 bonus, got %d", g.Gold())
	}
	if r.count(event.WaveCompleted) != 1 {
		t.Errorf("Expected one WaveCompleted event, got %d", r.count(event.WaveCompleted))
	}
	if g.CooldownRemaining() != 0.5 {
		t.Errorf("Expected full cooldown, got %v", g.CooldownRemaining())
	}

	g.Tick(0.3)
	if g.Wave() != 1 {
		t.Errorf("Expected cooldown still running on wave 1, got wave %d", g.Wave())
	}
	g.Tick(0.3)
	if g.Wave() != 2 || g.Phase() != component.PhaseSpawning {
		t.Errorf("Expected wave 2 to auto-start, got %d in %s", g.Wave(), g.Phase())
	}
	if r.count(event.WaveStarted) != 2 {
		t.Errorf("Expected two WaveStarted events, got %d", r.count(event.WaveStarted))
	}
}

func TestWaveWaitsForPendingSpawns(t *testing.T) {
	s := config.Default()
	s.EnemiesPerGroup = 2
	s.GoblinPercent = 100
	s.SpawnInterval = 1
	g := newTestGame(t, s)
	r := listen(g)

	if err := g.StartNextWave(); err != nil {
		t.Fatal(err)
	}
	g.Tick(0.1)
	if len(g.Enemies()) != 1 || g.PendingSpawns() != 1 {
		t.Fatalf("Expected one enemy out and one queued, got %d and %d", len(g.Enemies()), g.PendingSpawns())
	}

	// the field is empty but the queue is not
	g.world.Enemies[0].Health = 0
	g.Tick(0.1)
	if len(g.Enemies()) != 0 {
		t.Fatalf("Expected the goblin removed, got %d enemies", len(g.Enemies()))
	}
	if g.Phase() != component.PhaseSpawning || r.count(event.WaveCompleted) != 0 {
		t.Errorf("Expected the wave still spawning, got %s with %d completions", g.Phase(), r.count(event.WaveCompleted))
	}

	for i := 0; i < 9 && g.PendingSpawns() > 0; i++ {
		g.Tick(0.1)
	}
	if len(g.Enemies()) != 1 || g.Phase() != component.PhaseDraining {
		t.Errorf("Expected the second goblin draining, got %d enemies in %s", len(g.Enemies()), g.Phase())
	}
}

func TestWaveLogsUseGameLogger(t *testing.T) {
	g := newTestGame(t, nil)
	var buf bytes.Buffer
	g.SetLogger(log.New(&buf, "", 0))

	if err := g.StartNextWave(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Wave 1 queued") {
		t.Errorf("Expected the queue message in the game log, got %q", buf.String())
	}

	buf.Reset()
	g.Reset()
	g.StartNextWave()
	if !strings.Contains(buf.String(), "Wave 1 queued") {
		t.Errorf("Expected the logger to survive Reset, got %q", buf.String())
	}
}

func TestStartNextWaveSkipsCooldown(t *testing.T) {
	s := config.Default()
	s.EnemiesPerGroup = 1
	s.GoblinPercent = 100
	g := newTestGame(t, s)
	g.StartNextWave()
	g.Tick(0.1)
	g.world.Enemies[0].Health = 0
	g.Tick(0.1)
	if g.Phase() != component.PhaseBetweenWaves {
		t.Fatalf("Expected BetweenWaves, got %s", g.Phase())
	}
	if err := g.StartNextWave(); err != nil {
		t.Fatalf("StartNextWave during cooldown: %v", err)
	}
	if g.Wave() != 2 || g.CooldownRemaining() != 0 {
		t.Errorf("Expected wave 2 with no cooldown, got %d and %v", g.Wave(), g.CooldownRemaining())
	}
}

func TestStartNextWaveWithoutRoute(t *testing.T) {
	g := newTestGame(t, nil, "S=#=G")
	r := listen(g)

	err := g.StartNextWave()
	if !errors.Is(err, ErrNoRoute) {
		t.Fatalf("Expected ErrNoRoute, got %v", err)
	}
	if !errors.Is(err, gridmap.ErrDisconnected) {
		t.Errorf("Expected the route error to be wrapped, got %v", err)
	}
	if g.Wave() != 0 || g.Phase() != component.PhaseIdle {
		t.Errorf("Expected wave 0 and Idle, got %d and %s", g.Wave(), g.Phase())
	}
	if r.count(event.RouteInvalid) != 1 {
		t.Errorf("Expected RouteInvalid event, got %d", r.count(event.RouteInvalid))
	}

	if err := g.SetTileType(2, 0, gridmap.TileRoute); err != nil {
		t.Fatal(err)
	}
	if r.count(event.RouteChanged) != 1 {
		t.Errorf("Expected RouteChanged event, got %d", r.count(event.RouteChanged))
	}
	if err := g.StartNextWave(); err != nil {
		t.Errorf("Expected wave to start after fixing the map, got %v", err)
	}
}

func TestSetTileType(t *testing.T) {
	g := newTestGame(t, nil)
	r := listen(g)

	if err := g.SetTileType(2, 0, gridmap.TileObstacle); err != nil {
		t.Fatal(err)
	}
	if g.Route() != nil || !errors.Is(g.RouteErr(), gridmap.ErrDisconnected) {
		t.Errorf("Expected no route, got %v", g.RouteErr())
	}
	if err := g.SetTileType(2, 0, gridmap.TileObstacle); err != nil {
		t.Fatal(err)
	}
	if r.count(event.RouteInvalid) != 1 {
		t.Errorf("Expected the repeated edit to be silent, got %d RouteInvalid", r.count(event.RouteInvalid))
	}

	if _, err := g.PlaceTower(defs.TowerArcher, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.SetTileType(1, 1, gridmap.TileObstacle); !errors.Is(err, gridmap.ErrTileOccupied) {
		t.Errorf("Expected ErrTileOccupied, got %v", err)
	}
}

func TestWalkingEnemiesKeepRoute(t *testing.T) {
	g := newTestGame(t, nil, "S===G", "=...=", "=====")
	e := addEnemy(g, defs.EnemyGoblin, 0.1)
	old := g.Route()

	if err := g.SetTileType(2, 0, gridmap.TileObstacle); err != nil {
		t.Fatal(err)
	}
	if g.Route() == old || g.Route() == nil {
		t.Fatalf("Expected a new detour route")
	}
	g.Tick(0.1)
	if e.Route != old {
		t.Errorf("Expected walking enemy to keep its route")
	}
}

func TestPauseAndSpeed(t *testing.T) {
	g := newTestGame(t, nil)

	g.SetPaused(true)
	g.Tick(0.1)
	if g.Clock() != 0 || !g.IsPaused() {
		t.Errorf("Expected paused game to ignore ticks, clock %v", g.Clock())
	}
	g.SetPaused(false)

	if err := g.SetSpeedMultiplier(3); !errors.Is(err, ErrInvalidSpeed) {
		t.Errorf("Expected ErrInvalidSpeed, got %v", err)
	}
	if err := g.SetSpeedMultiplier(2); err != nil {
		t.Fatal(err)
	}
	g.Tick(0.1)
	if math.Abs(g.Clock()-0.2) > 1e-9 {
		t.Errorf("Expected 2x speed to advance 0.2, got %v", g.Clock())
	}
}

func TestArcherDefendsWave(t *testing.T) {
	s := config.Default()
	s.EnemiesPerGroup = 1
	s.GoblinPercent = 100
	g := newTestGame(t, s)
	if _, err := g.PlaceTower(defs.TowerArcher, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.StartNextWave(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 240; i++ {
		g.Tick(1.0 / 60)
	}

	st := g.Stats()
	if st.Kills != 1 || st.Breaches != 0 {
		t.Errorf("Expected the goblin to be killed, got %+v", st)
	}
	if st.DamageDealt != 30 {
		t.Errorf("Expected 30 damage (two 15-damage arrows), got %d", st.DamageDealt)
	}
	if g.Lives() != 20 || g.Gold() != 80 {
		t.Errorf("Expected 20 lives and 80 gold, got %d and %d", g.Lives(), g.Gold())
	}
	if g.Phase() != component.PhaseBetweenWaves {
		t.Errorf("Expected BetweenWaves, got %s", g.Phase())
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t, nil)
	session := g.SessionID
	g.PlaceTower(defs.TowerArcher, 1, 1)
	g.SetTileType(2, 0, gridmap.TileObstacle)
	g.Tick(0.1)

	g.Reset()

	if g.SessionID == session {
		t.Errorf("Expected a new session ID")
	}
	if g.Gold() != 100 || g.Wave() != 0 || g.Clock() != 0 || len(g.Towers()) != 0 {
		t.Errorf("Expected fresh state, got gold %d wave %d clock %v towers %d", g.Gold(), g.Wave(), g.Clock(), len(g.Towers()))
	}
	if g.Route() == nil {
		t.Errorf("Expected the original map back, got %v", g.RouteErr())
	}
	if _, err := g.PlaceTower(defs.TowerArcher, 1, 1); err != nil {
		t.Errorf("Expected tile (1,1) free after reset, got %v", err)
	}
}
