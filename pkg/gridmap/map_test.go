package gridmap

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"S==", "=="}},
		{"unknown rune", []string{"S=x=G"}},
		{"two spawns", []string{"S=S=G"}},
		{"two goals", []string{"S=G=G"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.layout, 10); err == nil {
				t.Errorf("Expected error for layout %q", tc.layout)
			}
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	layout := []string{
		"S==#~",
		"..=..",
		"..==G",
	}
	g := mustParse(t, layout...)
	if got := g.Layout(); !reflect.DeepEqual(got, layout) {
		t.Errorf("Expected %q, got %q", layout, got)
	}
}

func TestSetTileRecomputesRoute(t *testing.T) {
	g := mustParse(t, "S===G")

	changed, err := g.SetTile(2, 0, TileObstacle)
	if err != nil || !changed {
		t.Fatalf("SetTile obstacle = %v, %v", changed, err)
	}
	if g.HasRoute() || !errors.Is(g.RouteErr(), ErrDisconnected) {
		t.Fatalf("Expected disconnected route, got %v", g.RouteErr())
	}

	changed, err = g.SetTile(2, 0, TileRoute)
	if err != nil || !changed {
		t.Fatalf("SetTile route = %v, %v", changed, err)
	}
	if !g.HasRoute() {
		t.Fatalf("Expected route to be restored, got %v", g.RouteErr())
	}
}

func TestSetTileIdempotent(t *testing.T) {
	g := mustParse(t,
		"S=..",
		".==G",
	)
	if _, err := g.SetTile(2, 0, TileRoute); err != nil {
		t.Fatal(err)
	}
	once := g.Route().Waypoints()

	changed, err := g.SetTile(2, 0, TileRoute)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Errorf("Expected second identical SetTile to be a no-op")
	}
	if !reflect.DeepEqual(once, g.Route().Waypoints()) {
		t.Errorf("Expected same route, got %v then %v", once, g.Route().Waypoints())
	}
}

func TestSetTileNoRecomputeForDecoration(t *testing.T) {
	g := mustParse(t, "S===G", ".....")
	before := g.Route()
	changed, err := g.SetTile(0, 1, TileDecoration)
	if err != nil {
		t.Fatal(err)
	}
	if changed || g.Route() != before {
		t.Errorf("Expected route untouched by a non-traversable change")
	}
}

func TestSetTileMovesSpawnAndGoal(t *testing.T) {
	g := mustParse(t, "S===G")

	if _, err := g.SetTile(1, 0, TileSpawn); err != nil {
		t.Fatal(err)
	}
	if tile, _ := g.Tile(0, 0); tile.Type != TileBuildable {
		t.Errorf("Expected old spawn to become buildable, got %v", tile.Type)
	}
	if x, y, ok := g.Spawn(); !ok || x != 1 || y != 0 {
		t.Errorf("Expected spawn at (1,0), got (%d,%d,%v)", x, y, ok)
	}
	if g.Route().Start() != g.TileCenter(1, 0) {
		t.Errorf("Expected route to start at new spawn, got %v", g.Route().Start())
	}

	if _, err := g.SetTile(3, 0, TileGoal); err != nil {
		t.Fatal(err)
	}
	if tile, _ := g.Tile(4, 0); tile.Type != TileBuildable {
		t.Errorf("Expected old goal to become buildable, got %v", tile.Type)
	}
	if g.Route().End() != g.TileCenter(3, 0) {
		t.Errorf("Expected route to end at new goal, got %v", g.Route().End())
	}

	// painting over the spawn removes it
	if _, err := g.SetTile(1, 0, TileRoute); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := g.Spawn(); ok {
		t.Errorf("Expected spawn to be cleared")
	}
	if !errors.Is(g.RouteErr(), ErrNoSpawn) {
		t.Errorf("Expected ErrNoSpawn, got %v", g.RouteErr())
	}
}

func TestSetTileErrors(t *testing.T) {
	g := mustParse(t, "S===G", ".....")

	if _, err := g.SetTile(9, 9, TileRoute); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if _, err := g.SetTile(0, 1, TileType(42)); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("Expected ErrInvalidTile, got %v", err)
	}

	g.SetOccupied(1, 1, true)
	if _, err := g.SetTile(1, 1, TileObstacle); !errors.Is(err, ErrTileOccupied) {
		t.Errorf("Expected ErrTileOccupied, got %v", err)
	}
	if tile, _ := g.Tile(1, 1); tile.Type != TileBuildable {
		t.Errorf("Expected tile unchanged, got %v", tile.Type)
	}
}

func TestCanPlaceTower(t *testing.T) {
	g := mustParse(t, "S=#G", "..~.")

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 1, true},
		{1, 0, false}, // route
		{2, 0, false}, // obstacle
		{2, 1, false}, // decoration
		{-1, 0, false},
		{4, 0, false},
	}
	for _, tc := range tests {
		if got := g.CanPlaceTower(tc.x, tc.y); got != tc.want {
			t.Errorf("CanPlaceTower(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}

	g.SetOccupied(0, 1, true)
	if g.CanPlaceTower(0, 1) {
		t.Errorf("Expected occupied tile to reject a tower")
	}
}

func TestPixelToTile(t *testing.T) {
	g := New(4, 3, 32)

	tests := []struct {
		px, py float64
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{31.9, 33, 0, 1, true},
		{127, 95, 3, 2, true},
		{128, 10, 4, 0, false},
		{-1, 10, 0, 0, false},
	}
	for _, tc := range tests {
		x, y, ok := g.PixelToTile(tc.px, tc.py)
		if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
			t.Errorf("PixelToTile(%v,%v) = (%d,%d,%v), want (%d,%d,%v)", tc.px, tc.py, x, y, ok, tc.x, tc.y, tc.ok)
		}
	}
}

func TestParseTileType(t *testing.T) {
	for _, s := range []string{"route", "="} {
		tt, err := ParseTileType(s)
		if err != nil || tt != TileRoute {
			t.Errorf("ParseTileType(%q) = %v, %v", s, tt, err)
		}
	}
	if _, err := ParseTileType("lava"); err == nil {
		t.Errorf("Expected error for unknown tile")
	}
}
