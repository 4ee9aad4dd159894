// pkg/gridmap/pathfinding.go
package gridmap

import (
	"errors"

	"go-tower-sim/pkg/utils"
)

var (
	ErrNoSpawn      = errors.New("map has no spawn tile")
	ErrNoGoal       = errors.New("map has no goal tile")
	ErrDisconnected = errors.New("no traversable path from spawn to goal")
)

// Cell is an integer tile coordinate.
type Cell struct {
	X, Y int
}

// neighbour order is fixed so the search is reproducible
var directions = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

type node struct {
	Cell   Cell
	Parent *node
}

// ComputeRoute runs a breadth-first search from the spawn tile over route
// tiles and stores the result. On failure the route becomes nil and the
// error is kept for RouteErr.
func (g *Grid) ComputeRoute() (*Route, error) {
	cells, err := g.FindPath()
	if err != nil {
		g.route, g.routeErr = nil, err
		return nil, err
	}
	points := make([]utils.Vec2, 0, len(cells))
	for _, c := range compress(cells) {
		points = append(points, g.TileCenter(c.X, c.Y))
	}
	g.route, g.routeErr = NewRoute(points), nil
	return g.route, nil
}

// FindPath returns the tile path from spawn to goal, both inclusive.
// The search stops as soon as it dequeues the goal or a tile next to it.
func (g *Grid) FindPath() ([]Cell, error) {
	if g.spawn == nil {
		return nil, ErrNoSpawn
	}
	if g.goal == nil {
		return nil, ErrNoGoal
	}
	start := Cell{g.spawn[0], g.spawn[1]}
	goal := Cell{g.goal[0], g.goal[1]}

	visited := make([]bool, g.Width*g.Height)
	visited[start.Y*g.Width+start.X] = true
	queue := []*node{{Cell: start}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.Cell == goal {
			return reconstructPath(current), nil
		}
		if adjacent(current.Cell, goal) {
			return append(reconstructPath(current), goal), nil
		}

		for _, d := range directions {
			next := Cell{current.Cell.X + d.X, current.Cell.Y + d.Y}
			if !g.InBounds(next.X, next.Y) {
				continue
			}
			idx := next.Y*g.Width + next.X
			if visited[idx] || !g.tiles[idx].Type.Traversable() {
				continue
			}
			visited[idx] = true
			queue = append(queue, &node{Cell: next, Parent: current})
		}
	}
	return nil, ErrDisconnected
}

func adjacent(a, b Cell) bool {
	return utils.Abs(a.X-b.X)+utils.Abs(a.Y-b.Y) == 1
}

func reconstructPath(n *node) []Cell {
	var path []Cell
	for ; n != nil; n = n.Parent {
		path = append(path, n.Cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// compress drops cells in the middle of straight runs, keeping corners and both ends.
func compress(path []Cell) []Cell {
	if len(path) < 3 {
		return path
	}
	out := []Cell{path[0]}
	for i := 1; i < len(path)-1; i++ {
		prev, cur, next := path[i-1], path[i], path[i+1]
		d1 := Cell{cur.X - prev.X, cur.Y - prev.Y}
		d2 := Cell{next.X - cur.X, next.Y - cur.Y}
		if d1 != d2 {
			out = append(out, cur)
		}
	}
	return append(out, path[len(path)-1])
}
