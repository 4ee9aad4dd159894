// pkg/gridmap/route.go
package gridmap

import "go-tower-sim/pkg/utils"

// Route is an immutable polyline from spawn to goal.
// It is rebuilt, never edited, so enemies may keep a reference to an old one.
type Route struct {
	points     []utils.Vec2
	cumulative []float64 // cumulative[i] = distance from points[0] to points[i]
	length     float64
}

// NewRoute copies the waypoints and precomputes segment lengths.
func NewRoute(waypoints []utils.Vec2) *Route {
	r := &Route{
		points:     append([]utils.Vec2(nil), waypoints...),
		cumulative: make([]float64, len(waypoints)),
	}
	for i := 1; i < len(r.points); i++ {
		r.length += utils.Dist(r.points[i-1], r.points[i])
		r.cumulative[i] = r.length
	}
	return r
}

// Length is the total arc length in pixels.
func (r *Route) Length() float64 {
	return r.length
}

// Waypoints returns a copy of the polyline points.
func (r *Route) Waypoints() []utils.Vec2 {
	return append([]utils.Vec2(nil), r.points...)
}

// Len returns the number of waypoints.
func (r *Route) Len() int {
	return len(r.points)
}

// Start returns the first waypoint, or the zero vector for an empty route.
func (r *Route) Start() utils.Vec2 {
	if len(r.points) == 0 {
		return utils.Vec2{}
	}
	return r.points[0]
}

// End returns the last waypoint, or the zero vector for an empty route.
func (r *Route) End() utils.Vec2 {
	if len(r.points) == 0 {
		return utils.Vec2{}
	}
	return r.points[len(r.points)-1]
}

// PositionAt maps progress in [0,1] to a point along the route by arc length.
// Progress outside the range is clamped. Routes with fewer than two
// waypoints return their only point (or the zero vector).
func (r *Route) PositionAt(progress float64) utils.Vec2 {
	if len(r.points) < 2 {
		return r.Start()
	}
	progress = utils.Clamp01(progress)
	if progress == 0 {
		return r.points[0]
	}
	if progress == 1 || r.length == 0 {
		return r.End()
	}

	target := progress * r.length
	for i := 1; i < len(r.points); i++ {
		if target > r.cumulative[i] {
			continue
		}
		seg := r.cumulative[i] - r.cumulative[i-1]
		if seg == 0 {
			return r.points[i]
		}
		t := (target - r.cumulative[i-1]) / seg
		return utils.Lerp(r.points[i-1], r.points[i], t)
	}
	return r.End()
}
