package domain

// RouteCandidate is one evaluated stop set: a concrete branch choice per
// chain brand plus all fixed stops, toured home -> stops -> home.
// IsEstimated is always populated: true when the totals come from the
// heuristic speed model, false when a live directions call succeeded.
type RouteCandidate struct {
	Stops                []Place `json:"stops"`
	VisitOrder           []Place `json:"visit_order"`
	TotalDistanceMeters  float64 `json:"total_distance_meters"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	IsEstimated          bool    `json:"is_estimated"`
}

// RankedResultSet is the final planner output: the best candidates by each
// single metric, both sorted ascending.
type RankedResultSet struct {
	ByTime     []RouteCandidate `json:"by_time"`
	ByDistance []RouteCandidate `json:"by_distance"`
}

// DirectionsResult is a concrete routed path from the directions provider.
type DirectionsResult struct {
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Path            []Coordinate `json:"path,omitempty"`
}

// PlaceQuery describes one place-search call.
type PlaceQuery struct {
	Keywords     string
	City         string
	Near         *Coordinate
	RadiusMeters int
}
