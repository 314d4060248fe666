package domain

// Coordinate is a WGS84 point. Latitude in [-90, 90], longitude in [-180, 180].
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TravelMode selects the speed model and the directions profile.
type TravelMode string

const (
	ModeDriving TravelMode = "DRIVING"
	ModeTransit TravelMode = "TRANSIT"
	ModeWalking TravelMode = "WALKING"
)

// ParseTravelMode maps a request string onto a known mode.
func ParseTravelMode(s string) (TravelMode, bool) {
	switch TravelMode(s) {
	case ModeDriving, ModeTransit, ModeWalking:
		return TravelMode(s), true
	}
	return "", false
}

// Place is a located point of interest returned by place search.
// DistanceToHome is computed by the planner, not authoritative provider data.
type Place struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Location       Coordinate `json:"location"`
	DistanceToHome float64    `json:"distance_to_home,omitempty"`
}
