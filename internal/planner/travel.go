package planner

import "github.com/shopcrawl-service/internal/domain"

// Effective urban speeds in meters per minute. Driving assumes ~30 km/h
// after congestion derating, transit includes waiting and transfers,
// walking is derated for crossings. These are heuristic fallbacks only:
// a successful directions call always supersedes them.
type Speeds struct {
	DrivingMetersPerMinute float64
	TransitMetersPerMinute float64
	WalkingMetersPerMinute float64
}

func DefaultSpeeds() Speeds {
	return Speeds{
		DrivingMetersPerMinute: 500,
		TransitMetersPerMinute: 300,
		WalkingMetersPerMinute: 70,
	}
}

// TravelMinutes converts a distance into an estimated duration for the mode.
func (s Speeds) TravelMinutes(distanceMeters float64, mode domain.TravelMode) float64 {
	switch mode {
	case domain.ModeDriving:
		return distanceMeters / s.DrivingMetersPerMinute
	case domain.ModeTransit:
		return distanceMeters / s.TransitMetersPerMinute
	default:
		return distanceMeters / s.WalkingMetersPerMinute
	}
}
