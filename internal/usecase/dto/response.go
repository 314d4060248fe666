package dto

import "time"

// PlaceResult - one located place in a response
type PlaceResult struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Address             string  `json:"address,omitempty"`
	Lat                 float64 `json:"lat"`
	Lon                 float64 `json:"lon"`
	DistanceToHome      float64 `json:"distance_to_home_meters,omitempty"`
	Brand               string  `json:"brand,omitempty"`
	Kind                string  `json:"kind,omitempty"`
	StayDurationMinutes int     `json:"stay_duration_minutes,omitempty"`
}

// RouteResult - one evaluated route candidate
type RouteResult struct {
	VisitOrder           []PlaceResult `json:"visit_order"`
	TotalDistanceMeters  float64       `json:"total_distance_meters"`
	TotalDurationSeconds float64       `json:"total_duration_seconds"`
	TotalDurationMinutes float64       `json:"total_duration_minutes"`
	IsEstimated          bool          `json:"is_estimated"`
	Score                float64       `json:"score"`
}

// PlanStats - how much work the planner did for one request
type PlanStats struct {
	CombinationsTotal     int   `json:"combinations_total"`
	CombinationsEvaluated int   `json:"combinations_evaluated"`
	Narrowed              bool  `json:"narrowed"`
	ElapsedMSec           int64 `json:"elapsed_msec"`
}

// PlanResponse - ranked route candidates for one plan request
type PlanResponse struct {
	TravelMode string        `json:"travel_mode"`
	Shops      []ShopInput   `json:"shops"`
	ByTime     []RouteResult `json:"by_time"`
	ByDistance []RouteResult `json:"by_distance"`
	Warnings   []string      `json:"warnings,omitempty"`
	Stats      PlanStats     `json:"stats"`
}

// FindShopsResponse - places found near the anchor point
type FindShopsResponse struct {
	Shops []PlaceResult `json:"shops"`
	Total int           `json:"total"`
}

// TripResponse - one saved trip
type TripResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Shops     []ShopInput `json:"shops"`
	CreatedAt time.Time   `json:"created_at"`
}

// TripListResponse - saved trips, newest first
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int            `json:"total"`
}
