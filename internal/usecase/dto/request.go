package dto

// Point - a latitude/longitude pair as received from clients
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// ShopInput - one shop the user wants to visit
type ShopInput struct {
	ID                  string `json:"id"`
	Name                string `json:"name" validate:"required,min=1,max=100"`
	StayDurationMinutes int    `json:"stay_duration_minutes" validate:"omitempty,min=0,max=1440"`
}

// PlanRequest - a request to compute ranked multi-stop routes
type PlanRequest struct {
	Home       Point       `json:"home" validate:"required"`
	Shops      []ShopInput `json:"shops" validate:"required,min=1,max=10,dive"`
	TravelMode string      `json:"travel_mode" validate:"omitempty,oneof=DRIVING TRANSIT WALKING"`
	City       string      `json:"city,omitempty" validate:"omitempty,max=50"`
}

// FindShopsRequest - a keyword place search anchored near a point
type FindShopsRequest struct {
	Keywords     string `json:"keywords" validate:"required,min=1,max=100"`
	City         string `json:"city,omitempty" validate:"omitempty,max=50"`
	Near         *Point `json:"near,omitempty"`
	RadiusMeters int    `json:"radius_meters" validate:"omitempty,min=100,max=50000"`
}

// SaveTripRequest - a request to persist a named shop list
type SaveTripRequest struct {
	Name  string      `json:"name" validate:"required,min=1,max=100"`
	Shops []ShopInput `json:"shops" validate:"required,min=1,max=10,dive"`
}
