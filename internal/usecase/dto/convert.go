package dto

import (
	"strconv"

	"github.com/shopcrawl-service/internal/domain"
)

// ConvertPlace maps a domain place into its response form.
func ConvertPlace(p domain.Place) PlaceResult {
	return PlaceResult{
		ID:             p.ID,
		Name:           p.Name,
		Address:        p.Address,
		Lat:            p.Location.Latitude,
		Lon:            p.Location.Longitude,
		DistanceToHome: p.DistanceToHome,
	}
}

// ConvertRoute maps an evaluated candidate into its response form. The
// score is supplied by the caller since only the planner knows the weights.
func ConvertRoute(c domain.RouteCandidate, score float64) RouteResult {
	order := make([]PlaceResult, 0, len(c.VisitOrder))
	for _, stop := range c.VisitOrder {
		order = append(order, ConvertPlace(stop))
	}
	return RouteResult{
		VisitOrder:           order,
		TotalDistanceMeters:  c.TotalDistanceMeters,
		TotalDurationSeconds: c.TotalDurationSeconds,
		TotalDurationMinutes: c.TotalDurationSeconds / 60,
		IsEstimated:          c.IsEstimated,
		Score:                score,
	}
}

// ConvertTrip maps a stored trip into its response form.
func ConvertTrip(t domain.Trip) TripResponse {
	shops := make([]ShopInput, 0, len(t.Shops))
	for _, s := range t.Shops {
		shops = append(shops, ShopInput{
			ID:                  s.ID,
			Name:                s.Name,
			StayDurationMinutes: s.StayDurationMinutes,
		})
	}
	return TripResponse{
		ID:        t.ID,
		Name:      t.Name,
		Shops:     shops,
		CreatedAt: t.CreatedAt,
	}
}

// ShopsToDomain maps request shops into domain intents, assigning positional
// IDs where the client did not send one.
func ShopsToDomain(shops []ShopInput) []domain.ShopToVisit {
	out := make([]domain.ShopToVisit, 0, len(shops))
	for i, s := range shops {
		id := s.ID
		if id == "" {
			id = "shop-" + strconv.Itoa(i)
		}
		out = append(out, domain.ShopToVisit{
			ID:                  id,
			Name:                s.Name,
			StayDurationMinutes: s.StayDurationMinutes,
		})
	}
	return out
}
