package amap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopcrawl-service/internal/config"
	"github.com/shopcrawl-service/internal/domain"
)

// Client talks to the AMap (Gaode) Web Service API. It serves both place
// search and point-to-point directions.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	city       string
	logger     *zap.Logger
}

// NewClient creates a new client for the AMap Web Service API
func NewClient(cfg *config.AMapConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		key:     cfg.Key,
		city:    cfg.City,
		logger:  logger,
	}
}

// apiStatus is the envelope every AMap response carries. Status "1" means
// success; anything else is an error described by Info.
type apiStatus struct {
	Status string `json:"status"`
	Info   string `json:"info"`
}

func (s apiStatus) ok() bool {
	return s.Status == "1"
}

// flexString tolerates AMap's habit of returning "[]" instead of "" for
// absent string fields.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = flexString(s)
	return nil
}

type poi struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Address  flexString `json:"address"`
	Location string     `json:"location"`
}

type searchResponse struct {
	apiStatus
	Count string `json:"count"`
	POIs  []poi  `json:"pois"`
}

// Search queries AMap place search. With a Near anchor it uses the around
// endpoint sorted by distance, otherwise a keyword search scoped to the city.
func (c *Client) Search(ctx context.Context, query domain.PlaceQuery) ([]domain.Place, error) {
	if query.Keywords == "" {
		return nil, fmt.Errorf("keywords cannot be empty")
	}

	params := url.Values{}
	params.Set("key", c.key)
	params.Set("keywords", query.Keywords)
	params.Set("offset", "25")
	params.Set("page", "1")

	var endpoint string
	if query.Near != nil {
		endpoint = "/v3/place/around"
		params.Set("location", formatLocation(*query.Near))
		params.Set("sortrule", "distance")
		if query.RadiusMeters > 0 {
			params.Set("radius", strconv.Itoa(query.RadiusMeters))
		}
	} else {
		endpoint = "/v3/place/text"
		city := query.City
		if city == "" {
			city = c.city
		}
		if city != "" {
			params.Set("city", city)
		}
	}

	c.logger.Debug("Calling AMap place search",
		zap.String("endpoint", endpoint),
		zap.String("keywords", query.Keywords))

	var resp searchResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if !resp.ok() {
		c.logger.Error("AMap place search returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("info", resp.Info))
		return nil, fmt.Errorf("amap API returned status %s: %s", resp.Status, resp.Info)
	}

	places := make([]domain.Place, 0, len(resp.POIs))
	for _, p := range resp.POIs {
		loc, err := parseLocation(p.Location)
		if err != nil {
			c.logger.Warn("Skipping POI with malformed location",
				zap.String("poi_id", p.ID),
				zap.String("location", p.Location))
			continue
		}
		places = append(places, domain.Place{
			ID:       p.ID,
			Name:     p.Name,
			Address:  string(p.Address),
			Location: loc,
		})
	}

	c.logger.Debug("AMap place search successful",
		zap.String("keywords", query.Keywords),
		zap.Int("places_count", len(places)))

	return places, nil
}

type pathLeg struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	Steps    []struct {
		Polyline string `json:"polyline"`
	} `json:"steps"`
}

type directionsResponse struct {
	apiStatus
	Route struct {
		Paths []pathLeg `json:"paths"`
	} `json:"route"`
}

type transitResponse struct {
	apiStatus
	Route struct {
		Distance string `json:"distance"`
		Transits []struct {
			Duration string `json:"duration"`
			Distance string `json:"distance"`
		} `json:"transits"`
	} `json:"route"`
}

// Route requests directions along the waypoints, one leg per consecutive
// pair, and sums the legs into a single result.
func (c *Client) Route(
	ctx context.Context,
	mode domain.TravelMode,
	waypoints []domain.Coordinate,
) (*domain.DirectionsResult, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("a route needs at least two waypoints")
	}

	total := &domain.DirectionsResult{}
	for i := 0; i+1 < len(waypoints); i++ {
		leg, err := c.leg(ctx, mode, waypoints[i], waypoints[i+1])
		if err != nil {
			return nil, fmt.Errorf("failed to route leg %d: %w", i, err)
		}
		total.DistanceMeters += leg.DistanceMeters
		total.DurationSeconds += leg.DurationSeconds
		total.Path = append(total.Path, leg.Path...)
	}
	return total, nil
}

func (c *Client) leg(
	ctx context.Context,
	mode domain.TravelMode,
	origin, destination domain.Coordinate,
) (*domain.DirectionsResult, error) {
	params := url.Values{}
	params.Set("key", c.key)
	params.Set("origin", formatLocation(origin))
	params.Set("destination", formatLocation(destination))

	if mode == domain.ModeTransit {
		return c.transitLeg(ctx, params)
	}

	endpoint := "/v3/direction/driving"
	if mode == domain.ModeWalking {
		endpoint = "/v3/direction/walking"
	}

	var resp directionsResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, fmt.Errorf("amap API returned status %s: %s", resp.Status, resp.Info)
	}
	if len(resp.Route.Paths) == 0 {
		return nil, fmt.Errorf("amap returned no paths")
	}

	// AMap orders paths by its own preference; take the first.
	best := resp.Route.Paths[0]
	result := &domain.DirectionsResult{
		DistanceMeters:  parseNumber(best.Distance),
		DurationSeconds: parseNumber(best.Duration),
	}
	for _, step := range best.Steps {
		result.Path = append(result.Path, parsePolyline(step.Polyline)...)
	}
	return result, nil
}

func (c *Client) transitLeg(ctx context.Context, params url.Values) (*domain.DirectionsResult, error) {
	if c.city != "" {
		params.Set("city", c.city)
	}

	var resp transitResponse
	if err := c.get(ctx, "/v3/direction/transit/integrated", params, &resp); err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, fmt.Errorf("amap API returned status %s: %s", resp.Status, resp.Info)
	}
	if len(resp.Route.Transits) == 0 {
		return nil, fmt.Errorf("amap returned no transit plans")
	}

	best := resp.Route.Transits[0]
	distance := parseNumber(best.Distance)
	if distance == 0 {
		distance = parseNumber(resp.Route.Distance)
	}
	return &domain.DirectionsResult{
		DistanceMeters:  distance,
		DurationSeconds: parseNumber(best.Duration),
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("AMap API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("amap API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// formatLocation renders a coordinate the AMap way: "lng,lat".
func formatLocation(coord domain.Coordinate) string {
	return fmt.Sprintf("%.6f,%.6f", coord.Longitude, coord.Latitude)
}

// parseLocation parses AMap's "lng,lat" string.
func parseLocation(s string) (domain.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Coordinate{}, fmt.Errorf("malformed location %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed longitude in %q: %w", s, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("malformed latitude in %q: %w", s, err)
	}
	return domain.Coordinate{Latitude: lat, Longitude: lng}, nil
}

// parsePolyline parses "lng,lat;lng,lat;..." dropping malformed points.
func parsePolyline(s string) []domain.Coordinate {
	if s == "" {
		return nil
	}
	var coords []domain.Coordinate
	for _, point := range strings.Split(s, ";") {
		coord, err := parseLocation(point)
		if err != nil {
			continue
		}
		coords = append(coords, coord)
	}
	return coords
}

// parseNumber reads AMap's string-typed numerics, returning 0 for garbage.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
