//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

type planRequest struct {
	Home       point       `json:"home"`
	Shops      []shopInput `json:"shops"`
	TravelMode string      `json:"travel_mode"`
}

type point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type shopInput struct {
	Name                string `json:"name"`
	StayDurationMinutes int    `json:"stay_duration_minutes,omitempty"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	mode := flag.String("mode", "DRIVING", "travel mode: DRIVING, TRANSIT or WALKING")
	flag.Parse()

	// Test request (Beijing, near Tiananmen)
	req := planRequest{
		Home: point{Lat: 39.909, Lon: 116.397},
		Shops: []shopInput{
			{Name: "麦当劳", StayDurationMinutes: 30},
			{Name: "星巴克", StayDurationMinutes: 20},
			{Name: "全家"},
		},
		TravelMode: *mode,
	}

	data, err := json.Marshal(req)
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	client := &http.Client{Timeout: 60 * time.Second}

	started := time.Now()
	resp, err := client.Post(*baseURL+"/api/v1/route/plan", "application/json", bytes.NewReader(data))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	fmt.Printf("Status: %s (%.1fs)\n", resp.Status, time.Since(started).Seconds())

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Fatalf("Failed to decode response: %v", err)
	}

	pretty, _ := json.MarshalIndent(body, "", "  ")
	fmt.Printf("%s\n", pretty)
}
