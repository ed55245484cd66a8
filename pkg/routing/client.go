// Package routing provides a client for an OSRM-compatible routing service.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

const defaultTimeout = 3 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Route asks the routing service for a driving path through the given
// waypoints. Coordinates go out lng-first per the OSRM convention and
// come back as lat/lng pairs.
func (c *Client) Route(ctx context.Context, waypoints []domain.Coordinate) ([]domain.Coordinate, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("at least two waypoints are required: %w", domain.ErrInvalidInput)
	}

	var coords strings.Builder
	for i, w := range waypoints {
		if i > 0 {
			coords.WriteByte(';')
		}
		fmt.Fprintf(&coords, "%f,%f", w.Lng, w.Lat)
	}

	reqURL := fmt.Sprintf("%s/route/v1/driving/%s?overview=full&geometries=geojson", c.baseURL, coords.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request: %v: %w", err, domain.ErrRoutingUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing service returned status %d: %w", resp.StatusCode, domain.ErrRoutingUnavailable)
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding routing response: %v: %w", err, domain.ErrRoutingUnavailable)
	}
	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("routing service returned code %q: %w", decoded.Code, domain.ErrRoutingUnavailable)
	}

	raw := decoded.Routes[0].Geometry.Coordinates
	polyline := make([]domain.Coordinate, 0, len(raw))
	for _, pair := range raw {
		if len(pair) < 2 {
			continue
		}
		polyline = append(polyline, domain.Coordinate{Lat: pair[1], Lng: pair[0]})
	}
	if len(polyline) < 2 {
		return nil, fmt.Errorf("routing service returned an unusable geometry: %w", domain.ErrRoutingUnavailable)
	}

	return polyline, nil
}
