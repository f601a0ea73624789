// Package geocode is a thin client for the OpenStreetMap Nominatim
// service: free-text search for the coordinate picker and reverse lookup
// for the address line. Nominatim's usage policy requires an identifying
// User-Agent on every request.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"skylander/internal/logging"
	"skylander/internal/types"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const userAgent = "SkyLander/1.0 (+https://github.com/skylander/skylander)"

// Place is a single search result.
type Place struct {
	DisplayName string
	Coordinate  types.Coordinate
}

// Client issues Nominatim lookups.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a geocoding client; an empty baseURL uses the public
// instance.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: http.DefaultClient}
}

// WithHTTPClient substitutes the transport, for tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// placeWire is Nominatim's result row; lat/lon arrive as strings.
type placeWire struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search resolves a free-text query to places, best match first. An empty
// result slice means the query matched nothing, which the picker reports
// as "location not found" rather than an error.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	u := fmt.Sprintf("%s/search?q=%s&format=json", c.baseURL, url.QueryEscape(query))
	var rows []placeWire
	if err := c.get(ctx, u, &rows); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(rows))
	for _, r := range rows {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lon, errLon := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		places = append(places, Place{
			DisplayName: r.DisplayName,
			Coordinate:  types.Coordinate{Latitude: lat, Longitude: lon},
		})
	}
	logging.Info(logging.CategoryGeocode, "search %q -> %d places", query, len(places))
	return places, nil
}

// reverseWire is the /reverse response.
type reverseWire struct {
	DisplayName string          `json:"display_name"`
	Address     json.RawMessage `json:"address"`
}

// Reverse resolves a coordinate to its display address. A point with no
// address yields "No address found", matching what the picker shows.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	u := fmt.Sprintf("%s/reverse?lat=%s&lon=%s&format=json",
		c.baseURL,
		strconv.FormatFloat(lat, 'f', 6, 64),
		strconv.FormatFloat(lon, 'f', 6, 64))
	var row reverseWire
	if err := c.get(ctx, u, &row); err != nil {
		return "", err
	}
	if len(row.Address) == 0 || row.DisplayName == "" {
		return "No address found", nil
	}
	logging.Info(logging.CategoryGeocode, "reverse %.6f,%.6f -> %q", lat, lon, row.DisplayName)
	return row.DisplayName, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("geocoder returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
