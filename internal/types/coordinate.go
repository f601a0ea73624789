package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a WGS84 point. Display and wire precision is fixed at six
// decimal places to match what the enrollment endpoint stores.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String renders "lat, lon" the way every screen displays coordinates.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}

// coordinateWire is the multipart field format: both values are strings
// with exactly six decimal places.
type coordinateWire struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// MarshalJSON emits {"latitude":"1.234560","longitude":"103.456780"}.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordinateWire{
		Latitude:  strconv.FormatFloat(c.Latitude, 'f', 6, 64),
		Longitude: strconv.FormatFloat(c.Longitude, 'f', 6, 64),
	})
}

// UnmarshalJSON accepts the string form written by MarshalJSON.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var w coordinateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(w.Latitude, 64)
	if err != nil {
		return fmt.Errorf("bad latitude %q: %w", w.Latitude, err)
	}
	lon, err := strconv.ParseFloat(w.Longitude, 64)
	if err != nil {
		return fmt.Errorf("bad longitude %q: %w", w.Longitude, err)
	}
	c.Latitude, c.Longitude = lat, lon
	return nil
}

// ParseCoordinate parses the editable "lat, lon" text from the details
// form. Both components must be present and numeric.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("coordinate must be \"latitude, longitude\"")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q", strings.TrimSpace(parts[0]))
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q", strings.TrimSpace(parts[1]))
	}
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude %.6f out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("longitude %.6f out of range", lon)
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}
