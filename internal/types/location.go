package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Location is a user-submitted geotagged enrollment record. The detail
// endpoint joins in the enrolling user's name and email; the list endpoints
// leave those blank.
type Location struct {
	ID            FlexID
	Address       string
	Latitude      float64
	Longitude     float64
	MediaFileName string
	Status        Status
	UserID        FlexID
	ArucoID       string
	EnrolledBy    string
	EnrolledEmail string
}

// Coordinate returns the location's point.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// ArucoLabel is the display form of the marker binding.
func (l Location) ArucoLabel() string {
	if l.ArucoID == "" {
		return "Not Stated"
	}
	return l.ArucoID
}

// locationWire mirrors the loose server JSON: latitude/longitude arrive as
// strings, aruco_id may be null, and ids may be numbers.
type locationWire struct {
	ID              FlexID          `json:"id"`
	LocationAddress string          `json:"locationAddress"`
	Latitude        json.RawMessage `json:"latitude"`
	Longitude       json.RawMessage `json:"longitude"`
	MediaFileName   string          `json:"mediaFileName"`
	Status          string          `json:"status"`
	UserID          FlexID          `json:"userid"`
	ArucoID         *string         `json:"aruco_id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
}

// UnmarshalJSON decodes the server row into the typed form.
func (l *Location) UnmarshalJSON(data []byte) error {
	var w locationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	l.ID = w.ID
	l.Address = w.LocationAddress
	l.Latitude = looseFloat(w.Latitude)
	l.Longitude = looseFloat(w.Longitude)
	l.MediaFileName = w.MediaFileName
	l.Status = ParseStatus(w.Status)
	l.UserID = w.UserID
	if w.ArucoID != nil {
		l.ArucoID = *w.ArucoID
	}
	l.EnrolledBy = w.Name
	l.EnrolledEmail = w.Email
	return nil
}

// looseFloat reads a float that may be quoted. Malformed values collapse to
// zero; a list screen cannot do anything smarter with them.
func looseFloat(raw json.RawMessage) float64 {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FilterByAddress returns the locations whose address contains the query,
// case-insensitively. An empty query returns the input unchanged. This is
// the live search behavior shared by the status and admin list screens.
func FilterByAddress(locs []Location, query string) []Location {
	if strings.TrimSpace(query) == "" {
		return locs
	}
	q := strings.ToLower(query)
	out := make([]Location, 0, len(locs))
	for _, l := range locs {
		if strings.Contains(strings.ToLower(l.Address), q) {
			out = append(out, l)
		}
	}
	return out
}

// FilterByStatus keeps only locations in the given review state.
func FilterByStatus(locs []Location, s Status) []Location {
	out := make([]Location, 0, len(locs))
	for _, l := range locs {
		if l.Status == s {
			out = append(out, l)
		}
	}
	return out
}
