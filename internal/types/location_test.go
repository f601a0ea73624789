package types

import (
	"encoding/json"
	"testing"
)

func TestLocationUnmarshalLooseWireFormat(t *testing.T) {
	// Numeric id, quoted coordinates, null aruco_id: all shapes the
	// server actually produces.
	raw := `{
		"id": 12,
		"locationAddress": "Jalan Ampang, Kuala Lumpur",
		"latitude": "3.158900",
		"longitude": "101.712000",
		"mediaFileName": "abc123.mp4",
		"status": "Pending",
		"userid": "4",
		"aruco_id": null,
		"name": "Aina",
		"email": "aina@example.com"
	}`
	var l Location
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if l.ID != "12" {
		t.Errorf("ID = %q, want 12", l.ID)
	}
	if l.Address != "Jalan Ampang, Kuala Lumpur" {
		t.Errorf("Address = %q", l.Address)
	}
	if l.Latitude != 3.1589 || l.Longitude != 101.712 {
		t.Errorf("coordinate = %f, %f", l.Latitude, l.Longitude)
	}
	if l.Status != StatusPending {
		t.Errorf("Status = %v, want StatusPending", l.Status)
	}
	if l.UserID != "4" {
		t.Errorf("UserID = %q, want 4", l.UserID)
	}
	if l.ArucoID != "" {
		t.Errorf("ArucoID = %q, want empty", l.ArucoID)
	}
	if l.EnrolledBy != "Aina" || l.EnrolledEmail != "aina@example.com" {
		t.Errorf("enrolled by = %q <%q>", l.EnrolledBy, l.EnrolledEmail)
	}
}

func TestLocationUnmarshalNumericCoordinates(t *testing.T) {
	raw := `{"id":"3","locationAddress":"x","latitude":3.0458,"longitude":101.7092,"status":"approved","userid":1,"aruco_id":"17"}`
	var l Location
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if l.Latitude != 3.0458 || l.Longitude != 101.7092 {
		t.Errorf("coordinate = %f, %f", l.Latitude, l.Longitude)
	}
	if l.ArucoID != "17" {
		t.Errorf("ArucoID = %q, want 17", l.ArucoID)
	}
}

func TestLocationArucoLabel(t *testing.T) {
	if got := (Location{}).ArucoLabel(); got != "Not Stated" {
		t.Errorf("empty ArucoLabel = %q", got)
	}
	if got := (Location{ArucoID: "23"}).ArucoLabel(); got != "23" {
		t.Errorf("ArucoLabel = %q, want 23", got)
	}
}

func sampleLocations() []Location {
	return []Location{
		{ID: "1", Address: "Jalan Ampang, Kuala Lumpur", Status: StatusPending},
		{ID: "2", Address: "Orchard Road, Singapore", Status: StatusApproved},
		{ID: "3", Address: "jalan tun razak", Status: StatusRejected},
	}
}

func TestFilterByAddress(t *testing.T) {
	locs := sampleLocations()

	// Empty and whitespace queries return the input unchanged.
	for _, q := range []string{"", "   "} {
		got := FilterByAddress(locs, q)
		if len(got) != len(locs) {
			t.Fatalf("FilterByAddress(%q) returned %d rows, want %d", q, len(got), len(locs))
		}
	}

	got := FilterByAddress(locs, "JALAN")
	if len(got) != 2 {
		t.Fatalf("case-insensitive filter returned %d rows, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("filter preserved order wrong: %q, %q", got[0].ID, got[1].ID)
	}

	if got := FilterByAddress(locs, "nowhere"); len(got) != 0 {
		t.Errorf("absent query returned %d rows, want 0", len(got))
	}
}

func TestFilterByStatus(t *testing.T) {
	locs := sampleLocations()
	got := FilterByStatus(locs, StatusPending)
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("FilterByStatus(Pending) = %+v", got)
	}
	if got := FilterByStatus(nil, StatusApproved); len(got) != 0 {
		t.Errorf("FilterByStatus(nil) = %+v", got)
	}
}

func TestUserInitial(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"alice", "A"},
		{"Bob", "B"},
		{"", "?"},
	}
	for _, tt := range tests {
		u := User{Name: tt.name}
		if got := u.Initial(); got != tt.want {
			t.Errorf("Initial(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestUserIsAdmin(t *testing.T) {
	if (User{Role: RoleUser}).IsAdmin() {
		t.Error("user role reported as admin")
	}
	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role not reported as admin")
	}
}
