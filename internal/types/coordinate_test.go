package types

import (
	"encoding/json"
	"testing"
)

func TestCoordinateMarshalSixDecimalStrings(t *testing.T) {
	c := Coordinate{Latitude: 1.23456, Longitude: 103.45678}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"latitude":"1.234560","longitude":"103.456780"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	orig := Coordinate{Latitude: -33.868820, Longitude: 151.209290}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var got Coordinate
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got != orig {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}

func TestCoordinateString(t *testing.T) {
	c := Coordinate{Latitude: 3.0458, Longitude: 101.7092}
	if got, want := c.String(), "3.045800, 101.709200"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Coordinate
		wantErr bool
	}{
		{name: "plain", input: "3.0458, 101.7092", want: Coordinate{3.0458, 101.7092}},
		{name: "no space", input: "3.0458,101.7092", want: Coordinate{3.0458, 101.7092}},
		{name: "negative", input: "-33.86882, 151.20929", want: Coordinate{-33.86882, 151.20929}},
		{name: "missing component", input: "3.0458", wantErr: true},
		{name: "three components", input: "1, 2, 3", wantErr: true},
		{name: "non numeric", input: "north, south", wantErr: true},
		{name: "lat out of range", input: "91, 0", wantErr: true},
		{name: "lon out of range", input: "0, 181", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCoordinate(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinate(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoordinate(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
