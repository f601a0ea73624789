package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	var gotUA, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		w.Write([]byte(`[
			{"display_name":"Kuala Lumpur, Malaysia","lat":"3.1516964","lon":"101.6942371"},
			{"display_name":"Kuala Lumpur International Airport","lat":"2.7456","lon":"101.7072"}
		]`))
	}))
	defer srv.Close()

	places, err := New(srv.URL).Search(context.Background(), "kuala lumpur")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("got %d places, want 2", len(places))
	}
	if places[0].DisplayName != "Kuala Lumpur, Malaysia" {
		t.Errorf("first place = %q", places[0].DisplayName)
	}
	if places[0].Coordinate.Latitude != 3.1516964 {
		t.Errorf("first latitude = %f", places[0].Coordinate.Latitude)
	}
	if gotQuery != "kuala lumpur" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotUA == "" || gotUA == "Go-http-client/1.1" {
		t.Errorf("User-Agent = %q, want an identifying agent", gotUA)
	}
}

func TestSearchEmptyQuerySkipsRequest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	places, err := New(srv.URL).Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if places != nil {
		t.Errorf("places = %v, want nil", places)
	}
	if calls != 0 {
		t.Errorf("empty query hit the server %d times", calls)
	}
}

func TestSearchNoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	places, err := New(srv.URL).Search(context.Background(), "xyzzy nowhere")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(places) != 0 {
		t.Errorf("got %d places, want 0", len(places))
	}
}

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("path = %q, want /reverse", r.URL.Path)
		}
		if got := r.URL.Query().Get("lat"); got != "3.158900" {
			t.Errorf("lat = %q, want 3.158900", got)
		}
		w.Write([]byte(`{"display_name":"Jalan Ampang, Kuala Lumpur","address":{"road":"Jalan Ampang"}}`))
	}))
	defer srv.Close()

	addr, err := New(srv.URL).Reverse(context.Background(), 3.1589, 101.712)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if addr != "Jalan Ampang, Kuala Lumpur" {
		t.Errorf("address = %q", addr)
	}
}

func TestReverseNoAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Open ocean: Nominatim returns an error body with no address.
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	addr, err := New(srv.URL).Reverse(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if addr != "No address found" {
		t.Errorf("address = %q, want \"No address found\"", addr)
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Search(context.Background(), "anything"); err == nil {
		t.Error("expected error on HTTP 429")
	}
}
