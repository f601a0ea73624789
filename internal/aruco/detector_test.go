package aruco

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeImage(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.jpg")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestDetect(t *testing.T) {
	imageBytes := []byte("jpeg bytes here")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Image string `json:"image"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		decoded, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			t.Errorf("image field is not base64: %v", err)
		}
		if string(decoded) != string(imageBytes) {
			t.Errorf("decoded image does not match the file on disk")
		}
		w.Write([]byte(`{"markers":["17","23"]}`))
	}))
	defer srv.Close()

	markers, err := New(srv.URL).Detect(context.Background(), writeImage(t, imageBytes))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(markers) != 2 || markers[0] != "17" || markers[1] != "23" {
		t.Errorf("markers = %v, want [17 23]", markers)
	}
}

func TestDetectNoMarkers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"markers":[]}`))
	}))
	defer srv.Close()

	markers, err := New(srv.URL).Detect(context.Background(), writeImage(t, []byte("x")))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(markers) != 0 {
		t.Errorf("markers = %v, want none", markers)
	}
}

func TestDetectServerReportedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"could not decode image"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Detect(context.Background(), writeImage(t, []byte("x")))
	if err == nil || !strings.Contains(err.Error(), "could not decode image") {
		t.Errorf("err = %v, want server message", err)
	}
}

func TestDetectHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Detect(context.Background(), writeImage(t, []byte("x"))); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestDetectMissingFile(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Detect(context.Background(), "/nonexistent/frame.jpg"); err == nil {
		t.Error("expected error for missing file")
	}
	if calls != 0 {
		t.Errorf("missing file hit the server %d times", calls)
	}
}
