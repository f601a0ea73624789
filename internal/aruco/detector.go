// Package aruco talks to the companion marker-detection server: it ships a
// base64-encoded still image and gets back the fiducial marker ids found
// in it. Detection itself runs entirely on the server.
package aruco

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"skylander/internal/media"
)

// Detector is the client for the /detect endpoint.
type Detector struct {
	endpoint string
	http     *http.Client
}

// New creates a detector client for the given endpoint URL.
func New(endpoint string) *Detector {
	return &Detector{endpoint: endpoint, http: http.DefaultClient}
}

// WithHTTPClient substitutes the transport, for tests.
func (d *Detector) WithHTTPClient(h *http.Client) *Detector {
	d.http = h
	return d
}

type detectRequest struct {
	Image string `json:"image"`
}

type detectResponse struct {
	Markers []string `json:"markers"`
	Error   string   `json:"error"`
}

// Detect encodes the image at path and asks the server for marker ids.
// An empty slice with a nil error means the image contained no markers.
func (d *Detector) Detect(ctx context.Context, imagePath string) ([]string, error) {
	encoded, err := media.EncodeBase64(imagePath)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(detectRequest{Image: encoded})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detection request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detection server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out detectResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unexpected detection response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%s", out.Error)
	}
	return out.Markers, nil
}
