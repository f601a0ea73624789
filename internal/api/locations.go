package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"skylander/internal/media"
	"skylander/internal/types"
)

// ErrNotFound is returned when a detail lookup matches no location.
var ErrNotFound = &Error{Status: http.StatusNotFound, Message: "Location not found"}

// AddLocationRequest is an enrollment submission. MediaPath points at the
// recorded capture on local disk; the file is streamed into the multipart
// body. Resubmitting the same request can create a duplicate location on
// the server side; there is no idempotency key in the contract.
type AddLocationRequest struct {
	UserID     types.FlexID
	Address    string
	Coordinate types.Coordinate
	MediaPath  string
}

// AddLocation uploads an enrollment via multipart POST /api/location/add.
// The server signals success with HTTP 201.
func (c *Client) AddLocation(ctx context.Context, r AddLocationRequest) (string, error) {
	capture, err := media.Probe(r.MediaPath)
	if err != nil {
		return "", err
	}

	coordJSON, err := json.Marshal(r.Coordinate)
	if err != nil {
		return "", err
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		err := writeAddLocationBody(mw, r, string(coordJSON), capture)
		mw.Close()
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/location/add", pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", c.serverError(resp)
	}
	var mb messageBody
	_ = json.NewDecoder(resp.Body).Decode(&mb)
	return mb.Message, nil
}

func writeAddLocationBody(mw *multipart.Writer, r AddLocationRequest, coordJSON string, capture media.Capture) error {
	if err := mw.WriteField("userID", r.UserID.String()); err != nil {
		return err
	}
	if err := mw.WriteField("address", r.Address); err != nil {
		return err
	}
	if err := mw.WriteField("coordinate", coordJSON); err != nil {
		return err
	}
	part, err := mw.CreateFormFile("media", media.UploadName(capture))
	if err != nil {
		return err
	}
	f, err := os.Open(capture.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(part, f)
	return err
}

// dataEnvelope is the {data: [...]} wrapper the location endpoints use.
type dataEnvelope struct {
	Data []types.Location `json:"data"`
}

// ListLocations fetches every enrollment via GET /api/location/get. Admin
// list screens filter client-side.
func (c *Client) ListLocations(ctx context.Context) ([]types.Location, error) {
	var env dataEnvelope
	if err := c.getJSON(ctx, "/api/location/get", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ListLocationsByUser fetches one user's enrollments.
func (c *Client) ListLocationsByUser(ctx context.Context, userID types.FlexID) ([]types.Location, error) {
	var env dataEnvelope
	body := map[string]string{"userID": userID.String()}
	if err := c.postJSON(ctx, "/api/location/getLocationByUserId", body, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// LocationDetail fetches a single enrollment by id. The endpoint responds
// with a one-element data array; an empty array means the id is unknown.
func (c *Client) LocationDetail(ctx context.Context, id types.FlexID) (*types.Location, error) {
	var env dataEnvelope
	body := map[string]string{"ID": id.String()}
	if err := c.postJSON(ctx, "/api/location/getLocationDetailsById", body, &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, ErrNotFound
	}
	loc := env.Data[0]
	return &loc, nil
}
