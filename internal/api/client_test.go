package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylander/internal/types"
)

func TestLoginSuccess(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-123",
			"user": map[string]interface{}{
				"id":      7,
				"name":    "Aina",
				"email":   "aina@example.com",
				"phoneno": "0123456789",
				"role":    "user",
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	creds, err := client.Login(context.Background(), "aina@example.com", "secret", "")
	require.NoError(t, err)

	// The role defaults to "user" when the caller leaves it blank.
	assert.Equal(t, "user", gotBody["role"])
	assert.Equal(t, "aina@example.com", gotBody["email"])

	assert.Equal(t, "tok-123", creds.Token)
	assert.Equal(t, types.FlexID("7"), creds.User.ID)
	assert.Equal(t, "Aina", creds.User.Name)
}

func TestLoginFailureCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	creds, err := client.Login(context.Background(), "x@example.com", "wrong", "user")
	require.Error(t, err)
	assert.Nil(t, creds)

	apiErr, ok := err.(*Error)
	require.True(t, ok, "expected *Error, got %T", err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Error())
}

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/register", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0123456789", body["phoneno"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"})
	}))
	defer srv.Close()

	msg, err := New(srv.URL).Register(context.Background(), "Aina", "aina@example.com", "secret", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", msg)
}

func TestUpdateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/user/updateProfile", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "7", body["id"])
		assert.Equal(t, "New Name", body["name"])
		json.NewEncoder(w).Encode(map[string]string{"message": "Profile updated"})
	}))
	defer srv.Close()

	msg, err := New(srv.URL).UpdateProfile(context.Background(), types.User{
		ID:      "7",
		Name:    "New Name",
		Email:   "aina@example.com",
		PhoneNo: "0123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "Profile updated", msg)
}

func TestErrorWithoutMessage(t *testing.T) {
	e := &Error{Status: 500}
	assert.Equal(t, "server returned HTTP 500", e.Error())
}

func TestMediaURL(t *testing.T) {
	client := New("http://localhost:5000/")
	assert.Equal(t, "http://localhost:5000/uploads/abc.mp4", client.MediaURL("abc.mp4"))
}
