package api

import (
	"context"

	"skylander/internal/types"
)

type updateProfileRequest struct {
	ID      types.FlexID `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	PhoneNo string       `json:"phoneno"`
}

// UpdateProfile submits edited account fields via
// POST /api/user/updateProfile. On success the caller rewrites the session
// store with the same values so the cached user stays in step.
func (c *Client) UpdateProfile(ctx context.Context, u types.User) (string, error) {
	var mb messageBody
	err := c.postJSON(ctx, "/api/user/updateProfile", updateProfileRequest{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		PhoneNo: u.PhoneNo,
	}, &mb)
	if err != nil {
		return "", err
	}
	return mb.Message, nil
}
