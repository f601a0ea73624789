package api

import (
	"context"

	"skylander/internal/types"
)

// Credentials is the successful login payload: the bearer token plus the
// authenticated user, both of which go straight into the session store.
type Credentials struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates against POST /api/login. The role travels in the
// body; the server decides whether the account actually holds it.
func (c *Client) Login(ctx context.Context, email, password, role string) (*Credentials, error) {
	if role == "" {
		role = types.RoleUser
	}
	var creds Credentials
	err := c.postJSON(ctx, "/api/login", loginRequest{Email: email, Password: password, Role: role}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhoneNo  string `json:"phoneno"`
}

// Register creates an account via POST /api/register and returns the
// server's confirmation message.
func (c *Client) Register(ctx context.Context, name, email, password, phone string) (string, error) {
	var mb messageBody
	err := c.postJSON(ctx, "/api/register", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
		PhoneNo:  phone,
	}, &mb)
	if err != nil {
		return "", err
	}
	return mb.Message, nil
}
