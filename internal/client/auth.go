package client

import "context"

// Login exchanges credentials for a bearer token. Persisting the token is the
// caller's job (the CLI writes it into the session).
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, validationErr("email and password are required")
	}
	var result AuthResponse
	if err := c.doJSON(ctx, "POST", "/auth/login", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account. The server assigns the default role.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Fullname == "" || req.Email == "" || req.Password == "" {
		return nil, validationErr("fullname, email and password are required")
	}
	var result User
	if err := c.doJSON(ctx, "POST", "/auth/register", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
