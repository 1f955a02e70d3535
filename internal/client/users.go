package client

import (
	"context"
	"fmt"
)

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var result []User
	if err := c.doJSON(ctx, "GET", "/users", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var result User
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/users/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if req.Fullname == "" || req.Email == "" || req.Password == "" {
		return nil, validationErr("fullname, email and password are required")
	}
	var result User
	if err := c.doJSON(ctx, "POST", "/users", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	var result User
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/users/%d", id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUser removes a user. Admin accounts are refused here, before any
// request goes out. The server has its own guard; this one keeps a fat
// finger in the admin UI from even reaching it.
func (c *Client) DeleteUser(ctx context.Context, u User) error {
	if u.Role == RoleAdmin {
		return validationErr("refusing to delete admin account %q", u.Email)
	}
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/users/%d", u.ID), nil, nil)
}

// CreditWallet adds coins to a user's wallet directly (admin gift/correction),
// distinct from approving a user-initiated top-up request.
func (c *Client) CreditWallet(ctx context.Context, userID int64, req WalletCreditRequest) (*User, error) {
	if req.Coins <= 0 {
		return nil, validationErr("coins must be positive")
	}
	var result User
	if err := c.doJSON(ctx, "POST", fmt.Sprintf("/users/%d/wallet/topup", userID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListFollows returns the books a user follows.
func (c *Client) ListFollows(ctx context.Context, userID int64) ([]Follow, error) {
	var result []Follow
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/users/%d/follows", userID), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
