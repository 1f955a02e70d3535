package client

import (
	"context"
	"fmt"
)

func (c *Client) ListGenres(ctx context.Context) ([]Genre, error) {
	var result []Genre
	if err := c.doJSON(ctx, "GET", "/genres", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreateGenre(ctx context.Context, req GenreRequest) (*Genre, error) {
	if req.Name == "" {
		return nil, validationErr("genre name is required")
	}
	var result Genre
	if err := c.doJSON(ctx, "POST", "/genres", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateGenre(ctx context.Context, id int64, req GenreRequest) (*Genre, error) {
	if req.Name == "" {
		return nil, validationErr("genre name is required")
	}
	var result Genre
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/genres/%d", id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteGenre(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/genres/%d", id), nil, nil)
}
