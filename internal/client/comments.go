package client

import (
	"context"
	"fmt"
)

// ListComments returns recent comments for moderation.
func (c *Client) ListComments(ctx context.Context) ([]Comment, error) {
	var result []Comment
	if err := c.doJSON(ctx, "GET", "/comments", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/comments/%d", id), nil, nil)
}
