package client

import "context"

// GetStats fetches the dashboard summary.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var result Stats
	if err := c.doJSON(ctx, "GET", "/stats", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
