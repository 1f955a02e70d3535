package client

// wallet.go handles the admin side of coin top-up requests. Requests are
// created by the end-user flow; here they only move pending → approved or
// pending → rejected, and those states are final.

import (
	"context"
	"fmt"
)

type approveTopupRequest struct {
	Coins     int64  `json:"coins"`
	AdminNote string `json:"admin_note,omitempty"`
}

type rejectTopupRequest struct {
	AdminNote string `json:"admin_note,omitempty"`
}

func (c *Client) ListTopupRequests(ctx context.Context) ([]TopupRequest, error) {
	var result []TopupRequest
	if err := c.doJSON(ctx, "GET", "/wallet/topup-requests", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ApproveTopup credits the requested coins and marks the request approved.
// The server rejects requests that are no longer pending; the client must not
// assume it can re-trigger the action on a terminal request.
func (c *Client) ApproveTopup(ctx context.Context, requestID string, coins int64, adminNote string) (*TopupRequest, error) {
	if requestID == "" {
		return nil, validationErr("request id is required")
	}
	if coins <= 0 {
		return nil, validationErr("coins must be positive")
	}
	var result TopupRequest
	path := fmt.Sprintf("/wallet/topup-requests/%s/approve", requestID)
	if err := c.doJSON(ctx, "POST", path, approveTopupRequest{Coins: coins, AdminNote: adminNote}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RejectTopup marks the request rejected without crediting anything.
func (c *Client) RejectTopup(ctx context.Context, requestID string, adminNote string) (*TopupRequest, error) {
	if requestID == "" {
		return nil, validationErr("request id is required")
	}
	var result TopupRequest
	path := fmt.Sprintf("/wallet/topup-requests/%s/reject", requestID)
	if err := c.doJSON(ctx, "POST", path, rejectTopupRequest{AdminNote: adminNote}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
