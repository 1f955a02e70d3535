package client

// Like banners, ads upload as one multipart request. File field
// name is "video".

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
)

type AdInput struct {
	Title    string
	Active   bool
	Filename string
	Video    []byte
}

// ListAds returns the publicly served ads.
func (c *Client) ListAds(ctx context.Context) ([]Ad, error) {
	var result []Ad
	if err := c.doJSON(ctx, "GET", "/ads", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAdsAdmin returns every ad including inactive ones.
func (c *Client) ListAdsAdmin(ctx context.Context) ([]Ad, error) {
	var result []Ad
	if err := c.doJSON(ctx, "GET", "/ads/admin", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreateAd(ctx context.Context, in AdInput) (*Ad, error) {
	if in.Title == "" {
		return nil, validationErr("ad title is required")
	}
	if len(in.Video) == 0 {
		return nil, validationErr("ad video is required")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("title", in.Title)
	active := "0"
	if in.Active {
		active = "1"
	}
	_ = writer.WriteField("active", active)

	part, err := writer.CreateFormFile("video", in.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ad form: %w", err)
	}
	if _, err := part.Write(in.Video); err != nil {
		return nil, fmt.Errorf("failed to encode ad form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode ad form: %w", err)
	}

	var result Ad
	if err := c.doMultipart(ctx, "POST", "/ads", body, writer.FormDataContentType(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteAd(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/ads/%d", id), nil, nil)
}
