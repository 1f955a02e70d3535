package client

// banners.go uses the multipart encoding: fields and the image travel in one
// request, no separate upload step. File field name is "banner".

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
)

// BannerInput carries the mutable banner fields plus an optional image.
type BannerInput struct {
	Title   string
	Link    string
	Enabled bool
	// Filename and Image are only consulted by the multipart paths.
	Filename string
	Image    []byte
}

func (c *Client) ListBanners(ctx context.Context) ([]Banner, error) {
	var result []Banner
	if err := c.doJSON(ctx, "GET", "/banners", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// bannerForm encodes the banner fields and image into a multipart body.
// enabled is sent as "1"/"0", matching the server's form parser.
func bannerForm(in BannerInput) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	_ = writer.WriteField("title", in.Title)
	_ = writer.WriteField("link", in.Link)
	enabled := "0"
	if in.Enabled {
		enabled = "1"
	}
	_ = writer.WriteField("enabled", enabled)

	part, err := writer.CreateFormFile("banner", in.Filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(in.Image); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func (c *Client) CreateBanner(ctx context.Context, in BannerInput) (*Banner, error) {
	if in.Title == "" {
		return nil, validationErr("banner title is required")
	}
	if len(in.Image) == 0 {
		return nil, validationErr("banner image is required")
	}

	body, contentType, err := bannerForm(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode banner form: %w", err)
	}

	var result Banner
	if err := c.doMultipart(ctx, "POST", "/banners", body, contentType, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateBanner replaces the image when one is supplied (multipart), otherwise
// it updates the plain fields as JSON.
func (c *Client) UpdateBanner(ctx context.Context, id int64, in BannerInput) (*Banner, error) {
	if in.Title == "" {
		return nil, validationErr("banner title is required")
	}

	var result Banner
	if len(in.Image) > 0 {
		body, contentType, err := bannerForm(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode banner form: %w", err)
		}
		if err := c.doMultipart(ctx, "PUT", fmt.Sprintf("/banners/%d", id), body, contentType, &result); err != nil {
			return nil, err
		}
		return &result, nil
	}

	payload := Banner{Title: in.Title, Link: in.Link, Enabled: in.Enabled}
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/banners/%d", id), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteBanner(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/banners/%d", id), nil, nil)
}
