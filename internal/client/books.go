package client

// books.go covers the /books resource including the two-step cover upload.
//
// Cover images travel as a base64 JSON envelope to a dedicated endpoint which
// answers with the stored URL; the URL then rides along in the following
// create/update body. Banners and ads use one multipart request instead
// (banners.go, ads.go). The two encodings match two different server
// endpoints and are deliberately kept as separate codepaths.

import (
	"context"
	"encoding/base64"
	"fmt"
)

func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	var result []Book
	if err := c.doJSON(ctx, "GET", "/books", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetBook(ctx context.Context, id int64) (*Book, error) {
	var result Book
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/books/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadCover is phase one of the cover flow: ship the bytes, get back the
// stored URL. Exposed on its own because the flow is non-atomic: when the
// subsequent create/update fails the upload result is still an observable,
// already-committed fact (the orphaned file is accepted, not cleaned up).
func (c *Client) UploadCover(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	if filename == "" || len(data) == 0 {
		return nil, validationErr("cover filename and contents are required")
	}
	req := uploadCoverRequest{
		Filename: filename,
		Data:     base64.StdEncoding.EncodeToString(data),
	}
	var result UploadResult
	if err := c.doJSON(ctx, "POST", "/uploads/cover-json", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateBook(ctx context.Context, req CreateBookRequest) (*Book, error) {
	if req.Title == "" {
		return nil, validationErr("book title is required")
	}
	var result Book
	if err := c.doJSON(ctx, "POST", "/books", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateBookWithCover runs the full two-phase flow: upload, then create with
// the returned cover_url. On a create failure the upload result is returned
// alongside the error so the caller can see the partial state.
func (c *Client) CreateBookWithCover(ctx context.Context, req CreateBookRequest, filename string, cover []byte) (*Book, *UploadResult, error) {
	if req.Title == "" {
		return nil, nil, validationErr("book title is required")
	}
	uploaded, err := c.UploadCover(ctx, filename, cover)
	if err != nil {
		return nil, nil, err
	}

	req.CoverURL = uploaded.URL
	book, err := c.CreateBook(ctx, req)
	if err != nil {
		// The uploaded file may now be orphaned on the server. Known
		// limitation: no compensating delete, no retry.
		return nil, uploaded, err
	}
	return book, uploaded, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, req UpdateBookRequest) (*Book, error) {
	var result Book
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/books/%d", id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateBookWithCover replaces the cover through the same two-phase flow.
func (c *Client) UpdateBookWithCover(ctx context.Context, id int64, req UpdateBookRequest, filename string, cover []byte) (*Book, *UploadResult, error) {
	uploaded, err := c.UploadCover(ctx, filename, cover)
	if err != nil {
		return nil, nil, err
	}

	req.CoverURL = &uploaded.URL
	book, err := c.UpdateBook(ctx, id, req)
	if err != nil {
		return nil, uploaded, err
	}
	return book, uploaded, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/books/%d", id), nil, nil)
}
