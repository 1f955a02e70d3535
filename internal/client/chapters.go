package client

import (
	"context"
	"fmt"
)

// Chapter operations are always scoped under a book id.

func (c *Client) ListChapters(ctx context.Context, bookID int64) ([]Chapter, error) {
	var result []Chapter
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/books/%d/chapters", bookID), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreateChapter(ctx context.Context, bookID int64, req ChapterRequest) (*Chapter, error) {
	if req.Title == "" {
		return nil, validationErr("chapter title is required")
	}
	var result Chapter
	if err := c.doJSON(ctx, "POST", fmt.Sprintf("/books/%d/chapters", bookID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateChapter(ctx context.Context, bookID, chapterID int64, req ChapterRequest) (*Chapter, error) {
	var result Chapter
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/books/%d/chapters/%d", bookID, chapterID), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteChapter(ctx context.Context, bookID, chapterID int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/books/%d/chapters/%d", bookID, chapterID), nil, nil)
}
