package client_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin/internal/client"
)

// The cover flow must issue exactly two requests: the base64 upload, then the
// create whose cover_url is the upload's returned path.
func TestCreateBookWithCoverTwoStep(t *testing.T) {
	cover := bytes.Repeat([]byte{0xAB}, 10*1024) // 10KB image stand-in

	var requests []string
	var uploadBody struct {
		Filename string `json:"filename"`
		Data     string `json:"data"`
	}
	var createBody client.CreateBookRequest

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/uploads/cover-json":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&uploadBody))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"url":"/static/covers/dune.jpg"}`))
		case "/books":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&createBody))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":1,"title":"Dune","cover_url":"/static/covers/dune.jpg"}`))
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	})

	book, uploaded, err := c.CreateBookWithCover(context.Background(),
		client.CreateBookRequest{Title: "Dune", Author: "Frank Herbert"},
		"dune.jpg", cover)
	require.NoError(t, err)

	require.Equal(t, []string{"POST /uploads/cover-json", "POST /books"}, requests)

	// the upload carried the file as base64
	assert.Equal(t, "dune.jpg", uploadBody.Filename)
	decoded, err := base64.StdEncoding.DecodeString(uploadBody.Data)
	require.NoError(t, err)
	assert.Equal(t, cover, decoded)

	// the second request's cover_url is the first response's path
	assert.Equal(t, uploaded.URL, createBody.CoverURL)
	assert.Equal(t, "/static/covers/dune.jpg", book.CoverURL)
}

// When the create fails after a successful upload the partial state is
// observable: the upload result comes back alongside the error. The orphaned
// file is accepted, nothing retries or cleans up.
func TestCreateBookWithCoverOrphanedUpload(t *testing.T) {
	var requestCount int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		switch r.URL.Path {
		case "/uploads/cover-json":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"url":"/static/covers/orphan.jpg"}`))
		case "/books":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"database unavailable"}`))
		}
	})

	book, uploaded, err := c.CreateBookWithCover(context.Background(),
		client.CreateBookRequest{Title: "Dune"}, "cover.jpg", []byte("img"))

	require.Error(t, err)
	assert.Equal(t, client.KindServerRejected, client.KindOf(err))
	assert.Nil(t, book)
	require.NotNil(t, uploaded)
	assert.Equal(t, "/static/covers/orphan.jpg", uploaded.URL)
	assert.Equal(t, 2, requestCount) // upload went out, create went out, nothing more
}

func TestCreateBookValidation(t *testing.T) {
	var hits int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits++ })

	_, err := c.CreateBook(context.Background(), client.CreateBookRequest{})
	require.Error(t, err)
	assert.Equal(t, client.KindValidation, client.KindOf(err))
	assert.Zero(t, hits, "validation failures must not reach the network")

	_, _, err = c.CreateBookWithCover(context.Background(), client.CreateBookRequest{}, "x.jpg", []byte("img"))
	require.Error(t, err)
	assert.Equal(t, client.KindValidation, client.KindOf(err))
	assert.Zero(t, hits)
}

// Fetching the same book twice with no mutation in between yields
// structurally identical results.
func TestGetBookIdempotent(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/42", r.URL.Path)
		w.Write([]byte(`{"id":42,"title":"Dune","author":"Frank Herbert","chapters":[{"id":1,"title":"Arrakis"}]}`))
	})

	first, err := c.GetBook(context.Background(), 42)
	require.NoError(t, err)
	second, err := c.GetBook(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDeleteBook(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/books/7", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteBook(context.Background(), 7))
}
