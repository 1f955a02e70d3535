package client_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin/internal/client"
)

// Banner creation is exactly one multipart request carrying the fields and
// the binary together; there is no separate upload step.
func TestCreateBannerMultipart(t *testing.T) {
	image := []byte("fake-png-bytes")
	var requestCount int

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		require.Equal(t, "/banners", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Sale", r.FormValue("title"))
		assert.Equal(t, "https://x", r.FormValue("link"))
		assert.Equal(t, "1", r.FormValue("enabled"))

		file, header, err := r.FormFile("banner")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "sale.png", header.Filename)
		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, image, got)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":3,"title":"Sale","link":"https://x","enabled":true}`))
	})

	banner, err := c.CreateBanner(context.Background(), client.BannerInput{
		Title:    "Sale",
		Link:     "https://x",
		Enabled:  true,
		Filename: "sale.png",
		Image:    image,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, requestCount)
	assert.Equal(t, int64(3), banner.ID)
	assert.True(t, banner.Enabled)
}

func TestCreateBannerDisabledSendsZero(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "0", r.FormValue("enabled"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":4,"title":"Off","enabled":false}`))
	})

	_, err := c.CreateBanner(context.Background(), client.BannerInput{
		Title: "Off", Filename: "off.png", Image: []byte("x"),
	})
	require.NoError(t, err)
}

func TestCreateBannerValidation(t *testing.T) {
	var hits int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits++ })

	_, err := c.CreateBanner(context.Background(), client.BannerInput{Title: "No image"})
	require.Error(t, err)
	assert.Equal(t, client.KindValidation, client.KindOf(err))
	assert.Zero(t, hits)
}

// Without a new image the update goes out as plain JSON instead.
func TestUpdateBannerWithoutImageUsesJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/banners/9", r.URL.Path)
		w.Write([]byte(`{"id":9,"title":"Renamed","enabled":true}`))
	})

	banner, err := c.UpdateBanner(context.Background(), 9, client.BannerInput{Title: "Renamed", Enabled: true})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", banner.Title)
}

// Ads ride the same multipart policy with the "video" field name.
func TestCreateAdMultipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Spring promo", r.FormValue("title"))
		assert.Equal(t, "1", r.FormValue("active"))
		_, header, err := r.FormFile("video")
		require.NoError(t, err)
		assert.Equal(t, "promo.mp4", header.Filename)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"title":"Spring promo","active":true}`))
	})

	ad, err := c.CreateAd(context.Background(), client.AdInput{
		Title: "Spring promo", Active: true, Filename: "promo.mp4", Video: []byte("mp4"),
	})
	require.NoError(t, err)
	assert.True(t, ad.Active)
}
