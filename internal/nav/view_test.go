package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentRoundTrip(t *testing.T) {
	views := []View{
		{Kind: Dashboard},
		{Kind: Books},
		{Kind: Chapters, BookID: 42},
		{Kind: BookDetail, BookID: 7},
		{Kind: Banners},
		{Kind: Genres},
		{Kind: Users},
		{Kind: Coins},
		{Kind: Settings},
	}

	for _, v := range views {
		t.Run(v.Fragment(), func(t *testing.T) {
			parsed, err := ParseFragment(v.Fragment())
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		})
	}
}

func TestParseFragmentStripsHash(t *testing.T) {
	v, err := ParseFragment("#book:42")
	require.NoError(t, err)
	assert.Equal(t, View{Kind: BookDetail, BookID: 42}, v)
}

func TestParseFragmentErrors(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
	}{
		{"empty", ""},
		{"hash only", "#"},
		{"unknown view", "reports"},
		{"detail without id", "book"},
		{"detail with bad id", "chapters:abc"},
		{"flat view with id", "genres:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFragment(tt.fragment)
			assert.Error(t, err)
		})
	}
}

func TestRequiresEntity(t *testing.T) {
	assert.True(t, Chapters.RequiresEntity())
	assert.True(t, BookDetail.RequiresEntity())
	assert.False(t, Dashboard.RequiresEntity())
	assert.False(t, Books.RequiresEntity())
	assert.False(t, Settings.RequiresEntity())
}

func TestDependencies(t *testing.T) {
	assert.Equal(t, []Collection{CollectionStats}, View{Kind: Dashboard}.Dependencies())
	assert.Equal(t, []Collection{CollectionBooks, CollectionGenres}, View{Kind: Books}.Dependencies())
	assert.Equal(t, []Collection{CollectionChapters}, View{Kind: Chapters, BookID: 1}.Dependencies())
	assert.Equal(t, []Collection{CollectionTopups}, View{Kind: Coins}.Dependencies())
	assert.Empty(t, View{Kind: Settings}.Dependencies())
}
