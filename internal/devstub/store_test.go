package devstub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin/internal/client"
)

// List responses come out of maps, so they must be sorted explicitly.
func TestListOrderingDeterministic(t *testing.T) {
	store := NewStore()

	var userIDs []int64
	for _, email := range []string{"c@example.com", "a@example.com", "b@example.com"} {
		u, err := store.Register("Reader", email, "pw123456", client.RoleUser)
		require.NoError(t, err)
		userIDs = append(userIDs, u.ID)
	}

	users := store.ListUsers()
	require.Len(t, users, 3)
	for i := 1; i < len(users); i++ {
		assert.Less(t, users[i-1].ID, users[i].ID)
	}

	for range userIDs {
		store.CreateBook(client.CreateBookRequest{Title: "Book"})
	}
	books := store.ListBooks()
	for i := 1; i < len(books); i++ {
		assert.Less(t, books[i-1].ID, books[i].ID)
	}
}

func TestListTopupsOrderedByCreation(t *testing.T) {
	store := NewStore()
	u, err := store.Register("Reader", "paula@example.com", "pw123456", client.RoleUser)
	require.NoError(t, err)

	var seeded []string
	for i := 0; i < 5; i++ {
		seeded = append(seeded, store.SeedTopup(u.ID, 10, 0.99, "card").RequestID)
	}

	topups := store.ListTopups()
	require.Len(t, topups, 5)
	for i := 1; i < len(topups); i++ {
		assert.False(t, topups[i].CreatedAt.Before(topups[i-1].CreatedAt))
	}
	got := make([]string, len(topups))
	for i, tp := range topups {
		got[i] = tp.RequestID
	}
	assert.Equal(t, seeded, got)
}
