package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin/internal/client"
)

// Deleting an admin is refused by client-side policy before any request.
func TestDeleteAdminRefusedClientSide(t *testing.T) {
	var hits int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits++ })

	err := c.DeleteUser(context.Background(), client.User{
		ID: 1, Email: "admin@bookhub.local", Role: client.RoleAdmin,
	})
	require.Error(t, err)
	assert.Equal(t, client.KindValidation, client.KindOf(err))
	assert.Zero(t, hits, "the delete must never reach the network")
}

func TestDeleteRegularUser(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.DeleteUser(context.Background(), client.User{ID: 5, Role: client.RoleUser})
	require.NoError(t, err)
}

func TestCreditWallet(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/5/wallet/topup", r.URL.Path)
		var body client.WalletCreditRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(250), body.Coins)
		assert.Equal(t, "promo gift", body.Note)
		w.Write([]byte(`{"id":5,"email":"paula@example.com","coins":300}`))
	})

	user, err := c.CreditWallet(context.Background(), 5, client.WalletCreditRequest{Coins: 250, Note: "promo gift"})
	require.NoError(t, err)
	assert.Equal(t, int64(300), user.Coins)
}

func TestCreditWalletValidation(t *testing.T) {
	var hits int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits++ })

	_, err := c.CreditWallet(context.Background(), 5, client.WalletCreditRequest{Coins: 0})
	require.Error(t, err)
	assert.Equal(t, client.KindValidation, client.KindOf(err))
	assert.Zero(t, hits)
}

func TestApproveTopupBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/topup-requests/req-1/approve", r.URL.Path)
		var body struct {
			Coins     int64  `json:"coins"`
			AdminNote string `json:"admin_note"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(100), body.Coins)
		w.Write([]byte(`{"request_id":"req-1","status":"approved","coins":100}`))
	})

	topup, err := c.ApproveTopup(context.Background(), "req-1", 100, "")
	require.NoError(t, err)
	assert.Equal(t, client.TopupApproved, topup.Status)
}
