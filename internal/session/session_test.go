package session

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/N1ghtSe7en/hellomint-main/internal/crypto"
	"github.com/N1ghtSe7en/hellomint-main/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookies(resp *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range resp.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestWalletConnectorLoginLogout(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt key derivation is slow")
	}

	path := filepath.Join(t.TempDir(), "wallet.naw")
	password := []byte("secret")
	err := crypto.EncryptWallet(path, "testnet", "alice.testnet", "", &model.WalletData{
		PrivateKey: make([]byte, 64),
		PublicKey:  "ed25519:abc",
	}, password)
	require.NoError(t, err)

	store := NewStore(time.Hour)
	connector := NewWalletConnector(store, path, func() ([]byte, error) {
		p := make([]byte, len(password))
		copy(p, password)
		return p, nil
	})

	// Signed out by default
	anon := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, connector.SignedIn(anon))
	assert.Empty(t, connector.AccountID(anon))

	// Login issues a cookie-backed session
	w := httptest.NewRecorder()
	require.NoError(t, connector.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil)))

	signed := requestWithCookies(w)
	assert.True(t, connector.SignedIn(signed))
	assert.Equal(t, "alice.testnet", connector.AccountID(signed))

	// Logout drops the session
	w2 := httptest.NewRecorder()
	connector.Logout(w2, signed)
	assert.False(t, connector.SignedIn(signed))
}

func TestWalletConnectorLoginWrongPassword(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt key derivation is slow")
	}

	path := filepath.Join(t.TempDir(), "wallet.naw")
	err := crypto.EncryptWallet(path, "testnet", "alice.testnet", "", &model.WalletData{
		PrivateKey: make([]byte, 64),
	}, []byte("secret"))
	require.NoError(t, err)

	connector := NewWalletConnector(NewStore(time.Hour), path, func() ([]byte, error) {
		return []byte("wrong"), nil
	})

	w := httptest.NewRecorder()
	err = connector.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Error(t, err)
	assert.Empty(t, w.Result().Cookies())
}

func TestNotificationStoreExpiry(t *testing.T) {
	store := NewNotificationStore(50 * time.Millisecond)

	store.Put("tok", &model.Notification{TokenID: "1700000000000"})
	n, ok := store.Get("tok")
	require.True(t, ok)
	assert.Equal(t, "1700000000000", n.TokenID)

	// Visible until the TTL elapses, then hidden with no timer involved
	time.Sleep(80 * time.Millisecond)
	_, ok = store.Get("tok")
	assert.False(t, ok)
}

func TestNotificationStoreClear(t *testing.T) {
	store := NewNotificationStore(time.Hour)
	store.Put("tok", &model.Notification{TokenID: "1"})
	store.Clear("tok")
	_, ok := store.Get("tok")
	assert.False(t, ok)
}
