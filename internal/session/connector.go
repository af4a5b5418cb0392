package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/N1ghtSe7en/hellomint-main/internal/crypto"
	"github.com/N1ghtSe7en/hellomint-main/internal/model"
)

// CookieName is the session cookie the wallet connector issues.
const CookieName = "hellomint_session"

// Connector manages the wallet session. Handlers only ever read the
// signed-in predicate and the account id; the connector owns both.
type Connector interface {
	SignedIn(r *http.Request) bool
	AccountID(r *http.Request) string
	Login(w http.ResponseWriter, r *http.Request) error
	Logout(w http.ResponseWriter, r *http.Request)
}

// WalletConnector signs the local wallet in and out. Login authenticates by
// decrypting the credentials file, so a wrong password never yields a
// session.
type WalletConnector struct {
	store    *Store
	filePath string
	password func() ([]byte, error)
}

// NewWalletConnector creates a connector over the given session store and
// credentials file. The password source is injected so tests can supply one
// without a terminal prompt.
func NewWalletConnector(store *Store, filePath string, password func() ([]byte, error)) *WalletConnector {
	return &WalletConnector{
		store:    store,
		filePath: filePath,
		password: password,
	}
}

// Login decrypts the credentials file and issues a session cookie for its
// account.
func (c *WalletConnector) Login(w http.ResponseWriter, r *http.Request) error {
	passwordBytes, err := c.password()
	if err != nil {
		return err
	}
	defer clear(passwordBytes) // Always clear password from memory

	nawFile, walletData, err := crypto.DecryptWallet(c.filePath, passwordBytes)
	if err != nil {
		return fmt.Errorf("failed to open wallet: %w", err)
	}
	defer clear(walletData.PrivateKey)

	token, err := newSessionToken()
	if err != nil {
		return err
	}

	c.store.Put(token, &model.Session{
		AccountID: nawFile.AccountID,
		SignedIn:  true,
		CreatedAt: time.Now(),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout drops the session and expires the cookie.
func (c *WalletConnector) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := Token(r); ok {
		c.store.Delete(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SignedIn reports whether the request carries a live session.
func (c *WalletConnector) SignedIn(r *http.Request) bool {
	return c.session(r) != nil
}

// AccountID returns the signed-in account id, or "" when signed out.
func (c *WalletConnector) AccountID(r *http.Request) string {
	if s := c.session(r); s != nil {
		return s.AccountID
	}
	return ""
}

func (c *WalletConnector) session(r *http.Request) *model.Session {
	token, ok := Token(r)
	if !ok {
		return nil
	}
	s, ok := c.store.Get(token)
	if !ok {
		return nil
	}
	return s
}

// Token extracts the session token from the request cookie.
func Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func newSessionToken() (string, error) {
	raw := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
