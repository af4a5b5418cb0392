package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/N1ghtSe7en/hellomint-main/internal/model"
	"github.com/N1ghtSe7en/hellomint-main/near"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPassword() ([]byte, error) {
	return []byte("test-password"), nil
}

func TestAPIGenerate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping key derivation in short mode")
	}

	filePath := filepath.Join(t.TempDir(), "wallet.naw")
	h := NewAPIHandler(&fakeConnector{}, &fakeMinter{}, "testnet", filePath, testPassword)

	w := httptest.NewRecorder()
	h.Generate(w, httptest.NewRequest(http.MethodPost, "/api/generate", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.GenerateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.AccountID, 64) // implicit account id: hex of the public key

	// A second generate must not clobber the wallet file
	w = httptest.NewRecorder()
	h.Generate(w, httptest.NewRequest(http.MethodPost, "/api/generate", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPIGenerateRequiresPost(t *testing.T) {
	h := NewAPIHandler(&fakeConnector{}, &fakeMinter{}, "testnet", "wallet.naw", testPassword)

	w := httptest.NewRecorder()
	h.Generate(w, httptest.NewRequest(http.MethodGet, "/api/generate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAPIBalance(t *testing.T) {
	connector := &fakeConnector{signedIn: true, accountID: "alice.testnet"}
	minter := &fakeMinter{balance: &model.BalanceResponse{
		AccountID: "alice.testnet",
		NEAR:      "2.5",
		Rate:      "4.00",
		USD:       "10.00",
	}}
	h := NewAPIHandler(connector, minter, "testnet", "wallet.naw", testPassword)

	w := httptest.NewRecorder()
	h.GetBalance(w, sessionRequest(http.MethodGet, "/api/balance"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.BalanceResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "10.00", resp.USD)
}

func TestAPIBalanceUnauthorized(t *testing.T) {
	h := NewAPIHandler(&fakeConnector{}, &fakeMinter{}, "testnet", "wallet.naw", testPassword)

	w := httptest.NewRecorder()
	h.GetBalance(w, httptest.NewRequest(http.MethodGet, "/api/balance", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIMint(t *testing.T) {
	connector := &fakeConnector{signedIn: true, accountID: "alice.testnet"}
	minter := &fakeMinter{mintResp: &model.MintResponse{
		Token:         model.Token{TokenID: "1700000000000", OwnerID: "alice.testnet"},
		TransactionID: "tx1",
	}}
	h := NewAPIHandler(connector, minter, "testnet", "wallet.naw", testPassword)

	w := httptest.NewRecorder()
	h.Mint(w, sessionRequest(http.MethodPost, "/api/mint"))

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.MintResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "1700000000000", resp.Token.TokenID)
	assert.Equal(t, "tx1", resp.TransactionID)
	assert.Equal(t, "alice.testnet", minter.lastMintTo)
}

func TestAPIMintUnauthorized(t *testing.T) {
	minter := &fakeMinter{}
	h := NewAPIHandler(&fakeConnector{}, minter, "testnet", "wallet.naw", testPassword)

	w := httptest.NewRecorder()
	h.Mint(w, httptest.NewRequest(http.MethodPost, "/api/mint", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, minter.mintCalls)
}

func TestAPIMintConflict(t *testing.T) {
	connector := &fakeConnector{signedIn: true, accountID: "alice.testnet"}
	minter := &fakeMinter{mintErr: near.ErrMintInFlight}
	h := NewAPIHandler(connector, minter, "testnet", "wallet.naw", testPassword)

	w := httptest.NewRecorder()
	h.Mint(w, sessionRequest(http.MethodPost, "/api/mint"))

	require.Equal(t, http.StatusConflict, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Error)
}

func TestAPIMintFailure(t *testing.T) {
	connector := &fakeConnector{signedIn: true, accountID: "alice.testnet"}
	minter := &fakeMinter{mintErr: errors.New("broadcast failed")}
	h := NewAPIHandler(connector, minter, "testnet", "wallet.naw", testPassword)

	w := httptest.NewRecorder()
	h.Mint(w, sessionRequest(http.MethodPost, "/api/mint"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
