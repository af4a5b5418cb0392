package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/N1ghtSe7en/hellomint-main/internal/model"
	"github.com/N1ghtSe7en/hellomint-main/internal/session"
	"github.com/N1ghtSe7en/hellomint-main/near"
)

// APIHandler exposes the wallet operations as a JSON API mirroring the HTML
// pages.
type APIHandler struct {
	connector session.Connector
	minter    Minter
	networkID string
	filePath  string
	password  func() ([]byte, error)
}

// NewAPIHandler creates an APIHandler.
func NewAPIHandler(connector session.Connector, minter Minter, networkID, filePath string, password func() ([]byte, error)) *APIHandler {
	return &APIHandler{
		connector: connector,
		minter:    minter,
		networkID: networkID,
		filePath:  filePath,
		password:  password,
	}
}

// Generate handles POST /api/generate
// @Summary      Generate new wallet
// @Description  Generates a new NEAR implicit-account keypair and saves it to a .naw file
// @Tags         near
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /api/generate [post]
func (h *APIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := h.password()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	accountID, err := near.GenerateWallet(h.filePath, h.networkID, passwordBytes)
	if err != nil {
		if near.IsFileExistsError(err) {
			writeJSON(w, http.StatusConflict, model.ErrorResponse{Error: err.Error(), Code: "wallet_exists"})
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success:   true,
		Message:   "Wallet generated successfully",
		AccountID: accountID,
	})
}

// GetBalance handles GET /api/balance
// @Summary      Get account balance (USD = NEAR * rate)
// @Description  Gets the signed-in account's NEAR balance with a NEAR/USD estimate
// @Tags         near
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      401  {object}  model.ErrorResponse
// @Router       /api/balance [get]
func (h *APIHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	if !h.connector.SignedIn(r) {
		writeError(w, http.StatusUnauthorized, errors.New("not signed in"))
		return
	}

	balance, err := h.minter.Balance(r.Context(), h.connector.AccountID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// Mint handles POST /api/mint
// @Summary      Mint an NFT
// @Description  Calls nft_mint_default with a timestamp-derived token id and the signed-in account as receiver
// @Tags         near
// @Produce      json
// @Success      200  {object}  model.MintResponse
// @Failure      401  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /api/mint [post]
func (h *APIHandler) Mint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if !h.connector.SignedIn(r) {
		writeError(w, http.StatusUnauthorized, errors.New("not signed in"))
		return
	}

	resp, err := h.minter.Mint(r.Context(), h.connector.AccountID(r))
	if err != nil {
		if errors.Is(err, near.ErrMintInFlight) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}
