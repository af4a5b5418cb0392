package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/N1ghtSe7en/hellomint-main/internal/config"
	"github.com/N1ghtSe7en/hellomint-main/internal/model"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// NearClient is a client for working with the NEAR JSON-RPC node
type NearClient struct {
	url        string
	httpClient *retryablehttp.Client
	contractID string
}

// NewNearClient creates a new NEAR client for the given contract.
func NewNearClient(contractID string) *NearClient {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 3

	return &NearClient{
		url:        config.GetNodeURL(),
		httpClient: retryClient,
		contractID: contractID,
	}
}

// NewNearClientWithURL creates a NEAR client against an explicit node URL.
func NewNearClientWithURL(url, contractID string) *NearClient {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 3

	return &NearClient{
		url:        url,
		httpClient: retryClient,
		contractID: contractID,
	}
}

// ContractID returns the NFT contract account id this client calls.
func (c *NearClient) ContractID() string {
	return c.contractID
}

// AccessKeyView is the node's view of one access key, plus the block the
// view was taken at.
type AccessKeyView struct {
	Nonce       uint64 `json:"nonce"`
	BlockHeight uint64 `json:"block_height"`
	BlockHash   string `json:"block_hash"`
}

// ViewAccessKey queries the current nonce and a recent block hash for the
// given account key pair.
func (c *NearClient) ViewAccessKey(ctx context.Context, accountID, publicKey string) (*AccessKeyView, error) {
	result, err := c.call(ctx, "query", map[string]interface{}{
		"request_type": "view_access_key",
		"finality":     "final",
		"account_id":   accountID,
		"public_key":   publicKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to view access key: %w", err)
	}

	var view AccessKeyView
	if err := json.Unmarshal(result, &view); err != nil {
		return nil, fmt.Errorf("failed to decode access key view: %w", err)
	}
	return &view, nil
}

// AccountView is the subset of the node's account view this app reads.
type AccountView struct {
	Amount string `json:"amount"` // yoctoNEAR
}

// ViewAccount queries the account state (balance in yoctoNEAR).
func (c *NearClient) ViewAccount(ctx context.Context, accountID string) (*AccountView, error) {
	result, err := c.call(ctx, "query", map[string]interface{}{
		"request_type": "view_account",
		"finality":     "final",
		"account_id":   accountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to view account: %w", err)
	}

	var view AccountView
	if err := json.Unmarshal(result, &view); err != nil {
		return nil, fmt.Errorf("failed to decode account view: %w", err)
	}
	return &view, nil
}

// executionOutcome is the subset of a final execution outcome this client
// inspects after broadcasting.
type executionOutcome struct {
	Status struct {
		SuccessValue *string         `json:"SuccessValue"`
		Failure      json.RawMessage `json:"Failure"`
	} `json:"status"`
	Transaction struct {
		Hash string `json:"hash"`
	} `json:"transaction"`
}

// NftMintDefault calls the contract's nft_mint_default method with the given
// request, gas budget and attached deposit (both decimal strings in the
// chain's smallest units). It returns the minted token and the transaction id.
func (c *NearClient) NftMintDefault(ctx context.Context, signer *Signer, req *model.MintRequest, gas, deposit string) (*model.Token, string, error) {
	gasBudget, err := strconv.ParseUint(gas, 10, 64)
	if err != nil {
		return nil, "", fmt.Errorf("invalid gas budget %q: %w", gas, err)
	}

	attachedDeposit, ok := new(big.Int).SetString(deposit, 10)
	if !ok {
		return nil, "", fmt.Errorf("invalid attached deposit %q", deposit)
	}

	args, err := json.Marshal(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal mint args: %w", err)
	}

	// Fetch the key nonce and a recent block hash to anchor the transaction
	keyView, err := c.ViewAccessKey(ctx, signer.AccountID, signer.PublicKeyString())
	if err != nil {
		return nil, "", err
	}

	blockHash, err := decodeBlockHash(keyView.BlockHash)
	if err != nil {
		return nil, "", err
	}

	tx := buildFunctionCallTransaction(
		signer,
		c.contractID,
		keyView.Nonce+1,
		blockHash,
		"nft_mint_default",
		args,
		gasBudget,
		attachedDeposit,
	)

	signed, err := signTransaction(tx, signer)
	if err != nil {
		return nil, "", err
	}

	zap.L().With(
		zap.String("tokenId", req.TokenID),
		zap.String("receiverId", req.ReceiverID),
		zap.String("contractId", c.contractID),
	).Debug("NEAR: broadcasting mint transaction")

	result, err := c.call(ctx, "broadcast_tx_commit", []string{
		base64.StdEncoding.EncodeToString(signed),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to broadcast transaction: %w", err)
	}

	var outcome executionOutcome
	if err := json.Unmarshal(result, &outcome); err != nil {
		return nil, "", fmt.Errorf("failed to decode execution outcome: %w", err)
	}

	if outcome.Status.Failure != nil {
		return nil, "", fmt.Errorf("mint transaction failed: %s", string(outcome.Status.Failure))
	}
	if outcome.Status.SuccessValue == nil {
		return nil, "", fmt.Errorf("mint transaction returned no value")
	}

	raw, err := base64.StdEncoding.DecodeString(*outcome.Status.SuccessValue)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode success value: %w", err)
	}

	var token model.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, "", fmt.Errorf("failed to decode minted token: %w", err)
	}

	return &token, outcome.Transaction.Hash, nil
}
