package model

// MintRequest is the argument object passed to the contract's
// nft_mint_default method. TokenID is the decimal string of the wall-clock
// timestamp in milliseconds at submission time; ReceiverID is the signed-in
// account.
type MintRequest struct {
	TokenID    string `json:"token_id"`
	ReceiverID string `json:"receiver_id"`
}

// TokenMetadata is the NEP-177 metadata subset the contract attaches to a
// minted token.
type TokenMetadata struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Media       *string `json:"media"`
	Copies      *uint64 `json:"copies"`
}

// Token is the contract's view of a minted token, decoded from the
// transaction's success value.
type Token struct {
	TokenID  string         `json:"token_id"`
	OwnerID  string         `json:"owner_id"`
	Metadata *TokenMetadata `json:"metadata"`
}

// MintResponse represents response for POST /api/mint
type MintResponse struct {
	Token         Token  `json:"token"`
	TransactionID string `json:"txId"`
}

// Notification is the transient success banner shown after a mint. It lives
// in an expiring store, so visibility ends when the entry does.
type Notification struct {
	TokenID    string
	Title      string
	ReceiverID string
}
