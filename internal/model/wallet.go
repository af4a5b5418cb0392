package model

// NAWFile represents .naw credentials file structure
type NAWFile struct {
	Network    string `json:"network"`
	AccountID  string `json:"accountId"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet key material
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // 64 bytes ed25519 key (stored as base64 in JSON)
	PublicKey  string `json:"publicKey"`  // "ed25519:<base58>"
	CreatedAt  string `json:"createdAt"`
}
