package client

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"
)

const ed25519KeyType = 0

// Borsh wire structures for NEAR transactions. Field order and the action
// enum variant order must match nearcore exactly.

type publicKey struct {
	KeyType uint8
	Data    [32]byte
}

type txSignature struct {
	KeyType uint8
	Data    [64]byte
}

type createAccount struct{}

type deployContract struct {
	Code []byte
}

type functionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    big.Int
}

// action covers the variants up to FunctionCall (index 2); this client never
// emits the later ones.
type action struct {
	Enum           borsh.Enum `borsh_enum:"true"`
	CreateAccount  createAccount
	DeployContract deployContract
	FunctionCall   functionCall
}

const actionFunctionCall = 2

type transaction struct {
	SignerID   string
	PublicKey  publicKey
	Nonce      uint64
	ReceiverID string
	BlockHash  [32]byte
	Actions    []action
}

type signedTransaction struct {
	Transaction transaction
	Signature   txSignature
}

// Signer holds the key material used to sign transactions.
type Signer struct {
	AccountID  string
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// NewSigner creates a Signer from a full 64-byte ed25519 private key.
func NewSigner(accountID string, privateKeyBytes []byte) (*Signer, error) {
	if len(privateKeyBytes) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: expected %d bytes", ed25519.PrivateKeySize)
	}
	// Copy so the caller can zero its buffer
	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(priv, privateKeyBytes)
	return &Signer{
		AccountID:  accountID,
		PublicKey:  priv.Public().(ed25519.PublicKey),
		PrivateKey: priv,
	}, nil
}

// PublicKeyString returns the signer's public key in the "ed25519:<base58>"
// form the RPC expects.
func (s *Signer) PublicKeyString() string {
	return "ed25519:" + base58.Encode(s.PublicKey)
}

// DecodePublicKey parses an "ed25519:<base58>" public key string.
func DecodePublicKey(key string) (ed25519.PublicKey, error) {
	raw := strings.TrimPrefix(key, "ed25519:")
	data, err := base58.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid public key encoding: %w", err)
	}
	if len(data) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid public key length: expected %d bytes", ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(data), nil
}

// buildFunctionCallTransaction assembles an unsigned transaction carrying a
// single FunctionCall action.
func buildFunctionCallTransaction(signer *Signer, receiverID string, nonce uint64, blockHash [32]byte, method string, args []byte, gas uint64, deposit *big.Int) transaction {
	var pk publicKey
	pk.KeyType = ed25519KeyType
	copy(pk.Data[:], signer.PublicKey)

	fc := functionCall{
		MethodName: method,
		Args:       args,
		Gas:        gas,
	}
	fc.Deposit.Set(deposit)

	return transaction{
		SignerID:   signer.AccountID,
		PublicKey:  pk,
		Nonce:      nonce,
		ReceiverID: receiverID,
		Actions: []action{{
			Enum:         actionFunctionCall,
			FunctionCall: fc,
		}},
		BlockHash: blockHash,
	}
}

// signTransaction serializes the transaction, signs the sha256 digest of the
// serialized bytes and returns the serialized SignedTransaction.
func signTransaction(tx transaction, signer *Signer) ([]byte, error) {
	raw, err := borsh.Serialize(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transaction: %w", err)
	}

	digest := sha256.Sum256(raw)
	sig := ed25519.Sign(signer.PrivateKey, digest[:])

	var txSig txSignature
	txSig.KeyType = ed25519KeyType
	copy(txSig.Data[:], sig)

	signed, err := borsh.Serialize(signedTransaction{Transaction: tx, Signature: txSig})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize signed transaction: %w", err)
	}
	return signed, nil
}

// decodeBlockHash converts a base58 block hash from the RPC into the fixed
// array the transaction needs.
func decodeBlockHash(hash string) ([32]byte, error) {
	var out [32]byte
	raw, err := base58.Decode(hash)
	if err != nil {
		return out, fmt.Errorf("invalid block hash encoding: %w", err)
	}
	if len(raw) != len(out) {
		return out, fmt.Errorf("invalid block hash length: expected %d bytes", len(out))
	}
	copy(out[:], raw)
	return out, nil
}
