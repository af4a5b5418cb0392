package near

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/N1ghtSe7en/hellomint-main/internal/crypto"
	"github.com/N1ghtSe7en/hellomint-main/internal/model"

	"github.com/mr-tron/base58"
	"github.com/skip2/go-qrcode"
)

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	_, ok := err.(*FileExistsError)
	return ok
}

// GenerateWallet generates a new ed25519 keypair for an implicit NEAR
// account and saves it to a .naw file. Returns the generated account id on
// success.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath, networkID string, password []byte) (accountID string, err error) {
	// Check file extension (.naw)
	if ext := filepath.Ext(filePath); ext != ".naw" {
		return "", fmt.Errorf("file must have .naw extension")
	}

	// Check file existence
	if fileInfo, statErr := os.Stat(filePath); statErr == nil {
		if fileInfo.Size() > 0 {
			return "", &FileExistsError{Message: "file is not empty"}
		}
	}

	// Generate new keypair
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to generate keypair: %w", err)
	}
	defer clear(priv)

	// Implicit NEAR account id is the hex of the public key
	accountID = hex.EncodeToString(pub)

	// Generate QR code
	qrCode, err := generateQRCode(accountID)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	walletData := &model.WalletData{
		PrivateKey: priv,
		PublicKey:  "ed25519:" + base58.Encode(pub),
		CreatedAt:  time.Now().Format(time.RFC3339),
	}

	// Encrypt and write to file
	if err := crypto.EncryptWallet(filePath, networkID, accountID, qrCode, walletData, password); err != nil {
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	return accountID, nil
}

// generateQRCode generates QR code of the account id in base64
func generateQRCode(accountID string) (string, error) {
	qr, err := qrcode.New(accountID, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

// AccountQRCode renders a QR code PNG for the given account id.
func AccountQRCode(accountID string) ([]byte, error) {
	qr, err := qrcode.New(accountID, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	return qr.PNG(256)
}
