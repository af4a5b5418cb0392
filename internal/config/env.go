package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the wallet password is prompted at runtime and stored in memory -
// use GetWalletPasswordBytes()
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Debug           bool   `envconfig:"DEBUG" default:"false"`
	NetworkID       string `envconfig:"NEAR_NETWORK_ID" default:"testnet"`
	NodeURL         string `envconfig:"NEAR_NODE_URL" default:""`
	ContractID      string `envconfig:"NEAR_CONTRACT_ID" required:"true"`
	WalletFilePath  string `envconfig:"NEAR_WALLET_FILE_PATH" required:"true"`
	SessionTTL      int    `envconfig:"SESSION_TTL_MINUTES" default:"60"`
	NotificationTTL int    `envconfig:"NOTIFICATION_TTL_SECONDS" default:"11"`
	MintCooldown    int    `envconfig:"MINT_COOLDOWN_SECONDS" default:"0"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from .env (if present) and environment variables.
func Init() error {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetNetworkID returns the NEAR network profile ("testnet", "mainnet", ...)
func GetNetworkID() string {
	return Get().NetworkID
}

// GetNodeURL returns the NEAR JSON-RPC endpoint. When unset it is derived
// from the network profile.
func GetNodeURL() string {
	if url := Get().NodeURL; url != "" {
		return url
	}
	return fmt.Sprintf("https://rpc.%s.near.org", Get().NetworkID)
}

// GetContractID returns the NFT contract account id
func GetContractID() string {
	return Get().ContractID
}

// GetWalletFilePath returns path to .naw file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetWalletPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
