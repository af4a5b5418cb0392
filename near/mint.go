package near

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/N1ghtSe7en/hellomint-main/internal/client"
	"github.com/N1ghtSe7en/hellomint-main/internal/config"
	"github.com/N1ghtSe7en/hellomint-main/internal/crypto"
	"github.com/N1ghtSe7en/hellomint-main/internal/model"
)

const (
	// Fixed protocol quantities for nft_mint_default, passed as decimal
	// strings in the chain's smallest units: a 300 Tgas budget and a
	// 0.1 NEAR storage deposit.
	MintGas     = "300000000000000"
	MintDeposit = "100000000000000000000000"
)

// ErrMintInFlight is returned when a mint is submitted while another one is
// still running. Submissions are serialized by an explicit in-flight flag.
var ErrMintInFlight = errors.New("a mint is already in progress")

type contractCaller interface {
	ContractID() string
	NftMintDefault(ctx context.Context, signer *client.Signer, req *model.MintRequest, gas, deposit string) (*model.Token, string, error)
}

type accountViewer interface {
	ViewAccount(ctx context.Context, accountID string) (*client.AccountView, error)
}

type rateSource interface {
	GetNEARtoUSDrate() (string, error)
}

// Service owns the mint workflow: token id derivation, the in-flight guard
// and the optional cooldown between mints.
type Service struct {
	caller contractCaller
	viewer accountViewer
	rates  rateSource
	signer func() (*client.Signer, error)
	now    func() time.Time

	cooldown time.Duration

	mu       sync.Mutex
	inFlight bool
	lastMint time.Time
}

// NewService wires the service from configuration: the JSON-RPC client for
// the configured contract and the local credentials file as signer.
func NewService() *Service {
	nearClient := client.NewNearClient(config.GetContractID())
	filePath := config.GetWalletFilePath()

	return newService(
		nearClient,
		nearClient,
		client.NewCoinGeckoClient(),
		func() (*client.Signer, error) { return loadSigner(filePath) },
		time.Duration(config.Get().MintCooldown)*time.Second,
	)
}

func newService(caller contractCaller, viewer accountViewer, rates rateSource, signer func() (*client.Signer, error), cooldown time.Duration) *Service {
	return &Service{
		caller:   caller,
		viewer:   viewer,
		rates:    rates,
		signer:   signer,
		now:      time.Now,
		cooldown: cooldown,
	}
}

// ContractID returns the NFT contract account id.
func (s *Service) ContractID() string {
	return s.caller.ContractID()
}

// InFlight reports whether a mint is currently running.
func (s *Service) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Mint submits one nft_mint_default call. The token id is the decimal
// string of the current wall-clock timestamp in milliseconds and the
// receiver is the signed-in account. The in-flight flag is always released,
// whatever the outcome.
func (s *Service) Mint(ctx context.Context, receiverID string) (*model.MintResponse, error) {
	if receiverID == "" {
		return nil, errors.New("no signed-in account to receive the token")
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrMintInFlight
	}
	if s.cooldown > 0 && !s.lastMint.IsZero() {
		if since := s.now().Sub(s.lastMint); since < s.cooldown {
			remaining := s.cooldown - since
			s.mu.Unlock()
			return nil, fmt.Errorf("cooldown active, please wait %v", remaining.Round(time.Second))
		}
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	// Millisecond resolution: two mints inside the same millisecond would
	// collide on token id, the contract rejects the second one.
	req := &model.MintRequest{
		TokenID:    strconv.FormatInt(s.now().UnixMilli(), 10),
		ReceiverID: receiverID,
	}

	signer, err := s.signer()
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet key: %w", err)
	}

	token, txID, err := s.caller.NftMintDefault(ctx, signer, req, MintGas, MintDeposit)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastMint = s.now()
	s.mu.Unlock()

	return &model.MintResponse{
		Token:         *token,
		TransactionID: txID,
	}, nil
}

// loadSigner decrypts the credentials file with the in-memory password and
// builds a transaction signer from it.
func loadSigner(filePath string) (*client.Signer, error) {
	passwordBytes, err := config.GetWalletPasswordBytes()
	if err != nil {
		return nil, err
	}
	defer clear(passwordBytes)

	nawFile, walletData, err := crypto.DecryptWallet(filePath, passwordBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(walletData.PrivateKey)

	return client.NewSigner(nawFile.AccountID, walletData.PrivateKey)
}
