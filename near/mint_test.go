package near

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/N1ghtSe7en/hellomint-main/internal/client"
	"github.com/N1ghtSe7en/hellomint-main/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	mu      sync.Mutex
	lastReq *model.MintRequest
	gas     string
	deposit string
	err     error
	block   chan struct{} // when set, NftMintDefault waits until closed
}

func (f *fakeCaller) ContractID() string { return "nft.n7.testnet" }

func (f *fakeCaller) NftMintDefault(ctx context.Context, signer *client.Signer, req *model.MintRequest, gas, deposit string) (*model.Token, string, error) {
	f.mu.Lock()
	f.lastReq = req
	f.gas = gas
	f.deposit = deposit
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, "", f.err
	}
	return &model.Token{TokenID: req.TokenID, OwnerID: req.ReceiverID}, "tx1", nil
}

func fakeSigner() (*client.Signer, error) {
	return &client.Signer{AccountID: "alice.testnet"}, nil
}

func newTestService(caller *fakeCaller) *Service {
	return newService(caller, nil, nil, fakeSigner, 0)
}

func TestMintBuildsRequestFromClock(t *testing.T) {
	caller := &fakeCaller{}
	s := newTestService(caller)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	resp, err := s.Mint(context.Background(), "alice.testnet")
	require.NoError(t, err)

	assert.Equal(t, "1700000000000", caller.lastReq.TokenID)
	assert.Equal(t, "alice.testnet", caller.lastReq.ReceiverID)
	assert.Equal(t, "300000000000000", caller.gas)
	assert.Equal(t, "100000000000000000000000", caller.deposit)

	assert.Equal(t, "1700000000000", resp.Token.TokenID)
	assert.Equal(t, "tx1", resp.TransactionID)
}

func TestMintRequiresReceiver(t *testing.T) {
	s := newTestService(&fakeCaller{})
	_, err := s.Mint(context.Background(), "")
	assert.Error(t, err)
}

func TestMintSerializesSubmissions(t *testing.T) {
	release := make(chan struct{})
	caller := &fakeCaller{block: release}
	s := newTestService(caller)

	done := make(chan error, 1)
	go func() {
		_, err := s.Mint(context.Background(), "alice.testnet")
		done <- err
	}()

	// Wait until the first mint is in flight
	require.Eventually(t, s.InFlight, time.Second, time.Millisecond)

	// A second submission is rejected while the first one runs
	_, err := s.Mint(context.Background(), "alice.testnet")
	assert.ErrorIs(t, err, ErrMintInFlight)

	close(release)
	require.NoError(t, <-done)

	// The guard is released once the call completes
	assert.False(t, s.InFlight())
	caller.block = nil
	_, err = s.Mint(context.Background(), "alice.testnet")
	assert.NoError(t, err)
}

func TestMintReleasesGuardOnFailure(t *testing.T) {
	caller := &fakeCaller{err: errors.New("boom")}
	s := newTestService(caller)

	_, err := s.Mint(context.Background(), "alice.testnet")
	require.EqualError(t, err, "boom")
	assert.False(t, s.InFlight())

	// Still usable after the failure
	caller.err = nil
	_, err = s.Mint(context.Background(), "alice.testnet")
	assert.NoError(t, err)
}

func TestMintCooldown(t *testing.T) {
	caller := &fakeCaller{}
	s := newService(caller, nil, nil, fakeSigner, time.Minute)

	base := time.UnixMilli(1700000000000)
	now := base
	s.now = func() time.Time { return now }

	_, err := s.Mint(context.Background(), "alice.testnet")
	require.NoError(t, err)

	now = base.Add(10 * time.Second)
	_, err = s.Mint(context.Background(), "alice.testnet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cooldown active")

	now = base.Add(2 * time.Minute)
	_, err = s.Mint(context.Background(), "alice.testnet")
	assert.NoError(t, err)
}

func TestMintSignerFailure(t *testing.T) {
	caller := &fakeCaller{}
	s := newService(caller, nil, nil, func() (*client.Signer, error) {
		return nil, errors.New("password not set")
	}, 0)

	_, err := s.Mint(context.Background(), "alice.testnet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load wallet key")
	assert.False(t, s.InFlight())
}
