package near

import (
	"context"
	"errors"
	"testing"

	"github.com/N1ghtSe7en/hellomint-main/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewer struct {
	amount string
	err    error
}

func (f *fakeViewer) ViewAccount(ctx context.Context, accountID string) (*client.AccountView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &client.AccountView{Amount: f.amount}, nil
}

type fakeRates struct {
	rate string
	err  error
}

func (f *fakeRates) GetNEARtoUSDrate() (string, error) {
	return f.rate, f.err
}

func TestBalance(t *testing.T) {
	viewer := &fakeViewer{amount: "2500000000000000000000000"} // 2.5 NEAR
	rates := &fakeRates{rate: "4.00"}
	s := newService(&fakeCaller{}, viewer, rates, fakeSigner, 0)

	resp, err := s.Balance(context.Background(), "alice.testnet")
	require.NoError(t, err)

	assert.Equal(t, "alice.testnet", resp.AccountID)
	assert.Equal(t, "2.5", resp.NEAR)
	assert.Equal(t, "4.00", resp.Rate)
	assert.Equal(t, "10.00", resp.USD)
}

func TestBalanceViewerError(t *testing.T) {
	s := newService(&fakeCaller{}, &fakeViewer{err: errors.New("node down")}, &fakeRates{}, fakeSigner, 0)
	_, err := s.Balance(context.Background(), "alice.testnet")
	assert.EqualError(t, err, "node down")
}

func TestBalanceRateError(t *testing.T) {
	viewer := &fakeViewer{amount: "0"}
	s := newService(&fakeCaller{}, viewer, &fakeRates{err: errors.New("rate limited")}, fakeSigner, 0)
	_, err := s.Balance(context.Background(), "alice.testnet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get rate")
}
