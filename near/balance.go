package near

import (
	"context"
	"fmt"
	"strconv"

	"github.com/N1ghtSe7en/hellomint-main/internal/common"
	"github.com/N1ghtSe7en/hellomint-main/internal/model"
)

// Balance gets the account balance with a USD estimate
func (s *Service) Balance(ctx context.Context, accountID string) (*model.BalanceResponse, error) {
	account, err := s.viewer.ViewAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Convert to display string (no float precision loss)
	near, err := common.YoctoToNEAR(account.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to convert balance: %w", err)
	}

	// Get NEAR/USD rate
	rate, err := s.rates.GetNEARtoUSDrate()
	if err != nil {
		return nil, fmt.Errorf("failed to get rate: %w", err)
	}

	// Calculate USD (use float only for display, not for critical operations)
	nearFloat, _ := strconv.ParseFloat(near, 64)
	rateFloat, _ := strconv.ParseFloat(rate, 64)
	usd := fmt.Sprintf("%.2f", nearFloat*rateFloat)

	return &model.BalanceResponse{
		AccountID: accountID,
		NEAR:      common.TrimNEAR(near),
		Rate:      rate,
		USD:       usd,
	}, nil
}
