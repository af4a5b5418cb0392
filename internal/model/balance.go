package model

// BalanceResponse represents response for GET /api/balance
type BalanceResponse struct {
	AccountID string `json:"accountId"`
	NEAR      string `json:"near"`
	Rate      string `json:"rate"`
	USD       string `json:"near_amount_in_usd"`
}
