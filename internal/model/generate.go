package model

// GenerateResponse represents response for POST /api/generate
type GenerateResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	AccountID string `json:"accountId,omitempty"`
}
