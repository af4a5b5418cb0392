package model

// ErrorResponse is the JSON body returned by every failed API call. Code is
// set only where a client can act on it (e.g. "wallet_exists").
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
