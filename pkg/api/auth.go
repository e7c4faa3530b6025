package api

import "github.com/shopspring/decimal"

// RegisterRequest creates a wallet account bound to a device.
type RegisterRequest struct {
	Username string `json:"username"`
	DeviceID string `json:"device_id"`
}

// LoginRequest obtains a fresh access token for an existing account.
type LoginRequest struct {
	Username string `json:"username"`
	DeviceID string `json:"device_id"`
}

// AuthResponse carries the credentials the wallet stores in its vault.
type AuthResponse struct {
	UserID      string          `json:"user_id"`
	Username    string          `json:"username"`
	AccessToken string          `json:"access_token"`
	ExpiresIn   int64           `json:"expires_in"`
	Currency    string          `json:"currency"`
	Balance     decimal.Decimal `json:"balance"`
}
