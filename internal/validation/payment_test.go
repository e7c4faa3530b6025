package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		wantErr  bool
	}{
		{name: "valid MYR", currency: "MYR"},
		{name: "valid USD", currency: "USD"},
		{name: "empty", currency: "", wantErr: true},
		{name: "lowercase", currency: "myr", wantErr: true},
		{name: "too long", currency: "MYRX", wantErr: true},
		{name: "digits", currency: "M1R", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCurrency(tt.currency)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "valid whole", amount: "50"},
		{name: "valid cents", amount: "49.99"},
		{name: "at limit", amount: "10000"},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative", amount: "-5.00", wantErr: true},
		{name: "three decimal places", amount: "1.005", wantErr: true},
		{name: "above limit", amount: "10000.01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{name: "valid", userID: "user-123"},
		{name: "valid with underscore", userID: "alice_smith"},
		{name: "empty", userID: "", wantErr: true},
		{name: "too short", userID: "ab", wantErr: true},
		{name: "spaces", userID: "alice smith", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserID(tt.userID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
