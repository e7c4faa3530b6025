package validation

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// CurrencyPattern is an ISO 4217 style code: three uppercase letters.
var CurrencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// UserIDPattern keeps user identifiers to letters, digits, underscore
// and dash, 3-64 characters.
var UserIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

// MaxPaymentAmount caps a single offline payment. Offline tokens are
// meant for small retail amounts; anything above this goes through the
// online rails.
var MaxPaymentAmount = decimal.NewFromInt(10000)

// maxAmountPlaces is the cent precision every supported currency uses.
const maxAmountPlaces = 2

// ValidateCurrency checks the currency code format.
func ValidateCurrency(currency string) error {
	if currency == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	if !CurrencyPattern.MatchString(currency) {
		return fmt.Errorf("currency must be a three-letter uppercase code, got %q", currency)
	}
	return nil
}

// ValidateAmount checks that amount is a positive payment value with at
// most two decimal places, within the offline payment cap.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.Exponent() < -maxAmountPlaces {
		return fmt.Errorf("amount must have at most %d decimal places, got %s", maxAmountPlaces, amount)
	}
	if amount.GreaterThan(MaxPaymentAmount) {
		return fmt.Errorf("amount %s exceeds the offline payment limit of %s", amount, MaxPaymentAmount)
	}
	return nil
}

// ValidateUserID checks the user identifier format.
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("user id cannot be empty")
	}
	if !UserIDPattern.MatchString(userID) {
		return fmt.Errorf("user id can only contain letters, numbers, underscores and dashes (3-64 characters)")
	}
	return nil
}
