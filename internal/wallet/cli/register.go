package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pinkpay/offlinepay/internal/crypto"
	"github.com/pinkpay/offlinepay/internal/validation"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
	"github.com/pinkpay/offlinepay/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context, pins Pins) error {
	fmt.Println("=== Wallet Enrollment ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUserID(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	pin, err := c.enrollPIN(pins)
	if err != nil {
		return err
	}

	identity, err := c.vault.DeviceIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to load device identity: %w", err)
	}

	fmt.Println()
	fmt.Println("Enrolling with settlement server...")

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		DeviceID: identity.PartialID(),
	})
	if err != nil {
		return err
	}

	if err := c.sealCredentials(ctx, pin, identity.Fingerprint, resp); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Enrollment successful!")
	fmt.Printf("User ID:  %s\n", resp.UserID)
	fmt.Printf("Username: %s\n", resp.Username)
	fmt.Printf("Balance:  %s %s\n", resp.Balance, resp.Currency)
	fmt.Printf("Device:   %s\n", identity.PartialID())
	fmt.Println()
	fmt.Println("⚠️  IMPORTANT: Remember your wallet PIN!")
	fmt.Println("   Credentials are sealed with it and cannot be recovered without it.")
	fmt.Println()
	fmt.Println("Run 'wallet issue <amount>' to authorize offline spending.")

	return nil
}

// enrollPIN collects a new PIN. Non-interactive sources are taken as
// is; the interactive prompt asks for confirmation.
func (c *Cli) enrollPIN(pins Pins) (string, error) {
	if os.Getenv("OFFLINEPAY_PIN") != "" || pins.FromFile != "" || pins.FromArgs != "" {
		pin, err := c.getPIN(pins)
		if err != nil {
			return "", err
		}
		if len(pin) < minPINLength {
			return "", fmt.Errorf("PIN must be at least %d characters", minPINLength)
		}
		return pin, nil
	}

	pin, err := readPassword(fmt.Sprintf("Wallet PIN (min %d chars): ", minPINLength))
	if err != nil {
		return "", fmt.Errorf("failed to read PIN: %w", err)
	}
	if len(pin) < minPINLength {
		return "", fmt.Errorf("PIN must be at least %d characters", minPINLength)
	}

	confirm, err := readPassword("Confirm wallet PIN: ")
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}
	if pin != confirm {
		return "", fmt.Errorf("PINs do not match")
	}

	return pin, nil
}

// sealCredentials stores the server credentials under the PIN-derived
// vault key and adopts the server's view of the spendable balance.
func (c *Cli) sealCredentials(ctx context.Context, pin, fingerprint string, resp *api.AuthResponse) error {
	vaultKey, err := crypto.DeriveVaultKey(pin, fingerprint)
	if err != nil {
		return fmt.Errorf("failed to derive vault key: %w", err)
	}

	creds := &vault.Credentials{
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Unix() + resp.ExpiresIn,
	}
	if err := c.vault.SaveCredentials(ctx, creds, vaultKey); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	if err := c.vault.SetBalance(ctx, resp.Balance); err != nil {
		return fmt.Errorf("failed to store balance: %w", err)
	}

	return nil
}
