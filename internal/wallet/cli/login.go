package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pinkpay/offlinepay/internal/crypto"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
	"github.com/pinkpay/offlinepay/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context, pins Pins) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	pin, err := c.getPIN(pins)
	if err != nil {
		return fmt.Errorf("failed to get PIN: %w", err)
	}

	identity, err := c.vault.DeviceIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to load device identity: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		DeviceID: identity.PartialID(),
	})
	if err != nil {
		return err
	}

	vaultKey, err := crypto.DeriveVaultKey(pin, identity.Fingerprint)
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

	// Adopt the server balance only when nothing local is waiting to
	// settle; otherwise the pending debits and credits would be lost.
	if pending, err := c.pendingCount(ctx); err == nil && pending == 0 {
		if err := c.vault.SetBalance(ctx, resp.Balance); err != nil {
			return fmt.Errorf("failed to store balance: %w", err)
		}
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Username: %s\n", resp.Username)
	fmt.Printf("Balance:  %s %s (server)\n", resp.Balance, resp.Currency)
	fmt.Printf("Access token expires in: %d seconds\n", resp.ExpiresIn)
	fmt.Println()
	fmt.Println("Your session has been sealed in the local vault.")

	return nil
}

// pendingCount reports how many transactions still need settlement.
func (c *Cli) pendingCount(ctx context.Context) (int, error) {
	transactions, err := c.vault.GetTransactions(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, txn := range transactions {
		if txn.SyncStatus.NeedsSettlement() {
			count++
		}
	}
	return count, nil
}
