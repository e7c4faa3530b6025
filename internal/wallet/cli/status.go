package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Wallet Status ===")
	fmt.Println()

	identity, err := c.vault.DeviceIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to load device identity: %w", err)
	}
	fmt.Printf("Device:       %s\n", identity.PartialID())
	fmt.Printf("Enrolled at:  %s\n", identity.CreatedAt.Format(time.RFC3339))

	if c.prober.IsOnline(ctx) {
		fmt.Println("Connectivity: online")
	} else {
		fmt.Println("Connectivity: offline")
	}

	balance, err := c.vault.Balance(ctx)
	if err != nil {
		return fmt.Errorf("failed to load balance: %w", err)
	}
	fmt.Printf("Balance:      %s %s\n", balance, c.currency)

	tokens, err := c.vault.GetActiveTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tokens: %w", err)
	}
	fmt.Printf("Active authorization tokens: %d\n", len(tokens))

	pending, err := c.pendingCount(ctx)
	if err != nil {
		fmt.Printf("\nWarning: failed to count pending transactions: %v\n", err)
		return nil
	}

	fmt.Println()
	if pending > 0 {
		fmt.Printf("⚠️  Pending settlement: %d transaction(s)\n", pending)
		fmt.Println("Run 'wallet reconcile' when connectivity is available.")
	} else {
		fmt.Println("✓ All transactions settled with the server")
	}

	return nil
}
