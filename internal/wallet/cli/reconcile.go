package cli

import (
	"context"
	"fmt"

	"github.com/pinkpay/offlinepay/internal/wallet/authz"
	"github.com/pinkpay/offlinepay/internal/wallet/settlement"
)

func (c *Cli) runReconcile(ctx context.Context, pins Pins) error {
	fmt.Println("=== Reconciliation ===")
	fmt.Println()

	creds, _, err := c.unlock(ctx, pins)
	if err != nil {
		return err
	}
	if err := requireFreshToken(creds); err != nil {
		return err
	}

	fmt.Println("Settling pending transactions with server...")

	ledger := authz.NewService(c.vault, c.apiClient, c.prober, c.logger)
	// no proximity link is involved in reconciliation
	coordinator := settlement.NewService(c.vault, ledger, nil, c.apiClient, c.prober,
		settlement.Session{UserID: creds.UserID, AccessToken: creds.AccessToken}, c.logger)

	result, err := coordinator.Reconcile(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Reconciliation completed!")
	fmt.Printf("Settled: %d transaction(s)\n", result.Synced)
	if result.Failed > 0 {
		fmt.Printf("Failed:  %d transaction(s), will retry next time\n", result.Failed)
	}

	balance, err := c.vault.Balance(ctx)
	if err == nil {
		fmt.Printf("Balance: %s %s\n", balance, c.currency)
	}

	return nil
}
