package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pinkpay/offlinepay/internal/wallet/authz"
)

func (c *Cli) runBalance(ctx context.Context) error {
	fmt.Println("=== Balance ===")
	fmt.Println()

	balance, err := c.vault.Balance(ctx)
	if err != nil {
		return fmt.Errorf("failed to load balance: %w", err)
	}

	ledger := authz.NewService(c.vault, c.apiClient, c.prober, c.logger)
	decision, err := ledger.CheckAuthorization(ctx, decimal.Zero)
	if err != nil {
		return fmt.Errorf("failed to compute authorized amount: %w", err)
	}

	fmt.Printf("Spendable balance:    %s %s\n", balance, c.currency)
	fmt.Printf("Authorized offline:   %s %s\n", decision.Available, c.currency)

	return nil
}
