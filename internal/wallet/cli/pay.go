package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pinkpay/offlinepay/internal/validation"
	"github.com/pinkpay/offlinepay/internal/wallet/authz"
	"github.com/pinkpay/offlinepay/internal/wallet/settlement"
)

func (c *Cli) runPay(ctx context.Context, args []string, pins Pins) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: wallet pay <peer> <amount>")
	}
	peerID := args[0]

	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	creds, _, err := c.unlock(ctx, pins)
	if err != nil {
		return err
	}

	manager, err := c.openTransport()
	if err != nil {
		return err
	}
	defer func() {
		if err := manager.Close(); err != nil {
			c.logger.Warn("Failed to close transport", "error", err)
		}
	}()

	fmt.Printf("Connecting to %s...\n", peerID)
	if err := manager.Connect(ctx, peerID); err != nil {
		return fmt.Errorf("failed to connect to peer: %w", err)
	}
	defer manager.Disconnect()

	ledger := authz.NewService(c.vault, c.apiClient, c.prober, c.logger)
	coordinator := settlement.NewService(c.vault, ledger, manager, c.apiClient, c.prober,
		settlement.Session{UserID: creds.UserID, AccessToken: creds.AccessToken}, c.logger)

	txn, err := coordinator.Pay(ctx, peerID, amount, c.currency)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Payment sent!")
	fmt.Printf("Transaction: %s\n", txn.ID)
	fmt.Printf("Amount:      %s %s\n", txn.Amount, txn.Currency)
	fmt.Printf("Status:      %s\n", txn.SyncStatus)
	if txn.SyncStatus.NeedsSettlement() {
		fmt.Println()
		fmt.Println("Run 'wallet reconcile' when connectivity is available.")
	}

	return nil
}
