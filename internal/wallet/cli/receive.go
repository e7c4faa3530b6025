package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pinkpay/offlinepay/internal/models"
	"github.com/pinkpay/offlinepay/internal/wallet/authz"
	"github.com/pinkpay/offlinepay/internal/wallet/settlement"
)

func (c *Cli) runReceive(ctx context.Context, pins Pins) error {
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

	ledger := authz.NewService(c.vault, c.apiClient, c.prober, c.logger)
	coordinator := settlement.NewService(c.vault, ledger, manager, c.apiClient, c.prober,
		settlement.Session{UserID: creds.UserID, AccessToken: creds.AccessToken}, c.logger)

	manager.OnDataReceived(func(peerID string, payload *models.SecurePaymentPayload) {
		txn, err := coordinator.HandlePayload(ctx, peerID, payload)
		if err != nil {
			fmt.Printf("✗ Payment from %s rejected: %v\n", peerID, err)
			return
		}
		fmt.Printf("✓ Received %s %s from %s [%s]\n", txn.Amount, txn.Currency, txn.SenderID, txn.SyncStatus)
	})

	fmt.Println("Waiting for incoming payments. Press Ctrl+C to stop.")

	waitCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-waitCtx.Done()

	fmt.Println()
	fmt.Println("Stopped.")
	return nil
}
