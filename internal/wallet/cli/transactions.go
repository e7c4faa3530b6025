package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pinkpay/offlinepay/internal/models"
)

func (c *Cli) runTransactions(ctx context.Context) error {
	fmt.Println("=== Offline Transactions ===")
	fmt.Println()

	transactions, err := c.vault.GetTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions recorded.")
		return nil
	}

	fmt.Printf("Found %d transaction(s):\n", len(transactions))
	fmt.Println()

	for i, txn := range transactions {
		sign := "-"
		if txn.Direction == models.DirectionIncoming {
			sign = "+"
		}
		fmt.Printf("%d. %s%s %s  [%s]\n", i+1, sign, txn.Amount, txn.Currency, txn.SyncStatus)
		fmt.Printf("   ID:    %s\n", txn.ID)
		fmt.Printf("   Token: %s\n", txn.TokenID)
		fmt.Printf("   When:  %s\n", txn.Timestamp.Format(time.RFC3339))
		if txn.RejectionReason != "" {
			fmt.Printf("   Rejected: %s\n", txn.RejectionReason)
		}
		fmt.Println()
	}

	return nil
}
