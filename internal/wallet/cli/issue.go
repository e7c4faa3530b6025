package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pinkpay/offlinepay/internal/validation"
	"github.com/pinkpay/offlinepay/internal/wallet/authz"
)

// defaultIssueTTL is requested when the command does not name one. The
// server caps it at its own maximum.
const defaultIssueTTL = 24 * time.Hour

func (c *Cli) runIssue(ctx context.Context, args []string, pins Pins) error {
	if len(args) == 0 {
		return fmt.Errorf("missing amount. Usage: wallet issue <amount> [hours]")
	}

	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	ttl := defaultIssueTTL
	if len(args) > 1 {
		hours, err := strconv.Atoi(args[1])
		if err != nil || hours <= 0 {
			return fmt.Errorf("invalid hours %q", args[1])
		}
		ttl = time.Duration(hours) * time.Hour
	}

	creds, _, err := c.unlock(ctx, pins)
	if err != nil {
		return err
	}
	if err := requireFreshToken(creds); err != nil {
		return err
	}

	fmt.Println("Requesting authorization token...")

	ledger := authz.NewService(c.vault, c.apiClient, c.prober, c.logger)
	token, err := ledger.IssueToken(ctx, creds.UserID, creds.AccessToken, amount, c.currency, ttl)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Authorization token issued!")
	fmt.Printf("Token ID:  %s\n", token.TokenID)
	fmt.Printf("Amount:    %s %s\n", token.OriginalAmount, token.Currency)
	fmt.Printf("Expires:   %s\n", token.ExpiresAt.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("You can now pay offline up to the authorized amount.")

	return nil
}
