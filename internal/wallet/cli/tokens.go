package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pinkpay/offlinepay/internal/wallet/vault"
)

func (c *Cli) runTokens(ctx context.Context) error {
	fmt.Println("=== Authorization Tokens ===")
	fmt.Println()

	tokens, err := c.vault.GetTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tokens: %w", err)
	}

	if len(tokens) == 0 {
		fmt.Println("No tokens stored.")
		fmt.Println()
		fmt.Println("Use 'wallet issue <amount>' to authorize offline spending.")
		return nil
	}

	now := time.Now()
	fmt.Printf("Found %d token(s):\n", len(tokens))
	fmt.Println()

	for i, token := range tokens {
		status := string(token.Status)
		if token.IsExpired(now) {
			status = "expired"
		}
		fmt.Printf("%d. %s\n", i+1, token.TokenID)
		fmt.Printf("   Status:    %s\n", status)
		fmt.Printf("   Remaining: %s / %s %s\n", token.RemainingBalance, token.OriginalAmount, token.Currency)
		fmt.Printf("   Expires:   %s\n", token.ExpiresAt.Format(time.RFC3339))
		fmt.Println()
	}

	return nil
}

func (c *Cli) runRevoke(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing token ID. Usage: wallet revoke <token-id>")
	}
	tokenID := args[0]

	if err := c.vault.DeleteToken(ctx, tokenID); err != nil {
		switch err {
		case vault.ErrTokenNotFound:
			return fmt.Errorf("token %s not found", tokenID)
		case vault.ErrNotDeletable:
			return fmt.Errorf("token %s is spent or expired and cannot be revoked", tokenID)
		default:
			return fmt.Errorf("failed to revoke token: %w", err)
		}
	}

	fmt.Printf("✓ Token %s revoked.\n", tokenID)
	return nil
}
