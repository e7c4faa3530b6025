package cli

import (
	"context"
	"fmt"
)

// Run dispatches one wallet command.
func (c *Cli) Run(ctx context.Context, command string, args []string, pins Pins) error {
	switch command {
	case "register":
		return c.runRegister(ctx, pins)
	case "login":
		return c.runLogin(ctx, pins)
	case "status":
		return c.runStatus(ctx)
	case "issue":
		return c.runIssue(ctx, args, pins)
	case "tokens":
		return c.runTokens(ctx)
	case "revoke":
		return c.runRevoke(ctx, args)
	case "balance":
		return c.runBalance(ctx)
	case "transactions":
		return c.runTransactions(ctx)
	case "scan":
		return c.runScan(ctx)
	case "pay":
		return c.runPay(ctx, args, pins)
	case "receive":
		return c.runReceive(ctx, pins)
	case "reconcile":
		return c.runReconcile(ctx, pins)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
