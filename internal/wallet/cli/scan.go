package cli

import (
	"context"
	"fmt"
	"time"
)

// scanSettle gives staggered discovery responses time to arrive before
// the peer list is read.
const scanSettle = 2 * time.Second

func (c *Cli) runScan(ctx context.Context) error {
	fmt.Println("=== Nearby Wallets ===")
	fmt.Println()

	manager, err := c.openTransport()
	if err != nil {
		return err
	}
	defer func() {
		if err := manager.Close(); err != nil {
			c.logger.Warn("Failed to close transport", "error", err)
		}
	}()

	if err := manager.StartScan(ctx); err != nil {
		return err
	}
	time.Sleep(scanSettle)

	peers := manager.Peers()
	if len(peers) == 0 {
		fmt.Println("No wallets in range.")
		fmt.Println()
		fmt.Println("Pass --peers to configure known peer addresses.")
		return nil
	}

	fmt.Printf("Found %d wallet(s):\n", len(peers))
	for i, peer := range peers {
		name := peer.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%d. %s  %s  rssi=%d\n", i+1, peer.ID, name, peer.RSSI)
	}

	return nil
}
