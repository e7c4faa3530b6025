package cli

import (
	"fmt"

	"github.com/pinkpay/offlinepay/internal/transport"
	"github.com/pinkpay/offlinepay/internal/transport/stream"
)

// openTransport brings up the proximity link manager on the configured
// listen address. The caller owns the returned manager and must Close
// it.
func (c *Cli) openTransport() (*transport.Manager, error) {
	radio, err := stream.New(c.listenAddr, c.knownPeers, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to start proximity radio: %w", err)
	}
	manager := transport.NewManager(radio, c.logger)
	fmt.Printf("Proximity radio listening on %s\n", radio.Addr())
	return manager, nil
}
