package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/pinkpay/offlinepay/internal/crypto"
	"github.com/pinkpay/offlinepay/internal/netx"
	"github.com/pinkpay/offlinepay/internal/transport"
	httpClient "github.com/pinkpay/offlinepay/internal/wallet/api"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
)

// minPINLength is the shortest PIN the wallet accepts at enrollment.
const minPINLength = 6

// Pins lists the non-interactive sources a wallet PIN can come from.
type Pins struct {
	FromFile string
	FromArgs string
}

// Cli wires the wallet commands to the vault, the settlement server
// client and the proximity transport configuration.
type Cli struct {
	vault      vault.Vault
	apiClient  httpClient.ClientAPI
	prober     netx.Prober
	logger     *slog.Logger
	listenAddr string
	knownPeers []transport.Peer
	currency   string
}

func New(
	v vault.Vault,
	apiClient httpClient.ClientAPI,
	prober netx.Prober,
	logger *slog.Logger,
	listenAddr string,
	knownPeers []transport.Peer,
	currency string,
) *Cli {
	return &Cli{
		vault:      v,
		apiClient:  apiClient,
		prober:     prober,
		logger:     logger,
		listenAddr: listenAddr,
		knownPeers: knownPeers,
		currency:   currency,
	}
}

// unlock derives the vault key from the PIN and the device fingerprint
// and unseals the stored settlement-server credentials.
func (c *Cli) unlock(ctx context.Context, pins Pins) (*vault.Credentials, []byte, error) {
	identity, err := c.vault.DeviceIdentity(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load device identity: %w", err)
	}

	pin, err := c.getPIN(pins)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get PIN: %w", err)
	}

	vaultKey, err := crypto.DeriveVaultKey(pin, identity.Fingerprint)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive vault key: %w", err)
	}

	creds, err := c.vault.GetCredentials(ctx, vaultKey)
	if err != nil {
		if err == vault.ErrCredentialsNotFound {
			return nil, nil, fmt.Errorf("not enrolled. Please run 'wallet register' or 'wallet login' first")
		}
		return nil, nil, fmt.Errorf("failed to unseal credentials: %w", err)
	}

	return creds, vaultKey, nil
}

// requireFreshToken rejects credentials whose access token already
// expired. Commands that talk to the settlement server call this;
// offline commands do not.
func requireFreshToken(creds *vault.Credentials) error {
	if time.Now().Unix() >= creds.ExpiresAt {
		return fmt.Errorf("access token has expired. Please login again")
	}
	return nil
}

// getPIN retrieves the wallet PIN from various sources with priority:
// 1. Environment variable OFFLINEPAY_PIN
// 2. File specified via --pin-file
// 3. Command-line parameter --pin
// 4. Interactive prompt (fallback)
func (c *Cli) getPIN(pins Pins) (string, error) {
	if envPIN := os.Getenv("OFFLINEPAY_PIN"); envPIN != "" {
		return envPIN, nil
	}

	if pins.FromFile != "" {
		content, err := os.ReadFile(pins.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read PIN file: %w", err)
		}
		pin := strings.TrimSpace(string(content))
		if pin == "" {
			return "", fmt.Errorf("PIN file is empty")
		}
		return pin, nil
	}

	if pins.FromArgs != "" {
		return pins.FromArgs, nil
	}

	pin, err := readPassword("Wallet PIN: ")
	if err != nil {
		return "", fmt.Errorf("failed to read PIN from stdin: %w", err)
	}
	if pin == "" {
		return "", fmt.Errorf("PIN cannot be empty")
	}

	return pin, nil
}

func PrintUsage() {
	fmt.Println("OfflinePay Wallet")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wallet [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Settlement server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local vault (default: offlinepay-wallet.db)")
	fmt.Println("  --listen ADDR      Proximity listen address (default: 127.0.0.1:0)")
	fmt.Println("  --peers LIST       Comma-separated known peer addresses")
	fmt.Println("  --currency CODE    ISO currency code (default: MYR)")
	fmt.Println("  --pin PIN          Wallet PIN (not recommended, use env var or file)")
	fmt.Println("  --pin-file PATH    Path to file containing the wallet PIN")
	fmt.Println()
	fmt.Println("PIN Priority (highest to lowest):")
	fmt.Println("  1. OFFLINEPAY_PIN environment variable")
	fmt.Println("  2. --pin-file (file path)")
	fmt.Println("  3. --pin (command line)")
	fmt.Println("  4. Interactive prompt (fallback)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                 Enroll this device with the settlement server")
	fmt.Println("  login                    Refresh credentials for an enrolled account")
	fmt.Println("  status                   Show enrollment and connectivity status")
	fmt.Println("  issue <amount> [hours]   Request an offline authorization token")
	fmt.Println("  tokens                   List stored authorization tokens")
	fmt.Println("  revoke <token-id>        Delete an unused authorization token")
	fmt.Println("  balance                  Show spendable balance and authorized amount")
	fmt.Println("  transactions             List offline transactions")
	fmt.Println("  scan                     Discover nearby wallets")
	fmt.Println("  pay <peer> <amount>      Send an offline payment to a nearby wallet")
	fmt.Println("  receive                  Wait for incoming offline payments")
	fmt.Println("  reconcile                Settle pending transactions with the server")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  wallet register")
	fmt.Println("  wallet issue 50.00 24")
	fmt.Println("  export OFFLINEPAY_PIN='123456'")
	fmt.Println("  wallet --peers 192.168.1.20:9000 pay 192.168.1.20:9000 12.50")
	fmt.Println("  wallet --listen 0.0.0.0:9000 receive")
	fmt.Println("  wallet reconcile")
}

// readInput reads a line from stdin.
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a secret without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
