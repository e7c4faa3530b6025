package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pinkpay/offlinepay/internal/netx"
	"github.com/pinkpay/offlinepay/internal/transport"
	"github.com/pinkpay/offlinepay/internal/wallet/api"
	"github.com/pinkpay/offlinepay/internal/wallet/cli"
	"github.com/pinkpay/offlinepay/internal/wallet/vault/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Settlement server URL")
	dbPath := flag.String("db", "offlinepay-wallet.db", "Path to local vault")
	listenAddr := flag.String("listen", "127.0.0.1:0", "Proximity listen address")
	peerList := flag.String("peers", "", "Comma-separated known peer addresses")
	currency := flag.String("currency", "MYR", "ISO currency code")
	pin := flag.String("pin", "", "Wallet PIN (not recommended, use env var or file)")
	pinFile := flag.String("pin-file", "", "Path to file containing the wallet PIN")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	vaultStore, err := boltdb.New(ctx, *dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open vault: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := vaultStore.Close(); err != nil {
			logger.Error("Failed to close vault", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	prober := netx.NewHTTPProber(*serverURL + "/healthz")

	wallet := cli.New(vaultStore, apiClient, prober, logger,
		*listenAddr, parsePeers(*peerList), *currency)

	pins := cli.Pins{FromFile: *pinFile, FromArgs: *pin}
	if err := wallet.Run(ctx, command, args[1:], pins); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parsePeers turns a comma-separated address list into the static
// discovery set. Peer IDs are dial addresses for the stream radio.
func parsePeers(list string) []transport.Peer {
	var peers []transport.Peer
	for _, addr := range strings.Split(list, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		peers = append(peers, transport.Peer{ID: addr, Name: addr})
	}
	return peers
}

func printVersion() {
	fmt.Printf("OfflinePay Wallet\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
