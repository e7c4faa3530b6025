package authz

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	httpClient "github.com/pinkpay/offlinepay/internal/wallet/api"
	"github.com/pinkpay/offlinepay/internal/models"
	"github.com/pinkpay/offlinepay/internal/netx"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
	"github.com/pinkpay/offlinepay/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service manages the device's pool of offline authorization tokens.
type Service interface {
	// CheckAuthorization reports whether the spendable pool covers amount.
	CheckAuthorization(ctx context.Context, amount decimal.Decimal) (*Decision, error)

	// Allocate debits amount across active tokens, smallest remaining
	// balance first. All-or-nothing: on ErrInsufficientAuthorization no
	// token is modified.
	Allocate(ctx context.Context, amount decimal.Decimal) ([]Allocation, error)

	// IssueToken mints a new token via the ledger and stores it locally.
	// Requires connectivity; never touches the spendable balance.
	IssueToken(ctx context.Context, userID, accessToken string, amount decimal.Decimal, currency string, ttl time.Duration) (*models.AuthorizationToken, error)
}

// Decision is the answer to a pre-payment authorization check.
type Decision struct {
	Authorized bool
	Available  decimal.Decimal
}

// Allocation records how much of one token a payment consumed.
type Allocation struct {
	TokenID string
	Amount  decimal.Decimal
}

type service struct {
	vault     vault.Vault
	apiClient httpClient.ClientAPI
	prober    netx.Prober
	logger    *slog.Logger

	// serializes Allocate: the precheck and the token writes must be
	// one atomic step or two concurrent payments can both pass the
	// precheck against the same tokens
	allocMu sync.Mutex
}

// NewService creates a new authorization ledger service.
func NewService(v vault.Vault, apiClient httpClient.ClientAPI, prober netx.Prober, logger *slog.Logger) Service {
	return &service{
		vault:     v,
		apiClient: apiClient,
		prober:    prober,
		logger:    logger,
	}
}

func (s *service) CheckAuthorization(ctx context.Context, amount decimal.Decimal) (*Decision, error) {
	tokens, err := s.vault.GetActiveTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active tokens: %w", err)
	}

	available := decimal.Zero
	for _, token := range tokens {
		available = available.Add(token.RemainingBalance)
	}

	return &Decision{
		Authorized: available.GreaterThanOrEqual(amount),
		Available:  available,
	}, nil
}

func (s *service) Allocate(ctx context.Context, amount decimal.Decimal) ([]Allocation, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("allocation amount must be positive, got %s", amount)
	}

	s.allocMu.Lock()
	defer s.allocMu.Unlock()

	tokens, err := s.vault.GetActiveTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active tokens: %w", err)
	}

	// Smallest remaining balance first, so small leftovers get drained
	// before large tokens are broken into.
	sort.Slice(tokens, func(i, j int) bool {
		if !tokens[i].RemainingBalance.Equal(tokens[j].RemainingBalance) {
			return tokens[i].RemainingBalance.LessThan(tokens[j].RemainingBalance)
		}
		return tokens[i].TokenID < tokens[j].TokenID
	})

	// Full-amount precheck before any write. A failed allocation must
	// leave every token exactly as it was.
	available := decimal.Zero
	for _, token := range tokens {
		available = available.Add(token.RemainingBalance)
	}
	if available.LessThan(amount) {
		return nil, fmt.Errorf("%w: need %s, have %s", ErrInsufficientAuthorization, amount, available)
	}

	allocations := make([]Allocation, 0, len(tokens))
	remaining := amount

	for _, token := range tokens {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		used := decimal.Min(token.RemainingBalance, remaining)
		token.RemainingBalance = token.RemainingBalance.Sub(used)
		remaining = remaining.Sub(used)

		if token.RemainingBalance.IsZero() {
			token.Status = models.TokenStatusUsed
		}

		if err := s.vault.SaveToken(ctx, token); err != nil {
			return nil, fmt.Errorf("failed to save token %s: %w", token.TokenID, err)
		}

		allocations = append(allocations, Allocation{TokenID: token.TokenID, Amount: used})
	}

	s.logger.Info("Allocated authorization",
		"amount", amount,
		"tokens_used", len(allocations))

	return allocations, nil
}

func (s *service) IssueToken(ctx context.Context, userID, accessToken string, amount decimal.Decimal, currency string, ttl time.Duration) (*models.AuthorizationToken, error) {
	if !s.prober.IsOnline(ctx) {
		return nil, fmt.Errorf("cannot issue token: %w", ErrNotOnline)
	}

	identity, err := s.vault.DeviceIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device identity: %w", err)
	}

	resp, err := s.apiClient.IssueToken(ctx, accessToken, api.IssueTokenRequest{
		UserID:   userID,
		DeviceID: identity.Fingerprint,
		Amount:   amount,
		Currency: currency,
		TTLHours: int(ttl / time.Hour),
	})
	if err != nil {
		return nil, fmt.Errorf("ledger refused token issue: %w", err)
	}

	token := &models.AuthorizationToken{
		TokenID:          resp.TokenID,
		UserID:           userID,
		Currency:         resp.Currency,
		OriginalAmount:   resp.Amount,
		RemainingBalance: resp.Amount,
		Status:           models.TokenStatusActive,
		IssuedAt:         resp.IssuedAt,
		ExpiresAt:        resp.ExpiresAt,
		IssuingDeviceID:  identity.PartialID(),
	}

	if err := s.vault.SaveToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store issued token: %w", err)
	}

	s.logger.Info("Issued offline token",
		"token_id", token.TokenID,
		"amount", token.OriginalAmount,
		"expires_at", token.ExpiresAt)

	return token, nil
}
