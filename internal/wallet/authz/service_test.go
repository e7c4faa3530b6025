package authz

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/pinkpay/offlinepay/internal/wallet/api"
	"github.com/pinkpay/offlinepay/internal/models"
	"github.com/pinkpay/offlinepay/internal/netx"
	"github.com/pinkpay/offlinepay/internal/wallet/vault"
	"github.com/pinkpay/offlinepay/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeToken(id, remaining string) *models.AuthorizationToken {
	now := time.Now().UTC()
	rem := decimal.RequireFromString(remaining)
	return &models.AuthorizationToken{
		TokenID:          id,
		UserID:           "user-1",
		Currency:         "MYR",
		OriginalAmount:   rem,
		RemainingBalance: rem,
		Status:           models.TokenStatusActive,
		IssuedAt:         now,
		ExpiresAt:        now.Add(72 * time.Hour),
	}
}

func TestCheckAuthorization(t *testing.T) {
	tests := []struct {
		name           string
		tokens         []*models.AuthorizationToken
		amount         string
		wantAuthorized bool
		wantAvailable  string
	}{
		{
			name:           "covered exactly",
			tokens:         []*models.AuthorizationToken{activeToken("TOK_A", "30.00"), activeToken("TOK_B", "40.00")},
			amount:         "70.00",
			wantAuthorized: true,
			wantAvailable:  "70.00",
		},
		{
			name:           "not covered",
			tokens:         []*models.AuthorizationToken{activeToken("TOK_A", "30.00"), activeToken("TOK_B", "40.00")},
			amount:         "100.00",
			wantAuthorized: false,
			wantAvailable:  "70.00",
		},
		{
			name:           "empty pool",
			tokens:         nil,
			amount:         "1.00",
			wantAuthorized: false,
			wantAvailable:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vaultMock := &vault.VaultMock{
				GetActiveTokensFunc: func(ctx context.Context) ([]*models.AuthorizationToken, error) {
					return tt.tokens, nil
				},
			}

			svc := NewService(vaultMock, nil, nil, testLogger())

			decision, err := svc.CheckAuthorization(context.Background(), decimal.RequireFromString(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.wantAuthorized, decision.Authorized)
			assert.True(t, decision.Available.Equal(decimal.RequireFromString(tt.wantAvailable)),
				"available = %s, want %s", decision.Available, tt.wantAvailable)
		})
	}
}

func TestAllocate_SmallestFirst(t *testing.T) {
	// 30 and 50 on hand, paying 40: the 30 token must be fully drained
	// before the 50 token is broken into.
	saved := map[string]*models.AuthorizationToken{}
	vaultMock := &vault.VaultMock{
		GetActiveTokensFunc: func(ctx context.Context) ([]*models.AuthorizationToken, error) {
			return []*models.AuthorizationToken{
				activeToken("TOK_BIG", "50.00"),
				activeToken("TOK_SMALL", "30.00"),
			}, nil
		},
		SaveTokenFunc: func(ctx context.Context, token *models.AuthorizationToken) error {
			saved[token.TokenID] = token
			return nil
		},
	}

	svc := NewService(vaultMock, nil, nil, testLogger())

	allocations, err := svc.Allocate(context.Background(), decimal.RequireFromString("40.00"))
	require.NoError(t, err)

	require.Len(t, allocations, 2)
	assert.Equal(t, "TOK_SMALL", allocations[0].TokenID)
	assert.True(t, allocations[0].Amount.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, "TOK_BIG", allocations[1].TokenID)
	assert.True(t, allocations[1].Amount.Equal(decimal.RequireFromString("10.00")))

	// conservation: allocated totals exactly the requested amount
	total := decimal.Zero
	for _, a := range allocations {
		total = total.Add(a.Amount)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("40.00")))

	require.Contains(t, saved, "TOK_SMALL")
	assert.Equal(t, models.TokenStatusUsed, saved["TOK_SMALL"].Status)
	assert.True(t, saved["TOK_SMALL"].RemainingBalance.IsZero())

	require.Contains(t, saved, "TOK_BIG")
	assert.Equal(t, models.TokenStatusActive, saved["TOK_BIG"].Status)
	assert.True(t, saved["TOK_BIG"].RemainingBalance.Equal(decimal.RequireFromString("40.00")))
}

func TestAllocate_Insufficient_NoMutation(t *testing.T) {
	vaultMock := &vault.VaultMock{
		GetActiveTokensFunc: func(ctx context.Context) ([]*models.AuthorizationToken, error) {
			return []*models.AuthorizationToken{
				activeToken("TOK_A", "30.00"),
				activeToken("TOK_B", "40.00"),
			}, nil
		},
		SaveTokenFunc: func(ctx context.Context, token *models.AuthorizationToken) error {
			return nil
		},
	}

	svc := NewService(vaultMock, nil, nil, testLogger())

	_, err := svc.Allocate(context.Background(), decimal.RequireFromString("100.00"))
	require.ErrorIs(t, err, ErrInsufficientAuthorization)

	// the precheck must fire before any write
	assert.Empty(t, vaultMock.SaveTokenCalls())
}

func TestAllocate_ExactTotal(t *testing.T) {
	vaultMock := &vault.VaultMock{
		GetActiveTokensFunc: func(ctx context.Context) ([]*models.AuthorizationToken, error) {
			return []*models.AuthorizationToken{
				activeToken("TOK_A", "30.00"),
				activeToken("TOK_B", "40.00"),
			}, nil
		},
		SaveTokenFunc: func(ctx context.Context, token *models.AuthorizationToken) error {
			assert.Equal(t, models.TokenStatusUsed, token.Status)
			assert.True(t, token.RemainingBalance.IsZero())
			return nil
		},
	}

	svc := NewService(vaultMock, nil, nil, testLogger())

	allocations, err := svc.Allocate(context.Background(), decimal.RequireFromString("70.00"))
	require.NoError(t, err)
	assert.Len(t, allocations, 2)
}

func TestAllocate_ConcurrentNoOverspend(t *testing.T) {
	// one 50.00 token, ten concurrent 10.00 payments: exactly five may
	// succeed. Two allocations passing the precheck against the same
	// balance would overspend the pool.
	var mu sync.Mutex
	pool := map[string]*models.AuthorizationToken{
		"TOK_A": activeToken("TOK_A", "50.00"),
	}

	vaultMock := &vault.VaultMock{
		GetActiveTokensFunc: func(ctx context.Context) ([]*models.AuthorizationToken, error) {
			mu.Lock()
			defer mu.Unlock()
			var tokens []*models.AuthorizationToken
			for _, token := range pool {
				if token.Status == models.TokenStatusActive {
					copied := *token
					tokens = append(tokens, &copied)
				}
			}
			return tokens, nil
		},
		SaveTokenFunc: func(ctx context.Context, token *models.AuthorizationToken) error {
			mu.Lock()
			defer mu.Unlock()
			copied := *token
			pool[token.TokenID] = &copied
			return nil
		},
	}

	svc := NewService(vaultMock, nil, nil, testLogger())

	var wg sync.WaitGroup
	var succeeded, refused atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Allocate(context.Background(), decimal.RequireFromString("10.00"))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrInsufficientAuthorization):
				refused.Add(1)
			default:
				t.Errorf("unexpected allocate error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), succeeded.Load())
	assert.Equal(t, int32(5), refused.Load())

	token := pool["TOK_A"]
	assert.True(t, token.RemainingBalance.IsZero(),
		"pool overspent: remaining %s", token.RemainingBalance)
	assert.Equal(t, models.TokenStatusUsed, token.Status)
}

func TestAllocate_NonPositiveAmount(t *testing.T) {
	svc := NewService(&vault.VaultMock{}, nil, nil, testLogger())

	_, err := svc.Allocate(context.Background(), decimal.Zero)
	assert.Error(t, err)
}

func TestIssueToken_Offline(t *testing.T) {
	prober := &netx.ProberMock{
		IsOnlineFunc: func(ctx context.Context) bool { return false },
	}
	apiMock := &httpClient.ClientAPIMock{}

	svc := NewService(&vault.VaultMock{}, apiMock, prober, testLogger())

	_, err := svc.IssueToken(context.Background(), "user-1", "jwt", decimal.RequireFromString("50.00"), "MYR", 72*time.Hour)
	require.ErrorIs(t, err, ErrNotOnline)
	assert.Empty(t, apiMock.IssueTokenCalls())
}

func TestIssueToken_Online(t *testing.T) {
	now := time.Now().UTC()
	identity := &models.DeviceIdentity{Fingerprint: "f1e2d3c4b5a697887766554433221100f1e2d3c4b5a697887766554433221100", CreatedAt: now}

	vaultMock := &vault.VaultMock{
		DeviceIdentityFunc: func(ctx context.Context) (*models.DeviceIdentity, error) {
			return identity, nil
		},
		SaveTokenFunc: func(ctx context.Context, token *models.AuthorizationToken) error {
			return nil
		},
	}
	apiMock := &httpClient.ClientAPIMock{
		IssueTokenFunc: func(ctx context.Context, accessToken string, req api.IssueTokenRequest) (*api.IssueTokenResponse, error) {
			assert.Equal(t, "jwt", accessToken)
			assert.Equal(t, identity.Fingerprint, req.DeviceID)
			assert.Equal(t, 72, req.TTLHours)
			return &api.IssueTokenResponse{
				TokenID:   "TOK_new",
				Amount:    req.Amount,
				Currency:  req.Currency,
				IssuedAt:  now,
				ExpiresAt: now.Add(72 * time.Hour),
			}, nil
		},
	}
	prober := &netx.ProberMock{
		IsOnlineFunc: func(ctx context.Context) bool { return true },
	}

	svc := NewService(vaultMock, apiMock, prober, testLogger())

	token, err := svc.IssueToken(context.Background(), "user-1", "jwt", decimal.RequireFromString("50.00"), "MYR", 72*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, "TOK_new", token.TokenID)
	assert.Equal(t, models.TokenStatusActive, token.Status)
	assert.True(t, token.RemainingBalance.Equal(token.OriginalAmount))
	assert.Equal(t, identity.PartialID(), token.IssuingDeviceID)
	assert.Len(t, vaultMock.SaveTokenCalls(), 1)
}
