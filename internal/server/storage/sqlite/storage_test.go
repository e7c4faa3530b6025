package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinkpay/offlinepay/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage, balance string) string {
	t.Helper()

	userID := uuid.New().String()
	err := s.CreateUser(ctx, &storage.User{
		ID:        userID,
		Username:  "user_" + userID[:8],
		Currency:  "MYR",
		Balance:   decimal.RequireFromString(balance),
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	return userID
}

func createTestToken(t *testing.T, ctx context.Context, s *Storage, userID, amount string) string {
	t.Helper()

	tokenID := uuid.New().String()
	err := s.CreateToken(ctx, &storage.IssuedToken{
		TokenID:          tokenID,
		UserID:           userID,
		DeviceID:         "abcdef0123",
		Currency:         "MYR",
		Amount:           decimal.RequireFromString(amount),
		RemainingBalance: decimal.RequireFromString(amount),
		Status:           storage.TokenStatusActive,
		IssuedAt:         time.Now().UTC(),
		ExpiresAt:        time.Now().UTC().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	return tokenID
}

func TestStorage_New(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	assert.NotNil(t, s.DB())
}

func TestUserStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &storage.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		Currency:  "MYR",
		Balance:   decimal.RequireFromString("500.00"),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	retrieved, err := s.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, "alice", retrieved.Username)
	assert.Equal(t, "MYR", retrieved.Currency)
	assert.True(t, retrieved.Balance.Equal(decimal.RequireFromString("500.00")))

	byName, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestUserStorage_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &storage.User{
		ID:        uuid.New().String(),
		Username:  "duplicate",
		Currency:  "MYR",
		Balance:   decimal.Zero,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	user2 := &storage.User{
		ID:        uuid.New().String(),
		Username:  "duplicate",
		Currency:  "MYR",
		Balance:   decimal.Zero,
		CreatedAt: time.Now().UTC(),
	}
	err := s.CreateUser(ctx, user2)
	assert.ErrorIs(t, err, storage.ErrUserExists)
}

func TestUserStorage_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByUsername(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestTokenStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "500.00")
	tokenID := createTestToken(t, ctx, s, userID, "120.50")

	token, err := s.GetToken(ctx, tokenID)
	require.NoError(t, err)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, storage.TokenStatusActive, token.Status)
	assert.True(t, token.Amount.Equal(decimal.RequireFromString("120.50")))
	assert.True(t, token.RemainingBalance.Equal(token.Amount))
	assert.False(t, token.Expired(time.Now().UTC()))
}

func TestTokenStorage_GetToken_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetToken(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_OutstandingAmount(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s, "500.00")
	createTestToken(t, ctx, s, userID, "100.00")
	createTestToken(t, ctx, s, userID, "50.25")

	// Expired tokens do not count against the balance cap.
	require.NoError(t, s.CreateToken(ctx, &storage.IssuedToken{
		TokenID:          uuid.New().String(),
		UserID:           userID,
		DeviceID:         "abcdef0123",
		Currency:         "MYR",
		Amount:           decimal.RequireFromString("30.00"),
		RemainingBalance: decimal.RequireFromString("30.00"),
		Status:           storage.TokenStatusActive,
		IssuedAt:         time.Now().UTC().Add(-80 * time.Hour),
		ExpiresAt:        time.Now().UTC().Add(-8 * time.Hour),
	}))

	// Fully spent tokens do not count either.
	require.NoError(t, s.CreateToken(ctx, &storage.IssuedToken{
		TokenID:          uuid.New().String(),
		UserID:           userID,
		DeviceID:         "abcdef0123",
		Currency:         "MYR",
		Amount:           decimal.RequireFromString("40.00"),
		RemainingBalance: decimal.Zero,
		Status:           storage.TokenStatusUsed,
		IssuedAt:         time.Now().UTC(),
		ExpiresAt:        time.Now().UTC().Add(72 * time.Hour),
	}))

	total, err := s.OutstandingAmount(ctx, userID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("150.25")),
		"expected 150.25, got %s", total)
}

func TestSettlementStorage_Settle(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	senderID := createTestUser(t, ctx, s, "500.00")
	recipientID := createTestUser(t, ctx, s, "100.00")
	tokenID := createTestToken(t, ctx, s, senderID, "120.00")

	senderBalance, recipientBalance, err := s.Settle(ctx, &storage.Settlement{
		TransactionID: "tx_1",
		TokenID:       tokenID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        decimal.RequireFromString("45.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
	})
	require.NoError(t, err)
	assert.True(t, senderBalance.Equal(decimal.RequireFromString("455.00")))
	assert.True(t, recipientBalance.Equal(decimal.RequireFromString("145.00")))

	token, err := s.GetToken(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, token.RemainingBalance.Equal(decimal.RequireFromString("75.00")))
	assert.Equal(t, storage.TokenStatusActive, token.Status)

	settled, err := s.IsSettled(ctx, "tx_1")
	require.NoError(t, err)
	assert.True(t, settled)
}

func TestSettlementStorage_Settle_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	senderID := createTestUser(t, ctx, s, "500.00")
	recipientID := createTestUser(t, ctx, s, "100.00")
	tokenID := createTestToken(t, ctx, s, senderID, "120.00")

	settlement := &storage.Settlement{
		TransactionID: "tx_replay",
		TokenID:       tokenID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        decimal.RequireFromString("20.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
	}

	_, _, err := s.Settle(ctx, settlement)
	require.NoError(t, err)

	_, _, err = s.Settle(ctx, settlement)
	assert.ErrorIs(t, err, storage.ErrAlreadySettled)

	// Replay must not debit the sender twice.
	sender, err := s.GetUser(ctx, senderID)
	require.NoError(t, err)
	assert.True(t, sender.Balance.Equal(decimal.RequireFromString("480.00")))
}

func TestSettlementStorage_Settle_DrainsToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	senderID := createTestUser(t, ctx, s, "500.00")
	recipientID := createTestUser(t, ctx, s, "0")
	tokenID := createTestToken(t, ctx, s, senderID, "50.00")

	_, _, err := s.Settle(ctx, &storage.Settlement{
		TransactionID: "tx_drain",
		TokenID:       tokenID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        decimal.RequireFromString("50.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
	})
	require.NoError(t, err)

	token, err := s.GetToken(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, token.RemainingBalance.IsZero())
	assert.Equal(t, storage.TokenStatusUsed, token.Status)

	// A drained token cannot cover further settlements.
	_, _, err = s.Settle(ctx, &storage.Settlement{
		TransactionID: "tx_after_drain",
		TokenID:       tokenID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        decimal.RequireFromString("1.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
	})
	assert.ErrorIs(t, err, storage.ErrInsufficientBalance)
}

func TestSettlementStorage_Settle_MultiToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	senderID := createTestUser(t, ctx, s, "500.00")
	recipientID := createTestUser(t, ctx, s, "0")
	smallID := createTestToken(t, ctx, s, senderID, "30.00")
	bigID := createTestToken(t, ctx, s, senderID, "50.00")

	// 40.00 spans two tokens: neither alone covers it, the split does.
	senderBalance, recipientBalance, err := s.Settle(ctx, &storage.Settlement{
		TransactionID: "tx_split",
		TokenID:       smallID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        decimal.RequireFromString("40.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
		Allocations: []storage.TokenAllocation{
			{TokenID: smallID, Amount: decimal.RequireFromString("30.00")},
			{TokenID: bigID, Amount: decimal.RequireFromString("10.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, senderBalance.Equal(decimal.RequireFromString("460.00")))
	assert.True(t, recipientBalance.Equal(decimal.RequireFromString("40.00")))

	small, err := s.GetToken(ctx, smallID)
	require.NoError(t, err)
	assert.True(t, small.RemainingBalance.IsZero())
	assert.Equal(t, storage.TokenStatusUsed, small.Status)

	big, err := s.GetToken(ctx, bigID)
	require.NoError(t, err)
	assert.True(t, big.RemainingBalance.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, storage.TokenStatusActive, big.Status)
}

func TestSettlementStorage_Settle_AllocationSumMismatch(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	senderID := createTestUser(t, ctx, s, "500.00")
	recipientID := createTestUser(t, ctx, s, "0")
	tokenID := createTestToken(t, ctx, s, senderID, "30.00")

	_, _, err := s.Settle(ctx, &storage.Settlement{
		TransactionID: "tx_bad_split",
		TokenID:       tokenID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        decimal.RequireFromString("40.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
		Allocations: []storage.TokenAllocation{
			{TokenID: tokenID, Amount: decimal.RequireFromString("30.00")},
		},
	})
	assert.ErrorIs(t, err, storage.ErrInsufficientBalance)

	// The rejected settlement must leave the token untouched.
	token, err := s.GetToken(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, token.RemainingBalance.Equal(decimal.RequireFromString("30.00")))
}

func TestSettlementStorage_Settle_InsufficientToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	senderID := createTestUser(t, ctx, s, "500.00")
	recipientID := createTestUser(t, ctx, s, "0")
	tokenID := createTestToken(t, ctx, s, senderID, "10.00")

	_, _, err := s.Settle(ctx, &storage.Settlement{
		TransactionID: "tx_too_big",
		TokenID:       tokenID,
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        decimal.RequireFromString("25.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
	})
	assert.ErrorIs(t, err, storage.ErrInsufficientBalance)

	// The failed settlement must leave everything untouched.
	token, err := s.GetToken(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, token.RemainingBalance.Equal(decimal.RequireFromString("10.00")))

	settled, err := s.IsSettled(ctx, "tx_too_big")
	require.NoError(t, err)
	assert.False(t, settled)
}

func TestSettlementStorage_Settle_UnknownToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	senderID := createTestUser(t, ctx, s, "500.00")
	recipientID := createTestUser(t, ctx, s, "0")

	_, _, err := s.Settle(ctx, &storage.Settlement{
		TransactionID: "tx_no_token",
		TokenID:       "missing",
		SenderID:      senderID,
		RecipientID:   recipientID,
		Amount:        decimal.RequireFromString("5.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
	})
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestSettlementStorage_Settle_UnknownRecipient(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	senderID := createTestUser(t, ctx, s, "500.00")
	tokenID := createTestToken(t, ctx, s, senderID, "50.00")

	_, _, err := s.Settle(ctx, &storage.Settlement{
		TransactionID: "tx_no_recipient",
		TokenID:       tokenID,
		SenderID:      senderID,
		RecipientID:   "missing",
		Amount:        decimal.RequireFromString("5.00"),
		Currency:      "MYR",
		Direction:     "outgoing",
		DeviceID:      "abcdef0123",
	})
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// The rolled back settlement must leave the token intact.
	token, err := s.GetToken(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, token.RemainingBalance.Equal(decimal.RequireFromString("50.00")))
}
