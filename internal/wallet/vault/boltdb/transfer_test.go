package boltdb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinkpay/offlinepay/internal/crypto"
	"github.com/pinkpay/offlinepay/internal/models"
)

func TestTransfer_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	sessionKey, err := crypto.NewSessionKey()
	require.NoError(t, err)

	msg := &models.PaymentMessage{
		TransactionID: "offline_tx_1",
		TokenID:       "TOK_1",
		SenderID:      "user-1",
		RecipientID:   "user-2",
		Currency:      "MYR",
		Amount:        decimal.RequireFromString("25.00"),
		Timestamp:     time.Now().UTC(),
		Version:       models.PayloadVersion,
	}

	payload, err := store.EncryptForTransfer(ctx, msg, sessionKey)
	require.NoError(t, err)
	assert.Equal(t, models.PayloadAlgorithm, payload.Algorithm)
	assert.Len(t, payload.Metadata.SenderDeviceID, models.PartialIDLength)
	assert.NotEmpty(t, payload.EncryptedBlob)
	assert.NotEmpty(t, payload.AuthTag)
	assert.NotEmpty(t, payload.IV)

	plaintext, err := store.DecryptFromTransfer(ctx, payload, sessionKey)
	require.NoError(t, err)

	var got models.PaymentMessage
	require.NoError(t, json.Unmarshal(plaintext, &got))
	assert.Equal(t, msg.TransactionID, got.TransactionID)
	assert.True(t, msg.Amount.Equal(got.Amount))
}

func TestTransfer_TamperedTag(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	sessionKey, err := crypto.NewSessionKey()
	require.NoError(t, err)

	payload, err := store.EncryptForTransfer(ctx, map[string]string{"k": "v"}, sessionKey)
	require.NoError(t, err)

	tag, err := base64.StdEncoding.DecodeString(payload.AuthTag)
	require.NoError(t, err)
	tag[0] ^= 0xFF
	payload.AuthTag = base64.StdEncoding.EncodeToString(tag)

	_, err = store.DecryptFromTransfer(ctx, payload, sessionKey)
	assert.ErrorIs(t, err, crypto.ErrAuthTagMismatch)
}

func TestTransfer_WrongSessionKey(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	keyA, err := crypto.NewSessionKey()
	require.NoError(t, err)
	keyB, err := crypto.NewSessionKey()
	require.NoError(t, err)

	payload, err := store.EncryptForTransfer(ctx, map[string]string{"k": "v"}, keyA)
	require.NoError(t, err)

	_, err = store.DecryptFromTransfer(ctx, payload, keyB)
	assert.ErrorIs(t, err, crypto.ErrAuthTagMismatch)
}

func TestTransfer_UnsupportedAlgorithm(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	sessionKey, err := crypto.NewSessionKey()
	require.NoError(t, err)

	payload, err := store.EncryptForTransfer(ctx, map[string]string{"k": "v"}, sessionKey)
	require.NoError(t, err)
	payload.Algorithm = "AES-128-CBC"

	_, err = store.DecryptFromTransfer(ctx, payload, sessionKey)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, crypto.ErrAuthTagMismatch)
}
