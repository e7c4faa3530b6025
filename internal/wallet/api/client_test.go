package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinkpay/offlinepay/pkg/api"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "abcdef0123", req.DeviceID)

		w.WriteHeader(http.StatusCreated)
		resp := api.AuthResponse{
			UserID:      "user-1",
			Username:    req.Username,
			AccessToken: "jwt-token",
			ExpiresIn:   86400,
			Currency:    "MYR",
			Balance:     decimal.RequireFromString("500.00"),
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Username: "alice",
		DeviceID: "abcdef0123",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "jwt-token", resp.AccessToken)
	assert.True(t, resp.Balance.Equal(decimal.RequireFromString("500.00")))
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		resp := api.AuthResponse{
			UserID:      "user-1",
			Username:    "alice",
			AccessToken: "fresh-token",
			ExpiresIn:   86400,
			Currency:    "MYR",
			Balance:     decimal.RequireFromString("480.00"),
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Username: "alice",
		DeviceID: "abcdef0123",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", resp.AccessToken)
}

func TestClient_IssueToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/tokens/issue", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		var req api.IssueTokenRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, "user-1", req.UserID)
		assert.True(t, req.Amount.Equal(decimal.RequireFromString("50.00")))
		assert.Equal(t, "MYR", req.Currency)

		now := time.Now().UTC()
		w.WriteHeader(http.StatusCreated)
		resp := api.IssueTokenResponse{
			TokenID:   "TOK_abc",
			Amount:    req.Amount,
			Currency:  req.Currency,
			IssuedAt:  now,
			ExpiresAt: now.Add(72 * time.Hour),
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.IssueToken(context.Background(), "jwt-token", api.IssueTokenRequest{
		UserID:   "user-1",
		DeviceID: "fingerprint",
		Amount:   decimal.RequireFromString("50.00"),
		Currency: "MYR",
	})

	require.NoError(t, err)
	assert.Equal(t, "TOK_abc", resp.TokenID)
	assert.True(t, resp.ExpiresAt.After(resp.IssuedAt))
}

func TestClient_VerifyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tokens/verify", r.URL.Path)

		resp := api.VerifyTokenResponse{
			Verification: api.TokenVerification{
				TokenExists:   true,
				TokenActive:   true,
				BalanceCovers: true,
				CanProceed:    true,
			},
			SecurityInfo: api.SecurityInfo{DeviceKnown: true},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.VerifyToken(context.Background(), "jwt-token", api.VerifyTokenRequest{
		TokenID:  "TOK_abc",
		SenderID: "user-1",
		Amount:   decimal.RequireFromString("25.00"),
		Currency: "MYR",
	})

	require.NoError(t, err)
	assert.True(t, resp.Verification.CanProceed)
	assert.True(t, resp.SecurityInfo.DeviceKnown)
}

func TestClient_Settle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/settlement/settle", r.URL.Path)

		var req api.SettleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "offline_tx_1", req.TransactionID)

		resp := api.SettleResponse{
			Success: true,
			BalanceUpdates: &api.BalanceUpdates{
				SenderBalance:    decimal.RequireFromString("275.00"),
				RecipientBalance: decimal.RequireFromString("125.00"),
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Settle(context.Background(), "jwt-token", api.SettleRequest{
		TransactionID: "offline_tx_1",
		TokenID:       "TOK_abc",
		Amount:        decimal.RequireFromString("25.00"),
		Currency:      "MYR",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.BalanceUpdates)
	assert.True(t, resp.BalanceUpdates.SenderBalance.Equal(decimal.RequireFromString("275.00")))
}

func TestClient_SyncReceived(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/settlement/received", r.URL.Path)

		var req api.SyncReceivedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Transactions, 2)

		resp := api.SyncReceivedResponse{
			Synced:  []string{req.Transactions[0].TransactionID},
			Failed:  []string{req.Transactions[1].TransactionID},
			Balance: decimal.RequireFromString("150.00"),
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.SyncReceived(context.Background(), "jwt-token", api.SyncReceivedRequest{
		RecipientID: "user-2",
		Transactions: []api.SettleRequest{
			{TransactionID: "offline_tx_1"},
			{TransactionID: "offline_tx_2"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"offline_tx_1"}, resp.Synced)
	assert.Equal(t, []string{"offline_tx_2"}, resp.Failed)
}

func TestClient_ServerError(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		responseBody   any
		expectedErrMsg string
	}{
		{
			name:           "Insufficient balance",
			statusCode:     http.StatusUnprocessableEntity,
			responseBody:   api.ErrorResponse{Error: "insufficient balance"},
			expectedErrMsg: "server error (422): insufficient balance",
		},
		{
			name:           "Unauthorized",
			statusCode:     http.StatusUnauthorized,
			responseBody:   api.ErrorResponse{Error: "invalid token"},
			expectedErrMsg: "server error (401): invalid token",
		},
		{
			name:           "Non-JSON body",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "boom",
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.IssueToken(context.Background(), "jwt-token", api.IssueTokenRequest{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/healthz", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.Health(context.Background()))
}
