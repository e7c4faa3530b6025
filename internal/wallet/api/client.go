package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pinkpay/offlinepay/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the wallet's view of the remote settlement ledger.
type ClientAPI interface {
	// Register creates a ledger account bound to this device.
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)

	// Login obtains a fresh device session for an existing account.
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)

	// IssueToken mints a new offline authorization token for the user.
	IssueToken(ctx context.Context, accessToken string, req api.IssueTokenRequest) (*api.IssueTokenResponse, error)

	// VerifyToken asks the ledger whether a received payment can be accepted.
	VerifyToken(ctx context.Context, accessToken string, req api.VerifyTokenRequest) (*api.VerifyTokenResponse, error)

	// Settle settles one offline transaction. Idempotent by transaction ID.
	Settle(ctx context.Context, accessToken string, req api.SettleRequest) (*api.SettleResponse, error)

	// SyncReceived reports a batch of payments accepted offline.
	SyncReceived(ctx context.Context, accessToken string, req api.SyncReceivedRequest) (*api.SyncReceivedResponse, error)

	// Health probes the ledger's health endpoint.
	Health(ctx context.Context) error
}

// Client is the HTTP client for the settlement ledger.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a new ledger API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// carry the bearer token across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) IssueToken(ctx context.Context, accessToken string, req api.IssueTokenRequest) (*api.IssueTokenResponse, error) {
	var resp api.IssueTokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/tokens/issue", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("issue token request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) VerifyToken(ctx context.Context, accessToken string, req api.VerifyTokenRequest) (*api.VerifyTokenResponse, error) {
	var resp api.VerifyTokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/tokens/verify", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("verify token request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) Settle(ctx context.Context, accessToken string, req api.SettleRequest) (*api.SettleResponse, error) {
	var resp api.SettleResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/settlement/settle", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("settle request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) SyncReceived(ctx context.Context, accessToken string, req api.SyncReceivedRequest) (*api.SyncReceivedResponse, error) {
	var resp api.SyncReceivedResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/settlement/received", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("sync received request failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/healthz", "", nil, nil); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// doRequest performs one HTTP exchange with the ledger.
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
