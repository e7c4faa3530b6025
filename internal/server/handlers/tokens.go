package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pinkpay/offlinepay/internal/server/storage"
	"github.com/pinkpay/offlinepay/internal/validation"
	"github.com/pinkpay/offlinepay/pkg/api"
)

// DefaultTokenTTL bounds how long an offline token stays spendable.
const DefaultTokenTTL = 72 * time.Hour

// TokensHandler mints and verifies offline authorization tokens.
type TokensHandler struct {
	logger       *slog.Logger
	userStorage  storage.UserStorage
	tokenStorage storage.TokenStorage
}

// NewTokensHandler creates a new handler for token issue and verify.
func NewTokensHandler(logger *slog.Logger, userStorage storage.UserStorage, tokenStorage storage.TokenStorage) *TokensHandler {
	return &TokensHandler{
		logger:       logger,
		userStorage:  userStorage,
		tokenStorage: tokenStorage,
	}
}

// HandleIssue handles POST /api/v1/tokens/issue
// Mints a token capped by the user's spendable balance minus the amount
// already locked in outstanding tokens. Funds are deducted at settlement,
// not at issue time.
func (h *TokensHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.IssueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode issue request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// A device may only mint tokens for its own account.
	if req.UserID != "" && req.UserID != userID {
		h.sendError(w, "user_id mismatch", http.StatusForbidden)
		return
	}
	if err := validation.ValidateCurrency(req.Currency); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateAmount(req.Amount); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.DeviceID == "" {
		h.sendError(w, "device_id is required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.Currency != user.Currency {
		h.sendError(w, "currency mismatch", http.StatusUnprocessableEntity)
		return
	}

	outstanding, err := h.tokenStorage.OutstandingAmount(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to sum outstanding tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if outstanding.Add(req.Amount).GreaterThan(user.Balance) {
		h.logger.WarnContext(ctx, "issue refused, balance exceeded",
			slog.String("user_id", userID),
			slog.String("requested", req.Amount.String()),
			slog.String("outstanding", outstanding.String()),
			slog.String("balance", user.Balance.String()))
		h.sendError(w, "insufficient balance for requested token", http.StatusUnprocessableEntity)
		return
	}

	ttl := DefaultTokenTTL
	if req.TTLHours > 0 {
		ttl = time.Duration(req.TTLHours) * time.Hour
		if ttl > DefaultTokenTTL {
			ttl = DefaultTokenTTL
		}
	}

	now := time.Now().UTC()
	token := &storage.IssuedToken{
		TokenID:          uuid.New().String(),
		UserID:           userID,
		DeviceID:         req.DeviceID,
		Currency:         req.Currency,
		Amount:           req.Amount,
		RemainingBalance: req.Amount,
		Status:           storage.TokenStatusActive,
		IssuedAt:         now,
		ExpiresAt:        now.Add(ttl),
	}

	if err := h.tokenStorage.CreateToken(ctx, token); err != nil {
		h.logger.ErrorContext(ctx, "failed to create token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "token issued",
		slog.String("token_id", token.TokenID),
		slog.String("user_id", userID),
		slog.String("amount", token.Amount.String()))

	h.sendJSON(w, api.IssueTokenResponse{
		TokenID:   token.TokenID,
		Amount:    token.Amount,
		Currency:  token.Currency,
		IssuedAt:  token.IssuedAt,
		ExpiresAt: token.ExpiresAt,
	}, http.StatusCreated)
}

// HandleVerify handles POST /api/v1/tokens/verify
// The payee calls this while online to judge a payment received over the
// proximity channel before accepting it.
func (h *TokensHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.VerifyTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode verify request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.TokenID == "" {
		h.sendError(w, "token_id is required", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateAmount(req.Amount); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.tokenStorage.GetToken(ctx, req.TokenID)
	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		h.logger.ErrorContext(ctx, "failed to get token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := h.verify(req, token)

	h.logger.InfoContext(ctx, "token verified",
		slog.String("token_id", req.TokenID),
		slog.Bool("can_proceed", resp.Verification.CanProceed))

	h.sendJSON(w, resp, http.StatusOK)
}

func (h *TokensHandler) verify(req api.VerifyTokenRequest, token *storage.IssuedToken) api.VerifyTokenResponse {
	var resp api.VerifyTokenResponse

	if token == nil {
		resp.SecurityInfo.Notes = "token unknown to ledger"
		return resp
	}

	now := time.Now().UTC()
	resp.Verification.TokenExists = true
	resp.Verification.TokenActive = token.Status == storage.TokenStatusActive && !token.Expired(now)
	resp.Verification.BalanceCovers = !token.RemainingBalance.LessThan(req.Amount)

	senderMatches := req.SenderID == "" || req.SenderID == token.UserID
	currencyMatches := req.Currency == "" || req.Currency == token.Currency

	resp.Verification.CanProceed = resp.Verification.TokenActive &&
		resp.Verification.BalanceCovers &&
		senderMatches && currencyMatches

	// The payload carries a partial fingerprint; the ledger stores the
	// full one from issue time.
	resp.SecurityInfo.DeviceKnown = req.SenderDeviceID != "" &&
		strings.HasPrefix(token.DeviceID, req.SenderDeviceID)
	resp.SecurityInfo.DoubleSpendRisk = token.Status == storage.TokenStatusUsed ||
		!resp.Verification.BalanceCovers

	switch {
	case !senderMatches:
		resp.SecurityInfo.Notes = "sender does not own this token"
	case !currencyMatches:
		resp.SecurityInfo.Notes = "currency mismatch"
	case token.Status == storage.TokenStatusUsed:
		resp.SecurityInfo.Notes = "token already fully spent"
	case token.Expired(now):
		resp.SecurityInfo.Notes = "token expired"
	case !resp.Verification.BalanceCovers:
		resp.SecurityInfo.Notes = "remaining balance does not cover amount"
	}

	return resp
}

func (h *TokensHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func (h *TokensHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}
