package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pinkpay/offlinepay/internal/server/storage"
	"github.com/pinkpay/offlinepay/internal/validation"
	"github.com/pinkpay/offlinepay/pkg/api"
)

// SettlementHandler applies offline transactions to the central ledger.
type SettlementHandler struct {
	logger            *slog.Logger
	userStorage       storage.UserStorage
	settlementStorage storage.SettlementStorage
}

// NewSettlementHandler creates a new handler for settlement endpoints.
func NewSettlementHandler(logger *slog.Logger, userStorage storage.UserStorage, settlementStorage storage.SettlementStorage) *SettlementHandler {
	return &SettlementHandler{
		logger:            logger,
		userStorage:       userStorage,
		settlementStorage: settlementStorage,
	}
}

// HandleSettle handles POST /api/v1/settlement/settle
// Settles one outgoing offline transaction. Replays of an already
// settled transaction ID succeed without moving money again.
func (h *SettlementHandler) HandleSettle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode settle request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if msg, ok := validateSettleRequest(&req); !ok {
		h.sendError(w, msg, http.StatusBadRequest)
		return
	}
	if req.SenderID != userID {
		h.sendError(w, "sender_id mismatch", http.StatusForbidden)
		return
	}

	resp, status := h.settle(r, &req)
	h.sendJSON(w, resp, status)
}

// HandleReceived handles POST /api/v1/settlement/received
// Credits a batch of payments the payee accepted while offline. Each
// transaction settles independently; failures never abort the batch.
func (h *SettlementHandler) HandleReceived(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SyncReceivedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode received request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.RecipientID != userID {
		h.sendError(w, "recipient_id mismatch", http.StatusForbidden)
		return
	}

	resp := api.SyncReceivedResponse{
		Synced: []string{},
		Failed: []string{},
	}

	for i := range req.Transactions {
		txn := &req.Transactions[i]
		if msg, ok := validateSettleRequest(txn); !ok {
			h.logger.WarnContext(ctx, "skipping invalid transaction",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("reason", msg))
			resp.Failed = append(resp.Failed, txn.TransactionID)
			continue
		}
		if txn.RecipientID != userID {
			resp.Failed = append(resp.Failed, txn.TransactionID)
			continue
		}

		_, _, err := h.settlementStorage.Settle(ctx, settlementFromRequest(txn))
		switch {
		case err == nil, errors.Is(err, storage.ErrAlreadySettled):
			resp.Synced = append(resp.Synced, txn.TransactionID)
		default:
			h.logger.WarnContext(ctx, "failed to settle received transaction",
				slog.String("transaction_id", txn.TransactionID),
				slog.Any("error", err))
			resp.Failed = append(resp.Failed, txn.TransactionID)
		}
	}

	user, err := h.userStorage.GetUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get recipient balance", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	resp.Balance = user.Balance

	h.logger.InfoContext(ctx, "received batch synced",
		slog.String("recipient_id", userID),
		slog.Int("synced", len(resp.Synced)),
		slog.Int("failed", len(resp.Failed)))

	h.sendJSON(w, resp, http.StatusOK)
}

func (h *SettlementHandler) settle(r *http.Request, req *api.SettleRequest) (api.SettleResponse, int) {
	ctx := r.Context()

	senderBalance, recipientBalance, err := h.settlementStorage.Settle(ctx, settlementFromRequest(req))
	switch {
	case errors.Is(err, storage.ErrAlreadySettled):
		return api.SettleResponse{
			Success:        true,
			AlreadySettled: true,
			Message:        "transaction already settled",
		}, http.StatusOK
	case errors.Is(err, storage.ErrTokenNotFound):
		return api.SettleResponse{Message: "token not found"}, http.StatusNotFound
	case errors.Is(err, storage.ErrUserNotFound):
		return api.SettleResponse{Message: "user not found"}, http.StatusNotFound
	case errors.Is(err, storage.ErrInsufficientBalance):
		return api.SettleResponse{Message: "token does not cover amount"}, http.StatusUnprocessableEntity
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to settle transaction",
			slog.String("transaction_id", req.TransactionID),
			slog.Any("error", err))
		return api.SettleResponse{Message: "internal server error"}, http.StatusInternalServerError
	}

	h.logger.InfoContext(ctx, "transaction settled",
		slog.String("transaction_id", req.TransactionID),
		slog.String("amount", req.Amount.String()))

	return api.SettleResponse{
		Success: true,
		BalanceUpdates: &api.BalanceUpdates{
			SenderBalance:    senderBalance,
			RecipientBalance: recipientBalance,
		},
	}, http.StatusOK
}

func (h *SettlementHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func (h *SettlementHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}

func validateSettleRequest(req *api.SettleRequest) (string, bool) {
	if req.TransactionID == "" {
		return "transaction_id is required", false
	}
	if req.TokenID == "" {
		return "token_id is required", false
	}
	if req.SenderID == "" || req.RecipientID == "" {
		return "sender_id and recipient_id are required", false
	}
	if err := validation.ValidateCurrency(req.Currency); err != nil {
		return err.Error(), false
	}
	if err := validation.ValidateAmount(req.Amount); err != nil {
		return err.Error(), false
	}
	if len(req.Allocations) > 0 {
		total := decimal.Zero
		for _, alloc := range req.Allocations {
			if alloc.TokenID == "" {
				return "allocation token_id is required", false
			}
			if err := validation.ValidateAmount(alloc.Amount); err != nil {
				return err.Error(), false
			}
			total = total.Add(alloc.Amount)
		}
		if !total.Equal(req.Amount) {
			return "allocations must sum to amount", false
		}
	}
	return "", true
}

func settlementFromRequest(req *api.SettleRequest) *storage.Settlement {
	settledAt := req.Timestamp
	if settledAt.IsZero() {
		settledAt = time.Now().UTC()
	}
	allocations := make([]storage.TokenAllocation, 0, len(req.Allocations))
	for _, alloc := range req.Allocations {
		allocations = append(allocations, storage.TokenAllocation{
			TokenID: alloc.TokenID,
			Amount:  alloc.Amount,
		})
	}
	return &storage.Settlement{
		TransactionID: req.TransactionID,
		TokenID:       req.TokenID,
		SenderID:      req.SenderID,
		RecipientID:   req.RecipientID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Direction:     req.Direction,
		DeviceID:      req.DeviceID,
		SettledAt:     settledAt,
		Allocations:   allocations,
	}
}
