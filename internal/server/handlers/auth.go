package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pinkpay/offlinepay/internal/server/storage"
	"github.com/pinkpay/offlinepay/internal/validation"
	"github.com/pinkpay/offlinepay/pkg/api"
)

// AuthHandler issues device sessions for wallet accounts.
type AuthHandler struct {
	logger         *slog.Logger
	userStorage    storage.UserStorage
	jwtConfig      JWTConfig
	initialBalance decimal.Decimal
	currency       string
}

// NewAuthHandler creates a new handler for account registration and login.
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtConfig JWTConfig, initialBalance decimal.Decimal, currency string) *AuthHandler {
	return &AuthHandler{
		logger:         logger,
		userStorage:    userStorage,
		jwtConfig:      jwtConfig,
		initialBalance: initialBalance,
		currency:       currency,
	}
}

// Register handles POST /api/v1/auth/register
// Creates a wallet account and returns a device session token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUserID(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.DeviceID == "" {
		h.sendError(w, "device_id is required", http.StatusBadRequest)
		return
	}

	user := &storage.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Currency:  h.currency,
		Balance:   h.initialBalance,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			h.sendError(w, "username already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Username, req.DeviceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))

	h.sendJSON(w, api.AuthResponse{
		UserID:      user.ID,
		Username:    user.Username,
		AccessToken: token,
		ExpiresIn:   expiresIn,
		Currency:    user.Currency,
		Balance:     user.Balance,
	}, http.StatusCreated)
}

// Login handles POST /api/v1/auth/login
// Returns a fresh device session token for an existing account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUserID(req.Username); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.DeviceID == "" {
		h.sendError(w, "device_id is required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Username, req.DeviceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("device_id", req.DeviceID))

	h.sendJSON(w, api.AuthResponse{
		UserID:      user.ID,
		Username:    user.Username,
		AccessToken: token,
		ExpiresIn:   expiresIn,
		Currency:    user.Currency,
		Balance:     user.Balance,
	}, http.StatusOK)
}

func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}
